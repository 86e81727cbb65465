package wordpress

import (
	"errors"
	"fmt"
	"regexp"
)

var (
	externalIDPattern = regexp.MustCompile(`^(\d+):(\d+):(.*)$`)
	trailingDigits    = regexp.MustCompile(`\d+$`)
)

// ErrMalformedExternalID reports an external id that does not decode. Callers
// must treat this as a fatal input error, never fall back to a default.
var ErrMalformedExternalID = errors.New("malformed external comment id")

// ExternalCommentID is the decoded form of the composite id stored by the
// helpdesk platform: the containing post, the comment itself, and a link that
// resolves to the comment in the WordPress UI. PostID and CommentID are
// numeric strings.
type ExternalCommentID struct {
	PostID    string
	CommentID string
	Link      string
}

// EncodeCommentID builds the composite external id for a comment. The link on
// a WordPress comment may point at a sibling comment on the same post, so the
// trailing digit run in the link is rewritten to the comment's own id before
// encoding; a link with no trailing digits is kept as is.
func EncodeCommentID(link, commentID, postID string) string {
	fixed := trailingDigits.ReplaceAllLiteralString(link, commentID)
	return fmt.Sprintf("%s:%s:%s", postID, commentID, fixed)
}

// ParseCommentID is the exact inverse of EncodeCommentID. The link capture is
// greedy to the end of the input, so colons inside the link survive.
func ParseCommentID(externalID string) (ExternalCommentID, error) {
	match := externalIDPattern.FindStringSubmatch(externalID)
	if match == nil {
		return ExternalCommentID{}, fmt.Errorf("%w: %q", ErrMalformedExternalID, externalID)
	}
	return ExternalCommentID{
		PostID:    match[1],
		CommentID: match[2],
		Link:      match[3],
	}, nil
}
