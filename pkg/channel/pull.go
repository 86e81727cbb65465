package channel

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"

	"github.com/Ramsey-B/aster/pkg/metrics"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// anonymousAuthor is the display name used when WordPress omits author_name.
const anonymousAuthor = "Anonymous"

// wordpressTimeLayout matches date_gmt, a naive timestamp that is always UTC.
const wordpressTimeLayout = "2006-01-02T15:04:05"

// PullResult is the payload returned to the platform from a pull: the
// transformed comments and the serialized state to replay on the next pull.
type PullResult struct {
	Resources []wordpress.TransformedComment `json:"external_resources"`
	State     string                         `json:"state"`
}

// Pull fetches comments made after the state's watermark, transforms them
// into helpdesk resources and computes the next watermark.
func (s *Service) Pull(ctx context.Context, meta wordpress.ConnectionMetadata, state wordpress.SyncState) (*PullResult, error) {
	ctx, span := tracing.StartSpan(ctx, "channel.Service.Pull")
	defer span.End()

	outcome := s.client.Do(ctx, wordpress.ListCommentsRequest(meta, state))
	if outcome.StatusCode != http.StatusOK {
		metrics.PullsTotal.WithLabelValues("remote_error").Inc()
		return nil, classifyRemoteFailure(outcome)
	}

	var comments []wordpress.RemoteComment
	if err := json.Unmarshal(outcome.Body, &comments); err != nil {
		metrics.PullsTotal.WithLabelValues("bad_data").Inc()
		return nil, badUpstreamData(err)
	}

	resources := make([]wordpress.TransformedComment, 0, len(comments))
	for _, comment := range comments {
		transformed, err := transformComment(comment)
		if err != nil {
			metrics.PullsTotal.WithLabelValues("bad_data").Inc()
			return nil, badUpstreamData(err)
		}
		resources = append(resources, transformed)
	}

	nextState, err := nextSyncState(comments, state)
	if err != nil {
		return nil, badUpstreamData(err)
	}

	metrics.PullsTotal.WithLabelValues("ok").Inc()
	s.logger.WithContext(ctx).WithField("comments", len(resources)).Debugf("pulled %d comments", len(resources))

	return &PullResult{Resources: resources, State: nextState}, nil
}

// transformComment maps one WordPress comment onto the helpdesk resource
// shape. The comment's link may point at a sibling comment on the same post,
// so both the comment id and the parent id are encoded against the same link.
func transformComment(comment wordpress.RemoteComment) (wordpress.TransformedComment, error) {
	createdAt, err := time.Parse(wordpressTimeLayout, comment.DateGMT)
	if err != nil {
		return wordpress.TransformedComment{}, fmt.Errorf("invalid date_gmt %q: %w", comment.DateGMT, err)
	}

	name := comment.AuthorName
	if name == "" {
		name = anonymousAuthor
	}

	return wordpress.TransformedComment{
		ExternalID: wordpress.EncodeCommentID(comment.Link, comment.ID.String(), comment.Post.String()),
		ParentID:   wordpress.EncodeCommentID(comment.Link, comment.Parent.String(), comment.Post.String()),
		Message:    wordpress.StripHTML(comment.Content.Rendered),
		CreatedAt:  createdAt.UTC().Format(time.RFC3339),
		Author: wordpress.CommentAuthor{
			ExternalID: comment.Author.String(),
			Name:       name,
		},
	}, nil
}

// nextSyncState computes the serialized state handed back to the platform.
// A fetch returning zero comments carries the previous state through
// untouched so the watermark never regresses. Otherwise the watermark is the
// date_gmt of the last comment in received order: the upstream ordering
// contract (orderby=id, order=asc) is trusted, not re-sorted.
//
// Known limitation: several comments sharing the watermark timestamp can be
// re-delivered or missed across pulls.
func nextSyncState(comments []wordpress.RemoteComment, previous wordpress.SyncState) (string, error) {
	if len(comments) == 0 {
		if previous.Raw == "" {
			return "{}", nil
		}
		return previous.Raw, nil
	}

	next := wordpress.SyncState{MostRecentItemTimestamp: comments[len(comments)-1].DateGMT}
	encoded, err := json.Marshal(next)
	if err != nil {
		return "", fmt.Errorf("failed to serialize sync state: %w", err)
	}
	return string(encoded), nil
}
