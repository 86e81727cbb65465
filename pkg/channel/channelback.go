package channel

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/Ramsey-B/aster/pkg/metrics"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// ChannelbackResult is the payload returned to the platform after an agent
// reply has been posted: the external id of the comment that was created.
type ChannelbackResult struct {
	ExternalID string `json:"external_id"`
}

// Channelback posts an agent reply as a new WordPress comment under the
// comment identified by parentID and returns the new comment's external id.
func (s *Service) Channelback(ctx context.Context, meta wordpress.ConnectionMetadata, parentID, message string, attachmentURLs []string) (*ChannelbackResult, error) {
	ctx, span := tracing.StartSpan(ctx, "channel.Service.Channelback")
	defer span.End()

	target, err := wordpress.ParseCommentID(parentID)
	if err != nil {
		return nil, httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid parent_id: %s", err)
	}

	// WordPress comments have no attachment support, so attachment URLs are
	// inlined into the comment text. Fragile: the URLs may be secured or may
	// expire, but re-hosting the files is out of scope for this integration.
	if attachmentURLs != nil {
		var b strings.Builder
		b.WriteString(message)
		b.WriteString("\n\nAttachments:")
		for _, u := range attachmentURLs {
			b.WriteString("\n")
			b.WriteString(u)
		}
		message = b.String()
	}

	outcome := s.client.Do(ctx, wordpress.CreateCommentRequest(meta, target.CommentID, target.PostID, message))
	if outcome.StatusCode != http.StatusCreated {
		metrics.ChannelbacksTotal.WithLabelValues("remote_error").Inc()
		return nil, classifyRemoteFailure(outcome)
	}

	var created wordpress.CreatedComment
	if err := json.Unmarshal(outcome.Body, &created); err != nil {
		metrics.ChannelbacksTotal.WithLabelValues("bad_data").Inc()
		return nil, badUpstreamData(err)
	}

	metrics.ChannelbacksTotal.WithLabelValues("ok").Inc()
	s.logger.WithContext(ctx).WithField("comment_id", created.ID.String()).Debugf("created wordpress comment %s", created.ID.String())

	// The new external id keeps the original link and post but carries the id
	// of the comment WordPress just created.
	return &ChannelbackResult{
		ExternalID: wordpress.EncodeCommentID(target.Link, created.ID.String(), target.PostID),
	}, nil
}

// ResolveClickthrough returns the WordPress link embedded in an external id.
// Pure decode, no remote call; the caller performs the actual redirect.
func (s *Service) ResolveClickthrough(externalID string) (string, error) {
	id, err := wordpress.ParseCommentID(externalID)
	if err != nil {
		return "", httperror.NewHTTPErrorf(http.StatusBadRequest, "invalid external_id: %s", err)
	}
	return id.Link, nil
}
