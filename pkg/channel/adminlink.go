package channel

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"

	"github.com/Ramsey-B/aster/pkg/metrics"
	"github.com/Ramsey-B/aster/pkg/tracing"
	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// ErrUserNotFound reports that the supplied login did not match any user on
// the WordPress instance.
var ErrUserNotFound = errors.New("wordpress user not found")

// AccountLinkForm is the operator input from the second admin UI step.
type AccountLinkForm struct {
	Name      string `json:"name" validate:"required"`
	Login     string `json:"login" validate:"required"`
	Password  string `json:"password" validate:"required"`
	Location  string `json:"wordpress_location" validate:"required"`
	ReturnURL string `json:"return_url" validate:"required"`
}

// AccountLink is a validated connection ready to hand back to the platform.
type AccountLink struct {
	Metadata   wordpress.ConnectionMetadata
	Serialized string
}

// LinkAccount validates the operator-supplied credentials against the
// WordPress user list and records the matched user's id. The author id is
// only ever populated through this lookup, never taken from operator input.
func (s *Service) LinkAccount(ctx context.Context, form AccountLinkForm) (*AccountLink, error) {
	ctx, span := tracing.StartSpan(ctx, "channel.Service.LinkAccount")
	defer span.End()

	meta := wordpress.ConnectionMetadata{
		Name:              form.Name,
		Login:             form.Login,
		Password:          form.Password,
		WordpressLocation: form.Location,
	}

	outcome := s.client.Do(ctx, wordpress.ListUsersRequest(meta))
	if outcome.StatusCode != http.StatusOK {
		metrics.AccountLinksTotal.WithLabelValues("remote_error").Inc()
		return nil, classifyRemoteFailure(outcome)
	}

	var users []wordpress.RemoteUser
	if err := json.Unmarshal(outcome.Body, &users); err != nil {
		metrics.AccountLinksTotal.WithLabelValues("bad_data").Inc()
		return nil, badUpstreamData(err)
	}

	var matched *wordpress.RemoteUser
	for i := range users {
		if users[i].Name == form.Login {
			matched = &users[i]
			break
		}
	}
	if matched == nil {
		metrics.AccountLinksTotal.WithLabelValues("user_not_found").Inc()
		return nil, ErrUserNotFound
	}

	meta.Author = matched.ID.String()
	serialized, err := meta.Serialize()
	if err != nil {
		return nil, httperror.NewHTTPErrorf(http.StatusInternalServerError, "failed to serialize metadata: %s", err)
	}

	metrics.AccountLinksTotal.WithLabelValues("ok").Inc()
	s.logger.WithContext(ctx).WithField("author", meta.Author).Infof("linked wordpress account for %s", form.Login)

	return &AccountLink{Metadata: meta, Serialized: serialized}, nil
}
