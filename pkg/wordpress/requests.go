package wordpress

import (
	"net/http"
	"net/url"
)

const (
	usersEndpoint    = "/wp-json/wp/v2/users"
	commentsEndpoint = "/wp-json/wp/v2/comments"

	// The remote API is queried one fixed page at a time. A production
	// integration would paginate.
	defaultPage    = "1"
	defaultPerPage = "100"
)

// BasicAuth holds the HTTP Basic Auth credentials for a request.
type BasicAuth struct {
	Username string
	Password string
}

// RequestSpec is a canonical outbound request descriptor. The builders below
// are pure functions of their inputs; execution happens in Client.Do.
type RequestSpec struct {
	Method string
	URI    string
	Query  url.Values
	Body   url.Values
	Auth   BasicAuth
}

// ListUsersRequest describes the lookup of users with names similar to the
// configured login, used by the account linking flow.
func ListUsersRequest(meta ConnectionMetadata) RequestSpec {
	return RequestSpec{
		Method: http.MethodGet,
		URI:    meta.WordpressLocation + usersEndpoint,
		Query: url.Values{
			"search":   []string{meta.Login},
			"page":     []string{defaultPage},
			"per_page": []string{defaultPerPage},
		},
		Auth: BasicAuth{Username: meta.Login, Password: meta.Password},
	}
}

// ListCommentsRequest describes the fetch of comments ordered by id
// ascending, id standing in for creation order. When the state carries a
// watermark, only comments made after it are requested so previously imported
// comments are not repeated.
func ListCommentsRequest(meta ConnectionMetadata, state SyncState) RequestSpec {
	query := url.Values{
		"orderby":  []string{"id"},
		"order":    []string{"asc"},
		"page":     []string{defaultPage},
		"per_page": []string{defaultPerPage},
	}
	if state.MostRecentItemTimestamp != "" {
		query.Set("after", state.MostRecentItemTimestamp)
	}
	return RequestSpec{
		Method: http.MethodGet,
		URI:    meta.WordpressLocation + commentsEndpoint,
		Query:  query,
		Auth:   BasicAuth{Username: meta.Login, Password: meta.Password},
	}
}

// CreateCommentRequest describes the creation of a new comment in reply to an
// existing one. The author is the id recorded by the account linking flow.
func CreateCommentRequest(meta ConnectionMetadata, parentCommentID, postID, content string) RequestSpec {
	return RequestSpec{
		Method: http.MethodPost,
		URI:    meta.WordpressLocation + commentsEndpoint,
		Body: url.Values{
			"parent":  []string{parentCommentID},
			"post":    []string{postID},
			"author":  []string{meta.Author},
			"content": []string{content},
		},
		Auth: BasicAuth{Username: meta.Login, Password: meta.Password},
	}
}
