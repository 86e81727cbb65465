package wordpress

import (
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
)

var testMeta = ConnectionMetadata{
	Name:              "My Blog",
	Login:             "admin",
	Password:          "hunter2",
	Author:            "7",
	WordpressLocation: "http://example.com",
}

func TestListUsersRequest(t *testing.T) {
	spec := ListUsersRequest(testMeta)

	assert.Equal(t, http.MethodGet, spec.Method)
	assert.Equal(t, "http://example.com/wp-json/wp/v2/users", spec.URI)
	assert.Equal(t, "admin", spec.Query.Get("search"))
	assert.Equal(t, "1", spec.Query.Get("page"))
	assert.Equal(t, "100", spec.Query.Get("per_page"))
	assert.Equal(t, BasicAuth{Username: "admin", Password: "hunter2"}, spec.Auth)
	assert.Empty(t, spec.Body)
}

func TestListCommentsRequestWithoutWatermark(t *testing.T) {
	spec := ListCommentsRequest(testMeta, SyncState{})

	assert.Equal(t, http.MethodGet, spec.Method)
	assert.Equal(t, "http://example.com/wp-json/wp/v2/comments", spec.URI)
	assert.Equal(t, "id", spec.Query.Get("orderby"))
	assert.Equal(t, "asc", spec.Query.Get("order"))

	// No watermark means no lower bound on the fetch.
	assert.False(t, spec.Query.Has("after"))
}

func TestListCommentsRequestWithWatermark(t *testing.T) {
	state := SyncState{MostRecentItemTimestamp: "2024-05-01T10:00:00"}
	spec := ListCommentsRequest(testMeta, state)

	assert.Equal(t, "2024-05-01T10:00:00", spec.Query.Get("after"))
}

func TestCreateCommentRequest(t *testing.T) {
	spec := CreateCommentRequest(testMeta, "34", "12", "hello from an agent")

	assert.Equal(t, http.MethodPost, spec.Method)
	assert.Equal(t, "http://example.com/wp-json/wp/v2/comments", spec.URI)
	assert.Equal(t, "34", spec.Body.Get("parent"))
	assert.Equal(t, "12", spec.Body.Get("post"))
	assert.Equal(t, "7", spec.Body.Get("author"))
	assert.Equal(t, "hello from an agent", spec.Body.Get("content"))
	assert.Equal(t, BasicAuth{Username: "admin", Password: "hunter2"}, spec.Auth)
	assert.Empty(t, spec.Query)
}
