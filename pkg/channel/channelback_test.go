package channel

import (
	"context"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Ramsey-B/aster/pkg/wordpress"
)

const parentExternalID = "12:34:http://example.com/2024/hello-world/#comment-34"

func TestChannelback(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/wp-json/wp/v2/comments", r.URL.Path)

		require.NoError(t, r.ParseForm())
		assert.Equal(t, "34", r.PostForm.Get("parent"))
		assert.Equal(t, "12", r.PostForm.Get("post"))
		assert.Equal(t, "7", r.PostForm.Get("author"))
		assert.Equal(t, "a reply from an agent", r.PostForm.Get("content"))

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 99}`))
	})
	defer done()

	result, err := service.Channelback(context.Background(), meta, parentExternalID, "a reply from an agent", nil)
	require.NoError(t, err)

	// The new external id keeps the post and link but carries the created
	// comment's id, with the link's trailing digits rewritten to match.
	assert.Equal(t, "12:99:http://example.com/2024/hello-world/#comment-99", result.ExternalID)
}

func TestChannelbackAttachments(t *testing.T) {
	var gotContent string
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		require.NoError(t, r.ParseForm())
		gotContent = r.PostForm.Get("content")

		w.WriteHeader(http.StatusCreated)
		w.Write([]byte(`{"id": 99}`))
	})
	defer done()

	_, err := service.Channelback(context.Background(), meta, parentExternalID, "see attached",
		[]string{"http://cdn.example.com/a.png", "http://cdn.example.com/b.png"})
	require.NoError(t, err)

	assert.Equal(t, "see attached\n\nAttachments:\nhttp://cdn.example.com/a.png\nhttp://cdn.example.com/b.png", gotContent)
}

func TestChannelbackMalformedParentID(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		t.Fatal("no remote call expected for a malformed parent id")
	})
	defer done()

	_, err := service.Channelback(context.Background(), meta, "not-an-external-id", "a reply", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
}

func TestChannelbackUnexpectedStatus(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		// Even a success-family status other than 201 is treated as a remote
		// error and passed through.
		w.WriteHeader(http.StatusNonAuthoritativeInfo)
		w.Write([]byte("unexpected"))
	})
	defer done()

	_, err := service.Channelback(context.Background(), meta, parentExternalID, "a reply", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusNonAuthoritativeInfo, httperror.GetStatusCode(err))
	assert.Equal(t, "unexpected", httperror.ToHTTPError(err).Meta["error_info"])
}

func TestChannelbackTransportFailure(t *testing.T) {
	service, meta := downService()

	_, err := service.Channelback(context.Background(), meta, parentExternalID, "a reply", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httperror.GetStatusCode(err))
}

func TestChannelbackBadCreatedBody(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
		w.Write([]byte("some garbage"))
	})
	defer done()

	_, err := service.Channelback(context.Background(), meta, parentExternalID, "a reply", nil)
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, httperror.GetStatusCode(err))
}

func TestResolveClickthrough(t *testing.T) {
	logger := noopLogger()
	service := NewService(wordpress.NewClient(wordpress.DefaultConfig(), logger), logger)

	link, err := service.ResolveClickthrough(parentExternalID)
	require.NoError(t, err)
	assert.Equal(t, "http://example.com/2024/hello-world/#comment-34", link)
}

func TestResolveClickthroughMalformed(t *testing.T) {
	logger := noopLogger()
	service := NewService(wordpress.NewClient(wordpress.DefaultConfig(), logger), logger)

	_, err := service.ResolveClickthrough("garbage")
	require.Error(t, err)
	assert.Equal(t, http.StatusBadRequest, httperror.GetStatusCode(err))
}
