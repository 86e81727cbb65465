package channel

import (
	"context"
	"net/http"
	"testing"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func linkForm(location string) AccountLinkForm {
	return AccountLinkForm{
		Name:      "My Blog",
		Login:     "admin",
		Password:  "hunter2",
		Location:  location,
		ReturnURL: "http://helpdesk.example.com/finish",
	}
}

func TestLinkAccount(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/wp-json/wp/v2/users", r.URL.Path)
		assert.Equal(t, "admin", r.URL.Query().Get("search"))

		login, password, ok := r.BasicAuth()
		require.True(t, ok)
		assert.Equal(t, "admin", login)
		assert.Equal(t, "hunter2", password)

		w.Write([]byte(`[{"id": 3, "name": "other"}, {"id": 7, "name": "admin"}]`))
	})
	defer done()

	link, err := service.LinkAccount(context.Background(), linkForm(meta.WordpressLocation))
	require.NoError(t, err)

	// The author id comes from the matched user, never from operator input.
	assert.Equal(t, "7", link.Metadata.Author)
	assert.Equal(t, "admin", link.Metadata.Login)
	assert.Equal(t, meta.WordpressLocation, link.Metadata.WordpressLocation)

	assert.Contains(t, link.Serialized, `"author":"7"`)
	assert.Contains(t, link.Serialized, `"login":"admin"`)
}

func TestLinkAccountUserNotFound(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		// The search matches on similarity, so a near miss can come back and
		// must still be rejected.
		w.Write([]byte(`[{"id": 3, "name": "administrator"}]`))
	})
	defer done()

	_, err := service.LinkAccount(context.Background(), linkForm(meta.WordpressLocation))
	assert.ErrorIs(t, err, ErrUserNotFound)
}

func TestLinkAccountRemoteError(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusUnauthorized)
		w.Write([]byte(`{"code":"rest_cannot_view"}`))
	})
	defer done()

	_, err := service.LinkAccount(context.Background(), linkForm(meta.WordpressLocation))
	require.Error(t, err)
	assert.Equal(t, http.StatusUnauthorized, httperror.GetStatusCode(err))
}

func TestLinkAccountTransportFailure(t *testing.T) {
	service, meta := downService()

	_, err := service.LinkAccount(context.Background(), linkForm(meta.WordpressLocation))
	require.Error(t, err)
	assert.Equal(t, http.StatusServiceUnavailable, httperror.GetStatusCode(err))
}

func TestLinkAccountBadBody(t *testing.T) {
	service, meta, done := newTestService(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("some garbage"))
	})
	defer done()

	_, err := service.LinkAccount(context.Background(), linkForm(meta.WordpressLocation))
	require.Error(t, err)
	assert.Equal(t, http.StatusBadGateway, httperror.GetStatusCode(err))
}
