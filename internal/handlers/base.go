package handlers

import (
	"net/http"

	"github.com/Gobusters/ectoerror/httperror"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// SuccessResponse returns a 200 OK with data
func SuccessResponse(c echo.Context, data any) error {
	return c.JSON(http.StatusOK, data)
}

// BadRequest returns a 400 Bad Request error
func BadRequest(message string) error {
	return httperror.NewHTTPError(http.StatusBadRequest, message)
}

// formMetadata parses the connection metadata blob the platform replays as a
// form field on every call.
func formMetadata(c echo.Context) (wordpress.ConnectionMetadata, error) {
	meta, err := wordpress.ParseConnectionMetadata(c.FormValue("metadata"))
	if err != nil {
		return wordpress.ConnectionMetadata{}, BadRequest("invalid metadata")
	}
	return meta, nil
}

// formState parses the sync state blob the platform replays on pull calls.
func formState(c echo.Context) (wordpress.SyncState, error) {
	state, err := wordpress.ParseSyncState(c.FormValue("state"))
	if err != nil {
		return wordpress.SyncState{}, BadRequest("invalid state")
	}
	return state, nil
}
