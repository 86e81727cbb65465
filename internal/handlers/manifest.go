package handlers

import (
	"io"
	"net/http"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"
)

// Manifest describes the integration to the helpdesk platform.
type Manifest struct {
	Name             string       `json:"name"`
	ID               string       `json:"id"`
	Author           string       `json:"author"`
	Version          string       `json:"version"`
	ChannelbackFiles bool         `json:"channelback_files"`
	URLs             ManifestURLs `json:"urls"`
}

// ManifestURLs are the integration endpoints, relative to wherever the
// service is mounted.
type ManifestURLs struct {
	AdminUI          string `json:"admin_ui"`
	PullURL          string `json:"pull_url"`
	ChannelbackURL   string `json:"channelback_url"`
	ClickthroughURL  string `json:"clickthrough_url"`
	HealthcheckURL   string `json:"healthcheck_url"`
	EventCallbackURL string `json:"event_callback_url"`
}

// ManifestHandler serves the manifest and the platform's event callbacks.
type ManifestHandler struct {
	version string
	logger  ectologger.Logger
}

func NewManifestHandler(version string, logger ectologger.Logger) *ManifestHandler {
	return &ManifestHandler{
		version: version,
		logger:  logger,
	}
}

// RegisterRoutes registers the manifest routes with the echo server
func (h *ManifestHandler) RegisterRoutes(e *echo.Echo) {
	e.GET("/manifest", h.Manifest)
	e.POST("/event_callback", h.EventCallback)
}

// Manifest returns the integration manifest.
func (h *ManifestHandler) Manifest(c echo.Context) error {
	return SuccessResponse(c, Manifest{
		Name:             "Wordpress",
		ID:               "com.meadow.anychannel.integrations.wordpress",
		Author:           "Meadow",
		Version:          h.version,
		ChannelbackFiles: true,
		URLs: ManifestURLs{
			AdminUI:          "./admin_ui",
			PullURL:          "./pull",
			ChannelbackURL:   "./channelback",
			ClickthroughURL:  "./clickthrough",
			HealthcheckURL:   "./healthcheck",
			EventCallbackURL: "./event_callback",
		},
	})
}

// EventCallback records account lifecycle events the platform reports back
// to the integration. Nothing is persisted, the event is only logged.
func (h *ManifestHandler) EventCallback(c echo.Context) error {
	body, err := io.ReadAll(c.Request().Body)
	if err != nil {
		return BadRequest("unable to read body")
	}

	h.logger.WithContext(c.Request().Context()).WithField("body", string(body)).Info("received event callback")
	return c.NoContent(http.StatusOK)
}
