package handlers

import (
	"net/http"

	"github.com/Gobusters/ectologger"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/aster/pkg/channel"
)

// ChannelHandler serves the channel endpoints the platform calls on a
// schedule (pull) or on agent action (channelback, clickthrough).
type ChannelHandler struct {
	service *channel.Service
	logger  ectologger.Logger
}

func NewChannelHandler(service *channel.Service, logger ectologger.Logger) *ChannelHandler {
	return &ChannelHandler{
		service: service,
		logger:  logger,
	}
}

// RegisterRoutes registers the channel routes with the echo server
func (h *ChannelHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/pull", h.Pull)
	e.POST("/channelback", h.Channelback)
	e.GET("/clickthrough", h.Clickthrough)
}

// Pull returns the comments newer than the replayed sync state.
func (h *ChannelHandler) Pull(c echo.Context) error {
	ctx := c.Request().Context()

	meta, err := formMetadata(c)
	if err != nil {
		return err
	}
	state, err := formState(c)
	if err != nil {
		return err
	}

	result, err := h.service.Pull(ctx, meta, state)
	if err != nil {
		return err
	}
	return SuccessResponse(c, result)
}

// Channelback posts an agent reply back to WordPress as a comment.
func (h *ChannelHandler) Channelback(c echo.Context) error {
	ctx := c.Request().Context()

	meta, err := formMetadata(c)
	if err != nil {
		return err
	}
	params, err := c.FormParams()
	if err != nil {
		return BadRequest("invalid form body")
	}

	result, err := h.service.Channelback(ctx, meta, c.FormValue("parent_id"), c.FormValue("message"), params["file_urls"])
	if err != nil {
		return err
	}
	return SuccessResponse(c, result)
}

// Clickthrough redirects the agent to the original comment on the blog.
func (h *ChannelHandler) Clickthrough(c echo.Context) error {
	link, err := h.service.ResolveClickthrough(c.QueryParam("external_id"))
	if err != nil {
		return err
	}
	return c.Redirect(http.StatusFound, link)
}
