package handlers

import (
	"errors"
	"fmt"

	"github.com/Gobusters/ectologger"
	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"

	"github.com/Ramsey-B/aster/pkg/channel"
	"github.com/Ramsey-B/aster/pkg/wordpress"
)

// AdminHandler serves the two-step account linking flow the helpdesk shows
// when an operator adds or edits a channel account.
type AdminHandler struct {
	service  *channel.Service
	validate *validator.Validate
	logger   ectologger.Logger
}

func NewAdminHandler(service *channel.Service, logger ectologger.Logger) *AdminHandler {
	return &AdminHandler{
		service:  service,
		validate: validator.New(),
		logger:   logger,
	}
}

// RegisterRoutes registers the admin routes with the echo server
func (h *AdminHandler) RegisterRoutes(e *echo.Echo) {
	e.POST("/admin_ui", h.AdminUI)
	e.POST("/admin_ui_2", h.AdminUI2)
}

// AdminUI renders the credential form, pre-filled from existing metadata
// when the operator is editing an account rather than creating one.
func (h *AdminHandler) AdminUI(c echo.Context) error {
	meta, err := wordpress.ParseConnectionMetadata(c.FormValue("metadata"))
	if err != nil {
		return BadRequest("invalid metadata")
	}

	return renderAccountForm(c, accountFormData{
		Name:      c.FormValue("name"),
		Login:     meta.Login,
		Password:  meta.Password,
		Location:  meta.WordpressLocation,
		ReturnURL: c.FormValue("return_url"),
	})
}

// AdminUI2 checks the submitted credentials against WordPress. On success it
// hands the assembled metadata back to the platform via an auto-submitting
// form; on failure it re-renders the form with a warning so the operator can
// correct it.
func (h *AdminHandler) AdminUI2(c echo.Context) error {
	ctx := c.Request().Context()

	form := channel.AccountLinkForm{
		Name:      c.FormValue("name"),
		Login:     c.FormValue("login"),
		Password:  c.FormValue("password"),
		Location:  c.FormValue("wordpress_location"),
		ReturnURL: c.FormValue("return_url"),
	}
	data := accountFormData{
		Name:      form.Name,
		Login:     form.Login,
		Password:  form.Password,
		Location:  form.Location,
		ReturnURL: form.ReturnURL,
	}

	if err := h.validate.Struct(form); err != nil {
		data.Warning = "All fields are required, please try again."
		return renderAccountForm(c, data)
	}

	link, err := h.service.LinkAccount(ctx, form)
	switch {
	case errors.Is(err, channel.ErrUserNotFound):
		data.Warning = fmt.Sprintf("Sorry, the user '%s' was not found, please try again.", form.Login)
		return renderAccountForm(c, data)
	case err != nil:
		h.logger.WithContext(ctx).WithError(err).Errorf("account linking failed for %s", form.Location)
		data.Warning = "Sorry, we were unable to connect to Wordpress at the requested location, please try again."
		return renderAccountForm(c, data)
	}

	return renderHandoff(c, handoffData{
		ReturnURL: form.ReturnURL,
		Name:      form.Name,
		Metadata:  link.Serialized,
	})
}
