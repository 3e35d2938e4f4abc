package handler

import (
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// NotificationHandler holds dependencies for transactional email handlers.
type NotificationHandler struct {
	uc     usecase.NotificationUsecase
	logger *slog.Logger
}

// NewNotificationHandler is the constructor for NotificationHandler, injected by Fx.
func NewNotificationHandler(uc usecase.NotificationUsecase, logger *slog.Logger) *NotificationHandler {
	return &NotificationHandler{
		uc:     uc,
		logger: logger,
	}
}

// SendEmailRequest is the payload for sending one transactional email.
type SendEmailRequest struct {
	Recipient string         `json:"recipient" validate:"required,email"`
	Template  string         `json:"template" validate:"required"`
	Data      map[string]any `json:"data"`
}

// SendEmail handles POST /notifications/email.
func (h *NotificationHandler) SendEmail(c echo.Context) error {
	var req SendEmailRequest
	if err := c.Bind(&req); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid email input")
	}
	if err := c.Validate(&req); err != nil {
		return errors.WithStack(err)
	}

	message, err := h.uc.SendEmail(c.Request().Context(), &usecase.SendEmailInput{
		Recipient: req.Recipient,
		Template:  req.Template,
		Data:      req.Data,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusAccepted, message, "Email sent successfully")
}

// ListEmailLog handles GET /notifications/email.
func (h *NotificationHandler) ListEmailLog(c echo.Context) error {
	recipient := c.QueryParam("recipient")
	if recipient == "" {
		return response.BadRequest(c, "INVALID_INPUT", "recipient query parameter is required")
	}

	page, perPage, err := parsePaging(c)
	if err != nil {
		return err
	}

	logPage, err := h.uc.ListEmailLog(c.Request().Context(), &usecase.ListEmailLogInput{
		Recipient: recipient,
		Page:      page,
		PerPage:   perPage,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, logPage, "")
}
