package handler

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"storefront/internal/delivery/http/response"
	"storefront/internal/usecase"

	"github.com/labstack/echo/v4"
	"github.com/pkg/errors"
)

// SettingsHandler holds dependencies for shop settings handlers.
type SettingsHandler struct {
	uc     usecase.SettingsUsecase
	logger *slog.Logger
}

// NewSettingsHandler is the constructor for SettingsHandler, injected by Fx.
func NewSettingsHandler(uc usecase.SettingsUsecase, logger *slog.Logger) *SettingsHandler {
	return &SettingsHandler{
		uc:     uc,
		logger: logger,
	}
}

// GetSettings handles GET /settings/:scope.
func (h *SettingsHandler) GetSettings(c echo.Context) error {
	scope := c.Param("scope")

	payload, err := h.uc.GetSettings(c.Request().Context(), scope)
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, payload, "")
}

// UpdateSettings handles PUT /settings/:scope. The body is the full
// replacement document for the scope.
func (h *SettingsHandler) UpdateSettings(c echo.Context) error {
	scope := c.Param("scope")

	var payload json.RawMessage
	if err := c.Bind(&payload); err != nil {
		return response.BindingError(c, "INVALID_INPUT", "Invalid settings payload")
	}

	updated, err := h.uc.UpdateSettings(c.Request().Context(), scope, &usecase.UpdateSettingsInput{
		Payload: payload,
	})
	if err != nil {
		return errors.WithStack(err)
	}

	return response.Success(c, http.StatusOK, updated, "Settings updated successfully")
}
