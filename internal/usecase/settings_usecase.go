package usecase

import (
	"context"
	"encoding/json"
)

// SettingsUsecase defines the interface for the per-scope shop settings.
// A scope that has never been written reads back as its built-in defaults.
type SettingsUsecase interface {
	GetSettings(ctx context.Context, scope string) (json.RawMessage, error)
	UpdateSettings(ctx context.Context, scope string, input *UpdateSettingsInput) (json.RawMessage, error)
}

// --- Input DTOs ---

// UpdateSettingsInput carries the full replacement document for one scope.
type UpdateSettingsInput struct {
	Payload json.RawMessage `json:"payload"`
}
