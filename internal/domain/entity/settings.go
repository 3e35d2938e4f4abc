package entity

import "time"

// Settings scopes. Each scope is stored as one JSON document.
const (
	SettingsScopePricing  = "pricing"
	SettingsScopeTax      = "tax"
	SettingsScopeShipping = "shipping"
)

// ShopSettings is one persisted configuration document for a scope.
type ShopSettings struct {
	Scope     string
	Payload   []byte // JSON document, shape depends on Scope.
	UpdatedAt time.Time
}

// PricingSettings is the typed view of the "pricing" scope.
type PricingSettings struct {
	MarginPercent float64 `json:"margin_percent" validate:"min=0,max=100"`
	RoundToCents  int64   `json:"round_to_cents" validate:"min=0"`
}

// TaxRate is one tax entry keyed by country (and optional state).
type TaxRate struct {
	Country string  `json:"country" validate:"required"`
	State   string  `json:"state,omitempty"`
	Percent float64 `json:"percent" validate:"min=0,max=100"`
}

// TaxSettings is the typed view of the "tax" scope.
type TaxSettings struct {
	Inclusive bool      `json:"inclusive"`
	Rates     []TaxRate `json:"rates"`
}

// ShippingMethod is one offered shipping option.
type ShippingMethod struct {
	Code          string `json:"code" validate:"required"`
	Label         string `json:"label" validate:"required"`
	PriceCents    int64  `json:"price_cents" validate:"min=0"`
	EstimatedDays int    `json:"estimated_days" validate:"min=0"`
}

// ShippingSettings is the typed view of the "shipping" scope.
type ShippingSettings struct {
	Methods []ShippingMethod `json:"methods"`
}

// ValidSettingsScope reports whether scope names a known settings document.
func ValidSettingsScope(scope string) bool {
	switch scope {
	case SettingsScopePricing, SettingsScopeTax, SettingsScopeShipping:
		return true
	default:
		return false
	}
}
