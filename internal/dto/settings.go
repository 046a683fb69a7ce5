package dto

import "github.com/SscSPs/sales_tax_invoicing/internal/core/domain"

// SettingsBody is the settings document exchanged with the UI.
type SettingsBody struct {
	Configs         domain.FieldConfig     `json:"configs"`
	Currency        string                 `json:"currency"`
	CurrencyDisplay domain.CurrencyDisplay `json:"currencyDisplay"`
}

// SettingsResponse wraps the effective settings of a user.
type SettingsResponse struct {
	Settings SettingsBody `json:"settings"`
}

// SettingsPatch holds the parts of the settings a PATCH changes. Configs may
// be partial; Currency is replaced only when present.
type SettingsPatch struct {
	Configs  domain.FieldConfig `json:"configs"`
	Currency *string            `json:"currency"`
}

// UpdateSettingsRequest is the PATCH /users/settings body.
type UpdateSettingsRequest struct {
	Settings SettingsPatch `json:"settings" binding:"required"`
}

// SetVisibilityRequest toggles one field.
type SetVisibilityRequest struct {
	ConfigKey string `json:"configKey" binding:"required"`
	Section   string `json:"section" binding:"required"`
	Field     string `json:"field" binding:"required"`
	Visible   *bool  `json:"visible" binding:"required"`
}

// FieldVisibilityResponse answers a single visibility query.
type FieldVisibilityResponse struct {
	ConfigKey string `json:"configKey"`
	Section   string `json:"section"`
	Field     string `json:"field"`
	Visible   bool   `json:"visible"`
}

// ToSettingsResponse renders settings with the effective (merged) configs.
func ToSettingsResponse(settings domain.UserSettings) SettingsResponse {
	display := domain.ResolveSymbol(settings.Currency)
	return SettingsResponse{
		Settings: SettingsBody{
			Configs:         settings.Registry().Effective(),
			Currency:        display.IsoLikeLabel,
			CurrencyDisplay: display,
		},
	}
}

// FieldVisibilityQuery selects the field a visibility query is about.
type FieldVisibilityQuery struct {
	ConfigKey string `form:"configKey" binding:"required"`
	Section   string `form:"section" binding:"required"`
	Field     string `form:"field" binding:"required"`
}

// SectionsResponse returns the section set of one config after a toggle.
type SectionsResponse struct {
	ConfigKey string          `json:"configKey"`
	Sections  domain.Sections `json:"sections"`
}
