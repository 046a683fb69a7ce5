package domain

// UserSettings are a user's persisted preferences. Configs holds only the
// visibility overrides; the effective config is built by FieldConfigRegistry.
type UserSettings struct {
	UserID   string      `json:"userID"`
	Configs  FieldConfig `json:"configs"`
	Currency string      `json:"currency"`
	AuditFields
}

// Registry builds a visibility registry over the built-in catalog.
func (s UserSettings) Registry() *FieldConfigRegistry {
	return NewFieldConfigRegistry(DefaultFieldConfig(), s.Configs)
}
