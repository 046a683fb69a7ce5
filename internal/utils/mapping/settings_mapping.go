package mapping

import (
	"encoding/json"
	"fmt"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/SscSPs/sales_tax_invoicing/internal/models"
)

// ToModelSettings serializes the visibility overrides for the JSONB column.
func ToModelSettings(d domain.UserSettings) (models.UserSettings, error) {
	configs := d.Configs
	if configs == nil {
		configs = domain.FieldConfig{}
	}
	raw, err := json.Marshal(configs)
	if err != nil {
		return models.UserSettings{}, fmt.Errorf("failed to encode field configs: %w", err)
	}
	return models.UserSettings{
		UserID:        d.UserID,
		Configs:       raw,
		Currency:      d.Currency,
		CreatedAt:     d.CreatedAt,
		LastUpdatedAt: d.LastUpdatedAt,
	}, nil
}

// ToDomainSettings decodes a stored settings row. An empty document yields
// no overrides.
func ToDomainSettings(m models.UserSettings) (domain.UserSettings, error) {
	var configs domain.FieldConfig
	if len(m.Configs) > 0 {
		if err := json.Unmarshal(m.Configs, &configs); err != nil {
			return domain.UserSettings{}, fmt.Errorf("failed to decode field configs: %w", err)
		}
	}
	return domain.UserSettings{
		UserID:   m.UserID,
		Configs:  configs,
		Currency: m.Currency,
		AuditFields: domain.AuditFields{
			CreatedAt:     m.CreatedAt,
			CreatedBy:     m.UserID,
			LastUpdatedAt: m.LastUpdatedAt,
			LastUpdatedBy: m.UserID,
		},
	}, nil
}
