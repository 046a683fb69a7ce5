package dto

import (
	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/samber/lo"
)

// Placeholders are the prompt options of the select fields.
type Placeholders struct {
	SaleType      string `json:"saleType"`
	UOM           string `json:"uom"`
	Rate          string `json:"rate"`
	SROSchedule   string `json:"sroScheduleNo"`
	SROItemSerial string `json:"sroItemSerialNo"`
}

// CatalogResponse lists the fixed option sets used by the invoice form.
type CatalogResponse struct {
	SaleTypes         []string          `json:"saleTypes"`
	SROSaleTypes      []string          `json:"sroSaleTypes"`
	UnitsOfMeasure    []string          `json:"unitsOfMeasure"`
	Rates             []string          `json:"rates"`
	DocumentTypes     []string          `json:"documentTypes"`
	Provinces         []string          `json:"provinces"`
	RegistrationTypes []string          `json:"registrationTypes"`
	Currencies        []domain.Currency `json:"currencies"`
	Placeholders      Placeholders      `json:"placeholders"`
}

// NewCatalogResponse snapshots the domain catalogs.
func NewCatalogResponse() CatalogResponse {
	toString := func(s domain.SaleType, _ int) string { return string(s) }
	sroTypes := lo.Filter(domain.SaleTypes, func(s domain.SaleType, _ int) bool { return s.RequiresSRO() })
	regTypes := []string{string(domain.RegistrationRegistered), string(domain.RegistrationUnregistered)}

	return CatalogResponse{
		SaleTypes:         lo.Map(domain.SaleTypes, toString),
		SROSaleTypes:      lo.Map(sroTypes, toString),
		UnitsOfMeasure:    append([]string(nil), domain.UnitsOfMeasure...),
		Rates:             append([]string(nil), domain.Rates...),
		DocumentTypes:     lo.Map(domain.DocumentTypes, func(d domain.DocumentType, _ int) string { return string(d) }),
		Provinces:         append([]string(nil), domain.Provinces...),
		RegistrationTypes: regTypes,
		Currencies:        append([]domain.Currency(nil), domain.SupportedCurrencies...),
		Placeholders: Placeholders{
			SaleType:      domain.PlaceholderSaleType,
			UOM:           domain.PlaceholderUOM,
			Rate:          domain.PlaceholderRate,
			SROSchedule:   domain.PlaceholderSROSchedule,
			SROItemSerial: domain.PlaceholderSROItemSerial,
		},
	}
}
