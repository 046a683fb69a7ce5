package domain

import "github.com/samber/lo"

// FieldDescriptor describes one configurable display field.
// Required fields are always visible.
type FieldDescriptor struct {
	Key       string `json:"key"`
	Label     string `json:"label"`
	IsVisible bool   `json:"isVisible"`
	Required  bool   `json:"required"`
}

// Sections maps a section name ("business", "items", ...) to its ordered fields.
type Sections map[string][]FieldDescriptor

// FieldConfig maps a config key ("invoicePreview", ...) to its sections.
type FieldConfig map[string]Sections

const (
	ConfigInvoicePreview = "invoicePreview"
	ConfigInvoiceReport  = "invoiceReport"
)

const (
	SectionBusiness = "business"
	SectionBuyer    = "buyer"
	SectionMeta     = "meta"
	SectionItems    = "items"
	SectionTotals   = "totals"
)

// SectionOrder is the order sections are rendered in.
var SectionOrder = []string{SectionBusiness, SectionBuyer, SectionMeta, SectionItems, SectionTotals}

func (s Sections) Clone() Sections {
	if s == nil {
		return nil
	}
	out := make(Sections, len(s))
	for name, fields := range s {
		out[name] = append([]FieldDescriptor(nil), fields...)
	}
	return out
}

func (c FieldConfig) Clone() FieldConfig {
	if c == nil {
		return nil
	}
	out := make(FieldConfig, len(c))
	for key, sections := range c {
		out[key] = sections.Clone()
	}
	return out
}

// FieldConfigRegistry merges a user's persisted visibility overrides over the
// default catalog. Merging happens per config key, section and field, so
// fields added to the catalog later always show up. A registry is owned by a
// single caller and is not safe for concurrent mutation.
type FieldConfigRegistry struct {
	defaults FieldConfig
	override FieldConfig
}

// NewFieldConfigRegistry copies defaults and override; override may be nil.
func NewFieldConfigRegistry(defaults, override FieldConfig) *FieldConfigRegistry {
	ov := override.Clone()
	if ov == nil {
		ov = FieldConfig{}
	}
	return &FieldConfigRegistry{defaults: defaults.Clone(), override: ov}
}

// GetEffectiveConfig returns the merged sections for configKey. Sections and
// fields absent from the override keep their default visibility; override
// entries the catalog does not know are ignored.
func (r *FieldConfigRegistry) GetEffectiveConfig(configKey string) Sections {
	defaults, ok := r.defaults[configKey]
	if !ok {
		return Sections{}
	}
	return mergeSections(defaults, r.override[configKey])
}

// Effective returns the merged config for every known config key.
func (r *FieldConfigRegistry) Effective() FieldConfig {
	out := make(FieldConfig, len(r.defaults))
	for key := range r.defaults {
		out[key] = r.GetEffectiveConfig(key)
	}
	return out
}

// SetVisibility toggles one field and returns the resulting sections.
// Required and unknown fields are left untouched.
func (r *FieldConfigRegistry) SetVisibility(configKey, sectionName, fieldKey string, visible bool) Sections {
	effective := r.GetEffectiveConfig(configKey)
	fields, ok := effective[sectionName]
	if !ok {
		return effective
	}
	idx := lo.IndexOf(lo.Map(fields, func(f FieldDescriptor, _ int) string { return f.Key }), fieldKey)
	if idx < 0 || fields[idx].Required {
		return effective
	}
	fields[idx].IsVisible = visible
	r.override[configKey] = effective.Clone()
	return effective
}

// Apply merges a partial config (as sent by a settings form) into the
// override, one SetVisibility per field.
func (r *FieldConfigRegistry) Apply(patch FieldConfig) {
	for configKey, sections := range patch {
		for sectionName, fields := range sections {
			for _, f := range fields {
				r.SetVisibility(configKey, sectionName, f.Key, f.IsVisible)
			}
		}
	}
}

// IsVisible fails open: fields the catalog does not know are visible.
func (r *FieldConfigRegistry) IsVisible(configKey, sectionName, fieldKey string) bool {
	fields, ok := r.GetEffectiveConfig(configKey)[sectionName]
	if !ok {
		return true
	}
	f, found := lo.Find(fields, func(f FieldDescriptor) bool { return f.Key == fieldKey })
	if !found {
		return true
	}
	return f.IsVisible || f.Required
}

// VisibleFields lists the visible fields of a section in catalog order.
func (r *FieldConfigRegistry) VisibleFields(configKey, sectionName string) []FieldDescriptor {
	return lo.Filter(r.GetEffectiveConfig(configKey)[sectionName], func(f FieldDescriptor, _ int) bool {
		return f.IsVisible || f.Required
	})
}

// Overrides returns the config to persist.
func (r *FieldConfigRegistry) Overrides() FieldConfig {
	return r.override.Clone()
}

func mergeSections(defaults, override Sections) Sections {
	out := make(Sections, len(defaults))
	for name, defFields := range defaults {
		byKey := lo.KeyBy(override[name], func(f FieldDescriptor) string { return f.Key })
		fields := make([]FieldDescriptor, len(defFields))
		for i, f := range defFields {
			if o, ok := byKey[f.Key]; ok {
				f.IsVisible = o.IsVisible
			}
			if f.Required {
				f.IsVisible = true
			}
			fields[i] = f
		}
		out[name] = fields
	}
	return out
}

func field(key, label string) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, IsVisible: true}
}

func hiddenField(key, label string) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label}
}

func requiredField(key, label string) FieldDescriptor {
	return FieldDescriptor{Key: key, Label: label, IsVisible: true, Required: true}
}

func invoiceSections() Sections {
	return Sections{
		SectionBusiness: {
			requiredField("name", "Business Name"),
			field("ntn", "NTN"),
			field("strn", "STRN"),
			field("address", "Address"),
			field("province", "Province"),
			field("phone", "Phone"),
			hiddenField("email", "Email"),
		},
		SectionBuyer: {
			requiredField("name", "Buyer Name"),
			field("ntn", "NTN"),
			field("cnic", "CNIC"),
			hiddenField("strn", "STRN"),
			field("address", "Address"),
			field("province", "Province"),
			field("registrationType", "Registration Type"),
		},
		SectionMeta: {
			requiredField("invoiceNumber", "Invoice #"),
			requiredField("date", "Date"),
			field("documentType", "Document Type"),
			field("salesman", "Salesman"),
			field("referenceNumber", "Reference #"),
		},
		SectionItems: {
			field(string(FieldHSCode), "HS Code"),
			requiredField(string(FieldDescription), "Description"),
			field(string(FieldSaleType), "Sale Type"),
			requiredField(string(FieldQuantity), "Qty"),
			field(string(FieldUOM), "UOM"),
			field(string(FieldUnitPrice), "Unit Price"),
			field(string(FieldRate), "Rate"),
			field(string(FieldSalesValue), "Value Excl. Tax"),
			field(string(FieldSalesTax), "Sales Tax"),
			hiddenField(string(FieldExtraTax), "Extra Tax"),
			hiddenField(string(FieldFurtherTax), "Further Tax"),
			hiddenField(string(FieldFederalExciseDuty), "FED"),
			field(string(FieldDiscount), "Discount"),
			hiddenField(string(FieldOtherDiscount), "Other Discount"),
			hiddenField(string(FieldTradeDiscount), "Trade Discount"),
			hiddenField(string(FieldSalesTaxWithheld), "ST Withheld"),
			hiddenField(string(FieldT236G), "236G"),
			hiddenField(string(FieldT236H), "236H"),
			hiddenField(string(FieldFixedValue), "Fixed/Notified Value"),
			hiddenField(string(FieldSROScheduleNo), "SRO Schedule #"),
			hiddenField(string(FieldSROItemSerialNo), "SRO Item Serial #"),
			requiredField(string(FieldTotalItemValue), "Total"),
		},
		SectionTotals: {
			field("subtotal", "Subtotal"),
			field("totalSalesTax", "Sales Tax"),
			hiddenField("totalExtraTax", "Extra Tax"),
			hiddenField("totalFurtherTax", "Further Tax"),
			hiddenField("totalFED", "FED"),
			hiddenField("totalTaxWithheld", "ST Withheld"),
			hiddenField("total236g", "236G"),
			hiddenField("total236h", "236H"),
			field("totalDiscount", "Discount"),
			hiddenField("totalOtherDiscount", "Other Discount"),
			hiddenField("totalTradeDiscount", "Trade Discount"),
			requiredField("grandTotal", "Grand Total"),
		},
	}
}

// DefaultFieldConfig returns a fresh copy of the built-in catalog.
func DefaultFieldConfig() FieldConfig {
	report := invoiceSections()
	report[SectionBusiness] = lo.Map(report[SectionBusiness], func(f FieldDescriptor, _ int) FieldDescriptor {
		if f.Key == "phone" {
			f.IsVisible = false
		}
		return f
	})
	return FieldConfig{
		ConfigInvoicePreview: invoiceSections(),
		ConfigInvoiceReport:  report,
	}
}
