package domain

import "github.com/samber/lo"

// SaleType is the tax-regime category of a line item.
type SaleType string

const (
	SaleTypeStandardRate      SaleType = "Goods at standard rate (default)"
	SaleTypeReducedRate       SaleType = "Goods at Reduced Rate"
	SaleTypeZeroRate          SaleType = "Goods at zero-rate"
	SaleTypeExempt            SaleType = "Exempt goods"
	SaleTypeThirdSchedule     SaleType = "3rd Schedule Goods"
	SaleTypeGoodsFED          SaleType = "Goods (FED in ST Mode)"
	SaleTypeServicesFED       SaleType = "Services (FED in ST Mode)"
	SaleTypeServices          SaleType = "Services"
	SaleTypeSteel             SaleType = "Steel melting and re-rolling"
	SaleTypeMobilePhones      SaleType = "Cellular Mobile Phones"
	SaleTypePetroleum         SaleType = "Petroleum Products"
	SaleTypeElectricity       SaleType = "Electricity Supply to Retailers"
	SaleTypeCNG               SaleType = "Gas to CNG stations"
	SaleTypeProcessing        SaleType = "Processing/Conversion of Goods"
	SaleTypeCottonGinners     SaleType = "Cotton ginners"
	SaleTypeTollManufacturing SaleType = "Toll Manufacturing"
)

// SaleTypes is the ordered option list offered to users.
var SaleTypes = []SaleType{
	SaleTypeStandardRate,
	SaleTypeReducedRate,
	SaleTypeZeroRate,
	SaleTypeExempt,
	SaleTypeThirdSchedule,
	SaleTypeGoodsFED,
	SaleTypeServicesFED,
	SaleTypeServices,
	SaleTypeSteel,
	SaleTypeMobilePhones,
	SaleTypePetroleum,
	SaleTypeElectricity,
	SaleTypeCNG,
	SaleTypeProcessing,
	SaleTypeCottonGinners,
	SaleTypeTollManufacturing,
}

// IsSet is false for blank or placeholder values.
func (s SaleType) IsSet() bool {
	return !IsPlaceholder(string(s))
}

// RequiresSRO reports whether items of this sale type must carry an SRO
// schedule number and item serial number.
func (s SaleType) RequiresSRO() bool {
	return s == SaleTypeReducedRate
}

// DocumentType is the kind of sales document being issued.
type DocumentType string

const (
	DocumentSaleInvoice     DocumentType = "Sale Invoice"
	DocumentPurchaseInvoice DocumentType = "Purchase Invoice"
	DocumentCreditNote      DocumentType = "Credit Note"
	DocumentDebitNote       DocumentType = "Debit Note"
)

var DocumentTypes = []DocumentType{
	DocumentSaleInvoice,
	DocumentPurchaseInvoice,
	DocumentCreditNote,
	DocumentDebitNote,
}

func (d DocumentType) IsValid() bool {
	return lo.Contains(DocumentTypes, d)
}

// UnitsOfMeasure lists the UOM options accepted on line items.
var UnitsOfMeasure = []string{
	"Numbers, pieces, units",
	"KG",
	"MT",
	"Liter",
	"Gram",
	"Meter",
	"Square Metre",
	"Cubic Metre",
	"SqY",
	"Dozen",
	"Pair",
	"Set",
	"Bag",
	"Carat",
	"Barrels",
	"Kilowatt Hour",
	"1000 kWh",
	"Mega Watt",
	"Bill of lading",
	"Others",
}

// Rates lists the rate options offered to users. Values without a "%"
// suffix are flat amounts.
var Rates = []string{
	"18%",
	"17%",
	"16%",
	"15%",
	"12%",
	"10%",
	"8%",
	"5%",
	"3%",
	"1%",
	"0%",
	"Exempt",
	"Rs.60/kg",
	"Rs.130",
}

var Provinces = []string{
	"Punjab",
	"Sindh",
	"Khyber Pakhtunkhwa",
	"Balochistan",
	"Islamabad Capital Territory",
	"Gilgit-Baltistan",
	"Azad Jammu and Kashmir",
}
