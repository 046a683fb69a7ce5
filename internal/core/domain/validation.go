package domain

import (
	"errors"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"
)

var (
	ErrInvoiceNumberMissing = errors.New("invoice number is required")
	ErrInvoiceDateMissing   = errors.New("invoice date is required")
	ErrDocumentTypeInvalid  = errors.New("document type is required")
	ErrBuyerMissing         = errors.New("buyer is required")
	ErrNoItems              = errors.New("invoice must have at least one item")

	ErrHSCodeMissing          = errors.New("hs code is required")
	ErrDescriptionMissing     = errors.New("description is required")
	ErrSaleTypeMissing        = errors.New("sale type is required")
	ErrQuantityTooLow         = errors.New("quantity must be at least 1")
	ErrUOMMissing             = errors.New("unit of measure is required")
	ErrRateMissing            = errors.New("rate is required")
	ErrUnitPriceTooLow        = errors.New("unit price must be at least 1")
	ErrSalesValueTooLow       = errors.New("sales value must be at least 1")
	ErrSROScheduleMissing     = errors.New("sro schedule number is required for this sale type")
	ErrSROItemSerialNoMissing = errors.New("sro item serial number is required for this sale type")
	ErrItemIDDuplicate        = errors.New("item id is used by another item of this invoice")
	ErrItemIDTooLong          = errors.New("item id is too long")
)

// MaxItemIDLength bounds client-supplied item ids.
const MaxItemIDLength = 64

// HeaderItemIndex marks a ValidationError that is about the invoice header.
const HeaderItemIndex = -1

// ValidationError is one failed rule. Err is one of the sentinel errors above.
type ValidationError struct {
	Field     string
	ItemIndex int
	Err       error
}

func (e ValidationError) Error() string {
	if e.ItemIndex == HeaderItemIndex {
		return fmt.Sprintf("%s: %s", e.Field, e.Err.Error())
	}
	return fmt.Sprintf("items[%d].%s: %s", e.ItemIndex, e.Field, e.Err.Error())
}

func (e ValidationError) Unwrap() error {
	return e.Err
}

// ValidationErrors collects every failed rule of an invoice.
type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	msgs := make([]string, len(v))
	for i, e := range v {
		msgs[i] = e.Error()
	}
	return strings.Join(msgs, "; ")
}

// Unwrap lets errors.Is match any of the collected sentinels.
func (v ValidationErrors) Unwrap() []error {
	errs := make([]error, len(v))
	for i, e := range v {
		errs[i] = e
	}
	return errs
}

var one = decimal.NewFromInt(1)

// ValidateInvoice applies the header, per-item and sale-type rules. It is
// pure and cheap enough to run after every edit. A nil result means the
// invoice can be submitted.
func ValidateInvoice(inv Invoice) ValidationErrors {
	var errs ValidationErrors
	header := func(field string, err error) {
		errs = append(errs, ValidationError{Field: field, ItemIndex: HeaderItemIndex, Err: err})
	}

	if strings.TrimSpace(inv.InvoiceNumber) == "" {
		header("invoiceNumber", ErrInvoiceNumberMissing)
	}
	if inv.InvoiceDate.IsZero() {
		header("date", ErrInvoiceDateMissing)
	}
	if !inv.DocumentType.IsValid() {
		header("documentType", ErrDocumentTypeInvalid)
	}
	if strings.TrimSpace(inv.BuyerID) == "" {
		header("buyerId", ErrBuyerMissing)
	}
	if len(inv.Items) == 0 {
		header("items", ErrNoItems)
	}

	seen := make(map[string]struct{}, len(inv.Items))
	for i, item := range inv.Items {
		errs = append(errs, ValidateLineItem(i, item)...)

		id := strings.TrimSpace(item.ItemID)
		if id == "" {
			continue
		}
		if len(id) > MaxItemIDLength {
			errs = append(errs, ValidationError{Field: "itemID", ItemIndex: i, Err: ErrItemIDTooLong})
		}
		if _, dup := seen[id]; dup {
			errs = append(errs, ValidationError{Field: "itemID", ItemIndex: i, Err: ErrItemIDDuplicate})
		}
		seen[id] = struct{}{}
	}
	return errs
}

// ValidateLineItem checks a single item; index is used only for reporting.
func ValidateLineItem(index int, item LineItem) ValidationErrors {
	var errs ValidationErrors
	fail := func(f FieldName, err error) {
		errs = append(errs, ValidationError{Field: string(f), ItemIndex: index, Err: err})
	}

	if strings.TrimSpace(item.HSCode) == "" {
		fail(FieldHSCode, ErrHSCodeMissing)
	}
	if strings.TrimSpace(item.Description) == "" {
		fail(FieldDescription, ErrDescriptionMissing)
	}
	if !item.SaleType.IsSet() {
		fail(FieldSaleType, ErrSaleTypeMissing)
	}
	if item.Quantity.LessThan(one) {
		fail(FieldQuantity, ErrQuantityTooLow)
	}
	if IsPlaceholder(item.UOM) {
		fail(FieldUOM, ErrUOMMissing)
	}
	if IsPlaceholder(item.Rate) {
		fail(FieldRate, ErrRateMissing)
	}
	if item.UnitPrice.LessThan(one) {
		fail(FieldUnitPrice, ErrUnitPriceTooLow)
	}
	if item.SalesValue.LessThan(one) {
		fail(FieldSalesValue, ErrSalesValueTooLow)
	}
	if item.SaleType.RequiresSRO() {
		if IsPlaceholder(item.SROScheduleNo) {
			fail(FieldSROScheduleNo, ErrSROScheduleMissing)
		}
		if IsPlaceholder(item.SROItemSerialNo) {
			fail(FieldSROItemSerialNo, ErrSROItemSerialNoMissing)
		}
	}
	return errs
}

// IsSubmittable reports whether ValidateInvoice finds nothing wrong.
func IsSubmittable(inv Invoice) bool {
	return len(ValidateInvoice(inv)) == 0
}
