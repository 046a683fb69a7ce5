package domain_test

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateInvoice_Valid(t *testing.T) {
	inv := validInvoice()

	assert.Empty(t, domain.ValidateInvoice(inv))
	assert.True(t, domain.IsSubmittable(inv))
}

func TestValidateInvoice_HeaderRules(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*domain.Invoice)
		want   error
	}{
		{name: "blank number", mutate: func(i *domain.Invoice) { i.InvoiceNumber = "  " }, want: domain.ErrInvoiceNumberMissing},
		{name: "no date", mutate: func(i *domain.Invoice) { i.InvoiceDate = time.Time{} }, want: domain.ErrInvoiceDateMissing},
		{name: "bad document type", mutate: func(i *domain.Invoice) { i.DocumentType = "Receipt" }, want: domain.ErrDocumentTypeInvalid},
		{name: "no buyer", mutate: func(i *domain.Invoice) { i.BuyerID = "" }, want: domain.ErrBuyerMissing},
		{name: "no items", mutate: func(i *domain.Invoice) { i.Items = nil }, want: domain.ErrNoItems},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			inv := validInvoice()
			tt.mutate(&inv)

			errs := domain.ValidateInvoice(inv)

			require.Len(t, errs, 1)
			assert.Equal(t, domain.HeaderItemIndex, errs[0].ItemIndex)
			assert.ErrorIs(t, errs, tt.want)
			assert.False(t, domain.IsSubmittable(inv))
		})
	}
}

func TestValidateInvoice_MissingDate(t *testing.T) {
	inv := validInvoice()
	inv.InvoiceDate = time.Time{}

	errs := domain.ValidateInvoice(inv)

	require.Len(t, errs, 1)
	assert.True(t, errors.Is(errs, domain.ErrInvoiceDateMissing))
	assert.Equal(t, "date: invoice date is required", errs.Error())
}

func TestValidateLineItem_Rules(t *testing.T) {
	tests := []struct {
		name  string
		field domain.FieldName
		value string
		want  error
	}{
		{name: "hs code", field: domain.FieldHSCode, value: "", want: domain.ErrHSCodeMissing},
		{name: "description", field: domain.FieldDescription, value: " ", want: domain.ErrDescriptionMissing},
		{name: "sale type", field: domain.FieldSaleType, value: domain.PlaceholderSaleType, want: domain.ErrSaleTypeMissing},
		{name: "uom", field: domain.FieldUOM, value: domain.PlaceholderUOM, want: domain.ErrUOMMissing},
		{name: "rate", field: domain.FieldRate, value: domain.PlaceholderRate, want: domain.ErrRateMissing},
		{name: "unit price", field: domain.FieldUnitPrice, value: "0.5", want: domain.ErrUnitPriceTooLow},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			item := edit(validItem("i1"), tt.field, tt.value)

			errs := domain.ValidateLineItem(3, item)

			assert.ErrorIs(t, errs, tt.want)
			for _, e := range errs {
				assert.Equal(t, 3, e.ItemIndex)
			}
		})
	}
}

func TestValidateLineItem_QuantityAndSalesValue(t *testing.T) {
	item := validItem("i1")
	item.Quantity = d("0")
	item.SalesValue = d("0.99")

	errs := domain.ValidateLineItem(0, item)

	assert.ErrorIs(t, errs, domain.ErrQuantityTooLow)
	assert.ErrorIs(t, errs, domain.ErrSalesValueTooLow)
	assert.Equal(t, "items[0].quantity: quantity must be at least 1", errs[0].Error())
}

func TestValidateLineItem_ReducedRateNeedsSRO(t *testing.T) {
	item := validItem("i1")
	item.SaleType = domain.SaleTypeReducedRate

	errs := domain.ValidateLineItem(0, item)
	require.Len(t, errs, 2)
	assert.ErrorIs(t, errs, domain.ErrSROScheduleMissing)
	assert.ErrorIs(t, errs, domain.ErrSROItemSerialNoMissing)

	item.SROScheduleNo = ""
	assert.ErrorIs(t, domain.ValidateLineItem(0, item), domain.ErrSROScheduleMissing)

	item.SROScheduleNo = "EIGHTH SCHEDULE"
	item.SROItemSerialNo = "82"
	assert.Empty(t, domain.ValidateLineItem(0, item))
}

func TestValidateLineItem_OtherSaleTypesIgnoreSRO(t *testing.T) {
	for _, st := range domain.SaleTypes {
		if st.RequiresSRO() {
			continue
		}
		item := validItem("i1")
		item.SaleType = st
		assert.Empty(t, domain.ValidateLineItem(0, item), string(st))
	}
}

func TestValidateInvoice_CollectsAcrossItems(t *testing.T) {
	inv := validInvoice().AddItem(domain.NewLineItem("blank"))
	inv.BuyerID = ""

	errs := domain.ValidateInvoice(inv)

	require.NotEmpty(t, errs)
	assert.Equal(t, "buyerId", errs[0].Field)
	for _, e := range errs[1:] {
		assert.Equal(t, 1, e.ItemIndex)
	}
}

func TestValidateInvoice_ItemIDs(t *testing.T) {
	inv := validInvoice().AddItem(validItem("i1")).AddItem(validItem(strings.Repeat("x", domain.MaxItemIDLength+1)))

	errs := domain.ValidateInvoice(inv)

	require.Len(t, errs, 2)
	assert.Equal(t, 1, errs[0].ItemIndex)
	assert.ErrorIs(t, errs[0], domain.ErrItemIDDuplicate)
	assert.Equal(t, 2, errs[1].ItemIndex)
	assert.ErrorIs(t, errs[1], domain.ErrItemIDTooLong)
}
