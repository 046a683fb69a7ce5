package domain_test

import (
	"testing"

	"github.com/SscSPs/sales_tax_invoicing/internal/core/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.True(t, d(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func assertTotalInvariant(t *testing.T, item domain.LineItem) {
	t.Helper()
	want := item.SalesValue.Add(item.SalesTax).Add(item.ExtraTax).Add(item.FurtherTax).
		Add(item.FederalExciseDuty).Add(item.T236G).Add(item.T236H).
		Sub(item.Discount).Sub(item.OtherDiscount).Sub(item.SalesTaxWithheld).Sub(item.TradeDiscount)
	assert.True(t, want.Equal(item.TotalItemValue), "total %s, formula %s", item.TotalItemValue, want)
}

func edit(item domain.LineItem, field domain.FieldName, value string) domain.LineItem {
	return domain.ApplyItemEdit(item, domain.ItemEdit{Field: field, Value: value})
}

func TestRecompute_PercentageTax(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("2")
	item.UnitPrice = d("100")
	item.Rate = "18.00%"

	got := domain.Recompute(item, domain.NewFieldSet(domain.FieldUnitPrice), true)

	assertDecimal(t, "200", got.SalesValue, "salesValue")
	assertDecimal(t, "36", got.SalesTax, "salesTax")
	assertDecimal(t, "236", got.TotalItemValue, "totalItemValue")
}

func TestRecompute_PercentageKeepsManualTaxWithoutRecalc(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("2")
	item.UnitPrice = d("100")
	item.SalesValue = d("200")
	item.Rate = "18%"
	item.SalesTax = d("30")

	got := domain.Recompute(item, domain.NewFieldSet(domain.FieldSalesTax), false)

	assertDecimal(t, "30", got.SalesTax, "salesTax")
	assertDecimal(t, "230", got.TotalItemValue, "totalItemValue")
}

func TestRecompute_FixedAmountTax(t *testing.T) {
	for _, value := range []string{"10", "5000", "0"} {
		item := domain.NewLineItem("i1")
		item.Quantity = d("1")
		item.Rate = "Rs.130"
		item.SalesValue = d(value)

		got := domain.Recompute(item, domain.NewFieldSet(domain.FieldSalesValue), true)

		assertDecimal(t, "130", got.SalesTax, "salesTax for value "+value)
		assertTotalInvariant(t, got)
	}
}

func TestRecompute_UnsetRateKeepsTax(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.SalesValue = d("100")
	item.SalesTax = d("7")

	got := domain.Recompute(item, domain.NewFieldSet(domain.FieldRate), true)

	assertDecimal(t, "7", got.SalesTax, "salesTax")
	assertDecimal(t, "107", got.TotalItemValue, "totalItemValue")
}

func TestRecompute_ZeroQuantityDoesNotDivide(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.UnitPrice = d("12")
	item.SalesValue = d("90")

	got := domain.Recompute(item, domain.NewFieldSet(domain.FieldSalesValue), true)

	assertDecimal(t, "12", got.UnitPrice, "unitPrice")
	assertDecimal(t, "90", got.SalesValue, "salesValue")
}

func TestRecompute_UnitPriceWinsOverSalesValue(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("4")
	item.UnitPrice = d("3")
	item.SalesValue = d("100")

	got := domain.Recompute(item, domain.NewFieldSet(domain.FieldUnitPrice, domain.FieldSalesValue), false)

	assertDecimal(t, "12", got.SalesValue, "salesValue")
	assertDecimal(t, "3", got.UnitPrice, "unitPrice")
}

func TestRecompute_NeitherChangedRetainsValues(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("4")
	item.UnitPrice = d("3")
	item.SalesValue = d("100")

	got := domain.Recompute(item, domain.NewFieldSet(), false)

	assertDecimal(t, "3", got.UnitPrice, "unitPrice")
	assertDecimal(t, "100", got.SalesValue, "salesValue")
}

func TestRecompute_TotalMayGoNegative(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.SalesValue = d("10")
	item.Discount = d("25")

	got := domain.Recompute(item, domain.NewFieldSet(), false)

	assertDecimal(t, "-15", got.TotalItemValue, "totalItemValue")
}

func TestRecompute_RoundsToStoredScale(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("1")
	item.SalesValue = d("1.00005")
	item.SalesTax = d("1.00005")
	item.FurtherTax = d("0.123456")

	got := domain.Recompute(item, domain.NewFieldSet(), false)

	assertDecimal(t, "1.0001", got.SalesValue, "salesValue")
	assertDecimal(t, "1.0001", got.SalesTax, "salesTax")
	assertDecimal(t, "0.1235", got.FurtherTax, "furtherTax")
	assertDecimal(t, "2.1237", got.TotalItemValue, "totalItemValue")
	assertTotalInvariant(t, got)
	for _, v := range []decimal.Decimal{got.SalesValue, got.SalesTax, got.FurtherTax, got.TotalItemValue} {
		assert.LessOrEqual(t, -v.Exponent(), domain.AmountScale)
	}
}

func TestRecompute_DerivedUnitPriceIsRounded(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("3")
	item.SalesValue = d("100")

	got := domain.Recompute(item, domain.NewFieldSet(domain.FieldSalesValue), false)

	assertDecimal(t, "33.3333", got.UnitPrice, "unitPrice")
	assertDecimal(t, "100", got.SalesValue, "salesValue")
}

func TestRecompute_DoesNotMutateInput(t *testing.T) {
	item := domain.NewLineItem("i1")
	item.Quantity = d("2")
	item.UnitPrice = d("5")
	item.Discount = d("-1")

	_ = domain.Recompute(item, domain.NewFieldSet(domain.FieldUnitPrice), true)

	assertDecimal(t, "-1", item.Discount, "discount")
	assert.True(t, item.SalesValue.IsZero())
}

func TestApplyItemEdit_Clamping(t *testing.T) {
	for _, field := range domain.AdjustmentFields {
		for _, raw := range []string{"-5", "abc", "", "-0.01"} {
			t.Run(string(field)+"/"+raw, func(t *testing.T) {
				item := domain.NewLineItem("i1")
				item.SalesValue = d("100")

				got := edit(item, field, raw)

				value := domain.Aggregate([]domain.LineItem{got})
				assert.True(t, value.ComponentTotal().Equal(got.TotalItemValue))
				assertTotalInvariant(t, got)
				assertDecimal(t, "100", got.TotalItemValue, "totalItemValue")
			})
		}
	}
}

func TestApplyItemEdit_BidirectionalRoundTrip(t *testing.T) {
	item := domain.NewLineItem("i1")
	item = edit(item, domain.FieldQuantity, "10")
	item = edit(item, domain.FieldUnitPrice, "5")
	assertDecimal(t, "50", item.SalesValue, "salesValue")

	item = edit(item, domain.FieldSalesValue, "80")
	assertDecimal(t, "8", item.UnitPrice, "unitPrice")
	assertDecimal(t, "10", item.Quantity, "quantity")
	assertTotalInvariant(t, item)
}

func TestApplyItemEdit_QuantityRederivesSalesValue(t *testing.T) {
	item := domain.NewLineItem("i1")
	item = edit(item, domain.FieldRate, "10%")
	item = edit(item, domain.FieldUnitPrice, "20")
	item = edit(item, domain.FieldQuantity, "3")

	assertDecimal(t, "60", item.SalesValue, "salesValue")
	assertDecimal(t, "6", item.SalesTax, "salesTax")
	assertDecimal(t, "66", item.TotalItemValue, "totalItemValue")
}

func TestApplyItemEdit_ManualTaxSurvivesUntilTrigger(t *testing.T) {
	item := domain.NewLineItem("i1")
	item = edit(item, domain.FieldQuantity, "2")
	item = edit(item, domain.FieldUnitPrice, "100")
	item = edit(item, domain.FieldRate, "18%")
	assertDecimal(t, "36", item.SalesTax, "salesTax")

	item = edit(item, domain.FieldSalesTax, "40")
	assertDecimal(t, "40", item.SalesTax, "manual salesTax")

	item = edit(item, domain.FieldDiscount, "5")
	assertDecimal(t, "40", item.SalesTax, "salesTax after discount edit")
	assertDecimal(t, "235", item.TotalItemValue, "totalItemValue")

	item = edit(item, domain.FieldUnitPrice, "100")
	assertDecimal(t, "36", item.SalesTax, "salesTax after price edit")
}

func TestApplyItemEdit_RateSwitchRederivesTax(t *testing.T) {
	item := domain.NewLineItem("i1")
	item = edit(item, domain.FieldQuantity, "1")
	item = edit(item, domain.FieldSalesValue, "1000")
	item = edit(item, domain.FieldRate, "Rs.130")
	assertDecimal(t, "130", item.SalesTax, "fixed salesTax")

	item = edit(item, domain.FieldRate, "17%")
	assertDecimal(t, "170", item.SalesTax, "percentage salesTax")

	item = edit(item, domain.FieldRate, "Rs.60/kg")
	assertDecimal(t, "60", item.SalesTax, "fixed salesTax again")
}

func TestApplyItemEdit_TotalIsNotEditable(t *testing.T) {
	item := domain.NewLineItem("i1")
	item = edit(item, domain.FieldSalesValue, "100")

	got := edit(item, domain.FieldTotalItemValue, "999")

	assertDecimal(t, "100", got.TotalItemValue, "totalItemValue")
}

func TestApplyItemEdit_InvariantHoldsForEditSequences(t *testing.T) {
	edits := []domain.ItemEdit{
		{Field: domain.FieldQuantity, Value: "3"},
		{Field: domain.FieldUnitPrice, Value: "33.33"},
		{Field: domain.FieldRate, Value: "18%"},
		{Field: domain.FieldExtraTax, Value: "4"},
		{Field: domain.FieldFurtherTax, Value: "2.5"},
		{Field: domain.FieldFederalExciseDuty, Value: "1"},
		{Field: domain.FieldT236G, Value: "0.75"},
		{Field: domain.FieldT236H, Value: "0.25"},
		{Field: domain.FieldDiscount, Value: "10"},
		{Field: domain.FieldOtherDiscount, Value: "x"},
		{Field: domain.FieldSalesTaxWithheld, Value: "3"},
		{Field: domain.FieldTradeDiscount, Value: "-2"},
		{Field: domain.FieldSalesValue, Value: "1,000"},
		{Field: domain.FieldQuantity, Value: "0"},
		{Field: domain.FieldRate, Value: "Rs.130"},
	}

	item := domain.NewLineItem("i1")
	for _, e := range edits {
		item = domain.ApplyItemEdit(item, e)
		assertTotalInvariant(t, item)
		assert.False(t, item.Quantity.IsNegative())
		assert.False(t, item.SalesTax.IsNegative())
	}
}
