package pricing

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, field string) {
	t.Helper()
	assert.Truef(t, d(want).Equal(got), "%s: want %s, got %s", field, want, got)
}

func TestCalculateScenarios(t *testing.T) {
	tests := []struct {
		name  string
		items []LineItem
		terms Terms
		want  map[string]string
	}{
		{
			name:  "single discount with vat",
			items: []LineItem{NewLineItem(d("400"), 2), NewLineItem(d("200"), 1)},
			terms: Terms{Discount: 10, VAT: 7},
			want: map[string]string{
				"subtotal":               "1000",
				"discount_amount":        "100",
				"post_discount_total":    "900",
				"second_discount_amount": "0",
				"total":                  "900",
				"vat_amount":             "63",
				"grand_total":            "963",
			},
		},
		{
			name:  "compounding second discount",
			items: []LineItem{NewLineItem(d("1000"), 1)},
			terms: Terms{Discount: 10, SecondDiscount: 5, VAT: 7},
			want: map[string]string{
				"subtotal":               "1000",
				"discount_amount":        "100",
				"post_discount_total":    "900",
				"second_discount_amount": "45",
				"total":                  "855",
				"vat_amount":             "59.85",
				"grand_total":            "914.85",
			},
		},
		{
			name:  "fractional unit price",
			items: []LineItem{NewLineItem(d("99.99"), 3)},
			terms: Terms{},
			want: map[string]string{
				"subtotal":               "299.97",
				"discount_amount":        "0",
				"post_discount_total":    "299.97",
				"second_discount_amount": "0",
				"total":                  "299.97",
				"vat_amount":             "0",
				"grand_total":            "299.97",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Calculate(tt.items, tt.terms)
			require.NoError(t, err)

			assertDecimal(t, tt.want["subtotal"], got.Subtotal, "subtotal")
			assertDecimal(t, tt.want["discount_amount"], got.DiscountAmount, "discount_amount")
			assertDecimal(t, tt.want["post_discount_total"], got.PostDiscountTotal, "post_discount_total")
			assertDecimal(t, tt.want["second_discount_amount"], got.SecondDiscountAmount, "second_discount_amount")
			assertDecimal(t, tt.want["total"], got.Total, "total")
			assertDecimal(t, tt.want["vat_amount"], got.VATAmount, "vat_amount")
			assertDecimal(t, tt.want["grand_total"], got.GrandTotal, "grand_total")
		})
	}
}

func TestCalculateSecondDiscountIsNotFlat(t *testing.T) {
	items := []LineItem{NewLineItem(d("1000"), 1)}

	compounded, err := Calculate(items, Terms{Discount: 10, SecondDiscount: 5})
	require.NoError(t, err)
	flat, err := Calculate(items, Terms{Discount: 15})
	require.NoError(t, err)

	assertDecimal(t, "855", compounded.Total, "compounded total")
	assertDecimal(t, "850", flat.Total, "flat total")
}

func TestCalculateInvariants(t *testing.T) {
	hundred := decimal.NewFromInt(100)
	itemSets := [][]LineItem{
		{NewLineItem(d("0.01"), 1)},
		{NewLineItem(d("12.34"), 7), NewLineItem(d("0"), 3), NewLineItem(d("5600.5"), 2)},
		{NewLineItem(d("33.33"), 3)},
		{NewLineItem(d("1999999.99"), 40)},
	}
	percentages := []int{0, 1, 7, 13, 33, 50, 99, 100}

	for _, items := range itemSets {
		for _, p1 := range percentages {
			for _, p2 := range percentages {
				for _, vat := range []int{0, 7, 10, 100} {
					terms := Terms{Discount: p1, SecondDiscount: p2, VAT: vat}
					got, err := Calculate(items, terms)
					require.NoError(t, err)

					sum := decimal.Zero
					for _, it := range items {
						sum = sum.Add(it.Total)
					}
					require.True(t, got.Subtotal.Equal(sum))

					// amount / base == pct / 100, expressed without division
					assert.True(t, got.DiscountAmount.Mul(hundred).Equal(got.Subtotal.Mul(decimal.NewFromInt(int64(p1)))), "discount ratio %+v", terms)
					assert.True(t, got.SecondDiscountAmount.Mul(hundred).Equal(got.PostDiscountTotal.Mul(decimal.NewFromInt(int64(p2)))), "second discount ratio %+v", terms)
					assert.True(t, got.VATAmount.Mul(hundred).Equal(got.Total.Mul(decimal.NewFromInt(int64(vat)))), "vat ratio %+v", terms)

					assert.True(t, got.PostDiscountTotal.Equal(got.Subtotal.Sub(got.DiscountAmount)))
					assert.True(t, got.Total.Equal(got.PostDiscountTotal.Sub(got.SecondDiscountAmount)))
					assert.True(t, got.GrandTotal.Equal(got.Total.Add(got.VATAmount)))

					expected := got.Subtotal.Sub(got.DiscountAmount).Sub(got.SecondDiscountAmount).Add(got.VATAmount)
					assert.True(t, got.GrandTotal.Equal(expected), "grand total identity %+v", terms)
				}
			}
		}
	}
}

func TestCalculateIsIdempotent(t *testing.T) {
	items := []LineItem{NewLineItem(d("1234.56"), 3), NewLineItem(d("0.99"), 11)}
	terms := Terms{Discount: 12, SecondDiscount: 3, VAT: 7}

	first, err := Calculate(items, terms)
	require.NoError(t, err)
	second, err := Calculate(items, terms)
	require.NoError(t, err)

	assert.Equal(t, first.GrandTotal.String(), second.GrandTotal.String())
	assert.Equal(t, first.Round(MoneyPlaces), second.Round(MoneyPlaces))
}

func TestCalculateDegenerateOrders(t *testing.T) {
	terms := Terms{Discount: 10, SecondDiscount: 5, VAT: 7}

	t.Run("no items", func(t *testing.T) {
		got, err := Calculate(nil, terms)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})

	t.Run("zero priced items", func(t *testing.T) {
		got, err := Calculate([]LineItem{NewLineItem(decimal.Zero, 4), NewLineItem(d("0.00"), 1)}, terms)
		require.NoError(t, err)
		assert.True(t, got.IsZero())
	})
}

func TestCalculateZeroTermsKeepsSubtotal(t *testing.T) {
	got, err := Calculate([]LineItem{NewLineItem(d("250.25"), 4)}, Terms{})
	require.NoError(t, err)
	assert.True(t, got.GrandTotal.Equal(got.Subtotal))
	assertDecimal(t, "1001", got.GrandTotal, "grand_total")
}

func TestCalculateRejectsInvalidInput(t *testing.T) {
	valid := []LineItem{NewLineItem(d("10"), 1)}

	tests := []struct {
		name    string
		items   []LineItem
		terms   Terms
		wantErr error
		field   string
	}{
		{"discount above 100", valid, Terms{Discount: 101}, ErrInvalidPercentage, "discount"},
		{"negative second discount", valid, Terms{SecondDiscount: -1}, ErrInvalidPercentage, "second_discount"},
		{"vat above 100", valid, Terms{VAT: 150}, ErrInvalidPercentage, "vat"},
		{"invalid terms on empty order", nil, Terms{VAT: -5}, ErrInvalidPercentage, "vat"},
		{"negative quantity", []LineItem{NewLineItem(d("10"), -2)}, Terms{}, ErrInvalidLineItem, "items[0].quantity"},
		{"negative unit price", []LineItem{valid[0], NewLineItem(d("-0.01"), 1)}, Terms{}, ErrInvalidLineItem, "items[1].unit_price"},
		{"inconsistent total", []LineItem{{UnitPrice: d("10"), Quantity: 2, Total: d("25")}}, Terms{}, ErrInvalidLineItem, "items[0].total"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Calculate(tt.items, tt.terms)
			require.Error(t, err)
			assert.True(t, errors.Is(err, tt.wantErr))

			var verr *ValidationError
			require.True(t, errors.As(err, &verr))
			assert.Equal(t, tt.field, verr.Field)
		})
	}
}

func TestTotalsRound(t *testing.T) {
	got, err := Calculate([]LineItem{NewLineItem(d("33.33"), 1)}, Terms{Discount: 7, SecondDiscount: 3, VAT: 7})
	require.NoError(t, err)

	rounded := got.Round(MoneyPlaces)
	assert.Equal(t, "2.33", rounded.DiscountAmount.StringFixed(2))
	assert.Equal(t, "31.00", rounded.PostDiscountTotal.StringFixed(2))
	assert.Equal(t, "30.07", rounded.Total.StringFixed(2))
	assert.Equal(t, "32.17", rounded.GrandTotal.StringFixed(2))
}

func TestTotalsRoundKeepsEquations(t *testing.T) {
	prices := []string{"0.01", "0.99", "13.37", "33.33", "99.99", "1234.56"}
	for _, p := range prices {
		for _, terms := range []Terms{{7, 3, 7}, {15, 0, 7}, {33, 33, 10}, {1, 1, 1}} {
			got, err := Calculate([]LineItem{NewLineItem(d(p), 3)}, terms)
			require.NoError(t, err)

			r := got.Round(MoneyPlaces)
			assert.True(t, r.Subtotal.Sub(r.DiscountAmount).Equal(r.PostDiscountTotal), "%s %+v", p, terms)
			assert.True(t, r.PostDiscountTotal.Sub(r.SecondDiscountAmount).Equal(r.Total), "%s %+v", p, terms)
			assert.True(t, r.Total.Add(r.VATAmount).Equal(r.GrandTotal), "%s %+v", p, terms)
			assert.True(t, r.GrandTotal.Sub(got.GrandTotal).Abs().LessThanOrEqual(d("0.02")), "%s %+v", p, terms)
		}
	}
}
