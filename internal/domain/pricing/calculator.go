// Package pricing computes order financials: the discount/VAT totals of an
// acknowledgement, purchase order or invoice, and custom-size upcharges.
//
// All arithmetic is exact decimal. Nothing is rounded until Totals.Round is
// called by whoever persists or displays the result.
package pricing

import (
	"fmt"

	"github.com/shopspring/decimal"
)

// MoneyPlaces is the number of decimal places money is persisted with.
const MoneyPlaces = 2

// LineItem is one product/quantity/price row of an order.
type LineItem struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
	Total     decimal.Decimal `json:"total"`
}

// NewLineItem builds a line item whose total is unitPrice * quantity.
func NewLineItem(unitPrice decimal.Decimal, quantity int64) LineItem {
	return LineItem{
		UnitPrice: unitPrice,
		Quantity:  quantity,
		Total:     unitPrice.Mul(decimal.NewFromInt(quantity)),
	}
}

// Terms are the order-level percentages, each a whole number in [0, 100].
type Terms struct {
	Discount       int `json:"discount"`
	SecondDiscount int `json:"second_discount"`
	VAT            int `json:"vat"`
}

// Totals is the full financial breakdown of an order.
type Totals struct {
	Subtotal             decimal.Decimal `json:"subtotal"`
	DiscountAmount       decimal.Decimal `json:"discount_amount"`
	PostDiscountTotal    decimal.Decimal `json:"post_discount_total"`
	SecondDiscountAmount decimal.Decimal `json:"second_discount_amount"`
	Total                decimal.Decimal `json:"total"`
	VATAmount            decimal.Decimal `json:"vat_amount"`
	GrandTotal           decimal.Decimal `json:"grand_total"`
}

// Round returns the totals at the given precision. The three amounts
// (discounts and VAT) are rounded half away from zero and the running totals
// are derived from them, so the rounded figures still satisfy
// subtotal - discount - second discount + VAT = grand total to the cent.
func (t Totals) Round(places int32) Totals {
	r := Totals{
		Subtotal:             t.Subtotal.Round(places),
		DiscountAmount:       t.DiscountAmount.Round(places),
		SecondDiscountAmount: t.SecondDiscountAmount.Round(places),
		VATAmount:            t.VATAmount.Round(places),
	}
	r.PostDiscountTotal = r.Subtotal.Sub(r.DiscountAmount)
	r.Total = r.PostDiscountTotal.Sub(r.SecondDiscountAmount)
	r.GrandTotal = r.Total.Add(r.VATAmount)
	return r
}

// IsZero reports whether every field is zero.
func (t Totals) IsZero() bool {
	return t.Subtotal.IsZero() &&
		t.DiscountAmount.IsZero() &&
		t.PostDiscountTotal.IsZero() &&
		t.SecondDiscountAmount.IsZero() &&
		t.Total.IsZero() &&
		t.VATAmount.IsZero() &&
		t.GrandTotal.IsZero()
}

// Validate checks the terms are within [0, 100].
func (t Terms) Validate() error {
	checks := []struct {
		field string
		value int
	}{
		{"discount", t.Discount},
		{"second_discount", t.SecondDiscount},
		{"vat", t.VAT},
	}
	for _, c := range checks {
		if c.value < 0 || c.value > 100 {
			return &ValidationError{
				Err:     ErrInvalidPercentage,
				Field:   c.field,
				Details: fmt.Sprintf("got %d", c.value),
			}
		}
	}
	return nil
}

// Validate checks a single line item.
func (li LineItem) Validate() error {
	if li.Quantity < 0 {
		return &ValidationError{Err: ErrInvalidLineItem, Field: "quantity", Details: "must not be negative"}
	}
	if li.UnitPrice.IsNegative() {
		return &ValidationError{Err: ErrInvalidLineItem, Field: "unit_price", Details: "must not be negative"}
	}
	if !li.Total.Equal(li.UnitPrice.Mul(decimal.NewFromInt(li.Quantity))) {
		return &ValidationError{
			Err:     ErrInvalidLineItem,
			Field:   "total",
			Details: fmt.Sprintf("%s is not %s x %d", li.Total, li.UnitPrice, li.Quantity),
		}
	}
	return nil
}

// Calculate runs the discount/VAT pipeline over items.
//
// The second discount compounds: it is taken from the already discounted
// amount, not from the subtotal. VAT is charged on the net of both
// discounts. A zero subtotal yields all-zero totals.
func Calculate(items []LineItem, terms Terms) (Totals, error) {
	if err := terms.Validate(); err != nil {
		return Totals{}, err
	}

	subtotal := decimal.Zero
	for i, item := range items {
		if err := item.Validate(); err != nil {
			verr := err.(*ValidationError)
			verr.Field = fmt.Sprintf("items[%d].%s", i, verr.Field)
			return Totals{}, verr
		}
		subtotal = subtotal.Add(item.Total)
	}

	if subtotal.IsZero() {
		return Totals{
			Subtotal:             decimal.Zero,
			DiscountAmount:       decimal.Zero,
			PostDiscountTotal:    decimal.Zero,
			SecondDiscountAmount: decimal.Zero,
			Total:                decimal.Zero,
			VATAmount:            decimal.Zero,
			GrandTotal:           decimal.Zero,
		}, nil
	}

	discountAmount := percentOf(subtotal, terms.Discount)
	postDiscountTotal := subtotal.Sub(discountAmount)

	secondDiscountAmount := percentOf(postDiscountTotal, terms.SecondDiscount)
	total := postDiscountTotal.Sub(secondDiscountAmount)

	vatAmount := percentOf(total, terms.VAT)
	grandTotal := total.Add(vatAmount)

	return Totals{
		Subtotal:             subtotal,
		DiscountAmount:       discountAmount,
		PostDiscountTotal:    postDiscountTotal,
		SecondDiscountAmount: secondDiscountAmount,
		Total:                total,
		VATAmount:            vatAmount,
		GrandTotal:           grandTotal,
	}, nil
}

// percentOf returns amount * pct / 100. Shifting the exponent keeps the
// division exact.
func percentOf(amount decimal.Decimal, pct int) decimal.Decimal {
	return amount.Mul(decimal.NewFromInt(int64(pct))).Shift(-2)
}
