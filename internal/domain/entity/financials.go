package entity

import (
	"github.com/shopspring/decimal"

	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// FirstDocumentNumber is the number given to a company's first document of a kind
const FirstDocumentNumber int64 = 100001

// OrderFinancials holds the terms and persisted totals shared by
// acknowledgements, purchase orders and invoices
type OrderFinancials struct {
	Discount       int `gorm:"default:0" json:"discount"`
	SecondDiscount int `gorm:"default:0" json:"second_discount"`
	VAT            int `gorm:"column:vat;default:0" json:"vat"`

	Subtotal             decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"subtotal"`
	DiscountAmount       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"discount_amount"`
	PostDiscountTotal    decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"post_discount_total"`
	SecondDiscountAmount decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"second_discount_amount"`
	Total                decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`
	VATAmount            decimal.Decimal `gorm:"column:vat_amount;type:decimal(15,2);default:0" json:"vat_amount"`
	GrandTotal           decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"grand_total"`
}

// Terms returns the percentages the totals are computed with
func (f OrderFinancials) Terms() pricing.Terms {
	return pricing.Terms{
		Discount:       f.Discount,
		SecondDiscount: f.SecondDiscount,
		VAT:            f.VAT,
	}
}

// SetTerms replaces the percentages without touching the totals
func (f *OrderFinancials) SetTerms(t pricing.Terms) {
	f.Discount = t.Discount
	f.SecondDiscount = t.SecondDiscount
	f.VAT = t.VAT
}

// Totals returns the persisted totals
func (f OrderFinancials) Totals() pricing.Totals {
	return pricing.Totals{
		Subtotal:             f.Subtotal,
		DiscountAmount:       f.DiscountAmount,
		PostDiscountTotal:    f.PostDiscountTotal,
		SecondDiscountAmount: f.SecondDiscountAmount,
		Total:                f.Total,
		VATAmount:            f.VATAmount,
		GrandTotal:           f.GrandTotal,
	}
}

// ApplyTotals stores t rounded to money precision
func (f *OrderFinancials) ApplyTotals(t pricing.Totals) {
	r := t.Round(pricing.MoneyPlaces)
	f.Subtotal = r.Subtotal
	f.DiscountAmount = r.DiscountAmount
	f.PostDiscountTotal = r.PostDiscountTotal
	f.SecondDiscountAmount = r.SecondDiscountAmount
	f.Total = r.Total
	f.VATAmount = r.VATAmount
	f.GrandTotal = r.GrandTotal
}
