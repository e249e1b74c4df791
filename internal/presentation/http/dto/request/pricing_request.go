package request

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// QuoteItemRequest is one priced line of a quote
type QuoteItemRequest struct {
	UnitPrice decimal.Decimal `json:"unit_price"`
	Quantity  int64           `json:"quantity"`
}

// QuoteRequest represents a stateless totals calculation
type QuoteRequest struct {
	Items          []QuoteItemRequest `json:"items"`
	Discount       int                `json:"discount"`
	SecondDiscount int                `json:"second_discount"`
	VAT            int                `json:"vat"`
}

// CustomSizeRequest represents a custom-size price lookup
type CustomSizeRequest struct {
	ProductID uuid.UUID `json:"product_id" binding:"required"`
	Width     int       `json:"width" binding:"min=0"`
	Depth     int       `json:"depth" binding:"min=0"`
	Height    int       `json:"height" binding:"min=0"`
}
