package request

import "github.com/shopspring/decimal"

// PurchaseOrderItemRequest represents one supply line
type PurchaseOrderItemRequest struct {
	Description string          `json:"description" binding:"required,max=500"`
	Quantity    int64           `json:"quantity" binding:"required,min=1"`
	UnitCost    decimal.Decimal `json:"unit_cost"`
	Discount    int             `json:"discount"`
}

// CreatePurchaseOrderRequest represents a purchase order creation request
type CreatePurchaseOrderRequest struct {
	SupplierName   string                     `json:"supplier_name" binding:"required,max=255"`
	Currency       string                     `json:"currency" binding:"omitempty,len=3"`
	Discount       int                        `json:"discount"`
	SecondDiscount int                        `json:"second_discount"`
	VAT            *int                       `json:"vat"`
	Items          []PurchaseOrderItemRequest `json:"items" binding:"required,min=1,dive"`
}
