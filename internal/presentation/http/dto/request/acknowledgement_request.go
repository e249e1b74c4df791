package request

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// AcknowledgementItemRequest represents one ordered item
type AcknowledgementItemRequest struct {
	ProductID    *uuid.UUID       `json:"product_id"`
	Description  string           `json:"description" binding:"max=500"`
	Comments     *string          `json:"comments"`
	Quantity     int64            `json:"quantity" binding:"required,min=1"`
	UnitPrice    *decimal.Decimal `json:"unit_price"`
	IsCustomSize bool             `json:"is_custom_size"`
	Width        int              `json:"width" binding:"min=0"`
	Depth        int              `json:"depth" binding:"min=0"`
	Height       int              `json:"height" binding:"min=0"`
}

// CreateAcknowledgementRequest represents an acknowledgement creation request.
// Percentages are range-checked by the calculator so that the response names
// the offending field.
type CreateAcknowledgementRequest struct {
	CustomerID     uuid.UUID                    `json:"customer_id" binding:"required"`
	Discount       int                          `json:"discount"`
	SecondDiscount int                          `json:"second_discount"`
	VAT            *int                         `json:"vat"`
	DeliveryDate   *time.Time                   `json:"delivery_date"`
	Remarks        *string                      `json:"remarks"`
	ShippingMethod *string                      `json:"shipping_method" binding:"omitempty,max=100"`
	Items          []AcknowledgementItemRequest `json:"items" binding:"required,min=1,dive"`
}

// UpdateTermsRequest represents a partial update of order terms
type UpdateTermsRequest struct {
	Discount       *int `json:"discount"`
	SecondDiscount *int `json:"second_discount"`
	VAT            *int `json:"vat"`
}

// UpdateItemRequest represents an acknowledgement item edit
type UpdateItemRequest struct {
	Description *string          `json:"description" binding:"omitempty,max=500"`
	Comments    *string          `json:"comments"`
	Status      *string          `json:"status" binding:"omitempty,max=50"`
	Quantity    *int64           `json:"quantity" binding:"omitempty,min=1"`
	UnitPrice   *decimal.Decimal `json:"unit_price"`
}

// AcknowledgementFilterRequest represents acknowledgement list filters
type AcknowledgementFilterRequest struct {
	Search     string `form:"search"`
	Status     string `form:"status"`
	CustomerID string `form:"customer_id"`
	StartDate  string `form:"start_date"`
	EndDate    string `form:"end_date"`
	SortBy     string `form:"sort_by"`
	SortOrder  string `form:"sort_order"`
	Page       int    `form:"page"`
	PerPage    int    `form:"per_page"`
}
