package request

import (
	"time"

	"github.com/google/uuid"
)

// InvoiceItemRequest selects a quantity of an acknowledgement item
type InvoiceItemRequest struct {
	ItemID   uuid.UUID `json:"item_id" binding:"required"`
	Quantity int64     `json:"quantity" binding:"required,min=1"`
}

// CreateInvoiceRequest represents an invoice creation request. An empty item
// list bills everything not yet invoiced.
type CreateInvoiceRequest struct {
	DueDate *time.Time           `json:"due_date"`
	Items   []InvoiceItemRequest `json:"items" binding:"omitempty,dive"`
}
