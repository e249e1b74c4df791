package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// Invoice bills some or all of an acknowledgement's items
type Invoice struct {
	ID                uuid.UUID  `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID         uuid.UUID  `gorm:"type:uuid;not null;uniqueIndex:idx_invoice_company_number" json:"company_id"`
	DocumentNumber    int64      `gorm:"not null;uniqueIndex:idx_invoice_company_number" json:"document_number"`
	AcknowledgementID uuid.UUID  `gorm:"type:uuid;not null;index" json:"acknowledgement_id"`
	CustomerID        uuid.UUID  `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName      string     `gorm:"type:text;not null" json:"customer_name"`
	EmployeeID        uuid.UUID  `gorm:"type:uuid;not null" json:"employee_id"`
	DueDate           *time.Time `json:"due_date,omitempty"`
	JournalEntryID    *uuid.UUID `gorm:"type:uuid" json:"journal_entry_id,omitempty"`

	OrderFinancials `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items        []InvoiceItem `gorm:"foreignKey:InvoiceID" json:"items,omitempty"`
	JournalEntry *JournalEntry `gorm:"foreignKey:JournalEntryID" json:"journal_entry,omitempty"`
}

// BeforeCreate generates a UUID before creating a new invoice
func (inv *Invoice) BeforeCreate(tx *gorm.DB) error {
	if inv.ID == uuid.Nil {
		inv.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Invoice model
func (Invoice) TableName() string {
	return "invoices"
}

// LineItems converts the items into calculator input
func (inv *Invoice) LineItems() []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(inv.Items))
	for _, item := range inv.Items {
		items = append(items, pricing.LineItem{UnitPrice: item.UnitPrice, Quantity: item.Quantity, Total: item.Total})
	}
	return items
}

// InvoiceItem is a billed quantity of an acknowledgement item
type InvoiceItem struct {
	ID                    uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	InvoiceID             uuid.UUID       `gorm:"type:uuid;not null;index" json:"invoice_id"`
	AcknowledgementItemID uuid.UUID       `gorm:"type:uuid;not null;index" json:"acknowledgement_item_id"`
	Description           string          `gorm:"type:text" json:"description"`
	Quantity              int64           `gorm:"not null" json:"quantity"`
	UnitPrice             decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	Total                 decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`
	CreatedAt             time.Time       `json:"created_at"`
	UpdatedAt             time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new invoice item
func (i *InvoiceItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the InvoiceItem model
func (InvoiceItem) TableName() string {
	return "invoice_items"
}
