package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// Acknowledgement is a confirmed sales order
type Acknowledgement struct {
	ID             uuid.UUID                  `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID      uuid.UUID                  `gorm:"type:uuid;not null;uniqueIndex:idx_ack_company_number" json:"company_id"`
	DocumentNumber int64                      `gorm:"not null;uniqueIndex:idx_ack_company_number" json:"document_number"`
	CustomerID     uuid.UUID                  `gorm:"type:uuid;not null;index" json:"customer_id"`
	CustomerName   string                     `gorm:"type:text;not null" json:"customer_name"`
	EmployeeID     uuid.UUID                  `gorm:"type:uuid;not null" json:"employee_id"`
	Status         enum.AcknowledgementStatus `gorm:"default:0" json:"status"`
	DeliveryDate   *time.Time                 `json:"delivery_date,omitempty"`
	Remarks        *string                    `gorm:"type:text" json:"remarks,omitempty"`
	ShippingMethod *string                    `gorm:"type:text" json:"shipping_method,omitempty"`

	OrderFinancials `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	// Relationships
	Customer *Customer             `gorm:"foreignKey:CustomerID" json:"customer,omitempty"`
	Items    []AcknowledgementItem `gorm:"foreignKey:AcknowledgementID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new acknowledgement
func (a *Acknowledgement) BeforeCreate(tx *gorm.DB) error {
	if a.ID == uuid.Nil {
		a.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Acknowledgement model
func (Acknowledgement) TableName() string {
	return "acknowledgements"
}

// LineItems converts the items into calculator input
func (a *Acknowledgement) LineItems() []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(a.Items))
	for _, item := range a.Items {
		items = append(items, item.LineItem())
	}
	return items
}

// FindItem returns the item with the given id, or nil
func (a *Acknowledgement) FindItem(id uuid.UUID) *AcknowledgementItem {
	for i := range a.Items {
		if a.Items[i].ID == id {
			return &a.Items[i]
		}
	}
	return nil
}

// AcknowledgementItem is one product line of an acknowledgement
type AcknowledgementItem struct {
	ID                uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	AcknowledgementID uuid.UUID       `gorm:"type:uuid;not null;index" json:"acknowledgement_id"`
	ProductID         *uuid.UUID      `gorm:"type:uuid;index" json:"product_id,omitempty"`
	Description       string          `gorm:"type:text" json:"description"`
	Comments          *string         `gorm:"type:text" json:"comments,omitempty"`
	Status            string          `gorm:"size:50;default:'acknowledged'" json:"status"`
	Quantity          int64           `gorm:"not null" json:"quantity"`
	UnitPrice         decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	Total             decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`
	IsCustomSize      bool            `gorm:"default:false" json:"is_custom_size"`
	Width             int             `gorm:"default:0" json:"width"`
	Depth             int             `gorm:"default:0" json:"depth"`
	Height            int             `gorm:"default:0" json:"height"`
	CreatedAt         time.Time       `json:"created_at"`
	UpdatedAt         time.Time       `json:"updated_at"`
	DeletedAt         gorm.DeletedAt  `gorm:"index" json:"-"`

	// Relationships
	Product *Product `gorm:"foreignKey:ProductID" json:"product,omitempty"`
}

// BeforeCreate generates a UUID before creating a new acknowledgement item
func (i *AcknowledgementItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the AcknowledgementItem model
func (AcknowledgementItem) TableName() string {
	return "acknowledgement_items"
}

// SetPrice sets the unit price and recomputes the line total
func (i *AcknowledgementItem) SetPrice(unitPrice decimal.Decimal, quantity int64) {
	li := pricing.NewLineItem(unitPrice.Round(pricing.MoneyPlaces), quantity)
	i.UnitPrice = li.UnitPrice
	i.Quantity = li.Quantity
	i.Total = li.Total
}

// LineItem returns the item as calculator input
func (i AcknowledgementItem) LineItem() pricing.LineItem {
	return pricing.LineItem{UnitPrice: i.UnitPrice, Quantity: i.Quantity, Total: i.Total}
}

// CustomDimensions returns the size the customer ordered
func (i AcknowledgementItem) CustomDimensions() pricing.Dimensions {
	return pricing.Dimensions{Width: i.Width, Depth: i.Depth, Height: i.Height}
}
