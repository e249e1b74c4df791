package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// PurchaseOrder is an order placed with a supplier
type PurchaseOrder struct {
	ID             uuid.UUID                `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID      uuid.UUID                `gorm:"type:uuid;not null;uniqueIndex:idx_po_company_number" json:"company_id"`
	DocumentNumber int64                    `gorm:"not null;uniqueIndex:idx_po_company_number" json:"document_number"`
	SupplierName   string                   `gorm:"type:text;not null" json:"supplier_name"`
	Currency       string                   `gorm:"size:10;not null" json:"currency"`
	EmployeeID     uuid.UUID                `gorm:"type:uuid;not null" json:"employee_id"`
	Status         enum.PurchaseOrderStatus `gorm:"default:0" json:"status"`
	Revision       int                      `gorm:"default:0" json:"revision"`

	OrderFinancials `gorm:"embedded"`

	CreatedAt time.Time      `json:"created_at"`
	UpdatedAt time.Time      `json:"updated_at"`
	DeletedAt gorm.DeletedAt `gorm:"index" json:"-"`

	Items []PurchaseOrderItem `gorm:"foreignKey:PurchaseOrderID" json:"items,omitempty"`
}

// BeforeCreate generates a UUID before creating a new purchase order
func (po *PurchaseOrder) BeforeCreate(tx *gorm.DB) error {
	if po.ID == uuid.Nil {
		po.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrder model
func (PurchaseOrder) TableName() string {
	return "purchase_orders"
}

// LineItems converts the items into calculator input at their net unit cost
func (po *PurchaseOrder) LineItems() []pricing.LineItem {
	items := make([]pricing.LineItem, 0, len(po.Items))
	for _, item := range po.Items {
		items = append(items, item.LineItem())
	}
	return items
}

// PurchaseOrderItem is one supply line of a purchase order. Discount is the
// supplier's per-item percentage, applied before the order-level terms.
type PurchaseOrderItem struct {
	ID              uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	PurchaseOrderID uuid.UUID       `gorm:"type:uuid;not null;index" json:"purchase_order_id"`
	Description     string          `gorm:"type:text;not null" json:"description"`
	Quantity        int64           `gorm:"not null" json:"quantity"`
	UnitCost        decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"unit_cost"`
	Discount        int             `gorm:"default:0" json:"discount"`
	UnitPrice       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"unit_price"`
	Total           decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"total"`
	CreatedAt       time.Time       `json:"created_at"`
	UpdatedAt       time.Time       `json:"updated_at"`
}

// BeforeCreate generates a UUID before creating a new purchase order item
func (i *PurchaseOrderItem) BeforeCreate(tx *gorm.DB) error {
	if i.ID == uuid.Nil {
		i.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the PurchaseOrderItem model
func (PurchaseOrderItem) TableName() string {
	return "purchase_order_items"
}

// Reprice derives the net unit price and total from cost, discount and quantity
func (i *PurchaseOrderItem) Reprice() {
	net := i.UnitCost.Sub(i.UnitCost.Mul(decimal.NewFromInt(int64(i.Discount))).Shift(-2))
	li := pricing.NewLineItem(net.Round(pricing.MoneyPlaces), i.Quantity)
	i.UnitPrice = li.UnitPrice
	i.Total = li.Total
}

// LineItem returns the item as calculator input
func (i PurchaseOrderItem) LineItem() pricing.LineItem {
	return pricing.LineItem{UnitPrice: i.UnitPrice, Quantity: i.Quantity, Total: i.Total}
}
