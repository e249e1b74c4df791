package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// Product is a catalogue item with a list price and standard dimensions
type Product struct {
	ID          uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID   uuid.UUID       `gorm:"type:uuid;not null;index" json:"company_id"`
	Code        string          `gorm:"size:100;not null;index" json:"code"`
	Description string          `gorm:"type:text;not null" json:"description"`
	Collection  string          `gorm:"size:255" json:"collection"`
	Price       decimal.Decimal `gorm:"type:decimal(15,2);default:0" json:"price"`
	Width       int             `gorm:"default:0" json:"width"`
	Depth       int             `gorm:"default:0" json:"depth"`
	Height      int             `gorm:"default:0" json:"height"`
	Units       string          `gorm:"size:20;default:'mm'" json:"units"`
	CreatedAt   time.Time       `json:"created_at"`
	UpdatedAt   time.Time       `json:"updated_at"`
	DeletedAt   gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new product
func (p *Product) BeforeCreate(tx *gorm.DB) error {
	if p.ID == uuid.Nil {
		p.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Product model
func (Product) TableName() string {
	return "products"
}

// Dimensions returns the product's standard size
func (p *Product) Dimensions() pricing.Dimensions {
	return pricing.Dimensions{Width: p.Width, Depth: p.Depth, Height: p.Height}
}
