package entity

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Company is the owner of every document in the system
type Company struct {
	ID        uuid.UUID       `gorm:"type:uuid;primary_key" json:"id"`
	Name      string          `gorm:"size:255;not null" json:"name"`
	Slug      string          `gorm:"size:255;unique;not null" json:"slug"`
	Settings  CompanySettings `gorm:"type:jsonb" json:"settings"`
	CreatedAt time.Time       `json:"created_at"`
	UpdatedAt time.Time       `json:"updated_at"`
	DeletedAt gorm.DeletedAt  `gorm:"index" json:"-"`
}

// BeforeCreate generates a UUID before creating a new company
func (c *Company) BeforeCreate(tx *gorm.DB) error {
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the Company model
func (Company) TableName() string {
	return "companies"
}

// CompanySettings holds per-company document defaults
type CompanySettings struct {
	Currency string `json:"currency,omitempty"`
	// DefaultVAT applies to new documents that do not state a VAT rate
	DefaultVAT int `json:"default_vat"`

	AcknowledgementPrefix string `json:"acknowledgement_prefix,omitempty"`
	InvoicePrefix         string `json:"invoice_prefix,omitempty"`
	PurchaseOrderPrefix   string `json:"purchase_order_prefix,omitempty"`
}

// Scan implements the sql.Scanner interface for CompanySettings
func (cs *CompanySettings) Scan(value interface{}) error {
	if value == nil {
		*cs = CompanySettings{}
		return nil
	}

	var bytes []byte
	switch v := value.(type) {
	case []byte:
		bytes = v
	case string:
		bytes = []byte(v)
	default:
		return errors.New("failed to scan CompanySettings: unsupported type")
	}

	return json.Unmarshal(bytes, cs)
}

// Value implements the driver.Valuer interface for CompanySettings
func (cs CompanySettings) Value() (driver.Value, error) {
	return json.Marshal(cs)
}

// DefaultCompanySettings returns the settings a company starts with
func DefaultCompanySettings() CompanySettings {
	return CompanySettings{
		Currency:              "THB",
		DefaultVAT:            7,
		AcknowledgementPrefix: "AK",
		InvoicePrefix:         "IV",
		PurchaseOrderPrefix:   "PO",
	}
}

// WithDefaults fills empty settings from DefaultCompanySettings
func (cs CompanySettings) WithDefaults() CompanySettings {
	def := DefaultCompanySettings()
	if cs.Currency == "" {
		cs.Currency = def.Currency
	}
	if cs.AcknowledgementPrefix == "" {
		cs.AcknowledgementPrefix = def.AcknowledgementPrefix
	}
	if cs.InvoicePrefix == "" {
		cs.InvoicePrefix = def.InvoicePrefix
	}
	if cs.PurchaseOrderPrefix == "" {
		cs.PurchaseOrderPrefix = def.PurchaseOrderPrefix
	}
	return cs
}
