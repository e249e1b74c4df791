package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/sangkips/alinea-erp/internal/domain/accounting"
)

// JournalEntry is a posted double-entry record
type JournalEntry struct {
	ID           uuid.UUID            `gorm:"type:uuid;primary_key" json:"id"`
	CompanyID    uuid.UUID            `gorm:"type:uuid;not null;index" json:"company_id"`
	Journal      string               `gorm:"size:100;not null" json:"journal"`
	Description  string               `gorm:"type:text" json:"description"`
	CreatedAt    time.Time            `json:"created_at"`
	Transactions []JournalTransaction `gorm:"foreignKey:JournalEntryID" json:"transactions,omitempty"`
}

// BeforeCreate generates a UUID before creating a new journal entry
func (j *JournalEntry) BeforeCreate(tx *gorm.DB) error {
	if j.ID == uuid.Nil {
		j.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JournalEntry model
func (JournalEntry) TableName() string {
	return "journal_entries"
}

// JournalTransaction is one debit or credit line of a journal entry
type JournalTransaction struct {
	ID             uuid.UUID        `gorm:"type:uuid;primary_key" json:"id"`
	JournalEntryID uuid.UUID        `gorm:"type:uuid;not null;index" json:"journal_entry_id"`
	Account        string           `gorm:"size:255;not null" json:"account"`
	Debit          *decimal.Decimal `gorm:"type:decimal(15,2)" json:"debit,omitempty"`
	Credit         *decimal.Decimal `gorm:"type:decimal(15,2)" json:"credit,omitempty"`
	Description    string           `gorm:"type:text" json:"description"`
}

// BeforeCreate generates a UUID before creating a new journal transaction
func (t *JournalTransaction) BeforeCreate(tx *gorm.DB) error {
	if t.ID == uuid.Nil {
		t.ID = uuid.New()
	}
	return nil
}

// TableName returns the table name for the JournalTransaction model
func (JournalTransaction) TableName() string {
	return "journal_transactions"
}

// NewJournalEntry converts a built entry into its persisted form
func NewJournalEntry(companyID uuid.UUID, e accounting.JournalEntry) *JournalEntry {
	entry := &JournalEntry{
		CompanyID:   companyID,
		Journal:     e.Journal,
		Description: e.Description,
	}
	for _, l := range e.Lines {
		entry.Transactions = append(entry.Transactions, JournalTransaction{
			Account:     l.Account,
			Debit:       l.Debit,
			Credit:      l.Credit,
			Description: l.Description,
		})
	}
	return entry
}
