package repository

//go:generate mockgen -source=invoice_repository.go -destination=mocks/invoice_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/shopspring/decimal"
)

// PostingFunc builds the journal entry of a numbered invoice
type PostingFunc func(invoice *entity.Invoice) (*entity.JournalEntry, error)

// InvoiceRepository defines the interface for invoice data operations
type InvoiceRepository interface {
	// Create assigns the invoice its document number, then stores the journal
	// entry returned by post together with the invoice in one transaction
	Create(ctx context.Context, invoice *entity.Invoice, post PostingFunc) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error)
	ListByAcknowledgement(ctx context.Context, acknowledgementID uuid.UUID) ([]entity.Invoice, error)
	// SumGrandTotals returns the billed amount of an acknowledgement
	SumGrandTotals(ctx context.Context, acknowledgementID uuid.UUID) (decimal.Decimal, error)
	// BilledQuantities returns the invoiced quantity per acknowledgement item
	BilledQuantities(ctx context.Context, acknowledgementID uuid.UUID) (map[uuid.UUID]int64, error)
}
