package event

//go:generate mockgen -source=totals.go -destination=mocks/totals.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/sangkips/alinea-erp/internal/domain/pricing"
)

// TypeTotalsRecalculated is emitted whenever a document's totals are stored
const TypeTotalsRecalculated = "totals.recalculated"

// Document kinds carrying order totals
const (
	DocumentAcknowledgement = "acknowledgement"
	DocumentPurchaseOrder   = "purchase_order"
	DocumentInvoice         = "invoice"
	DocumentQuote           = "quote"
)

// TotalsRecalculated describes a document whose totals changed
type TotalsRecalculated struct {
	ID             uuid.UUID      `json:"id"`
	Type           string         `json:"type"`
	CompanyID      uuid.UUID      `json:"company_id"`
	DocumentType   string         `json:"document_type"`
	DocumentID     uuid.UUID      `json:"document_id"`
	DocumentNumber int64          `json:"document_number"`
	Terms          pricing.Terms  `json:"terms"`
	Totals         pricing.Totals `json:"totals"`
	CorrelationID  string         `json:"correlation_id,omitempty"`
	OccurredAt     time.Time      `json:"occurred_at"`
}

// NewTotalsRecalculated builds an event with a fresh ID and timestamp
func NewTotalsRecalculated(companyID uuid.UUID, documentType string, documentID uuid.UUID, number int64, terms pricing.Terms, totals pricing.Totals) TotalsRecalculated {
	return TotalsRecalculated{
		ID:             uuid.New(),
		Type:           TypeTotalsRecalculated,
		CompanyID:      companyID,
		DocumentType:   documentType,
		DocumentID:     documentID,
		DocumentNumber: number,
		Terms:          terms,
		Totals:         totals,
		OccurredAt:     time.Now().UTC(),
	}
}

// Publisher delivers totals events to downstream consumers
type Publisher interface {
	PublishTotalsRecalculated(ctx context.Context, e TotalsRecalculated) error
}
