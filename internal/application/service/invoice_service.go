package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/accounting"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/pkg/apperror"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/sangkips/alinea-erp/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// balanceTolerance absorbs the per-invoice rounding of partial billing
var balanceTolerance = decimal.New(1, -pricingPlaces)

const pricingPlaces = 2

// InvoiceService bills acknowledgements and posts them to the ledger
type InvoiceService struct {
	invoiceRepo repository.InvoiceRepository
	ackRepo     repository.AcknowledgementRepository
	companyRepo repository.CompanyRepository
	locker      OrderLocker
	publisher   event.Publisher
}

// NewInvoiceService creates a new invoice service
func NewInvoiceService(
	invoiceRepo repository.InvoiceRepository,
	ackRepo repository.AcknowledgementRepository,
	companyRepo repository.CompanyRepository,
	locker OrderLocker,
	publisher event.Publisher,
) *InvoiceService {
	return &InvoiceService{
		invoiceRepo: invoiceRepo,
		ackRepo:     ackRepo,
		companyRepo: companyRepo,
		locker:      locker,
		publisher:   publisher,
	}
}

// InvoiceItemInput selects a quantity of an acknowledgement item to bill
type InvoiceItemInput struct {
	ItemID   uuid.UUID
	Quantity int64
}

// CreateInvoiceInput represents the create invoice input. Without items
// every unbilled quantity is invoiced.
type CreateInvoiceInput struct {
	AcknowledgementID uuid.UUID
	DueDate           *time.Time
	Items             []InvoiceItemInput
}

// CreateInvoice bills acknowledgement items with the acknowledgement's terms
// and posts the invoice to the Revenue journal
func (s *InvoiceService) CreateInvoice(ctx context.Context, actor Actor, input *CreateInvoiceInput) (*entity.Invoice, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := loadCompanySettings(ctx, s.companyRepo)
	if err != nil {
		return nil, err
	}

	unlock, err := lockDocument(ctx, s.locker, event.DocumentAcknowledgement, input.AcknowledgementID)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ack, err := s.ackRepo.GetByID(ctx, input.AcknowledgementID)
	if err != nil {
		return nil, err
	}
	if ack == nil {
		return nil, apperror.NewNotFoundError("Acknowledgement")
	}
	if ack.Status == enum.AcknowledgementStatusCancelled {
		return nil, apperror.NewConflictError("Acknowledgement is cancelled")
	}

	billed, err := s.invoiceRepo.BilledQuantities(ctx, ack.ID)
	if err != nil {
		return nil, err
	}

	selection := input.Items
	if len(selection) == 0 {
		for _, item := range ack.Items {
			if remaining := item.Quantity - billed[item.ID]; remaining > 0 {
				selection = append(selection, InvoiceItemInput{ItemID: item.ID, Quantity: remaining})
			}
		}
		if len(selection) == 0 {
			return nil, apperror.NewConflictError("Acknowledgement is fully invoiced")
		}
	}

	invoice := &entity.Invoice{
		CompanyID:         companyID,
		AcknowledgementID: ack.ID,
		CustomerID:        ack.CustomerID,
		CustomerName:      ack.CustomerName,
		EmployeeID:        actor.UserID,
		DueDate:           input.DueDate,
		Items:             make([]entity.InvoiceItem, 0, len(selection)),
	}
	invoice.SetTerms(ack.Terms())

	requested := make(map[uuid.UUID]int64, len(selection))
	for i, sel := range selection {
		field := fmt.Sprintf("items[%d]", i)
		item := ack.FindItem(sel.ItemID)
		if item == nil {
			return nil, apperror.NewNotFoundError("Acknowledgement item")
		}
		if sel.Quantity <= 0 {
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".quantity", Message: "quantity must be at least 1"}})
		}
		requested[item.ID] += sel.Quantity
		if requested[item.ID]+billed[item.ID] > item.Quantity {
			return nil, apperror.NewValidationError([]apperror.FieldError{{
				Field:   field + ".quantity",
				Message: fmt.Sprintf("only %d left to invoice", item.Quantity-billed[item.ID]-(requested[item.ID]-sel.Quantity)),
			}})
		}

		invoice.Items = append(invoice.Items, entity.InvoiceItem{
			AcknowledgementItemID: item.ID,
			Description:           item.Description,
			Quantity:              sel.Quantity,
			UnitPrice:             item.UnitPrice,
			Total:                 item.UnitPrice.Mul(decimal.NewFromInt(sel.Quantity)),
		})
	}

	totals, err := calculateTotals(event.DocumentInvoice, invoice.LineItems(), invoice.Terms())
	if err != nil {
		return nil, err
	}
	invoice.ApplyTotals(totals)

	invoiced, err := s.invoiceRepo.SumGrandTotals(ctx, ack.ID)
	if err != nil {
		return nil, err
	}
	balance := ack.GrandTotal.Sub(invoiced)
	if invoice.GrandTotal.GreaterThan(balance.Add(balanceTolerance)) {
		return nil, apperror.NewAppError(422, fmt.Sprintf("Invoice total %s exceeds the acknowledgement balance %s",
			invoice.GrandTotal.StringFixed(2), balance.StringFixed(2)))
	}

	err = s.invoiceRepo.Create(ctx, invoice, func(inv *entity.Invoice) (*entity.JournalEntry, error) {
		return postInvoice(companyID, settings.InvoicePrefix, inv)
	})
	if err != nil {
		if errors.Is(err, accounting.ErrUnbalancedEntry) {
			logger.FromContext(ctx).Error("Invoice journal entry does not balance",
				zap.String("acknowledgement_id", ack.ID.String()),
				zap.Error(err),
			)
			return nil, apperror.NewAppError(422, "Invoice could not be posted: journal entry does not balance")
		}
		return nil, err
	}

	if s.fullyBilled(ack, billed, requested) && ack.Status != enum.AcknowledgementStatusInvoiced {
		ack.Status = enum.AcknowledgementStatusInvoiced
		if err := s.ackRepo.Update(ctx, ack); err != nil {
			logger.FromContext(ctx).Warn("Failed to mark acknowledgement invoiced",
				zap.String("acknowledgement_id", ack.ID.String()),
				zap.Error(err),
			)
		}
	}

	logger.FromContext(ctx).Info("Invoice created",
		zap.String("invoice_id", invoice.ID.String()),
		zap.String("number", utils.FormatDocumentNumber(settings.InvoicePrefix, invoice.DocumentNumber)),
		zap.String("acknowledgement_id", ack.ID.String()),
		zap.String("grand_total", invoice.GrandTotal.StringFixed(2)),
	)
	publishTotals(ctx, s.publisher, event.NewTotalsRecalculated(
		companyID, event.DocumentInvoice, invoice.ID, invoice.DocumentNumber, invoice.Terms(), invoice.Totals(),
	))
	return invoice, nil
}

func (s *InvoiceService) fullyBilled(ack *entity.Acknowledgement, billed, requested map[uuid.UUID]int64) bool {
	for _, item := range ack.Items {
		if billed[item.ID]+requested[item.ID] < item.Quantity {
			return false
		}
	}
	return true
}

// postInvoice builds the Revenue journal entry of a numbered invoice
func postInvoice(companyID uuid.UUID, prefix string, inv *entity.Invoice) (*entity.JournalEntry, error) {
	posting := accounting.InvoicePosting{
		DocumentNumber: utils.FormatDocumentNumber(prefix, inv.DocumentNumber),
		CustomerName:   inv.CustomerName,
		Totals:         inv.Totals(),
		Items:          make([]accounting.PostedItem, 0, len(inv.Items)),
	}
	for _, item := range inv.Items {
		posting.Items = append(posting.Items, accounting.PostedItem{Description: item.Description, Total: item.Total})
	}

	entry, err := accounting.BuildInvoiceJournalEntry(posting)
	if err != nil {
		return nil, err
	}
	return entity.NewJournalEntry(companyID, entry), nil
}

// GetInvoice retrieves an invoice with its items and journal entry
func (s *InvoiceService) GetInvoice(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	invoice, err := s.invoiceRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if invoice == nil {
		return nil, apperror.NewNotFoundError("Invoice")
	}
	return invoice, nil
}

// ListInvoices returns the invoices of an acknowledgement
func (s *InvoiceService) ListInvoices(ctx context.Context, acknowledgementID uuid.UUID) ([]entity.Invoice, error) {
	ack, err := s.ackRepo.GetByID(ctx, acknowledgementID)
	if err != nil {
		return nil, err
	}
	if ack == nil {
		return nil, apperror.NewNotFoundError("Acknowledgement")
	}

	invoices, err := s.invoiceRepo.ListByAcknowledgement(ctx, acknowledgementID)
	if err != nil {
		return nil, err
	}
	if invoices == nil {
		invoices = []entity.Invoice{}
	}
	return invoices, nil
}
