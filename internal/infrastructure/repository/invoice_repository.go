package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	domainRepo "github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type invoiceRepository struct {
	db *gorm.DB
}

// NewInvoiceRepository creates a new invoice repository
func NewInvoiceRepository(db *gorm.DB) domainRepo.InvoiceRepository {
	return &invoiceRepository{db: db}
}

func (r *invoiceRepository) Create(ctx context.Context, invoice *entity.Invoice, post domainRepo.PostingFunc) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextDocumentNumber(tx, &entity.Invoice{}, invoice.CompanyID)
		if err != nil {
			return err
		}
		invoice.DocumentNumber = number

		if post != nil {
			entry, err := post(invoice)
			if err != nil {
				return err
			}
			if err := tx.Create(entry).Error; err != nil {
				return err
			}
			invoice.JournalEntryID = &entry.ID
			invoice.JournalEntry = entry
		}

		return tx.Omit("JournalEntry").Create(invoice).Error
	})
}

func (r *invoiceRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Invoice, error) {
	var invoice entity.Invoice
	err := r.db.WithContext(ctx).
		Scopes(CompanyScope(ctx)).
		Preload("Items").
		Preload("JournalEntry.Transactions").
		First(&invoice, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &invoice, err
}

func (r *invoiceRepository) ListByAcknowledgement(ctx context.Context, acknowledgementID uuid.UUID) ([]entity.Invoice, error) {
	var invoices []entity.Invoice
	err := r.db.WithContext(ctx).
		Scopes(CompanyScope(ctx)).
		Preload("Items").
		Where("acknowledgement_id = ?", acknowledgementID).
		Order("document_number ASC").
		Find(&invoices).Error
	return invoices, err
}

func (r *invoiceRepository) SumGrandTotals(ctx context.Context, acknowledgementID uuid.UUID) (decimal.Decimal, error) {
	var row struct {
		Billed decimal.NullDecimal
	}
	err := r.db.WithContext(ctx).Model(&entity.Invoice{}).
		Scopes(CompanyScope(ctx)).
		Where("acknowledgement_id = ?", acknowledgementID).
		Select("SUM(grand_total) AS billed").
		Scan(&row).Error
	if err != nil || !row.Billed.Valid {
		return decimal.Zero, err
	}
	return row.Billed.Decimal, nil
}

func (r *invoiceRepository) BilledQuantities(ctx context.Context, acknowledgementID uuid.UUID) (map[uuid.UUID]int64, error) {
	var rows []struct {
		AcknowledgementItemID uuid.UUID
		Quantity              int64
	}
	err := r.db.WithContext(ctx).
		Table("invoice_items").
		Select("invoice_items.acknowledgement_item_id, SUM(invoice_items.quantity) AS quantity").
		Joins("JOIN invoices ON invoices.id = invoice_items.invoice_id AND invoices.deleted_at IS NULL").
		Where("invoices.acknowledgement_id = ?", acknowledgementID).
		Scopes(func(db *gorm.DB) *gorm.DB {
			companyID, ok := GetCompanyID(ctx)
			if !ok {
				return db.Where("1 = 0")
			}
			return db.Where("invoices.company_id = ?", companyID)
		}).
		Group("invoice_items.acknowledgement_item_id").
		Scan(&rows).Error
	if err != nil {
		return nil, err
	}

	billed := make(map[uuid.UUID]int64, len(rows))
	for _, row := range rows {
		billed[row.AcknowledgementItemID] = row.Quantity
	}
	return billed, nil
}
