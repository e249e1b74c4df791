package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	domainRepo "github.com/sangkips/alinea-erp/internal/domain/repository"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

var acknowledgementSortColumns = map[string]string{
	"created_at":      "created_at",
	"document_number": "document_number",
	"customer_name":   "customer_name",
	"grand_total":     "grand_total",
	"delivery_date":   "delivery_date",
}

type acknowledgementRepository struct {
	db *gorm.DB
}

// NewAcknowledgementRepository creates a new acknowledgement repository
func NewAcknowledgementRepository(db *gorm.DB) domainRepo.AcknowledgementRepository {
	return &acknowledgementRepository{db: db}
}

func (r *acknowledgementRepository) Create(ctx context.Context, ack *entity.Acknowledgement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextDocumentNumber(tx, &entity.Acknowledgement{}, ack.CompanyID)
		if err != nil {
			return err
		}
		ack.DocumentNumber = number
		return tx.Create(ack).Error
	})
}

func (r *acknowledgementRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.Acknowledgement, error) {
	var ack entity.Acknowledgement
	err := r.db.WithContext(ctx).
		Scopes(CompanyScope(ctx)).
		Preload("Customer").
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		Preload("Items.Product").
		First(&ack, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &ack, err
}

func (r *acknowledgementRepository) List(ctx context.Context, params *domainRepo.AcknowledgementFilterParams) ([]entity.Acknowledgement, int64, error) {
	var acks []entity.Acknowledgement
	var total int64

	query := r.db.WithContext(ctx).Model(&entity.Acknowledgement{}).Scopes(CompanyScope(ctx))

	if params.Search != "" {
		like := "%" + params.Search + "%"
		query = query.Where("customer_name ILIKE ? OR CAST(document_number AS TEXT) ILIKE ?", like, like)
	}

	if params.Status != nil {
		query = query.Where("status = ?", *params.Status)
	}

	if params.CustomerID != nil {
		query = query.Where("customer_id = ?", *params.CustomerID)
	}

	if params.StartDate != nil {
		query = query.Where("created_at >= ?", *params.StartDate)
	}

	if params.EndDate != nil {
		query = query.Where("created_at <= ?", *params.EndDate)
	}

	if err := query.Count(&total).Error; err != nil {
		return nil, 0, err
	}

	sortBy := "created_at"
	if col, ok := acknowledgementSortColumns[params.SortBy]; ok {
		sortBy = col
	}
	sortOrder := "DESC"
	if params.SortOrder == "ASC" || params.SortOrder == "asc" {
		sortOrder = "ASC"
	}

	params.Pagination.Validate()
	err := query.Offset(params.Pagination.Offset()).Limit(params.Pagination.PerPage).
		Order(sortBy + " " + sortOrder).
		Find(&acks).Error

	return acks, total, err
}

func (r *acknowledgementRepository) Update(ctx context.Context, ack *entity.Acknowledgement) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(ack).Error; err != nil {
			return err
		}
		for i := range ack.Items {
			ack.Items[i].AcknowledgementID = ack.ID
			if err := tx.Omit(clause.Associations).Save(&ack.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}

func (r *acknowledgementRepository) Delete(ctx context.Context, id uuid.UUID) error {
	return r.db.WithContext(ctx).Scopes(CompanyScope(ctx)).Delete(&entity.Acknowledgement{}, "id = ?", id).Error
}
