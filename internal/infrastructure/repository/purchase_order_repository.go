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

type purchaseOrderRepository struct {
	db *gorm.DB
}

// NewPurchaseOrderRepository creates a new purchase order repository
func NewPurchaseOrderRepository(db *gorm.DB) domainRepo.PurchaseOrderRepository {
	return &purchaseOrderRepository{db: db}
}

func (r *purchaseOrderRepository) Create(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		number, err := nextDocumentNumber(tx, &entity.PurchaseOrder{}, po.CompanyID)
		if err != nil {
			return err
		}
		po.DocumentNumber = number
		return tx.Create(po).Error
	})
}

func (r *purchaseOrderRepository) GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	var po entity.PurchaseOrder
	err := r.db.WithContext(ctx).
		Scopes(CompanyScope(ctx)).
		Preload("Items", func(db *gorm.DB) *gorm.DB { return db.Order("created_at ASC") }).
		First(&po, "id = ?", id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	return &po, err
}

func (r *purchaseOrderRepository) Update(ctx context.Context, po *entity.PurchaseOrder) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Omit(clause.Associations).Save(po).Error; err != nil {
			return err
		}
		for i := range po.Items {
			po.Items[i].PurchaseOrderID = po.ID
			if err := tx.Save(&po.Items[i]).Error; err != nil {
				return err
			}
		}
		return nil
	})
}
