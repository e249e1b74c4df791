package repository

import (
	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"gorm.io/gorm"
)

// nextDocumentNumber returns the next free number of model's table for a
// company. Soft-deleted rows still hold their number.
func nextDocumentNumber(tx *gorm.DB, model interface{}, companyID uuid.UUID) (int64, error) {
	var last int64
	err := tx.Unscoped().Model(model).
		Where("company_id = ?", companyID).
		Select("COALESCE(MAX(document_number), 0)").
		Scan(&last).Error
	if err != nil {
		return 0, err
	}
	if last < entity.FirstDocumentNumber {
		return entity.FirstDocumentNumber, nil
	}
	return last + 1, nil
}
