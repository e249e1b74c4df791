package repository

//go:generate mockgen -source=purchase_order_repository.go -destination=mocks/purchase_order_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
)

// PurchaseOrderRepository defines the interface for purchase order data operations
type PurchaseOrderRepository interface {
	Create(ctx context.Context, po *entity.PurchaseOrder) error
	GetByID(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error)
	Update(ctx context.Context, po *entity.PurchaseOrder) error
}
