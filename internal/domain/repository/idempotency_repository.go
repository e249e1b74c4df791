package repository

//go:generate mockgen -source=idempotency_repository.go -destination=mocks/idempotency_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
)

// IdempotencyRepository defines the interface for idempotency key operations
type IdempotencyRepository interface {
	// GetByKey retrieves an idempotency key by its key string within a company
	GetByKey(ctx context.Context, key string, companyID uuid.UUID) (*entity.IdempotencyKey, error)
	// Claim inserts ikey as a pending key. An expired key under the same name
	// is replaced; a live one is left alone and Claim reports false.
	Claim(ctx context.Context, ikey *entity.IdempotencyKey) (bool, error)
	// Complete stores the response of a claimed key and extends its expiry
	Complete(ctx context.Context, ikey *entity.IdempotencyKey) error
	// Release removes a key that is still pending
	Release(ctx context.Context, key string, companyID uuid.UUID) error
	// DeleteExpired removes expired idempotency keys
	DeleteExpired(ctx context.Context) error
}
