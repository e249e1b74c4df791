package repository

//go:generate mockgen -source=catalog_repository.go -destination=mocks/catalog_repository.go -package=mocks

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
)

// ProductRepository defines the interface for product lookups
type ProductRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Product, error)
	GetByIDs(ctx context.Context, ids []uuid.UUID) ([]entity.Product, error)
}

// CustomerRepository defines the interface for customer lookups
type CustomerRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Customer, error)
}

// CompanyRepository defines the interface for company lookups
type CompanyRepository interface {
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Company, error)
}
