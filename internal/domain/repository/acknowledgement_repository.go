package repository

//go:generate mockgen -source=acknowledgement_repository.go -destination=mocks/acknowledgement_repository.go -package=mocks

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/pkg/pagination"
)

// AcknowledgementRepository defines the interface for acknowledgement data operations
type AcknowledgementRepository interface {
	// Create assigns the next document number for the company and stores the
	// acknowledgement with its items
	Create(ctx context.Context, ack *entity.Acknowledgement) error
	// GetByID returns the acknowledgement with items, or nil when it does not exist
	GetByID(ctx context.Context, id uuid.UUID) (*entity.Acknowledgement, error)
	List(ctx context.Context, params *AcknowledgementFilterParams) ([]entity.Acknowledgement, int64, error)
	// Update saves the header and every item
	Update(ctx context.Context, ack *entity.Acknowledgement) error
	Delete(ctx context.Context, id uuid.UUID) error
}

// AcknowledgementFilterParams contains filtering parameters for acknowledgement queries
type AcknowledgementFilterParams struct {
	Pagination *pagination.PaginationParams
	Search     string
	Status     *enum.AcknowledgementStatus
	CustomerID *uuid.UUID
	StartDate  *time.Time
	EndDate    *time.Time
	SortBy     string
	SortOrder  string
}
