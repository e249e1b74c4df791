package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/pkg/apperror"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PurchaseOrderService keeps purchase order totals consistent
type PurchaseOrderService struct {
	poRepo      repository.PurchaseOrderRepository
	companyRepo repository.CompanyRepository
	locker      OrderLocker
	publisher   event.Publisher
}

// NewPurchaseOrderService creates a new purchase order service
func NewPurchaseOrderService(
	poRepo repository.PurchaseOrderRepository,
	companyRepo repository.CompanyRepository,
	locker OrderLocker,
	publisher event.Publisher,
) *PurchaseOrderService {
	return &PurchaseOrderService{
		poRepo:      poRepo,
		companyRepo: companyRepo,
		locker:      locker,
		publisher:   publisher,
	}
}

// PurchaseOrderItemInput represents a supply line
type PurchaseOrderItemInput struct {
	Description string
	Quantity    int64
	UnitCost    decimal.Decimal
	Discount    int
}

// CreatePurchaseOrderInput represents the create purchase order input
type CreatePurchaseOrderInput struct {
	SupplierName   string
	Currency       string
	Discount       int
	SecondDiscount int
	VAT            *int
	Items          []PurchaseOrderItemInput
}

// CreatePurchaseOrder stores a purchase order with computed totals
func (s *PurchaseOrderService) CreatePurchaseOrder(ctx context.Context, actor Actor, input *CreatePurchaseOrderInput) (*entity.PurchaseOrder, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return nil, err
	}

	settings, err := loadCompanySettings(ctx, s.companyRepo)
	if err != nil {
		return nil, err
	}

	terms := pricing.Terms{
		Discount:       input.Discount,
		SecondDiscount: input.SecondDiscount,
		VAT:            settings.DefaultVAT,
	}
	if input.VAT != nil {
		terms.VAT = *input.VAT
	}
	if err := terms.Validate(); err != nil {
		return nil, pricingError(err)
	}

	currency := input.Currency
	if currency == "" {
		currency = settings.Currency
	}

	po := &entity.PurchaseOrder{
		CompanyID:    companyID,
		SupplierName: input.SupplierName,
		Currency:     currency,
		EmployeeID:   actor.UserID,
		Status:       enum.PurchaseOrderStatusAwaitingApproval,
		Items:        make([]entity.PurchaseOrderItem, 0, len(input.Items)),
	}
	po.SetTerms(terms)

	for i, in := range input.Items {
		field := fmt.Sprintf("items[%d]", i)
		switch {
		case in.Quantity <= 0:
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".quantity", Message: "quantity must be at least 1"}})
		case in.UnitCost.IsNegative():
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".unit_cost", Message: "unit cost cannot be negative"}})
		case in.Discount < 0 || in.Discount > 100:
			return nil, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".discount", Message: pricing.ErrInvalidPercentage.Error()}})
		}

		item := entity.PurchaseOrderItem{
			Description: in.Description,
			Quantity:    in.Quantity,
			UnitCost:    in.UnitCost,
			Discount:    in.Discount,
		}
		item.Reprice()
		po.Items = append(po.Items, item)
	}

	totals, err := calculateTotals(event.DocumentPurchaseOrder, po.LineItems(), po.Terms())
	if err != nil {
		return nil, err
	}
	po.ApplyTotals(totals)

	if err := s.poRepo.Create(ctx, po); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Purchase order created",
		zap.String("purchase_order_id", po.ID.String()),
		zap.Int64("document_number", po.DocumentNumber),
		zap.String("grand_total", po.GrandTotal.StringFixed(2)),
	)
	s.publish(ctx, po)
	return po, nil
}

// GetPurchaseOrder retrieves a purchase order with its items
func (s *PurchaseOrderService) GetPurchaseOrder(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	po, err := s.poRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if po == nil {
		return nil, apperror.NewNotFoundError("Purchase order")
	}
	return po, nil
}

// UpdateTerms changes the order-level terms and recomputes the totals
func (s *PurchaseOrderService) UpdateTerms(ctx context.Context, id uuid.UUID, input TermsInput) (*entity.PurchaseOrder, error) {
	return s.mutate(ctx, id, func(po *entity.PurchaseOrder) error {
		terms := input.merge(po.Terms())
		if err := terms.Validate(); err != nil {
			return pricingError(err)
		}
		po.SetTerms(terms)
		po.Revision++
		return nil
	})
}

// RecalculateTotals reprices every item and recomputes the totals
func (s *PurchaseOrderService) RecalculateTotals(ctx context.Context, id uuid.UUID) (*entity.PurchaseOrder, error) {
	return s.mutate(ctx, id, func(*entity.PurchaseOrder) error { return nil })
}

func (s *PurchaseOrderService) mutate(ctx context.Context, id uuid.UUID, change func(*entity.PurchaseOrder) error) (*entity.PurchaseOrder, error) {
	unlock, err := lockDocument(ctx, s.locker, event.DocumentPurchaseOrder, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	po, err := s.GetPurchaseOrder(ctx, id)
	if err != nil {
		return nil, err
	}

	if err := change(po); err != nil {
		return nil, err
	}

	for i := range po.Items {
		po.Items[i].Reprice()
	}

	totals, err := calculateTotals(event.DocumentPurchaseOrder, po.LineItems(), po.Terms())
	if err != nil {
		return nil, err
	}
	po.ApplyTotals(totals)

	if err := s.poRepo.Update(ctx, po); err != nil {
		return nil, err
	}

	s.publish(ctx, po)
	return po, nil
}

func (s *PurchaseOrderService) publish(ctx context.Context, po *entity.PurchaseOrder) {
	publishTotals(ctx, s.publisher, event.NewTotalsRecalculated(
		po.CompanyID, event.DocumentPurchaseOrder, po.ID, po.DocumentNumber, po.Terms(), po.Totals(),
	))
}
