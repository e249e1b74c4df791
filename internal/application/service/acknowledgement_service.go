package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/enum"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/pkg/apperror"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/sangkips/alinea-erp/pkg/pagination"
	"github.com/sangkips/alinea-erp/pkg/utils"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// AcknowledgementService handles sales order operations
type AcknowledgementService struct {
	ackRepo      repository.AcknowledgementRepository
	invoiceRepo  repository.InvoiceRepository
	productRepo  repository.ProductRepository
	customerRepo repository.CustomerRepository
	companyRepo  repository.CompanyRepository
	locker       OrderLocker
	publisher    event.Publisher
}

// NewAcknowledgementService creates a new acknowledgement service
func NewAcknowledgementService(
	ackRepo repository.AcknowledgementRepository,
	invoiceRepo repository.InvoiceRepository,
	productRepo repository.ProductRepository,
	customerRepo repository.CustomerRepository,
	companyRepo repository.CompanyRepository,
	locker OrderLocker,
	publisher event.Publisher,
) *AcknowledgementService {
	return &AcknowledgementService{
		ackRepo:      ackRepo,
		invoiceRepo:  invoiceRepo,
		productRepo:  productRepo,
		customerRepo: customerRepo,
		companyRepo:  companyRepo,
		locker:       locker,
		publisher:    publisher,
	}
}

// AcknowledgementItemInput represents an ordered item
type AcknowledgementItemInput struct {
	ProductID   *uuid.UUID
	Description string
	Comments    *string
	Quantity    int64
	// UnitPrice, when positive, replaces the catalogue price
	UnitPrice    *decimal.Decimal
	IsCustomSize bool
	Width        int
	Depth        int
	Height       int
}

// CreateAcknowledgementInput represents the create acknowledgement input
type CreateAcknowledgementInput struct {
	CustomerID     uuid.UUID
	Discount       int
	SecondDiscount int
	// VAT falls back to the company default when nil
	VAT            *int
	DeliveryDate   *time.Time
	Remarks        *string
	ShippingMethod *string
	Items          []AcknowledgementItemInput
}

// UpdateItemInput represents an edit of one acknowledgement item
type UpdateItemInput struct {
	Description *string
	Comments    *string
	Status      *string
	Quantity    *int64
	UnitPrice   *decimal.Decimal
}

// AcknowledgementBalance is what is left to invoice on an acknowledgement
type AcknowledgementBalance struct {
	AcknowledgementID uuid.UUID       `json:"acknowledgement_id"`
	GrandTotal        decimal.Decimal `json:"grand_total"`
	Invoiced          decimal.Decimal `json:"invoiced"`
	Balance           decimal.Decimal `json:"balance"`
}

// CreateAcknowledgement prices the items, computes the totals and stores the
// acknowledgement under the company's next document number
func (s *AcknowledgementService) CreateAcknowledgement(ctx context.Context, actor Actor, input *CreateAcknowledgementInput) (*entity.Acknowledgement, error) {
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

	if len(input.Items) == 0 {
		return nil, apperror.NewValidationError([]apperror.FieldError{{Field: "items", Message: "at least one item is required"}})
	}

	customer, err := s.customerRepo.GetByID(ctx, input.CustomerID)
	if err != nil {
		return nil, err
	}
	if customer == nil {
		return nil, apperror.NewNotFoundError("Customer")
	}

	productMap, err := s.loadProducts(ctx, input.Items)
	if err != nil {
		return nil, err
	}

	ack := &entity.Acknowledgement{
		CompanyID:      companyID,
		CustomerID:     customer.ID,
		CustomerName:   customer.Name,
		EmployeeID:     actor.UserID,
		Status:         enum.AcknowledgementStatusAcknowledged,
		DeliveryDate:   input.DeliveryDate,
		Remarks:        input.Remarks,
		ShippingMethod: input.ShippingMethod,
		Items:          make([]entity.AcknowledgementItem, 0, len(input.Items)),
	}
	ack.SetTerms(terms)

	for i, in := range input.Items {
		item, err := buildAcknowledgementItem(i, in, productMap)
		if err != nil {
			return nil, err
		}
		ack.Items = append(ack.Items, item)
	}

	totals, err := calculateTotals(event.DocumentAcknowledgement, ack.LineItems(), ack.Terms())
	if err != nil {
		return nil, err
	}
	ack.ApplyTotals(totals)

	if err := s.ackRepo.Create(ctx, ack); err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Info("Acknowledgement created",
		zap.String("acknowledgement_id", ack.ID.String()),
		zap.String("number", utils.FormatDocumentNumber(settings.AcknowledgementPrefix, ack.DocumentNumber)),
		zap.String("grand_total", ack.GrandTotal.StringFixed(2)),
	)
	s.publish(ctx, ack)
	return ack, nil
}

func (s *AcknowledgementService) loadProducts(ctx context.Context, items []AcknowledgementItemInput) (map[uuid.UUID]*entity.Product, error) {
	var ids []uuid.UUID
	for _, item := range items {
		if item.ProductID != nil {
			ids = append(ids, *item.ProductID)
		}
	}
	productMap := make(map[uuid.UUID]*entity.Product)
	if len(ids) == 0 {
		return productMap, nil
	}

	products, err := s.productRepo.GetByIDs(ctx, utils.UniqueUUIDs(ids))
	if err != nil {
		return nil, err
	}
	for i := range products {
		productMap[products[i].ID] = &products[i]
	}
	return productMap, nil
}

func buildAcknowledgementItem(index int, in AcknowledgementItemInput, products map[uuid.UUID]*entity.Product) (entity.AcknowledgementItem, error) {
	field := fmt.Sprintf("items[%d]", index)
	if in.Quantity <= 0 {
		return entity.AcknowledgementItem{}, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".quantity", Message: "quantity must be at least 1"}})
	}
	if in.UnitPrice != nil && in.UnitPrice.IsNegative() {
		return entity.AcknowledgementItem{}, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".unit_price", Message: "unit price cannot be negative"}})
	}

	item := entity.AcknowledgementItem{
		ProductID:    in.ProductID,
		Description:  in.Description,
		Comments:     in.Comments,
		Status:       "acknowledged",
		IsCustomSize: in.IsCustomSize,
		Width:        in.Width,
		Depth:        in.Depth,
		Height:       in.Height,
	}

	var price decimal.Decimal
	if in.ProductID != nil {
		product, ok := products[*in.ProductID]
		if !ok {
			return entity.AcknowledgementItem{}, apperror.NewNotFoundError(fmt.Sprintf("Product %s", *in.ProductID))
		}
		if item.Description == "" {
			item.Description = product.Description
		}
		if !in.IsCustomSize {
			item.Width, item.Depth, item.Height = product.Width, product.Depth, product.Height
		}
		price = pricing.ItemPrice(product.Price, in.UnitPrice, product.Collection, product.Dimensions(), item.CustomDimensions(), in.IsCustomSize)
	} else {
		if in.UnitPrice == nil {
			return entity.AcknowledgementItem{}, apperror.NewValidationError([]apperror.FieldError{{Field: field + ".unit_price", Message: "unit price is required for items without a product"}})
		}
		price = *in.UnitPrice
	}

	item.SetPrice(price, in.Quantity)
	return item, nil
}

// GetAcknowledgement retrieves an acknowledgement with its items
func (s *AcknowledgementService) GetAcknowledgement(ctx context.Context, id uuid.UUID) (*entity.Acknowledgement, error) {
	ack, err := s.ackRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if ack == nil {
		return nil, apperror.NewNotFoundError("Acknowledgement")
	}
	return ack, nil
}

// ListAcknowledgements lists acknowledgements with pagination
func (s *AcknowledgementService) ListAcknowledgements(ctx context.Context, params *repository.AcknowledgementFilterParams) (*pagination.PaginatedResult[entity.Acknowledgement], error) {
	if params.Pagination == nil {
		params.Pagination = &pagination.PaginationParams{}
	}
	params.Pagination.Validate()

	acks, total, err := s.ackRepo.List(ctx, params)
	if err != nil {
		return nil, err
	}
	return pagination.NewPaginatedResult(acks, pagination.NewPagination(params.Pagination.Page, params.Pagination.PerPage, total)), nil
}

// UpdateTerms changes the discounts or VAT and recomputes the totals
func (s *AcknowledgementService) UpdateTerms(ctx context.Context, id uuid.UUID, input TermsInput) (*entity.Acknowledgement, error) {
	return s.mutate(ctx, id, func(ack *entity.Acknowledgement) error {
		terms := input.merge(ack.Terms())
		if err := terms.Validate(); err != nil {
			return pricingError(err)
		}
		ack.SetTerms(terms)
		return nil
	})
}

// UpdateItem edits one item. Changing the unit price requires the
// change_item_price permission.
func (s *AcknowledgementService) UpdateItem(ctx context.Context, actor Actor, ackID, itemID uuid.UUID, input UpdateItemInput) (*entity.Acknowledgement, error) {
	if input.UnitPrice != nil && !actor.Can(PermissionChangeItemPrice) {
		return nil, apperror.ErrForbidden
	}

	return s.mutate(ctx, ackID, func(ack *entity.Acknowledgement) error {
		item := ack.FindItem(itemID)
		if item == nil {
			return apperror.NewNotFoundError("Acknowledgement item")
		}

		if input.Description != nil {
			item.Description = *input.Description
		}
		if input.Comments != nil {
			item.Comments = input.Comments
		}
		if input.Status != nil {
			item.Status = *input.Status
		}

		quantity := item.Quantity
		if input.Quantity != nil {
			if *input.Quantity <= 0 {
				return apperror.NewValidationError([]apperror.FieldError{{Field: "quantity", Message: "quantity must be at least 1"}})
			}
			quantity = *input.Quantity
		}
		price := item.UnitPrice
		if input.UnitPrice != nil {
			if input.UnitPrice.IsNegative() {
				return apperror.NewValidationError([]apperror.FieldError{{Field: "unit_price", Message: "unit price cannot be negative"}})
			}
			logger.FromContext(ctx).Info("Item price changed",
				zap.String("item_id", item.ID.String()),
				zap.String("user_id", actor.UserID.String()),
				zap.String("from", item.UnitPrice.StringFixed(2)),
				zap.String("to", input.UnitPrice.StringFixed(2)),
			)
			price = *input.UnitPrice
		}
		item.SetPrice(price, quantity)
		return nil
	})
}

// RecalculateTotals recomputes and stores the totals from the current items
func (s *AcknowledgementService) RecalculateTotals(ctx context.Context, id uuid.UUID) (*entity.Acknowledgement, error) {
	return s.mutate(ctx, id, func(*entity.Acknowledgement) error { return nil })
}

// mutate applies change to the acknowledgement under its lock, then
// recomputes, stores and announces the totals
func (s *AcknowledgementService) mutate(ctx context.Context, id uuid.UUID, change func(*entity.Acknowledgement) error) (*entity.Acknowledgement, error) {
	unlock, err := lockDocument(ctx, s.locker, event.DocumentAcknowledgement, id)
	if err != nil {
		return nil, err
	}
	defer unlock()

	ack, err := s.GetAcknowledgement(ctx, id)
	if err != nil {
		return nil, err
	}
	if ack.Status == enum.AcknowledgementStatusCancelled {
		return nil, apperror.NewConflictError("Acknowledgement is cancelled")
	}

	if err := change(ack); err != nil {
		return nil, err
	}

	totals, err := calculateTotals(event.DocumentAcknowledgement, ack.LineItems(), ack.Terms())
	if err != nil {
		return nil, err
	}
	ack.ApplyTotals(totals)

	if err := s.reconcileInvoiced(ctx, ack); err != nil {
		return nil, err
	}

	if err := s.ackRepo.Update(ctx, ack); err != nil {
		return nil, err
	}

	s.publish(ctx, ack)
	return ack, nil
}

// reconcileInvoiced keeps an edited acknowledgement consistent with what has
// already been billed: no item below its invoiced quantity, no grand total
// below the invoiced amount. The Invoiced status follows whether every item
// is still fully billed.
func (s *AcknowledgementService) reconcileInvoiced(ctx context.Context, ack *entity.Acknowledgement) error {
	billed, err := s.invoiceRepo.BilledQuantities(ctx, ack.ID)
	if err != nil {
		return err
	}
	if len(billed) == 0 {
		return nil
	}

	fully := true
	for i, item := range ack.Items {
		if item.Quantity < billed[item.ID] {
			return apperror.NewValidationError([]apperror.FieldError{{
				Field:   fmt.Sprintf("items[%d].quantity", i),
				Message: fmt.Sprintf("quantity cannot be below the %d already invoiced", billed[item.ID]),
			}})
		}
		if item.Quantity > billed[item.ID] {
			fully = false
		}
	}

	invoiced, err := s.invoiceRepo.SumGrandTotals(ctx, ack.ID)
	if err != nil {
		return err
	}
	if ack.GrandTotal.Add(balanceTolerance).LessThan(invoiced) {
		return apperror.NewConflictError(fmt.Sprintf("Grand total %s cannot drop below the invoiced %s",
			ack.GrandTotal.StringFixed(2), invoiced.StringFixed(2)))
	}

	switch {
	case fully:
		ack.Status = enum.AcknowledgementStatusInvoiced
	case ack.Status == enum.AcknowledgementStatusInvoiced:
		ack.Status = enum.AcknowledgementStatusAcknowledged
	}
	return nil
}

// DeleteAcknowledgement soft deletes an acknowledgement that has not been invoiced
func (s *AcknowledgementService) DeleteAcknowledgement(ctx context.Context, id uuid.UUID) error {
	unlock, err := lockDocument(ctx, s.locker, event.DocumentAcknowledgement, id)
	if err != nil {
		return err
	}
	defer unlock()

	if _, err := s.GetAcknowledgement(ctx, id); err != nil {
		return err
	}

	invoiced, err := s.invoiceRepo.SumGrandTotals(ctx, id)
	if err != nil {
		return err
	}
	if !invoiced.IsZero() {
		return apperror.NewConflictError("Acknowledgement has invoices and cannot be deleted")
	}

	return s.ackRepo.Delete(ctx, id)
}

// Balance returns the grand total minus everything invoiced so far
func (s *AcknowledgementService) Balance(ctx context.Context, id uuid.UUID) (*AcknowledgementBalance, error) {
	ack, err := s.GetAcknowledgement(ctx, id)
	if err != nil {
		return nil, err
	}

	invoiced, err := s.invoiceRepo.SumGrandTotals(ctx, id)
	if err != nil {
		return nil, err
	}

	return &AcknowledgementBalance{
		AcknowledgementID: ack.ID,
		GrandTotal:        ack.GrandTotal,
		Invoiced:          invoiced,
		Balance:           ack.GrandTotal.Sub(invoiced),
	}, nil
}

func (s *AcknowledgementService) publish(ctx context.Context, ack *entity.Acknowledgement) {
	publishTotals(ctx, s.publisher, event.NewTotalsRecalculated(
		ack.CompanyID, event.DocumentAcknowledgement, ack.ID, ack.DocumentNumber, ack.Terms(), ack.Totals(),
	))
}
