package service

import (
	"context"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/pkg/apperror"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// PricingService answers stateless price questions
type PricingService struct {
	productRepo repository.ProductRepository
}

// NewPricingService creates a new pricing service
func NewPricingService(productRepo repository.ProductRepository) *PricingService {
	return &PricingService{productRepo: productRepo}
}

// QuoteResult is a priced order that was not stored
type QuoteResult struct {
	Items  []pricing.LineItem `json:"items"`
	Terms  pricing.Terms      `json:"terms"`
	Totals pricing.Totals     `json:"totals"`
}

// Quote computes the totals of items under terms. Totals are rounded to
// money precision.
func (s *PricingService) Quote(ctx context.Context, items []pricing.LineItem, terms pricing.Terms) (*QuoteResult, error) {
	totals, err := calculateTotals(event.DocumentQuote, items, terms)
	if err != nil {
		return nil, err
	}

	logger.FromContext(ctx).Debug("Quote computed",
		zap.Int("items", len(items)),
		zap.String("grand_total", totals.GrandTotal.StringFixed(2)),
	)

	if items == nil {
		items = []pricing.LineItem{}
	}
	return &QuoteResult{Items: items, Terms: terms, Totals: totals.Round(pricing.MoneyPlaces)}, nil
}

// CustomSizeQuote is the unit price of a product built to a custom size
type CustomSizeQuote struct {
	ProductID   uuid.UUID          `json:"product_id"`
	Collection  string             `json:"collection"`
	Standard    pricing.Dimensions `json:"standard"`
	Custom      pricing.Dimensions `json:"custom"`
	UpchargePct int                `json:"upcharge_percentage"`
	ListPrice   decimal.Decimal    `json:"list_price"`
	UnitPrice   decimal.Decimal    `json:"unit_price"`
}

// QuoteCustomSize prices a catalogue product at custom dimensions
func (s *PricingService) QuoteCustomSize(ctx context.Context, productID uuid.UUID, custom pricing.Dimensions) (*CustomSizeQuote, error) {
	product, err := s.productRepo.GetByID(ctx, productID)
	if err != nil {
		return nil, err
	}
	if product == nil {
		return nil, apperror.NewNotFoundError("Product")
	}

	standard := product.Dimensions()
	pct := pricing.CustomSizeUpcharge(product.Collection, standard, custom)
	return &CustomSizeQuote{
		ProductID:   product.ID,
		Collection:  product.Collection,
		Standard:    standard,
		Custom:      custom,
		UpchargePct: pct,
		ListPrice:   product.Price,
		UnitPrice:   pricing.ApplyUpcharge(product.Price, pct).Round(pricing.MoneyPlaces),
	}, nil
}
