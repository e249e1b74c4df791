package service_test

import (
	"context"
	"net/http"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
	"github.com/sangkips/alinea-erp/internal/domain/repository/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func TestPricingService_Quote(t *testing.T) {
	svc := service.NewPricingService(nil)

	tests := []struct {
		name  string
		items []pricing.LineItem
		terms pricing.Terms
		grand string
	}{
		{
			name:  "discount and VAT",
			items: []pricing.LineItem{pricing.NewLineItem(dec("600"), 1), pricing.NewLineItem(dec("400"), 1)},
			terms: pricing.Terms{Discount: 10, VAT: 7},
			grand: "963.00",
		},
		{
			name:  "rounded to cents",
			items: []pricing.LineItem{pricing.NewLineItem(dec("33.33"), 1)},
			terms: pricing.Terms{Discount: 7, SecondDiscount: 3, VAT: 7},
			grand: "32.17",
		},
		{
			name:  "no items",
			terms: pricing.Terms{VAT: 7},
			grand: "0.00",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result, err := svc.Quote(context.Background(), tt.items, tt.terms)
			require.NoError(t, err)
			assert.Equal(t, tt.grand, result.Totals.GrandTotal.StringFixed(2))
			assert.NotNil(t, result.Items)
		})
	}
}

func TestPricingService_QuoteInvalid(t *testing.T) {
	svc := service.NewPricingService(nil)

	_, err := svc.Quote(context.Background(), []pricing.LineItem{pricing.NewLineItem(dec("10"), 1)}, pricing.Terms{VAT: -1})
	appErr := requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Equal(t, "vat", appErr.Errors[0].Field)

	bad := pricing.LineItem{UnitPrice: dec("10"), Quantity: 2, Total: dec("30")}
	_, err = svc.Quote(context.Background(), []pricing.LineItem{bad}, pricing.Terms{})
	appErr = requireAppError(t, err, http.StatusUnprocessableEntity)
	assert.Equal(t, "items[0].total", appErr.Errors[0].Field)
}

func TestPricingService_QuoteCustomSize(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductRepository(ctrl)
	svc := service.NewPricingService(products)

	product := &entity.Product{ID: uuid.New(), Collection: "Dellarobbia Thailand", Price: dec("25000"), Width: 1800, Depth: 950, Height: 750}
	products.EXPECT().GetByID(gomock.Any(), product.ID).Return(product, nil)

	quote, err := svc.QuoteCustomSize(context.Background(), product.ID, pricing.Dimensions{Width: 2000, Depth: 1050, Height: 750})
	require.NoError(t, err)

	// width +200 is 11%, depth +100 is 10%
	assert.Equal(t, 21, quote.UpchargePct)
	assert.Equal(t, "30250.00", quote.UnitPrice.StringFixed(2))
}

func TestPricingService_QuoteCustomSizeUnknownProduct(t *testing.T) {
	ctrl := gomock.NewController(t)
	products := mocks.NewMockProductRepository(ctrl)
	products.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)

	_, err := service.NewPricingService(products).QuoteCustomSize(context.Background(), uuid.New(), pricing.Dimensions{})
	requireAppError(t, err, http.StatusNotFound)
}
