package handler_test

import (
	"context"
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	eventMocks "github.com/sangkips/alinea-erp/internal/domain/event/mocks"
	"github.com/sangkips/alinea-erp/internal/domain/repository/mocks"
	"github.com/sangkips/alinea-erp/internal/infrastructure/lock"
	"github.com/sangkips/alinea-erp/internal/presentation/http/handler"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type poRouter struct {
	router    *gin.Engine
	pos       *mocks.MockPurchaseOrderRepository
	companies *mocks.MockCompanyRepository
	publisher *eventMocks.MockPublisher
}

func newPurchaseOrderRouter(t *testing.T, auth gin.HandlerFunc) *poRouter {
	ctrl := gomock.NewController(t)
	r := &poRouter{
		pos:       mocks.NewMockPurchaseOrderRepository(ctrl),
		companies: mocks.NewMockCompanyRepository(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	h := handler.NewPurchaseOrderHandler(service.NewPurchaseOrderService(r.pos, r.companies, lock.NewLocalLocker(), r.publisher))

	r.router = gin.New()
	group := r.router.Group("")
	if auth != nil {
		group.Use(auth)
	}
	group.POST("/purchase-orders", h.Create)
	group.GET("/purchase-orders/:id", h.Get)
	group.PATCH("/purchase-orders/:id/terms", h.UpdateTerms)
	group.POST("/purchase-orders/:id/recalculate", h.Recalculate)
	return r
}

// teakOrder is 4 planks at 250 less 10%, with 7% VAT on stale totals
func teakOrder() *entity.PurchaseOrder {
	po := &entity.PurchaseOrder{
		ID:           uuid.New(),
		SupplierName: "Teak Supply",
		Currency:     "THB",
		Items: []entity.PurchaseOrderItem{
			{ID: uuid.New(), Description: "Teak plank", Quantity: 4, UnitCost: decimal.NewFromInt(250), Discount: 10},
		},
	}
	po.VAT = 7
	po.GrandTotal = decimal.NewFromInt(1)
	return po
}

func TestPurchaseOrderHandler_Create(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	r := newPurchaseOrderRouter(t, authenticated(userID, companyID))

	r.companies.EXPECT().GetByID(gomock.Any(), companyID).
		Return(&entity.Company{ID: companyID, Settings: entity.DefaultCompanySettings()}, nil)
	r.pos.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, po *entity.PurchaseOrder) error {
		po.ID = uuid.New()
		po.DocumentNumber = entity.FirstDocumentNumber
		return nil
	})
	r.publisher.EXPECT().PublishTotalsRecalculated(gomock.Any(), gomock.Any()).Return(nil)

	w, env := doJSON(t, r.router, http.MethodPost, "/purchase-orders", map[string]interface{}{
		"supplier_name": "Teak Supply",
		"items": []map[string]interface{}{
			{"description": "Teak plank", "quantity": 4, "unit_cost": "250", "discount": 10},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var po entity.PurchaseOrder
	require.NoError(t, json.Unmarshal(env.Data, &po))
	assert.Equal(t, userID, po.EmployeeID)
	assert.Equal(t, "THB", po.Currency)
	require.Len(t, po.Items, 1)
	assert.Equal(t, "225.00", po.Items[0].UnitPrice.StringFixed(2))
	assert.Equal(t, "963.00", po.GrandTotal.StringFixed(2))
}

func TestPurchaseOrderHandler_CreateValidation(t *testing.T) {
	companyID := uuid.New()
	r := newPurchaseOrderRouter(t, authenticated(uuid.New(), companyID))

	t.Run("supplier is required", func(t *testing.T) {
		w, _ := doJSON(t, r.router, http.MethodPost, "/purchase-orders", map[string]interface{}{
			"items": []map[string]interface{}{{"description": "Teak plank", "quantity": 1, "unit_cost": "1"}},
		})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("item discount out of range", func(t *testing.T) {
		r.companies.EXPECT().GetByID(gomock.Any(), companyID).
			Return(&entity.Company{ID: companyID, Settings: entity.DefaultCompanySettings()}, nil)

		w, env := doJSON(t, r.router, http.MethodPost, "/purchase-orders", map[string]interface{}{
			"supplier_name": "Teak Supply",
			"items":         []map[string]interface{}{{"description": "Teak plank", "quantity": 1, "unit_cost": "1", "discount": 120}},
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "items[0].discount", env.Errors[0].Field)
	})
}

func TestPurchaseOrderHandler_UpdateTerms(t *testing.T) {
	r := newPurchaseOrderRouter(t, authenticated(uuid.New(), uuid.New()))

	t.Run("bumps the revision", func(t *testing.T) {
		po := teakOrder()
		r.pos.EXPECT().GetByID(gomock.Any(), po.ID).Return(po, nil)
		r.pos.EXPECT().Update(gomock.Any(), po).Return(nil)
		r.publisher.EXPECT().PublishTotalsRecalculated(gomock.Any(), gomock.Any()).Return(nil)

		w, env := doJSON(t, r.router, http.MethodPatch, "/purchase-orders/"+po.ID.String()+"/terms", map[string]interface{}{
			"second_discount": 5,
		})
		require.Equal(t, http.StatusOK, w.Code, w.Body.String())

		var got entity.PurchaseOrder
		require.NoError(t, json.Unmarshal(env.Data, &got))
		assert.Equal(t, 1, got.Revision)
		assert.Equal(t, "914.85", got.GrandTotal.StringFixed(2))
	})

	t.Run("rejects VAT above 100", func(t *testing.T) {
		po := teakOrder()
		r.pos.EXPECT().GetByID(gomock.Any(), po.ID).Return(po, nil)

		w, env := doJSON(t, r.router, http.MethodPatch, "/purchase-orders/"+po.ID.String()+"/terms", map[string]interface{}{
			"vat": 101,
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "vat", env.Errors[0].Field)
	})
}

func TestPurchaseOrderHandler_Recalculate(t *testing.T) {
	r := newPurchaseOrderRouter(t, authenticated(uuid.New(), uuid.New()))
	po := teakOrder()

	r.pos.EXPECT().GetByID(gomock.Any(), po.ID).Return(po, nil)
	r.pos.EXPECT().Update(gomock.Any(), po).Return(nil)
	r.publisher.EXPECT().PublishTotalsRecalculated(gomock.Any(), gomock.Any()).Return(nil)

	w, env := doJSON(t, r.router, http.MethodPost, "/purchase-orders/"+po.ID.String()+"/recalculate", nil)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var got entity.PurchaseOrder
	require.NoError(t, json.Unmarshal(env.Data, &got))
	assert.Equal(t, "963.00", got.GrandTotal.StringFixed(2))
}

func TestPurchaseOrderHandler_Get(t *testing.T) {
	r := newPurchaseOrderRouter(t, authenticated(uuid.New(), uuid.New()))

	w, env := doJSON(t, r.router, http.MethodGet, "/purchase-orders/bad", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid purchase order ID", env.Message)

	r.pos.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)
	w, env = doJSON(t, r.router, http.MethodGet, "/purchase-orders/"+uuid.New().String(), nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Equal(t, "Purchase order not found", env.Message)
}
