package handler_test

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/application/service"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	eventMocks "github.com/sangkips/alinea-erp/internal/domain/event/mocks"
	"github.com/sangkips/alinea-erp/internal/domain/repository/mocks"
	"github.com/sangkips/alinea-erp/internal/infrastructure/lock"
	infraRepo "github.com/sangkips/alinea-erp/internal/infrastructure/repository"
	"github.com/sangkips/alinea-erp/internal/presentation/http/handler"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func init() {
	gin.SetMode(gin.TestMode)
}

type envelope struct {
	Success bool            `json:"success"`
	Message string          `json:"message"`
	Data    json.RawMessage `json:"data"`
	Errors  []struct {
		Field   string `json:"field"`
		Message string `json:"message"`
	} `json:"errors"`
}

// authenticated stands in for AuthMiddleware
func authenticated(userID, companyID uuid.UUID, permissions ...string) gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Set("user_id", userID)
		c.Set("company_id", companyID)
		c.Set("user_permissions", permissions)
		c.Request = c.Request.WithContext(infraRepo.WithCompany(c.Request.Context(), companyID))
		c.Next()
	}
}

func doJSON(t *testing.T, router *gin.Engine, method, path string, body interface{}) (*httptest.ResponseRecorder, envelope) {
	t.Helper()
	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	var env envelope
	if w.Code != http.StatusNoContent {
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &env), w.Body.String())
	}
	return w, env
}

func TestPricingHandler_Quote(t *testing.T) {
	router := gin.New()
	h := handler.NewPricingHandler(service.NewPricingService(nil))
	router.POST("/pricing/quote", h.Quote)

	t.Run("computes totals", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodPost, "/pricing/quote", map[string]interface{}{
			"items": []map[string]interface{}{
				{"unit_price": "600", "quantity": 1},
				{"unit_price": 400, "quantity": 1},
			},
			"discount": 10,
			"vat":      7,
		})
		require.Equal(t, http.StatusOK, w.Code)

		var result service.QuoteResult
		require.NoError(t, json.Unmarshal(env.Data, &result))
		assert.True(t, result.Totals.GrandTotal.Equal(decimal.NewFromInt(963)))
		assert.True(t, result.Totals.DiscountAmount.Equal(decimal.NewFromInt(100)))
	})

	t.Run("rejects out of range VAT", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodPost, "/pricing/quote", map[string]interface{}{
			"items": []map[string]interface{}{{"unit_price": "10", "quantity": 1}},
			"vat":   150,
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.False(t, env.Success)
		require.Len(t, env.Errors, 1)
		assert.Equal(t, "vat", env.Errors[0].Field)
	})

	t.Run("rejects negative quantity", func(t *testing.T) {
		w, env := doJSON(t, router, http.MethodPost, "/pricing/quote", map[string]interface{}{
			"items": []map[string]interface{}{{"unit_price": "10", "quantity": -1}},
		})
		require.Equal(t, http.StatusUnprocessableEntity, w.Code)
		assert.Equal(t, "items[0].quantity", env.Errors[0].Field)
	})

	t.Run("malformed body", func(t *testing.T) {
		req := httptest.NewRequest(http.MethodPost, "/pricing/quote", bytes.NewBufferString("{"))
		w := httptest.NewRecorder()
		router.ServeHTTP(w, req)
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})
}

type ackRouter struct {
	router    *gin.Engine
	acks      *mocks.MockAcknowledgementRepository
	customers *mocks.MockCustomerRepository
	companies *mocks.MockCompanyRepository
	publisher *eventMocks.MockPublisher
}

func newAckRouter(t *testing.T, auth gin.HandlerFunc) *ackRouter {
	ctrl := gomock.NewController(t)
	r := &ackRouter{
		acks:      mocks.NewMockAcknowledgementRepository(ctrl),
		customers: mocks.NewMockCustomerRepository(ctrl),
		companies: mocks.NewMockCompanyRepository(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	svc := service.NewAcknowledgementService(
		r.acks,
		mocks.NewMockInvoiceRepository(ctrl),
		mocks.NewMockProductRepository(ctrl),
		r.customers,
		r.companies,
		lock.NewLocalLocker(),
		r.publisher,
	)
	h := handler.NewAcknowledgementHandler(svc)

	r.router = gin.New()
	group := r.router.Group("")
	if auth != nil {
		group.Use(auth)
	}
	group.POST("/acknowledgements", h.Create)
	group.GET("/acknowledgements/:id", h.Get)
	group.PATCH("/acknowledgements/:id/items/:item_id", h.UpdateItem)
	return r
}

func TestAcknowledgementHandler_Create(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	r := newAckRouter(t, authenticated(userID, companyID))
	customerID := uuid.New()

	r.companies.EXPECT().GetByID(gomock.Any(), companyID).
		Return(&entity.Company{ID: companyID, Settings: entity.DefaultCompanySettings()}, nil)
	r.customers.EXPECT().GetByID(gomock.Any(), customerID).
		Return(&entity.Customer{ID: customerID, Name: "Hotel Siam"}, nil)
	r.acks.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(func(_ context.Context, ack *entity.Acknowledgement) error {
		ack.ID = uuid.New()
		ack.DocumentNumber = entity.FirstDocumentNumber
		return nil
	})
	r.publisher.EXPECT().PublishTotalsRecalculated(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, e event.TotalsRecalculated) error {
			assert.Equal(t, companyID, e.CompanyID)
			return nil
		})

	w, env := doJSON(t, r.router, http.MethodPost, "/acknowledgements", map[string]interface{}{
		"customer_id": customerID,
		"discount":    10,
		"items": []map[string]interface{}{
			{"description": "Dining table", "quantity": 2, "unit_price": "500"},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var ack entity.Acknowledgement
	require.NoError(t, json.Unmarshal(env.Data, &ack))
	assert.Equal(t, entity.FirstDocumentNumber, ack.DocumentNumber)
	assert.Equal(t, userID, ack.EmployeeID)
	assert.Equal(t, "963.00", ack.GrandTotal.StringFixed(2))
}

func TestAcknowledgementHandler_CreateRequiresItems(t *testing.T) {
	r := newAckRouter(t, authenticated(uuid.New(), uuid.New()))

	w, env := doJSON(t, r.router, http.MethodPost, "/acknowledgements", map[string]interface{}{
		"customer_id": uuid.New(),
		"items":       []interface{}{},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.False(t, env.Success)
}

func TestAcknowledgementHandler_Unauthenticated(t *testing.T) {
	r := newAckRouter(t, nil)

	w, _ := doJSON(t, r.router, http.MethodPost, "/acknowledgements", map[string]interface{}{})
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestAcknowledgementHandler_Get(t *testing.T) {
	r := newAckRouter(t, authenticated(uuid.New(), uuid.New()))

	t.Run("invalid id", func(t *testing.T) {
		w, env := doJSON(t, r.router, http.MethodGet, "/acknowledgements/not-a-uuid", nil)
		assert.Equal(t, http.StatusBadRequest, w.Code)
		assert.Equal(t, "Invalid acknowledgement ID", env.Message)
	})

	t.Run("not found", func(t *testing.T) {
		r.acks.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)
		w, _ := doJSON(t, r.router, http.MethodGet, "/acknowledgements/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
	})

	t.Run("repository failure is masked", func(t *testing.T) {
		r.acks.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, assert.AnError)
		w, env := doJSON(t, r.router, http.MethodGet, "/acknowledgements/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusInternalServerError, w.Code)
		assert.Equal(t, "Internal server error", env.Message)
	})
}

func TestAcknowledgementHandler_UpdateItemPriceNeedsPermission(t *testing.T) {
	r := newAckRouter(t, authenticated(uuid.New(), uuid.New()))

	path := "/acknowledgements/" + uuid.New().String() + "/items/" + uuid.New().String()
	w, _ := doJSON(t, r.router, http.MethodPatch, path, map[string]interface{}{"unit_price": "1"})
	assert.Equal(t, http.StatusForbidden, w.Code)
}
