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
	"github.com/sangkips/alinea-erp/internal/domain/enum"
	eventMocks "github.com/sangkips/alinea-erp/internal/domain/event/mocks"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	"github.com/sangkips/alinea-erp/internal/domain/repository/mocks"
	"github.com/sangkips/alinea-erp/internal/infrastructure/lock"
	"github.com/sangkips/alinea-erp/internal/presentation/http/handler"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type invoiceRouter struct {
	router    *gin.Engine
	invoices  *mocks.MockInvoiceRepository
	acks      *mocks.MockAcknowledgementRepository
	companies *mocks.MockCompanyRepository
	publisher *eventMocks.MockPublisher
}

func newInvoiceRouter(t *testing.T, auth gin.HandlerFunc) *invoiceRouter {
	ctrl := gomock.NewController(t)
	r := &invoiceRouter{
		invoices:  mocks.NewMockInvoiceRepository(ctrl),
		acks:      mocks.NewMockAcknowledgementRepository(ctrl),
		companies: mocks.NewMockCompanyRepository(ctrl),
		publisher: eventMocks.NewMockPublisher(ctrl),
	}
	h := handler.NewInvoiceHandler(service.NewInvoiceService(r.invoices, r.acks, r.companies, lock.NewLocalLocker(), r.publisher))

	r.router = gin.New()
	group := r.router.Group("")
	if auth != nil {
		group.Use(auth)
	}
	group.POST("/acknowledgements/:id/invoices", h.Create)
	group.GET("/acknowledgements/:id/invoices", h.ListByAcknowledgement)
	group.GET("/invoices/:id", h.Get)
	return r
}

// billableAcknowledgement is 400 x 2 + 200 x 1 at 10% discount and 7% VAT
func billableAcknowledgement(companyID uuid.UUID) *entity.Acknowledgement {
	ack := &entity.Acknowledgement{
		ID:             uuid.New(),
		CompanyID:      companyID,
		DocumentNumber: entity.FirstDocumentNumber,
		CustomerID:     uuid.New(),
		CustomerName:   "Hotel Siam",
		Items: []entity.AcknowledgementItem{
			{ID: uuid.New(), Description: "Sofa"},
			{ID: uuid.New(), Description: "Side table"},
		},
	}
	ack.Items[0].SetPrice(decimal.NewFromInt(400), 2)
	ack.Items[1].SetPrice(decimal.NewFromInt(200), 1)
	ack.Discount = 10
	ack.VAT = 7
	ack.GrandTotal = decimal.NewFromInt(963)
	return ack
}

func TestInvoiceHandler_CreateWithoutBodyBillsEverything(t *testing.T) {
	userID, companyID := uuid.New(), uuid.New()
	r := newInvoiceRouter(t, authenticated(userID, companyID, "manage-invoices"))
	ack := billableAcknowledgement(companyID)

	r.companies.EXPECT().GetByID(gomock.Any(), companyID).
		Return(&entity.Company{ID: companyID, Settings: entity.DefaultCompanySettings()}, nil)
	r.acks.EXPECT().GetByID(gomock.Any(), ack.ID).Return(ack, nil)
	r.invoices.EXPECT().BilledQuantities(gomock.Any(), ack.ID).Return(map[uuid.UUID]int64{}, nil)
	r.invoices.EXPECT().SumGrandTotals(gomock.Any(), ack.ID).Return(decimal.Zero, nil)
	r.invoices.EXPECT().Create(gomock.Any(), gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, inv *entity.Invoice, post repository.PostingFunc) error {
			inv.ID = uuid.New()
			inv.DocumentNumber = entity.FirstDocumentNumber
			_, err := post(inv)
			return err
		})
	r.acks.EXPECT().Update(gomock.Any(), ack).Return(nil)
	r.publisher.EXPECT().PublishTotalsRecalculated(gomock.Any(), gomock.Any()).Return(nil)

	w, env := doJSON(t, r.router, http.MethodPost, "/acknowledgements/"+ack.ID.String()+"/invoices", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var invoice entity.Invoice
	require.NoError(t, json.Unmarshal(env.Data, &invoice))
	assert.Equal(t, entity.FirstDocumentNumber, invoice.DocumentNumber)
	assert.Equal(t, userID, invoice.EmployeeID)
	assert.Len(t, invoice.Items, 2)
	assert.Equal(t, "963.00", invoice.GrandTotal.StringFixed(2))
	assert.Equal(t, enum.AcknowledgementStatusInvoiced, ack.Status)
}

func TestInvoiceHandler_CreateOverbilledItem(t *testing.T) {
	companyID := uuid.New()
	r := newInvoiceRouter(t, authenticated(uuid.New(), companyID))
	ack := billableAcknowledgement(companyID)

	r.companies.EXPECT().GetByID(gomock.Any(), companyID).
		Return(&entity.Company{ID: companyID, Settings: entity.DefaultCompanySettings()}, nil)
	r.acks.EXPECT().GetByID(gomock.Any(), ack.ID).Return(ack, nil)
	r.invoices.EXPECT().BilledQuantities(gomock.Any(), ack.ID).Return(map[uuid.UUID]int64{ack.Items[0].ID: 1}, nil)

	w, env := doJSON(t, r.router, http.MethodPost, "/acknowledgements/"+ack.ID.String()+"/invoices", map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": ack.Items[0].ID, "quantity": 2}},
	})
	require.Equal(t, http.StatusUnprocessableEntity, w.Code)
	require.Len(t, env.Errors, 1)
	assert.Equal(t, "items[0].quantity", env.Errors[0].Field)
	assert.Equal(t, "only 1 left to invoice", env.Errors[0].Message)
}

func TestInvoiceHandler_CreateRejectsMalformedInput(t *testing.T) {
	r := newInvoiceRouter(t, authenticated(uuid.New(), uuid.New()))

	w, env := doJSON(t, r.router, http.MethodPost, "/acknowledgements/nope/invoices", nil)
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Invalid acknowledgement ID", env.Message)

	w, _ = doJSON(t, r.router, http.MethodPost, "/acknowledgements/"+uuid.New().String()+"/invoices", map[string]interface{}{
		"items": []map[string]interface{}{{"item_id": uuid.New(), "quantity": 0}},
	})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestInvoiceHandler_CreateUnauthenticated(t *testing.T) {
	r := newInvoiceRouter(t, nil)

	w, _ := doJSON(t, r.router, http.MethodPost, "/acknowledgements/"+uuid.New().String()+"/invoices", nil)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestInvoiceHandler_ListByAcknowledgement(t *testing.T) {
	companyID := uuid.New()
	r := newInvoiceRouter(t, authenticated(uuid.New(), companyID))
	ack := billableAcknowledgement(companyID)

	r.acks.EXPECT().GetByID(gomock.Any(), ack.ID).Return(ack, nil)
	r.invoices.EXPECT().ListByAcknowledgement(gomock.Any(), ack.ID).Return(nil, nil)

	w, env := doJSON(t, r.router, http.MethodGet, "/acknowledgements/"+ack.ID.String()+"/invoices", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, `[]`, string(env.Data))
}

func TestInvoiceHandler_Get(t *testing.T) {
	r := newInvoiceRouter(t, authenticated(uuid.New(), uuid.New()))

	t.Run("not found", func(t *testing.T) {
		r.invoices.EXPECT().GetByID(gomock.Any(), gomock.Any()).Return(nil, nil)
		w, env := doJSON(t, r.router, http.MethodGet, "/invoices/"+uuid.New().String(), nil)
		assert.Equal(t, http.StatusNotFound, w.Code)
		assert.Equal(t, "Invoice not found", env.Message)
	})

	t.Run("found", func(t *testing.T) {
		id := uuid.New()
		r.invoices.EXPECT().GetByID(gomock.Any(), id).Return(&entity.Invoice{ID: id, DocumentNumber: 100002}, nil)
		w, env := doJSON(t, r.router, http.MethodGet, "/invoices/"+id.String(), nil)
		require.Equal(t, http.StatusOK, w.Code)

		var invoice entity.Invoice
		require.NoError(t, json.Unmarshal(env.Data, &invoice))
		assert.Equal(t, int64(100002), invoice.DocumentNumber)
	})
}
