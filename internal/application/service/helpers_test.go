package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	infraRepo "github.com/sangkips/alinea-erp/internal/infrastructure/repository"
	"github.com/sangkips/alinea-erp/pkg/apperror"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
)

type busyLocker struct{}

func (busyLocker) Lock(context.Context, string) (func(), error) {
	return nil, errors.New("lock not obtained")
}

func companyContext() (context.Context, uuid.UUID) {
	companyID := uuid.New()
	return infraRepo.WithCompany(context.Background(), companyID), companyID
}

func testCompany(id uuid.UUID) *entity.Company {
	return &entity.Company{ID: id, Name: "Alinea Group", Slug: "alinea-group", Settings: entity.DefaultCompanySettings()}
}

func dec(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func decPtr(s string) *decimal.Decimal {
	v := dec(s)
	return &v
}

func intPtr(v int) *int {
	return &v
}

func requireAppError(t *testing.T, err error, code int) *apperror.AppError {
	t.Helper()
	require.Error(t, err)
	appErr := apperror.GetAppError(err)
	require.Equal(t, code, appErr.Code, appErr.Message)
	return appErr
}

// sampleAcknowledgement returns 400 x 2 + 200 x 1 at 10% discount and 7% VAT
func sampleAcknowledgement(companyID uuid.UUID) *entity.Acknowledgement {
	ack := &entity.Acknowledgement{
		ID:             uuid.New(),
		CompanyID:      companyID,
		DocumentNumber: 100001,
		CustomerID:     uuid.New(),
		CustomerName:   "Hotel Siam",
		Items: []entity.AcknowledgementItem{
			{ID: uuid.New(), Description: "Sofa"},
			{ID: uuid.New(), Description: "Side table"},
		},
	}
	ack.Items[0].SetPrice(dec("400"), 2)
	ack.Items[1].SetPrice(dec("200"), 1)
	ack.Discount = 10
	ack.VAT = 7
	ack.Subtotal = dec("1000")
	ack.DiscountAmount = dec("100")
	ack.PostDiscountTotal = dec("900")
	ack.Total = dec("900")
	ack.VATAmount = dec("63")
	ack.GrandTotal = dec("963")
	return ack
}
