package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/sangkips/alinea-erp/internal/domain/entity"
	"github.com/sangkips/alinea-erp/internal/domain/event"
	"github.com/sangkips/alinea-erp/internal/domain/pricing"
	"github.com/sangkips/alinea-erp/internal/domain/repository"
	infraRepo "github.com/sangkips/alinea-erp/internal/infrastructure/repository"
	"github.com/sangkips/alinea-erp/pkg/apperror"
	"github.com/sangkips/alinea-erp/pkg/logger"
	"github.com/sangkips/alinea-erp/pkg/metrics"
	"go.uber.org/zap"
)

// PermissionChangeItemPrice allows overriding the unit price of an ordered item
const PermissionChangeItemPrice = "change_item_price"

// OrderLocker serializes totals changes of one document
type OrderLocker interface {
	Lock(ctx context.Context, key string) (unlock func(), err error)
}

// Actor is the authenticated user a request acts for
type Actor struct {
	UserID      uuid.UUID
	Permissions []string
}

// Can reports whether the actor holds permission
func (a Actor) Can(permission string) bool {
	for _, p := range a.Permissions {
		if p == permission {
			return true
		}
	}
	return false
}

// TermsInput carries a partial update of order terms
type TermsInput struct {
	Discount       *int
	SecondDiscount *int
	VAT            *int
}

// merge applies the set fields of in on top of current
func (in TermsInput) merge(current pricing.Terms) pricing.Terms {
	if in.Discount != nil {
		current.Discount = *in.Discount
	}
	if in.SecondDiscount != nil {
		current.SecondDiscount = *in.SecondDiscount
	}
	if in.VAT != nil {
		current.VAT = *in.VAT
	}
	return current
}

func companyFromContext(ctx context.Context) (uuid.UUID, error) {
	companyID, ok := infraRepo.GetCompanyID(ctx)
	if !ok {
		return uuid.Nil, apperror.NewBadRequestError("Company context required")
	}
	return companyID, nil
}

func loadCompanySettings(ctx context.Context, repo repository.CompanyRepository) (entity.CompanySettings, error) {
	companyID, err := companyFromContext(ctx)
	if err != nil {
		return entity.CompanySettings{}, err
	}
	company, err := repo.GetByID(ctx, companyID)
	if err != nil {
		return entity.CompanySettings{}, err
	}
	if company == nil {
		return entity.CompanySettings{}, apperror.NewNotFoundError("Company")
	}
	return company.Settings.WithDefaults(), nil
}

// calculateTotals runs the calculator and records the outcome for document
func calculateTotals(document string, items []pricing.LineItem, terms pricing.Terms) (pricing.Totals, error) {
	totals, err := pricing.Calculate(items, terms)
	if err != nil {
		metrics.TotalsCalculations.WithLabelValues(document, metrics.ResultInvalid).Inc()
		return pricing.Totals{}, pricingError(err)
	}
	if totals.IsZero() {
		metrics.TotalsCalculations.WithLabelValues(document, metrics.ResultZero).Inc()
	} else {
		metrics.TotalsCalculations.WithLabelValues(document, metrics.ResultOK).Inc()
	}
	return totals, nil
}

// pricingError converts calculator errors into 422 responses
func pricingError(err error) error {
	var verr *pricing.ValidationError
	if errors.As(err, &verr) {
		msg := verr.Err.Error()
		if verr.Details != "" {
			msg = fmt.Sprintf("%s (%s)", msg, verr.Details)
		}
		return apperror.NewValidationError([]apperror.FieldError{{Field: verr.Field, Message: msg}})
	}
	if errors.Is(err, pricing.ErrInvalidPercentage) || errors.Is(err, pricing.ErrInvalidLineItem) {
		return apperror.NewValidationError([]apperror.FieldError{{Field: "items", Message: err.Error()}})
	}
	return err
}

// lockDocument takes the per-document lock and records the wait time
func lockDocument(ctx context.Context, locker OrderLocker, document string, id uuid.UUID) (func(), error) {
	start := time.Now()
	unlock, err := locker.Lock(ctx, document+":"+id.String())
	metrics.OrderLockWait.WithLabelValues(document).Observe(time.Since(start).Seconds())
	if err != nil {
		logger.FromContext(ctx).Warn("Could not lock document",
			zap.String("document", document),
			zap.String("id", id.String()),
			zap.Error(err),
		)
		return nil, apperror.ErrOrderBusy
	}
	return unlock, nil
}

// publishTotals emits the totals event. Delivery failures are logged, the
// stored totals stay authoritative.
func publishTotals(ctx context.Context, publisher event.Publisher, e event.TotalsRecalculated) {
	if publisher == nil {
		return
	}
	if err := publisher.PublishTotalsRecalculated(ctx, e); err != nil {
		logger.FromContext(ctx).Warn("Failed to publish totals event",
			zap.String("document_type", e.DocumentType),
			zap.String("document_id", e.DocumentID.String()),
			zap.Error(err),
		)
	}
}
