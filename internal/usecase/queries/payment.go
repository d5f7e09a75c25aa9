package queries

import (
	"context"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type PaymentQueries interface {
	// History returns every payment recorded against the sale, ordered by
	// receipt time. Used both for display and balance reconciliation.
	History(ctx context.Context, saleID uuid.UUID) ([]*PaymentView, error)
}

type PaymentReadStore interface {
	FindBySale(ctx context.Context, saleID uuid.UUID) ([]*PaymentView, error)
	SaleExists(ctx context.Context, saleID uuid.UUID) (bool, error)
}

type paymentQueriesImpl struct {
	store PaymentReadStore
}

func NewPaymentQueries(store PaymentReadStore) PaymentQueries {
	return &paymentQueriesImpl{store: store}
}

func (q *paymentQueriesImpl) History(ctx context.Context, saleID uuid.UUID) ([]*PaymentView, error) {
	exists, err := q.store.SaleExists(ctx, saleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSaleNotFound
		}
		return nil, err
	}
	if !exists {
		return nil, errs.ErrSaleNotFound
	}
	return q.store.FindBySale(ctx, saleID)
}
