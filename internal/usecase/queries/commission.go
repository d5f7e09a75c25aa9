package queries

import (
	"context"

	"github.com/google/uuid"
)

type CommissionQueries interface {
	ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*CommissionEntryView, error)
}

type CommissionReadStore interface {
	FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*CommissionEntryView, error)
}

type commissionQueriesImpl struct {
	store CommissionReadStore
}

func NewCommissionQueries(store CommissionReadStore) CommissionQueries {
	return &commissionQueriesImpl{store: store}
}

func (q *commissionQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID) ([]*CommissionEntryView, error) {
	return q.store.FindBySeller(ctx, sellerID)
}
