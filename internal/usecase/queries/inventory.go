package queries

import (
	"context"
	"time"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

type InventoryQueries interface {
	// ListAvailable returns sellable pools of the given kind overlapping the
	// date range, ordered by start date.
	ListAvailable(ctx context.Context, kind string, from, to time.Time) ([]*PoolView, error)
	GetByID(ctx context.Context, id uuid.UUID) (*PoolView, error)
}

type PoolReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*PoolView, error)
	FindAvailable(ctx context.Context, kind string, from, to time.Time) ([]*PoolView, error)
}

type inventoryQueriesImpl struct {
	store PoolReadStore
}

func NewInventoryQueries(store PoolReadStore) InventoryQueries {
	return &inventoryQueriesImpl{store: store}
}

func (q *inventoryQueriesImpl) ListAvailable(ctx context.Context, kind string, from, to time.Time) ([]*PoolView, error) {
	return q.store.FindAvailable(ctx, kind, from, to)
}

func (q *inventoryQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*PoolView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrPoolNotFound
		}
		return nil, err
	}
	return view, nil
}
