package queries

import (
	"context"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/pkg/errs"

	"github.com/google/uuid"
)

const defaultPageSize = 50

type SaleQueries interface {
	GetByID(ctx context.Context, id uuid.UUID) (*SaleView, error)
	ListBySeller(ctx context.Context, sellerID uuid.UUID, after *Cursor, limit int) ([]*SaleListItem, *Cursor, error)
}

type SaleReadStore interface {
	FindByID(ctx context.Context, id uuid.UUID) (*SaleView, error)
	FindBySellerFirstPage(ctx context.Context, sellerID uuid.UUID, limit int32) ([]*SaleListItem, error)
	FindBySellerKeyset(ctx context.Context, sellerID uuid.UUID, after Cursor, limit int32) ([]*SaleListItem, error)
}

type saleQueriesImpl struct {
	store SaleReadStore
}

func NewSaleQueries(store SaleReadStore) SaleQueries {
	return &saleQueriesImpl{store: store}
}

func (q *saleQueriesImpl) GetByID(ctx context.Context, id uuid.UUID) (*SaleView, error) {
	view, err := q.store.FindByID(ctx, id)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSaleNotFound
		}
		return nil, err
	}
	return view, nil
}

func (q *saleQueriesImpl) ListBySeller(ctx context.Context, sellerID uuid.UUID, after *Cursor, limit int) ([]*SaleListItem, *Cursor, error) {
	if limit <= 0 || limit > defaultPageSize {
		limit = defaultPageSize
	}

	var (
		items []*SaleListItem
		err   error
	)
	if after == nil {
		items, err = q.store.FindBySellerFirstPage(ctx, sellerID, int32(limit))
	} else {
		items, err = q.store.FindBySellerKeyset(ctx, sellerID, *after, int32(limit))
	}
	if err != nil {
		return nil, nil, err
	}

	var next *Cursor
	if len(items) == limit {
		last := items[len(items)-1]
		next = &Cursor{LastCreatedAt: last.CreatedAt, LastID: last.ID}
	}
	return items, next, nil
}
