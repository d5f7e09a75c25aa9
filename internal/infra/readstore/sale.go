package readstore

import (
	"context"
	"errors"

	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type SaleReadStore struct {
	db db.DBTX
}

func NewSaleReadStore(dbtx db.DBTX) *SaleReadStore {
	return &SaleReadStore{db: dbtx}
}

func (s *SaleReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.SaleView, error) {
	const q = `
		SELECT s.id, s.kind, s.pool_id, p.name, s.seller_id,
		       s.adults, s.children, s.room_type, s.currency,
		       s.total_price, s.paid_amount, s.total_price - s.paid_amount,
		       s.margin_percent, s.commission_amount, s.commission_paid,
		       s.status, s.created_at, s.updated_at
		FROM sales s
		LEFT JOIN pools p ON p.id = s.pool_id
		WHERE s.id = $1`

	var view queries.SaleView
	err := s.db.QueryRow(ctx, q, id).Scan(
		&view.ID, &view.Kind, &view.PoolID, &view.PoolName, &view.SellerID,
		&view.Adults, &view.Children, &view.RoomType, &view.Currency,
		&view.TotalPrice, &view.PaidAmount, &view.Balance,
		&view.MarginPercent, &view.CommissionAmount, &view.CommissionPaid,
		&view.Status, &view.CreatedAt, &view.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale", err)
	}
	return &view, nil
}

const saleListColumns = `id, kind, currency, total_price, total_price - paid_amount, status, created_at`

func (s *SaleReadStore) FindBySellerFirstPage(ctx context.Context, sellerID uuid.UUID, limit int32) ([]*queries.SaleListItem, error) {
	q := `
		SELECT ` + saleListColumns + `
		FROM sales
		WHERE seller_id = $1
		ORDER BY created_at DESC, id DESC
		LIMIT $2`

	rows, err := s.db.Query(ctx, q, sellerID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	return collectSaleListItems(rows)
}

// FindBySellerKeyset pages with a (created_at, id) cursor instead of OFFSET,
// so pages stay stable while new sales are written.
func (s *SaleReadStore) FindBySellerKeyset(ctx context.Context, sellerID uuid.UUID, after queries.Cursor, limit int32) ([]*queries.SaleListItem, error) {
	q := `
		SELECT ` + saleListColumns + `
		FROM sales
		WHERE seller_id = $1
		  AND (created_at, id) < ($2, $3)
		ORDER BY created_at DESC, id DESC
		LIMIT $4`

	rows, err := s.db.Query(ctx, q, sellerID, after.LastCreatedAt, after.LastID, limit)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list sales", err)
	}
	return collectSaleListItems(rows)
}

// FindSnapshot loads the few sale fields payment recording needs before it
// opens the write transaction.
func (s *SaleReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.SaleSnapshot, error) {
	const q = `SELECT id, seller_id, kind, currency, status FROM sales WHERE id = $1`

	var (
		snap shared.SaleSnapshot
		kind string
		st   string
	)
	err := s.db.QueryRow(ctx, q, id).Scan(&snap.ID, &snap.SellerID, &kind, &snap.Currency, &st)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("sale not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find sale", err)
	}
	snap.Kind = sale.Kind(kind)
	snap.Status = sale.Status(st)
	return &snap, nil
}

func collectSaleListItems(rows pgx.Rows) ([]*queries.SaleListItem, error) {
	defer rows.Close()

	var items []*queries.SaleListItem
	for rows.Next() {
		var item queries.SaleListItem
		err := rows.Scan(
			&item.ID, &item.Kind, &item.Currency,
			&item.TotalPrice, &item.Balance, &item.Status, &item.CreatedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan sale", err)
		}
		items = append(items, &item)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read sales", err)
	}
	return items, nil
}
