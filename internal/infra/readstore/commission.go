package readstore

import (
	"context"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type CommissionReadStore struct {
	db db.DBTX
}

func NewCommissionReadStore(dbtx db.DBTX) *CommissionReadStore {
	return &CommissionReadStore{db: dbtx}
}

func (s *CommissionReadStore) FindBySeller(ctx context.Context, sellerID uuid.UUID) ([]*queries.CommissionEntryView, error) {
	const q = `
		SELECT id, seller_id, sale_id, amount, method, paid_at, note
		FROM commission_entries
		WHERE seller_id = $1
		ORDER BY paid_at DESC, id DESC`

	rows, err := s.db.Query(ctx, q, sellerID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list commission entries", err)
	}
	defer rows.Close()

	var views []*queries.CommissionEntryView
	for rows.Next() {
		var view queries.CommissionEntryView
		err := rows.Scan(
			&view.ID, &view.SellerID, &view.SaleID, &view.Amount,
			&view.Method, &view.PaidAt, &view.Note,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan commission entry", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read commission entries", err)
	}
	return views, nil
}
