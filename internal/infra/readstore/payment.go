package readstore

import (
	"context"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/google/uuid"
)

type PaymentReadStore struct {
	db db.DBTX
}

func NewPaymentReadStore(dbtx db.DBTX) *PaymentReadStore {
	return &PaymentReadStore{db: dbtx}
}

func (s *PaymentReadStore) FindBySale(ctx context.Context, saleID uuid.UUID) ([]*queries.PaymentView, error) {
	const q = `
		SELECT id, sale_id, amount, currency, rate, rate_source, amount_in_base, method, received_at
		FROM payments
		WHERE sale_id = $1
		ORDER BY received_at, id`

	rows, err := s.db.Query(ctx, q, saleID)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list payments", err)
	}
	defer rows.Close()

	var views []*queries.PaymentView
	for rows.Next() {
		var view queries.PaymentView
		err := rows.Scan(
			&view.ID, &view.SaleID, &view.Amount, &view.Currency,
			&view.Rate, &view.RateSource, &view.AmountInBase,
			&view.Method, &view.ReceivedAt,
		)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan payment", err)
		}
		views = append(views, &view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read payments", err)
	}
	return views, nil
}

func (s *PaymentReadStore) SaleExists(ctx context.Context, saleID uuid.UUID) (bool, error) {
	const q = `SELECT EXISTS (SELECT 1 FROM sales WHERE id = $1)`

	var exists bool
	if err := s.db.QueryRow(ctx, q, saleID).Scan(&exists); err != nil {
		return false, infra.WrapRepoErr("failed to check sale", err)
	}
	return exists, nil
}
