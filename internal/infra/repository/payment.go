package repository

import (
	"context"

	"viajes-backoffice/internal/domain/payment"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentRepository struct{}

func NewPaymentRepository() shared.PaymentRepository {
	return &PaymentRepository{}
}

func (r *PaymentRepository) Append(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error) {
	const q = `
		INSERT INTO payments (id, sale_id, amount, currency, rate, rate_source, amount_in_base, method, received_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
		RETURNING id`

	var rateSource *string
	if p.RateSource() != "" {
		s := p.RateSource()
		rateSource = &s
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		p.ID(), p.SaleID(), p.Amount().Decimal(), string(p.Currency()),
		p.Rate(), rateSource, p.AmountInBase().Decimal(),
		string(p.Method()), p.ReceivedAt(),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to append payment", err)
	}
	return id, nil
}

// SumInBaseBySale recomputes the paid total from the ledger. The sales row
// carries the same figure; this is the reconciliation source of truth.
func (r *PaymentRepository) SumInBaseBySale(ctx context.Context, tx db.DBTX, saleID uuid.UUID) (decimal.Decimal, error) {
	const q = `SELECT COALESCE(SUM(amount_in_base), 0) FROM payments WHERE sale_id = $1`

	var sum decimal.Decimal
	if err := tx.QueryRow(ctx, q, saleID).Scan(&sum); err != nil {
		return decimal.Zero, infra.WrapRepoErr("failed to sum payments", err)
	}
	return sum, nil
}
