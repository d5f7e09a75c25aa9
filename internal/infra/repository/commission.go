package repository

import (
	"context"

	"viajes-backoffice/internal/domain/commission"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type CommissionRepository struct{}

func NewCommissionRepository() shared.CommissionRepository {
	return &CommissionRepository{}
}

func (r *CommissionRepository) Create(ctx context.Context, tx db.DBTX, e *commission.LedgerEntry) (uuid.UUID, error) {
	const q = `
		INSERT INTO commission_entries (id, seller_id, sale_id, amount, method, paid_at, note)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING id`

	var note *string
	if e.Note() != "" {
		n := e.Note()
		note = &n
	}

	var id uuid.UUID
	err := tx.QueryRow(ctx, q,
		e.ID(), e.SellerID(), e.SaleID(), e.Amount().Decimal(),
		string(e.Method()), e.PaidAt(), note,
	).Scan(&id)
	if err != nil {
		if isUniqueViolation(err) {
			return uuid.Nil, infra.WrapRepoErr("commission already paid for sale", err, infra.KindDuplicateKey)
		}
		return uuid.Nil, infra.WrapRepoErr("failed to create commission entry", err)
	}
	return id, nil
}
