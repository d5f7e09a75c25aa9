package repository

import (
	"context"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/converter"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type PoolRepository struct{}

func NewPoolRepository() shared.PoolRepository {
	return &PoolRepository{}
}

func (r *PoolRepository) Create(ctx context.Context, tx db.DBTX, p *inventory.Pool) (uuid.UUID, error) {
	rates, err := converter.TariffToJSON(p.Tariff())
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to encode pool rates", err)
	}

	const q = `
		INSERT INTO pools (id, name, kind, capacity, committed, rates, start_date, end_date, nights, status)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING id`

	var id uuid.UUID
	err = tx.QueryRow(ctx, q,
		p.ID(), p.Name(), string(p.Kind()), p.Capacity(), p.Committed(),
		rates, p.Window().Start(), p.Window().End(), p.Window().Nights(), string(p.Status()),
	).Scan(&id)
	if err != nil {
		return uuid.Nil, infra.WrapRepoErr("failed to create pool", err)
	}
	return id, nil
}

// Reserve commits one unit with a conditional UPDATE, so two concurrent
// reservations of the last unit cannot both succeed. Zero rows updated is
// classified with a follow-up read: missing pool or no capacity left.
func (r *PoolRepository) Reserve(ctx context.Context, tx db.DBTX, poolID uuid.UUID) error {
	const q = `
		UPDATE pools
		SET committed = committed + 1,
		    status = CASE WHEN committed + 1 >= capacity THEN 'exhausted' ELSE status END,
		    updated_at = now()
		WHERE id = $1 AND status = 'active' AND committed < capacity`

	tag, err := tx.Exec(ctx, q, poolID)
	if err != nil {
		return infra.WrapRepoErr("failed to reserve pool unit", err)
	}
	if tag.RowsAffected() > 0 {
		return nil
	}

	var status string
	err = tx.QueryRow(ctx, `SELECT status FROM pools WHERE id = $1`, poolID).Scan(&status)
	if err != nil {
		return infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
	}
	return infra.WrapRepoErr("no units available in pool", nil, infra.KindExhausted)
}
