package readstore

import (
	"context"
	"errors"
	"time"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/converter"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/internal/usecase/shared"

	"viajes-backoffice/internal/domain/inventory"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type PoolReadStore struct {
	db db.DBTX
}

func NewPoolReadStore(dbtx db.DBTX) *PoolReadStore {
	return &PoolReadStore{db: dbtx}
}

const poolColumns = `id, name, kind, capacity, committed, rates, start_date, end_date, nights, status, created_at`

func (s *PoolReadStore) FindByID(ctx context.Context, id uuid.UUID) (*queries.PoolView, error) {
	q := `SELECT ` + poolColumns + ` FROM pools WHERE id = $1`

	view, err := scanPoolView(s.db.QueryRow(ctx, q, id))
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool", err)
	}
	return view, nil
}

// FindAvailable lists sellable pools of one kind whose window overlaps the
// requested dates. Exhausted and closed pools never show up here.
func (s *PoolReadStore) FindAvailable(ctx context.Context, kind string, from, to time.Time) ([]*queries.PoolView, error) {
	q := `
		SELECT ` + poolColumns + `
		FROM pools
		WHERE kind = $1
		  AND status = 'active'
		  AND committed < capacity
		  AND start_date < $3
		  AND end_date > $2
		ORDER BY start_date, id`

	rows, err := s.db.Query(ctx, q, kind, from, to)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to list pools", err)
	}
	defer rows.Close()

	var views []*queries.PoolView
	for rows.Next() {
		view, err := scanPoolView(rows)
		if err != nil {
			return nil, infra.WrapRepoErr("failed to scan pool", err)
		}
		views = append(views, view)
	}
	if err := rows.Err(); err != nil {
		return nil, infra.WrapRepoErr("failed to read pools", err)
	}
	return views, nil
}

// FindSnapshot loads what the write side needs to price and reserve against
// a pool.
func (s *PoolReadStore) FindSnapshot(ctx context.Context, id uuid.UUID) (*shared.PoolSnapshot, error) {
	q := `SELECT ` + poolColumns + ` FROM pools WHERE id = $1`

	var (
		snap      shared.PoolSnapshot
		capacity  int32
		committed int32
		nights    int32
		kind      string
		status    string
		rates     []byte
		createdAt time.Time
	)
	err := s.db.QueryRow(ctx, q, id).Scan(
		&snap.ID, &snap.Name, &kind, &capacity, &committed, &rates,
		&snap.StartDate, &snap.EndDate, &nights, &status, &createdAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("pool not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to find pool", err)
	}

	tariffRates, err := converter.TariffRatesFromJSON(rates)
	if err != nil {
		return nil, infra.WrapRepoErr("failed to decode pool rates", err)
	}

	snap.Kind = inventory.Kind(kind)
	snap.Capacity = int(capacity)
	snap.Committed = int(committed)
	snap.Nights = int(nights)
	snap.Status = inventory.Status(status)
	snap.Rates = tariffRates
	return &snap, nil
}

func scanPoolView(row pgx.Row) (*queries.PoolView, error) {
	var (
		view  queries.PoolView
		rates []byte
	)
	err := row.Scan(
		&view.ID, &view.Name, &view.Kind, &view.Capacity, &view.Committed,
		&rates, &view.StartDate, &view.EndDate, &view.Nights, &view.Status,
		&view.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	rateViews, err := converter.RateViewsFromJSON(rates)
	if err != nil {
		return nil, err
	}
	view.Rates = rateViews
	view.Available = view.Capacity - view.Committed
	return &view, nil
}
