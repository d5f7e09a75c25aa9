package readstore

import (
	"context"
	"errors"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

type IdempotencyReadStore struct {
	db db.DBTX
}

func NewIdempotencyReadStore(dbtx db.DBTX) *IdempotencyReadStore {
	return &IdempotencyReadStore{db: dbtx}
}

// Get locks the record so a concurrent retry waits behind the first writer
// and then observes its outcome.
func (s *IdempotencyReadStore) Get(ctx context.Context, key, sellerID uuid.UUID) (*shared.IdempotencyRecord, error) {
	const q = `
		SELECT key, seller_id, endpoint, request_hash, status, result_id, expires_at
		FROM idempotency_keys
		WHERE key = $1 AND seller_id = $2
		FOR UPDATE`

	var record shared.IdempotencyRecord
	err := s.db.QueryRow(ctx, q, key, sellerID).Scan(
		&record.Key, &record.SellerID, &record.Endpoint,
		&record.RequestHash, &record.Status, &record.ResultID, &record.ExpiresAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, infra.WrapRepoErr("idempotency key not found", err, infra.KindNotFound)
		}
		return nil, infra.WrapRepoErr("failed to read idempotency key", err)
	}
	return &record, nil
}
