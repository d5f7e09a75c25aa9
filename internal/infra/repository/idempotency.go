package repository

import (
	"context"
	"errors"
	"time"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
)

const pgErrCodeUniqueViolation = "23505"

type IdempotencyRepository struct{}

func NewIdempotencyRepository() shared.IdempotencyRepository {
	return &IdempotencyRepository{}
}

// TryInsert claims the key. An expired record is reclaimed in the same
// statement; a live one leaves zero rows and the caller inspects it.
func (r *IdempotencyRepository) TryInsert(
	ctx context.Context,
	tx db.DBTX,
	key, sellerID uuid.UUID,
	endpoint, requestHash string,
	expiresAt time.Time,
) (bool, error) {
	const q = `
		INSERT INTO idempotency_keys (key, seller_id, endpoint, request_hash, status, expires_at)
		VALUES ($1, $2, $3, $4, 'processing', $5)
		ON CONFLICT (key) DO UPDATE
		SET seller_id = EXCLUDED.seller_id,
		    endpoint = EXCLUDED.endpoint,
		    request_hash = EXCLUDED.request_hash,
		    status = 'processing',
		    result_hash = NULL,
		    result_id = NULL,
		    expires_at = EXCLUDED.expires_at
		WHERE idempotency_keys.expires_at < now()`

	tag, err := tx.Exec(ctx, q, key, sellerID, endpoint, requestHash, expiresAt)
	if err != nil {
		return false, infra.WrapRepoErr("failed to claim idempotency key", err)
	}
	return tag.RowsAffected() > 0, nil
}

func (r *IdempotencyRepository) UpdateStatusCompleted(
	ctx context.Context,
	tx db.DBTX,
	key, sellerID uuid.UUID,
	resultHash string,
	resultID uuid.UUID,
) error {
	const q = `
		UPDATE idempotency_keys
		SET status = 'completed', result_hash = $3, result_id = $4
		WHERE key = $1 AND seller_id = $2`

	tag, err := tx.Exec(ctx, q, key, sellerID, resultHash, resultID)
	if err != nil {
		return infra.WrapRepoErr("failed to complete idempotency key", err)
	}
	if tag.RowsAffected() == 0 {
		return infra.WrapRepoErr("idempotency key not found", nil, infra.KindNotFound)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pgErr *pgconn.PgError
	return errors.As(err, &pgErr) && pgErr.Code == pgErrCodeUniqueViolation
}
