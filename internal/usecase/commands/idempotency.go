package commands

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"time"

	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

const (
	idempotencyStatusProcessing = "processing"
	idempotencyStatusCompleted  = "completed"

	idempotencyTTL = 24 * time.Hour
)

// claimIdempotencyKey claims the key inside the current transaction. A nil
// result means this request holds the claim and should proceed; a non-nil
// result is the id recorded by a completed earlier request with the same
// payload. The insert takes a row lock, so a concurrent retry blocks until
// the first writer commits and then sees the completed record.
func claimIdempotencyKey(
	ctx context.Context,
	tx shared.Tx,
	key, sellerID uuid.UUID,
	endpoint, requestHash string,
	expiresAt time.Time,
) (*uuid.UUID, error) {
	inserted, err := tx.Idempotency().TryInsert(ctx, tx.DB(), key, sellerID, endpoint, requestHash, expiresAt)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if inserted {
		return nil, nil
	}

	record, err := tx.Reads().IdempotencyByKey(ctx, key, sellerID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrIdempotencyCheckFailed)
	}
	if record.RequestHash != requestHash {
		return nil, errs.ErrDuplicateRequest
	}

	switch record.Status {
	case idempotencyStatusCompleted:
		if record.ResultID == nil {
			return nil, errs.New("completed idempotency record missing result id")
		}
		return record.ResultID, nil
	case idempotencyStatusProcessing:
		return nil, errs.ErrIdempotencyInProgress
	default:
		return nil, errs.New("invalid idempotency key status")
	}
}

func requestHash(v any) string {
	data, _ := json.Marshal(v)
	hash := sha256.Sum256(data)
	return hex.EncodeToString(hash[:])
}

func resultHash(id uuid.UUID) string {
	hash := sha256.Sum256([]byte(id.String()))
	return hex.EncodeToString(hash[:])
}
