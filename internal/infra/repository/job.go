package repository

import (
	"context"
	"time"

	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type JobRepository struct{}

func NewJobRepository() shared.JobRepository {
	return &JobRepository{}
}

// Enqueue writes the job in the caller's transaction, so a job exists exactly
// when the work that warranted it committed.
func (r *JobRepository) Enqueue(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error {
	const q = `
		INSERT INTO jobs (id, kind, topic, payload, status, run_at)
		VALUES ($1, $2, $3, $4, 'pending', $5)`

	if _, err := tx.Exec(ctx, q, uuid.New(), kind, topic, payload, runAt); err != nil {
		return infra.WrapRepoErr("failed to enqueue job", err)
	}
	return nil
}
