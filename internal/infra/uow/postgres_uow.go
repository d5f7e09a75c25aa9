package uow

import (
	"context"
	"crypto/rand"
	"encoding/binary"
	"errors"
	"log/slog"
	"time"

	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/infra/readstore"
	"viajes-backoffice/internal/infra/repository"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

const (
	pgErrCodeSerializationFailure = "40001"
	pgErrCodeDeadlockDetected     = "40P01"
)

var (
	errTransactionBegin  = errs.New("failed to begin transaction")
	errTransactionCommit = errs.New("failed to commit transaction")
)

type PostgresUoW struct {
	pool *pgxpool.Pool
}

func NewPostgresUoW(pool *pgxpool.Pool) shared.UnitOfWork {
	return &PostgresUoW{pool: pool}
}

// ReadCommitted prevents dirty reads while allowing concurrent writes
func (u *PostgresUoW) Within(ctx context.Context, fn func(ctx context.Context, tx shared.Tx) error) error {
	return u.runInTxWithOptions(ctx, pgx.TxOptions{IsoLevel: pgx.ReadCommitted}, fn)
}

// Read-only transaction for consistent multi-table snapshots
func (u *PostgresUoW) WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	return u.runReadOnlyTx(ctx, pgx.TxOptions{AccessMode: pgx.ReadOnly}, fn)
}

func (u *PostgresUoW) CommandReads() shared.CommandReads {
	return &commandReads{dbtx: u.pool}
}

// Avoids defer accumulation in retry loops to prevent connection leaks
func (u *PostgresUoW) runInTxWithOptions(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, tx shared.Tx) error) error {
	const maxRetries = 3
	base := 100 * time.Millisecond

	for attempt := 0; attempt <= maxRetries; attempt++ {
		pgxTx, err := u.pool.BeginTx(ctx, options)
		if err != nil {
			return errs.Mark(err, errTransactionBegin)
		}

		tx := &pgTx{dbtx: pgxTx}

		err = fn(ctx, tx)
		if err == nil {
			if err = pgxTx.Commit(ctx); err == nil {
				return nil
			}
			err = errs.Mark(err, errTransactionCommit)
		}

		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("rollback failed", "attempt", attempt+1, "error", rollbackErr.Error())
			}
		}

		if !shouldRetry(err, attempt, maxRetries) {
			if attempt == maxRetries {
				slog.Error("transaction failed after max retries",
					"attempts", attempt+1,
					"error", err.Error())
				return errs.Mark(err, errs.ErrConcurrencyConflict)
			}
			return err
		}

		waitTime := calculateBackoff(attempt, base)

		slog.Warn("retrying transaction due to retryable error",
			"attempt", attempt+1,
			"wait_ms", waitTime.Milliseconds(),
			"error", err.Error())

		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(waitTime):
		}
	}

	return errs.ErrConcurrencyConflict
}

func (u *PostgresUoW) runReadOnlyTx(ctx context.Context, options pgx.TxOptions, fn func(ctx context.Context, dbtx db.DBTX) error) error {
	pgxTx, err := u.pool.BeginTx(ctx, options)
	if err != nil {
		return errs.Mark(err, errTransactionBegin)
	}

	defer func() {
		if rollbackErr := pgxTx.Rollback(ctx); rollbackErr != nil {
			if !errors.Is(rollbackErr, pgx.ErrTxClosed) {
				slog.Warn("failed to rollback read-only transaction", "error", rollbackErr.Error())
			}
		}
	}()

	if err := fn(ctx, pgxTx); err != nil {
		return err
	}

	return pgxTx.Commit(ctx)
}

func shouldRetry(err error, attempt, maxRetries int) bool {
	return isRetryableError(err) && attempt < maxRetries
}

func calculateBackoff(attempt int, base time.Duration) time.Duration {
	waitTime := time.Duration(1<<attempt) * base
	jitter := cryptoRandInt63n(int64(waitTime / 5))
	return waitTime + time.Duration(jitter)
}

func cryptoRandInt63n(n int64) int64 {
	if n <= 0 {
		return 0
	}
	var buf [8]byte
	if _, err := rand.Read(buf[:]); err != nil {
		return 0
	}
	// Mask the high bit so the conversion stays positive
	uval := binary.BigEndian.Uint64(buf[:]) & 0x7FFFFFFFFFFFFFFF
	return int64(uval) % n
}

func isRetryableError(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}

	switch pgErr.Code {
	case pgErrCodeSerializationFailure, pgErrCodeDeadlockDetected:
		return true
	default:
		return false
	}
}

type pgTx struct {
	dbtx db.DBTX

	// Lazy-initialized repositories
	saleRepo        shared.SaleRepository
	poolRepo        shared.PoolRepository
	paymentRepo     shared.PaymentRepository
	commissionRepo  shared.CommissionRepository
	idempotencyRepo shared.IdempotencyRepository
	jobRepo         shared.JobRepository
	commandReads    shared.CommandReads
}

func (t *pgTx) DB() db.DBTX {
	return t.dbtx
}

func (t *pgTx) Sales() shared.SaleRepository {
	if t.saleRepo == nil {
		t.saleRepo = repository.NewSaleRepository()
	}
	return t.saleRepo
}

func (t *pgTx) Pools() shared.PoolRepository {
	if t.poolRepo == nil {
		t.poolRepo = repository.NewPoolRepository()
	}
	return t.poolRepo
}

func (t *pgTx) Payments() shared.PaymentRepository {
	if t.paymentRepo == nil {
		t.paymentRepo = repository.NewPaymentRepository()
	}
	return t.paymentRepo
}

func (t *pgTx) Commissions() shared.CommissionRepository {
	if t.commissionRepo == nil {
		t.commissionRepo = repository.NewCommissionRepository()
	}
	return t.commissionRepo
}

func (t *pgTx) Idempotency() shared.IdempotencyRepository {
	if t.idempotencyRepo == nil {
		t.idempotencyRepo = repository.NewIdempotencyRepository()
	}
	return t.idempotencyRepo
}

func (t *pgTx) Jobs() shared.JobRepository {
	if t.jobRepo == nil {
		t.jobRepo = repository.NewJobRepository()
	}
	return t.jobRepo
}

func (t *pgTx) Reads() shared.CommandReads {
	if t.commandReads == nil {
		t.commandReads = &commandReads{dbtx: t.dbtx}
	}
	return t.commandReads
}

type commandReads struct {
	dbtx db.DBTX

	// Lazy-initialized readstores
	poolStore        *readstore.PoolReadStore
	saleStore        *readstore.SaleReadStore
	idempotencyStore *readstore.IdempotencyReadStore
}

func (r *commandReads) PoolByID(ctx context.Context, id uuid.UUID) (*shared.PoolSnapshot, error) {
	if r.poolStore == nil {
		r.poolStore = readstore.NewPoolReadStore(r.dbtx)
	}
	return r.poolStore.FindSnapshot(ctx, id)
}

func (r *commandReads) SaleByID(ctx context.Context, id uuid.UUID) (*shared.SaleSnapshot, error) {
	if r.saleStore == nil {
		r.saleStore = readstore.NewSaleReadStore(r.dbtx)
	}
	return r.saleStore.FindSnapshot(ctx, id)
}

func (r *commandReads) IdempotencyByKey(ctx context.Context, key, sellerID uuid.UUID) (*shared.IdempotencyRecord, error) {
	if r.idempotencyStore == nil {
		r.idempotencyStore = readstore.NewIdempotencyReadStore(r.dbtx)
	}
	return r.idempotencyStore.Get(ctx, key, sellerID)
}
