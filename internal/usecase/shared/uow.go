package shared

import (
	"context"
	"time"

	"viajes-backoffice/internal/domain/commission"
	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/payment"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/infra/db"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type UnitOfWork interface {
	// Within: Full transaction for write operations with retry logic
	Within(ctx context.Context, fn func(ctx context.Context, tx Tx) error) error
	// WithinReadOnly: Read-only transaction for multi-table consistent reads
	WithinReadOnly(ctx context.Context, fn func(ctx context.Context, dbtx db.DBTX) error) error
	// CommandReads: Direct access to command reads for validation outside transactions
	CommandReads() CommandReads
}

type Tx interface {
	Sales() SaleRepository
	Pools() PoolRepository
	Payments() PaymentRepository
	Commissions() CommissionRepository
	Idempotency() IdempotencyRepository
	Jobs() JobRepository
	Reads() CommandReads
	DB() db.DBTX
}

type CommandReads interface {
	PoolByID(ctx context.Context, id uuid.UUID) (*PoolSnapshot, error)
	SaleByID(ctx context.Context, id uuid.UUID) (*SaleSnapshot, error)
	IdempotencyByKey(ctx context.Context, key, sellerID uuid.UUID) (*IdempotencyRecord, error)
}

// PoolSnapshot carries what pricing and reservation need to know about a
// pool outside the write transaction.
type PoolSnapshot struct {
	ID        uuid.UUID
	Name      string
	Kind      inventory.Kind
	Capacity  int
	Committed int
	Rates     []inventory.TariffRate
	StartDate time.Time
	EndDate   time.Time
	Nights    int
	Status    inventory.Status
}

type SaleSnapshot struct {
	ID       uuid.UUID
	SellerID uuid.UUID
	Kind     sale.Kind
	Currency string
	Status   sale.Status
}

type IdempotencyRecord struct {
	Key         uuid.UUID
	SellerID    uuid.UUID
	Endpoint    string
	RequestHash string
	Status      string
	ResultID    *uuid.UUID
	ExpiresAt   time.Time
}

type SaleRepository interface {
	Create(ctx context.Context, tx db.DBTX, s *sale.Sale) (uuid.UUID, error)
	// FindByIDForUpdate locks the sale row for the rest of the transaction.
	FindByIDForUpdate(ctx context.Context, tx db.DBTX, id uuid.UUID) (*sale.Sale, error)
	// UpdateSettlement persists paid amount, status and commission fields.
	UpdateSettlement(ctx context.Context, tx db.DBTX, s *sale.Sale) error
}

type PoolRepository interface {
	Create(ctx context.Context, tx db.DBTX, p *inventory.Pool) (uuid.UUID, error)
	// Reserve atomically commits one unit; exhaustion surfaces as a typed
	// repository error with no partial mutation.
	Reserve(ctx context.Context, tx db.DBTX, poolID uuid.UUID) error
}

type PaymentRepository interface {
	Append(ctx context.Context, tx db.DBTX, p *payment.Payment) (uuid.UUID, error)
	SumInBaseBySale(ctx context.Context, tx db.DBTX, saleID uuid.UUID) (decimal.Decimal, error)
}

type CommissionRepository interface {
	Create(ctx context.Context, tx db.DBTX, e *commission.LedgerEntry) (uuid.UUID, error)
}

type IdempotencyRepository interface {
	// TryInsert claims the key; false means another request holds or held it.
	TryInsert(ctx context.Context, tx db.DBTX, key, sellerID uuid.UUID, endpoint, requestHash string, expiresAt time.Time) (bool, error)
	UpdateStatusCompleted(ctx context.Context, tx db.DBTX, key, sellerID uuid.UUID, resultHash string, resultID uuid.UUID) error
}

type JobRepository interface {
	Enqueue(ctx context.Context, tx db.DBTX, kind, topic string, payload []byte, runAt time.Time) error
}
