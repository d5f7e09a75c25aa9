package errs

import "errors"

// Sentinel errors shared across the booking and settlement usecases
var (
	// Inventory errors
	ErrPoolNotFound       = errors.New("inventory pool not found")
	ErrInventoryExhausted = errors.New("inventory exhausted")
	ErrPoolClosed         = errors.New("inventory pool closed")

	// Sale errors
	ErrSaleNotFound   = errors.New("sale not found")
	ErrSaleNotSettled = errors.New("sale not settled")
	ErrSaleClosed     = errors.New("sale already closed")
	ErrOverpayment    = errors.New("payment exceeds outstanding balance")

	// FX errors
	ErrRateUnknown = errors.New("exchange rate unknown, manual rate required")
	ErrInvalidRate = errors.New("exchange rate must be positive")

	// Idempotency errors
	ErrIdempotencyKeyRequired = errors.New("idempotency key required")
	ErrIdempotencyInProgress  = errors.New("idempotency in progress")
	ErrIdempotencyCheckFailed = errors.New("idempotency check failed")
	ErrDuplicateRequest       = errors.New("duplicate request with different parameters")

	// Validation errors
	ErrDomainValidation = errors.New("domain validation error")

	// Operation errors
	ErrConcurrencyConflict     = errors.New("concurrency conflict")
	ErrDatabaseOperationFailed = errors.New("database operation failed")
)
