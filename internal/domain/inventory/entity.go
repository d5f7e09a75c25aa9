package inventory

import (
	"errors"
	"time"

	"github.com/google/uuid"
)

var (
	ErrInvalidCapacity  = errors.New("capacity must be positive")
	ErrPoolExhausted    = errors.New("no units available")
	ErrPoolClosed       = errors.New("pool is closed")
	ErrInvalidCommitted = errors.New("committed cannot exceed capacity")
)

// Pool is a pre-purchased lot of rooms or trip seats sold off unit by unit.
// committed only ever grows; there is no release path, so a unit reserved by
// a sale stays reserved even if the sale never settles.
type Pool struct {
	id        uuid.UUID
	name      string
	kind      Kind
	capacity  int
	committed int
	tariff    Tariff
	window    DateRange
	status    Status
	createdAt time.Time
	updatedAt time.Time
}

func NewPool(name string, kind Kind, capacity int, tariff Tariff, window DateRange) (*Pool, error) {
	if !kind.IsValid() {
		return nil, errors.New("invalid pool kind")
	}
	if capacity <= 0 {
		return nil, ErrInvalidCapacity
	}

	return &Pool{
		id:       uuid.New(),
		name:     name,
		kind:     kind,
		capacity: capacity,
		tariff:   tariff,
		window:   window,
		status:   StatusActive,
	}, nil
}

func ReconstructPool(
	id uuid.UUID,
	name string,
	kind Kind,
	capacity, committed int,
	tariff Tariff,
	window DateRange,
	status Status,
	createdAt, updatedAt time.Time,
) (*Pool, error) {
	if committed < 0 || committed > capacity {
		return nil, ErrInvalidCommitted
	}
	return &Pool{
		id:        id,
		name:      name,
		kind:      kind,
		capacity:  capacity,
		committed: committed,
		tariff:    tariff,
		window:    window,
		status:    status,
		createdAt: createdAt,
		updatedAt: updatedAt,
	}, nil
}

// Reserve commits one unit. The persisted counterpart is a conditional
// UPDATE; this in-memory transition exists so the invariant lives in one
// place and is testable without a database.
func (p *Pool) Reserve() error {
	switch {
	case p.status == StatusClosed:
		return ErrPoolClosed
	case p.Available() == 0:
		return ErrPoolExhausted
	}

	p.committed++
	if p.Available() == 0 {
		p.status = StatusExhausted
	}
	return nil
}

func (p *Pool) Available() int {
	return p.capacity - p.committed
}

func (p *Pool) IsSellable() bool {
	return p.status == StatusActive && p.Available() > 0
}

func (p *Pool) Close() {
	p.status = StatusClosed
}

func (p *Pool) ID() uuid.UUID        { return p.id }
func (p *Pool) Name() string         { return p.name }
func (p *Pool) Kind() Kind           { return p.kind }
func (p *Pool) Capacity() int        { return p.capacity }
func (p *Pool) Committed() int       { return p.committed }
func (p *Pool) Tariff() Tariff       { return p.tariff }
func (p *Pool) Window() DateRange    { return p.window }
func (p *Pool) Status() Status       { return p.status }
func (p *Pool) CreatedAt() time.Time { return p.createdAt }
func (p *Pool) UpdatedAt() time.Time { return p.updatedAt }
