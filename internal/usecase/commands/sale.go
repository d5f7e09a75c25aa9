package commands

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/domain/payment"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/pkg/clock"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/queries"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PaymentInput struct {
	Amount     decimal.Decimal
	Currency   string
	Method     string
	ManualRate *decimal.Decimal
}

type CreateSaleParams struct {
	Kind           string
	PoolID         *uuid.UUID
	Adults         int
	Children       int
	RoomType       string
	TotalPrice     *decimal.Decimal // required for general sales, ignored otherwise
	MarginPercent  decimal.Decimal
	InitialPayment *PaymentInput
}

type CreateSaleResult struct {
	Sale       *queries.SaleView
	IsReplayed bool
}

type SaleCommands interface {
	CreateSale(ctx context.Context, params CreateSaleParams, sellerID, idempotencyKey uuid.UUID) (*CreateSaleResult, error)
}

type saleCommandsImpl struct {
	uow         shared.UnitOfWork
	fx          FXResolver
	policy      sale.CommissionPolicy
	saleQueries queries.SaleQueries
	clock       clock.Clock
}

func NewSaleCommands(
	uow shared.UnitOfWork,
	fx FXResolver,
	policy sale.CommissionPolicy,
	saleQueries queries.SaleQueries,
	clk clock.Clock,
) SaleCommands {
	return &saleCommandsImpl{
		uow:         uow,
		fx:          fx,
		policy:      policy,
		saleQueries: saleQueries,
		clock:       clk,
	}
}

func (c *saleCommandsImpl) CreateSale(
	ctx context.Context,
	params CreateSaleParams,
	sellerID, idempotencyKey uuid.UUID,
) (*CreateSaleResult, error) {
	saleEntity, err := c.buildSale(ctx, params, sellerID)
	if err != nil {
		return nil, err
	}

	initial, err := c.buildInitialPayment(ctx, params.InitialPayment, saleEntity)
	if err != nil {
		return nil, err
	}

	reqHash := requestHash(params)
	expiresAt := c.clock.Now().Add(idempotencyTTL)

	var (
		saleID   uuid.UUID
		replayed bool
	)
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayID, err := claimIdempotencyKey(ctx, tx, idempotencyKey, sellerID, "POST /sales", reqHash, expiresAt)
		if err != nil {
			return err
		}
		if replayID != nil {
			saleID = *replayID
			replayed = true
			return nil
		}

		if saleEntity.PoolID() != nil {
			if err := tx.Pools().Reserve(ctx, tx.DB(), *saleEntity.PoolID()); err != nil {
				if infra.IsKind(err, infra.KindExhausted) {
					return errs.ErrInventoryExhausted
				}
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrPoolNotFound
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
		}

		id, err := tx.Sales().Create(ctx, tx.DB(), saleEntity)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		saleID = id

		if initial != nil {
			if err := c.applyInitialPayment(ctx, tx, saleEntity, initial); err != nil {
				return err
			}
		}

		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, sellerID, resultHash(saleID), saleID)
	})
	if err != nil {
		return nil, err
	}

	view, err := c.saleQueries.GetByID(ctx, saleID)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return &CreateSaleResult{Sale: view, IsReplayed: replayed}, nil
}

// buildSale validates occupancy and pricing and returns the unsaved entity.
// Pool-backed sales price from the pool tariff times nights; general sales
// take the operator-supplied total.
func (c *saleCommandsImpl) buildSale(ctx context.Context, params CreateSaleParams, sellerID uuid.UUID) (*sale.Sale, error) {
	kind := sale.Kind(params.Kind)
	if !kind.IsValid() {
		return nil, errs.Mark(sale.ErrInvalidKind, errs.ErrDomainValidation)
	}

	occupancy, err := sale.NewOccupancy(params.Adults, params.Children, inventory.RoomType(params.RoomType))
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	margin, err := sale.NewMarginPercent(params.MarginPercent)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var total money.Money
	if kind == sale.KindGeneral {
		if params.TotalPrice == nil || !params.TotalPrice.IsPositive() {
			return nil, errs.Mark(sale.ErrInvalidTotalPrice, errs.ErrDomainValidation)
		}
		total = money.New(*params.TotalPrice)
	} else {
		if params.PoolID == nil {
			return nil, errs.Mark(sale.ErrPoolRefRequired, errs.ErrDomainValidation)
		}
		pool, err := c.uow.CommandReads().PoolByID(ctx, *params.PoolID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return nil, errs.ErrPoolNotFound
			}
			return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if !poolBacks(pool.Kind, kind) {
			return nil, errs.Mark(errs.New("pool kind does not back this sale kind"), errs.ErrDomainValidation)
		}
		tariff, err := inventory.NewTariff(pool.Rates)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
		total, err = occupancy.PriceFromTariff(tariff, pool.Nights)
		if err != nil {
			return nil, errs.Mark(err, errs.ErrDomainValidation)
		}
	}

	saleEntity, err := sale.NewSale(kind, sellerID, occupancy, params.PoolID, total, margin)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return saleEntity, nil
}

func (c *saleCommandsImpl) buildInitialPayment(ctx context.Context, input *PaymentInput, s *sale.Sale) (*payment.Payment, error) {
	if input == nil {
		return nil, nil
	}
	currency, err := money.ParseCurrency(input.Currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	rate, source, err := resolveAppliedRate(ctx, c.fx, c.clock.Now(), currency, s.Currency(), input.ManualRate)
	if err != nil {
		return nil, err
	}

	p, err := payment.NewPayment(
		s.ID(),
		money.New(input.Amount),
		currency,
		s.Currency(),
		rate,
		source,
		payment.Method(input.Method),
		c.clock.Now(),
	)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	return p, nil
}

func (c *saleCommandsImpl) applyInitialPayment(ctx context.Context, tx shared.Tx, s *sale.Sale, p *payment.Payment) error {
	if _, err := s.ApplyPayment(p.AmountInBase(), c.policy); err != nil {
		if errors.Is(err, sale.ErrOverpayment) {
			return errs.Mark(err, errs.ErrOverpayment)
		}
		return errs.Mark(err, errs.ErrDomainValidation)
	}
	if _, err := tx.Payments().Append(ctx, tx.DB(), p); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	if err := tx.Sales().UpdateSettlement(ctx, tx.DB(), s); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return enqueueReceiptJob(ctx, tx, s.ID(), p.ID(), c.clock.Now())
}

// poolBacks reports whether a pool of the given kind can back a sale of the
// given kind.
func poolBacks(poolKind inventory.Kind, saleKind sale.Kind) bool {
	switch saleKind {
	case sale.KindBlockBacked:
		return poolKind == inventory.KindBlock
	case sale.KindGroupBacked:
		return poolKind == inventory.KindGroup
	case sale.KindNationalTrip:
		return poolKind == inventory.KindNational
	case sale.KindInternationalTrip:
		return poolKind == inventory.KindInternational
	default:
		return false
	}
}

const receiptJobTopic = "payment.receipt"

type receiptJobPayload struct {
	SaleID    uuid.UUID `json:"sale_id"`
	PaymentID uuid.UUID `json:"payment_id"`
}

// enqueueReceiptJob records a receipt-delivery job in the same transaction as
// the payment, so a committed payment always has a pending receipt.
func enqueueReceiptJob(ctx context.Context, tx shared.Tx, saleID, paymentID uuid.UUID, runAt time.Time) error {
	payload, err := json.Marshal(receiptJobPayload{SaleID: saleID, PaymentID: paymentID})
	if err != nil {
		return errs.Wrap(err, "marshal receipt job payload")
	}
	if err := tx.Jobs().Enqueue(ctx, tx.DB(), "receipt", receiptJobTopic, payload, runAt); err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	return nil
}
