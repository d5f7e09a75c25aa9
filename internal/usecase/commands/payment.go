package commands

import (
	"context"
	"errors"

	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/domain/payment"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/pkg/clock"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type RecordPaymentParams struct {
	SaleID uuid.UUID
	PaymentInput
}

type RecordPaymentResult struct {
	PaymentID  uuid.UUID
	Balance    money.Money
	Status     sale.Status
	IsReplayed bool
}

type PaymentCommands interface {
	RecordPayment(ctx context.Context, params RecordPaymentParams, sellerID, idempotencyKey uuid.UUID) (*RecordPaymentResult, error)
}

type paymentCommandsImpl struct {
	uow    shared.UnitOfWork
	fx     FXResolver
	policy sale.CommissionPolicy
	clock  clock.Clock
}

func NewPaymentCommands(
	uow shared.UnitOfWork,
	fx FXResolver,
	policy sale.CommissionPolicy,
	clk clock.Clock,
) PaymentCommands {
	return &paymentCommandsImpl{uow: uow, fx: fx, policy: policy, clock: clk}
}

// RecordPayment appends one deposit to a sale's ledger. The exchange rate is
// resolved before the transaction opens so a slow rate service never holds a
// row lock; the sale row itself is locked for the balance update.
func (c *paymentCommandsImpl) RecordPayment(
	ctx context.Context,
	params RecordPaymentParams,
	sellerID, idempotencyKey uuid.UUID,
) (*RecordPaymentResult, error) {
	currency, err := money.ParseCurrency(params.Currency)
	if err != nil {
		return nil, errs.Mark(err, errs.ErrDomainValidation)
	}
	if !params.Amount.IsPositive() {
		return nil, errs.Mark(payment.ErrNonPositiveAmount, errs.ErrDomainValidation)
	}
	method := payment.Method(params.Method)
	if !method.IsValid() {
		return nil, errs.Mark(payment.ErrInvalidMethod, errs.ErrDomainValidation)
	}

	snap, err := c.uow.CommandReads().SaleByID(ctx, params.SaleID)
	if err != nil {
		if infra.IsKind(err, infra.KindNotFound) {
			return nil, errs.ErrSaleNotFound
		}
		return nil, errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	base, err := money.ParseCurrency(snap.Currency)
	if err != nil {
		return nil, errs.Wrap(err, "sale has an unknown base currency")
	}

	rate, source, err := resolveAppliedRate(ctx, c.fx, c.clock.Now(), currency, base, params.ManualRate)
	if err != nil {
		return nil, err
	}

	reqHash := requestHash(params)
	expiresAt := c.clock.Now().Add(idempotencyTTL)

	result := &RecordPaymentResult{}
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		replayID, err := claimIdempotencyKey(ctx, tx, idempotencyKey, sellerID, "POST /sales/:id/payments", reqHash, expiresAt)
		if err != nil {
			return err
		}
		if replayID != nil {
			result.IsReplayed = true
			result.PaymentID = *replayID
			return c.loadReplayedBalance(ctx, tx, params.SaleID, result)
		}

		s, err := tx.Sales().FindByIDForUpdate(ctx, tx.DB(), params.SaleID)
		if err != nil {
			if infra.IsKind(err, infra.KindNotFound) {
				return errs.ErrSaleNotFound
			}
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}

		p, err := payment.NewPayment(s.ID(), money.New(params.Amount), currency, s.Currency(), rate, source, method, c.clock.Now())
		if err != nil {
			return errs.Mark(err, errs.ErrDomainValidation)
		}

		if _, err := s.ApplyPayment(p.AmountInBase(), c.policy); err != nil {
			switch {
			case errors.Is(err, sale.ErrOverpayment):
				return errs.Mark(err, errs.ErrOverpayment)
			case errors.Is(err, sale.ErrSaleClosed):
				return errs.Mark(err, errs.ErrSaleClosed)
			default:
				return errs.Mark(err, errs.ErrDomainValidation)
			}
		}

		paymentID, err := tx.Payments().Append(ctx, tx.DB(), p)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := tx.Sales().UpdateSettlement(ctx, tx.DB(), s); err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		if err := enqueueReceiptJob(ctx, tx, s.ID(), paymentID, c.clock.Now()); err != nil {
			return err
		}

		result.PaymentID = paymentID
		result.Balance = s.Balance()
		result.Status = s.Status()
		return tx.Idempotency().UpdateStatusCompleted(ctx, tx.DB(), idempotencyKey, sellerID, resultHash(paymentID), paymentID)
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}

// loadReplayedBalance rebuilds the response of a replayed request from the
// current sale row. The balance may have moved since the original request;
// replays answer with the recorded payment id and the present state.
func (c *paymentCommandsImpl) loadReplayedBalance(ctx context.Context, tx shared.Tx, saleID uuid.UUID, result *RecordPaymentResult) error {
	s, err := tx.Sales().FindByIDForUpdate(ctx, tx.DB(), saleID)
	if err != nil {
		return errs.Mark(err, errs.ErrDatabaseOperationFailed)
	}
	result.Balance = s.Balance()
	result.Status = s.Status()
	return nil
}
