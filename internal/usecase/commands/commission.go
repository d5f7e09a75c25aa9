package commands

import (
	"context"
	"errors"

	"viajes-backoffice/internal/domain/commission"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/infra"
	"viajes-backoffice/internal/pkg/clock"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
)

type SettleCommissionsParams struct {
	SellerID uuid.UUID
	SaleIDs  []uuid.UUID
	Method   string
	Note     string
}

type SettleCommissionsResult struct {
	EntryIDs    []uuid.UUID
	SalesClosed int
}

type CommissionCommands interface {
	SettleCommissions(ctx context.Context, params SettleCommissionsParams) (*SettleCommissionsResult, error)
}

type commissionCommandsImpl struct {
	uow   shared.UnitOfWork
	clock clock.Clock
}

func NewCommissionCommands(uow shared.UnitOfWork, clk clock.Clock) CommissionCommands {
	return &commissionCommandsImpl{uow: uow, clock: clk}
}

// SettleCommissions pays out the frozen commission of each listed sale and
// closes it, all in one transaction. Any sale that is missing, belongs to a
// different seller, or is not settled aborts the whole batch.
func (c *commissionCommandsImpl) SettleCommissions(
	ctx context.Context,
	params SettleCommissionsParams,
) (*SettleCommissionsResult, error) {
	if len(params.SaleIDs) == 0 {
		return nil, errs.Mark(errs.New("at least one sale is required"), errs.ErrDomainValidation)
	}
	method := commission.PayoutMethod(params.Method)
	if !method.IsValid() {
		return nil, errs.Mark(commission.ErrInvalidMethod, errs.ErrDomainValidation)
	}

	paidAt := c.clock.Now()
	result := &SettleCommissionsResult{}
	err := c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		for _, saleID := range params.SaleIDs {
			s, err := tx.Sales().FindByIDForUpdate(ctx, tx.DB(), saleID)
			if err != nil {
				if infra.IsKind(err, infra.KindNotFound) {
					return errs.ErrSaleNotFound
				}
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			// A sale owned by someone else is indistinguishable from a
			// missing one to this seller.
			if s.SellerID() != params.SellerID {
				return errs.ErrSaleNotFound
			}

			// The sale row summarizes the payment ledger; a drifted row
			// aborts the payout instead of paying commission on it.
			ledgerSum, err := tx.Payments().SumInBaseBySale(ctx, tx.DB(), saleID)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if !ledgerSum.Equal(s.PaidAmount().Decimal()) {
				return errs.New("payment ledger does not reconcile with the sale's paid amount")
			}

			if err := s.CloseWithCommission(); err != nil {
				switch {
				case errors.Is(err, sale.ErrSaleClosed):
					return errs.Mark(err, errs.ErrSaleClosed)
				default:
					return errs.Mark(err, errs.ErrSaleNotSettled)
				}
			}

			entry, err := commission.NewLedgerEntry(params.SellerID, saleID, s.CommissionAmount(), method, paidAt, params.Note)
			if err != nil {
				return errs.Mark(err, errs.ErrDomainValidation)
			}
			entryID, err := tx.Commissions().Create(ctx, tx.DB(), entry)
			if err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}
			if err := tx.Sales().UpdateSettlement(ctx, tx.DB(), s); err != nil {
				return errs.Mark(err, errs.ErrDatabaseOperationFailed)
			}

			result.EntryIDs = append(result.EntryIDs, entryID)
			result.SalesClosed++
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return result, nil
}
