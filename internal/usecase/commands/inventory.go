package commands

import (
	"context"
	"time"

	"viajes-backoffice/internal/domain/inventory"
	"viajes-backoffice/internal/domain/money"
	"viajes-backoffice/internal/pkg/errs"
	"viajes-backoffice/internal/usecase/shared"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type PoolRateInput struct {
	RoomType string
	Adult    decimal.Decimal
	Child    decimal.Decimal
}

type CreatePoolParams struct {
	Name      string
	Kind      string
	Capacity  int
	Rates     []PoolRateInput
	StartDate time.Time
	EndDate   time.Time
	Nights    int
}

type InventoryCommands interface {
	CreatePool(ctx context.Context, params CreatePoolParams) (uuid.UUID, error)
}

type inventoryCommandsImpl struct {
	uow shared.UnitOfWork
}

func NewInventoryCommands(uow shared.UnitOfWork) InventoryCommands {
	return &inventoryCommandsImpl{uow: uow}
}

func (c *inventoryCommandsImpl) CreatePool(ctx context.Context, params CreatePoolParams) (uuid.UUID, error) {
	if params.Name == "" {
		return uuid.Nil, errs.Mark(errs.New("pool name is required"), errs.ErrDomainValidation)
	}
	if len(params.Rates) == 0 {
		return uuid.Nil, errs.Mark(errs.New("at least one tariff rate is required"), errs.ErrDomainValidation)
	}

	rates := make([]inventory.TariffRate, 0, len(params.Rates))
	for _, r := range params.Rates {
		rates = append(rates, inventory.TariffRate{
			RoomType: inventory.RoomType(r.RoomType),
			Adult:    money.New(r.Adult),
			Child:    money.New(r.Child),
		})
	}
	tariff, err := inventory.NewTariff(rates)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	window, err := inventory.NewDateRange(params.StartDate, params.EndDate, params.Nights)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	pool, err := inventory.NewPool(params.Name, inventory.Kind(params.Kind), params.Capacity, tariff, window)
	if err != nil {
		return uuid.Nil, errs.Mark(err, errs.ErrDomainValidation)
	}

	var poolID uuid.UUID
	err = c.uow.Within(ctx, func(ctx context.Context, tx shared.Tx) error {
		id, err := tx.Pools().Create(ctx, tx.DB(), pool)
		if err != nil {
			return errs.Mark(err, errs.ErrDatabaseOperationFailed)
		}
		poolID = id
		return nil
	})
	if err != nil {
		return uuid.Nil, err
	}
	return poolID, nil
}
