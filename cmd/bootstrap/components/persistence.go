package components

import (
	"viajes-backoffice/internal/infra/db"
	"viajes-backoffice/internal/infra/readstore"
	"viajes-backoffice/internal/infra/uow"
	"viajes-backoffice/internal/usecase/queries"

	"github.com/jackc/pgx/v5/pgxpool"
	"go.uber.org/fx"
)

var PersistenceModule = fx.Module("persistence",
	fx.Provide(
		NewDBTX,
		// UnitOfWork
		uow.NewPostgresUoW,
		// Read stores for the query side
		fx.Annotate(
			readstore.NewPoolReadStore,
			fx.As(new(queries.PoolReadStore)),
		),
		fx.Annotate(
			readstore.NewSaleReadStore,
			fx.As(new(queries.SaleReadStore)),
		),
		fx.Annotate(
			readstore.NewPaymentReadStore,
			fx.As(new(queries.PaymentReadStore)),
		),
		fx.Annotate(
			readstore.NewCommissionReadStore,
			fx.As(new(queries.CommissionReadStore)),
		),
	),
)

func NewDBTX(pool *pgxpool.Pool) db.DBTX {
	return pool
}
