package components

import (
	"viajes-backoffice/internal/domain/commission"
	"viajes-backoffice/internal/domain/sale"
	"viajes-backoffice/internal/pkg/clock"
	"viajes-backoffice/internal/pkg/config"
	"viajes-backoffice/internal/usecase/commands"
	"viajes-backoffice/internal/usecase/queries"

	"go.uber.org/fx"
)

var UseCaseModule = fx.Module("usecase",
	usecaseBaseOption,
	usecaseQueriesModule,
	usecaseCommandsModule,
)

var usecaseBaseOption = fx.Provide(
	clock.NewRealClock,
	fx.Annotate(
		NewCommissionPolicy,
		fx.As(new(sale.CommissionPolicy)),
	),
)

var usecaseCommandsModule = fx.Module("usecase/commands",
	fx.Provide(
		commands.NewSaleCommands,
		commands.NewPaymentCommands,
		commands.NewCommissionCommands,
		commands.NewInventoryCommands,
	),
)

var usecaseQueriesModule = fx.Module("usecase/queries",
	fx.Provide(
		queries.NewInventoryQueries,
		queries.NewSaleQueries,
		queries.NewPaymentQueries,
		queries.NewCommissionQueries,
	),
)

func NewCommissionPolicy(cfg config.Config) *commission.Policy {
	return commission.NewPolicy(cfg.Commission)
}
