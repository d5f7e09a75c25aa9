package components

import (
	"viajes-backoffice/internal/handler"
	"viajes-backoffice/internal/handler/api"
	"viajes-backoffice/internal/handler/middleware"

	"go.uber.org/fx"
)

var HandlerModule = fx.Module("handler",
	fx.Provide(
		api.NewSaleHandler,
		api.NewInventoryHandler,
		api.NewCommissionHandler,
		middleware.NewAuthMiddleware,
	),
	fx.Invoke(handler.NewRouter),
)
