package bootstrap

import (
	"viajes-backoffice/cmd/bootstrap/components"

	"go.uber.org/fx"
)

var Module = fx.Options(
	ConfigModule,
	DBModule,
	RedisModule,
	JWTModule,
	FXRateModule,
	components.PersistenceModule,
	components.UseCaseModule,
	components.HandlerModule,
)
