package bootstrap

import (
	"viajes-backoffice/internal/infra/fxrate"
	"viajes-backoffice/internal/pkg/config"
	"viajes-backoffice/internal/usecase/commands"

	"go.uber.org/fx"
)

var FXRateModule = fx.Module("fxrate",
	fx.Provide(
		NewFXResolver,
	),
)

func NewFXResolver(cfg config.Config) commands.FXResolver {
	return fxrate.NewHTTPResolver(cfg.FX)
}
