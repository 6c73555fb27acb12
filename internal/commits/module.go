package commits

import (
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"commits",
		logger.WithNamedLogger("commits"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
	)
}
