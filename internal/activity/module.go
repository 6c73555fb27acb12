package activity

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"activity",
		logger.WithNamedLogger("activity"),
		fx.Provide(NewRepository, fx.Private),
		fx.Provide(NewService),
		fx.Invoke(func(events *Repository, lc fx.Lifecycle) {
			lc.Append(fx.StopHook(func(_ context.Context) error {
				return events.Close()
			}))
		}),
	)
}
