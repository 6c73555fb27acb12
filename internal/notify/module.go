package notify

import (
	"context"

	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"notify",
		logger.WithNamedLogger("notify"),
		fx.Provide(NewSMTPSender, fx.Private),
		fx.Provide(NewService),
		fx.Invoke(func(svc *Service, lc fx.Lifecycle) {
			lc.Append(fx.StopHook(func(ctx context.Context) error {
				return svc.Wait(ctx)
			}))
		}),
	)
}
