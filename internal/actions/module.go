package actions

import (
	"github.com/apiarycd/revisr/internal/activity"
	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/notify"
	"github.com/go-core-fx/logger"
	"github.com/prometheus/client_golang/prometheus"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"actions",
		logger.WithNamedLogger("actions"),
		fx.Provide(func() *Metrics {
			return NewMetrics(prometheus.DefaultRegisterer)
		}, fx.Private),
		fx.Provide(func(
			runner *git.Runner,
			repo *git.Repository,
			records *commits.Service,
			journal *activity.Service,
			notifier *notify.Service,
			metrics *Metrics,
			config Config,
			logger *zap.Logger,
		) *Service {
			hooks := []Hook{
				NewJournalHook(journal),
				NewNotifyHook(notifier),
			}
			return NewService(runner, repo, records, hooks, metrics, config, logger)
		}),
	)
}
