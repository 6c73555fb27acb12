package files

import (
	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Module() fx.Option {
	return fx.Module(
		"files",
		logger.WithNamedLogger("files"),
		fx.Provide(func(
			runner *git.Runner,
			repo *git.Repository,
			records *commits.Service,
			config Config,
			logger *zap.Logger,
		) *Service {
			return NewService(runner, repo, records, config, logger)
		}),
	)
}
