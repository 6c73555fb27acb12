package internal

import (
	"context"

	"github.com/apiarycd/revisr/internal/actions"
	"github.com/apiarycd/revisr/internal/activity"
	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/config"
	"github.com/apiarycd/revisr/internal/files"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/notify"
	"github.com/apiarycd/revisr/internal/server"
	"github.com/apiarycd/revisr/pkg/badgerfx"
	"github.com/capcom6/go-infra-fx/validator"
	"github.com/go-core-fx/fiberfx"
	"github.com/go-core-fx/healthfx"
	"github.com/go-core-fx/logger"
	"go.uber.org/fx"
	"go.uber.org/zap"
)

func Run() {
	fx.New(
		// CORE MODULES
		logger.Module(),
		logger.WithFxDefaultLogger(),
		badgerfx.Module(),
		healthfx.Module(),
		fiberfx.Module(),
		validator.Module,
		//
		// APP MODULES
		config.Module(),
		server.Module(),
		git.Module(),
		//
		// BUSINESS MODULES
		fx.Provide(func() healthfx.Version { return healthfx.Version{Version: "0.1.0", ReleaseID: 1} }),
		activity.Module(),
		commits.Module(),
		notify.Module(),
		files.Module(),
		actions.Module(),
		//
		// LIFECYCLE MANAGEMENT
		fx.Invoke(func(lc fx.Lifecycle, repo *git.Repository, logger *zap.Logger) {
			lc.Append(fx.Hook{
				OnStart: func(_ context.Context) error {
					snapshot := repo.Snapshot()
					logger.Info("🚀 Revisr starting up",
						zap.String("work_dir", snapshot.WorkDir),
						zap.String("branch", snapshot.Branch))
					return nil
				},
				OnStop: func(_ context.Context) error {
					logger.Info("🛑 Revisr shutting down gracefully")
					return nil
				},
			})
		}),
	).Run()
}
