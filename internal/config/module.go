package config

import (
	"github.com/apiarycd/revisr/internal/actions"
	"github.com/apiarycd/revisr/internal/activity"
	"github.com/apiarycd/revisr/internal/files"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/notify"
	"github.com/apiarycd/revisr/pkg/badgerfx"
	"github.com/go-core-fx/fiberfx"
	"go.uber.org/fx"
)

func Module() fx.Option {
	return fx.Module(
		"config",
		fx.Provide(New),
		fx.Provide(func(cfg Config) fiberfx.Config {
			return fiberfx.Config{
				Address:     cfg.HTTP.Address,
				ProxyHeader: cfg.HTTP.ProxyHeader,
				Proxies:     cfg.HTTP.Proxies,
			}
		}),
		fx.Provide(func(cfg Config) badgerfx.Config {
			return badgerfx.Config{
				Dir: cfg.Storage.DataDir,
			}
		}),
		fx.Provide(func(cfg Config) git.Config {
			return git.Config{
				Dir:     cfg.Git.Dir,
				Binary:  cfg.Git.Binary,
				Remote:  cfg.Git.Remote,
				Timeout: cfg.Git.Timeout,
				Identity: git.IdentityConfig{
					Name:  cfg.Git.AuthorName,
					Email: cfg.Git.AuthorEmail,
				},
			}
		}),
		fx.Provide(func(cfg Config) actions.Config {
			return actions.Config{
				Remote: cfg.Git.Remote,
			}
		}),
		fx.Provide(func(cfg Config) notify.Config {
			return notify.Config{
				Enabled:      cfg.Notifications.Enabled,
				Email:        cfg.Notifications.Email,
				From:         cfg.Notifications.From,
				SiteName:     cfg.Notifications.SiteName,
				DashboardURL: cfg.Notifications.DashboardURL,
				Timeout:      cfg.Notifications.Timeout,
				SMTP: notify.SMTPConfig{
					Host:     cfg.Notifications.SMTP.Host,
					Port:     cfg.Notifications.SMTP.Port,
					Username: cfg.Notifications.SMTP.Username,
					Password: cfg.Notifications.SMTP.Password,
				},
			}
		}),
		fx.Provide(func(cfg Config) activity.Config {
			return activity.Config{
				RecentLimit: cfg.Activity.RecentLimit,
			}
		}),
		fx.Provide(func(cfg Config) files.Config {
			return files.Config{
				PageSize: cfg.Files.PageSize,
			}
		}),
	)
}
