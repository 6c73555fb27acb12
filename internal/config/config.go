package config

import (
	"fmt"
	"os"
	"time"

	"github.com/go-core-fx/config"
)

type http struct {
	Address     string   `koanf:"address"`
	ProxyHeader string   `koanf:"proxy_header"`
	Proxies     []string `koanf:"proxies"`
}

type storageConfig struct {
	DataDir string `koanf:"data_dir"`
}

type gitConfig struct {
	Dir         string        `koanf:"dir"`
	Binary      string        `koanf:"binary"`
	Remote      string        `koanf:"remote"`
	Timeout     time.Duration `koanf:"timeout"`
	AuthorName  string        `koanf:"author_name"`
	AuthorEmail string        `koanf:"author_email"`
}

type smtpConfig struct {
	Host     string `koanf:"host"`
	Port     int    `koanf:"port"`
	Username string `koanf:"username"`
	Password string `koanf:"password"`
}

type notificationsConfig struct {
	Enabled      bool          `koanf:"enabled"`
	Email        string        `koanf:"email"`
	From         string        `koanf:"from"`
	SiteName     string        `koanf:"site_name"`
	DashboardURL string        `koanf:"dashboard_url"`
	Timeout      time.Duration `koanf:"timeout"`
	SMTP         smtpConfig    `koanf:"smtp"`
}

type activityConfig struct {
	RecentLimit int `koanf:"recent_limit"`
}

type filesConfig struct {
	PageSize int `koanf:"page_size"`
}

type Config struct {
	HTTP http `koanf:"http"`

	Storage       storageConfig       `koanf:"storage"`
	Git           gitConfig           `koanf:"git"`
	Notifications notificationsConfig `koanf:"notifications"`
	Activity      activityConfig      `koanf:"activity"`
	Files         filesConfig         `koanf:"files"`
}

func Default() Config {
	//nolint:exhaustruct,mnd //default values
	return Config{
		HTTP: http{
			Address:     "127.0.0.1:3000",
			ProxyHeader: "X-Forwarded-For",
			Proxies:     []string{},
		},

		Storage: storageConfig{
			DataDir: "./data",
		},

		Git: gitConfig{
			Dir:     ".",
			Binary:  "git",
			Remote:  "origin",
			Timeout: 30 * time.Second,
		},

		Notifications: notificationsConfig{
			Enabled: false,
			Timeout: 30 * time.Second,
			SMTP: smtpConfig{
				Host: "localhost",
				Port: 25,
			},
		},

		Activity: activityConfig{
			RecentLimit: 10,
		},

		Files: filesConfig{
			PageSize: 20,
		},
	}
}

func New() (Config, error) {
	cfg := Default()

	options := []config.Option{}
	if yamlPath := os.Getenv("CONFIG_PATH"); yamlPath != "" {
		options = append(options, config.WithLocalYAML(yamlPath))
	}

	if err := config.Load(&cfg, options...); err != nil {
		return Config{}, fmt.Errorf("failed to load config: %w", err)
	}

	return cfg, nil
}
