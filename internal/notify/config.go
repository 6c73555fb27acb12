package notify

import "time"

const DefaultTimeout = 30 * time.Second

type SMTPConfig struct {
	Host     string
	Port     int
	Username string
	Password string
}

type Config struct {
	Enabled bool
	// Email receives every notification.
	Email string
	From  string
	// SiteName prefixes every subject.
	SiteName string
	// DashboardURL, when set, is linked at the bottom of every message.
	DashboardURL string
	Timeout      time.Duration

	SMTP SMTPConfig
}
