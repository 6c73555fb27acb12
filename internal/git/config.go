package git

import "time"

const (
	DefaultBinary  = "git"
	DefaultRemote  = "origin"
	DefaultTimeout = 30 * time.Second
)

type IdentityConfig struct {
	Name  string
	Email string
}

type Config struct {
	// Dir is the repository root every command runs in.
	Dir string
	// Binary is the git executable, resolved through PATH when not absolute.
	Binary string
	// Remote is the remote used by push and pull.
	Remote string
	// Timeout bounds a single git invocation.
	Timeout time.Duration
	// Identity, when set, is exported as author and committer of new commits.
	Identity IdentityConfig
}

func (c Config) binary() string {
	if c.Binary == "" {
		return DefaultBinary
	}
	return c.Binary
}

func (c Config) remote() string {
	if c.Remote == "" {
		return DefaultRemote
	}
	return c.Remote
}

func (c Config) timeout() time.Duration {
	if c.Timeout <= 0 {
		return DefaultTimeout
	}
	return c.Timeout
}

func (c Config) env() []string {
	var env []string
	if c.Identity.Name != "" {
		env = append(env, "GIT_AUTHOR_NAME="+c.Identity.Name, "GIT_COMMITTER_NAME="+c.Identity.Name)
	}
	if c.Identity.Email != "" {
		env = append(env, "GIT_AUTHOR_EMAIL="+c.Identity.Email, "GIT_COMMITTER_EMAIL="+c.Identity.Email)
	}
	return env
}
