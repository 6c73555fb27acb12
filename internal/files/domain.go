package files

import (
	"context"

	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/google/uuid"
)

// Diff is the unified diff of one file against HEAD.
type Diff struct {
	File  string
	Lines []string
}

type Runner interface {
	Run(ctx context.Context, cmd git.Command) ([]string, error)
}

// Locker grants shared access to the working tree.
type Locker interface {
	RLock() func()
}

type RecordSource interface {
	Get(ctx context.Context, id uuid.UUID) (*commits.Record, error)
}
