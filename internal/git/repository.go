package git

import (
	"context"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/go-git/go-git/v6"
	"github.com/go-git/go-git/v6/plumbing"
	"go.uber.org/zap"
)

// RepositoryContext is captured once at startup. Branch is advisory: it is
// what HEAD pointed to when the process started.
type RepositoryContext struct {
	WorkDir       string
	InvocationDir string
	Branch        string
}

// Repository is the single repository this process drives. It owns the lock
// that serializes mutating actions against read queries.
type Repository struct {
	snapshot RepositoryContext
	mu       sync.RWMutex

	logger *zap.Logger
}

func NewRepository(config Config, logger *zap.Logger) (*Repository, error) {
	invocationDir, err := os.Getwd()
	if err != nil {
		return nil, fmt.Errorf("failed to get working directory: %w", err)
	}

	workDir := config.Dir
	if !filepath.IsAbs(workDir) {
		workDir = filepath.Join(invocationDir, workDir)
	}

	branch, err := resolveBranch(workDir)
	if err != nil {
		logger.Error("failed to open repository", zap.String("path", workDir), zap.Error(err))
		return nil, err
	}

	logger.Info("repository opened",
		zap.String("path", workDir),
		zap.String("branch", branch))

	return &Repository{
		snapshot: RepositoryContext{
			WorkDir:       workDir,
			InvocationDir: invocationDir,
			Branch:        branch,
		},
		logger: logger,
	}, nil
}

// Snapshot returns the context captured at startup.
func (r *Repository) Snapshot() RepositoryContext {
	return r.snapshot
}

// CurrentBranch re-reads HEAD. A detached HEAD is reported as "HEAD".
func (r *Repository) CurrentBranch(_ context.Context) (string, error) {
	branch, err := resolveBranch(r.snapshot.WorkDir)
	if err != nil {
		r.logger.Error("failed to resolve current branch", zap.Error(err))
		return "", err
	}

	if branch != r.snapshot.Branch {
		r.logger.Debug("branch changed since startup",
			zap.String("startup_branch", r.snapshot.Branch),
			zap.String("branch", branch))
	}

	return branch, nil
}

// Lock takes the repository exclusively. Call the returned func to release.
func (r *Repository) Lock() func() {
	r.mu.Lock()
	return r.mu.Unlock
}

// RLock takes the repository for reading. Call the returned func to release.
func (r *Repository) RLock() func() {
	r.mu.RLock()
	return r.mu.RUnlock
}

func resolveBranch(dir string) (string, error) {
	repo, err := git.PlainOpen(dir)
	if errors.Is(err, git.ErrRepositoryNotExists) {
		return "", fmt.Errorf("%w: %s", ErrRepositoryNotFound, dir)
	}
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	head, err := repo.Reference(plumbing.HEAD, false)
	if err != nil {
		return "", fmt.Errorf("%w: %w", ErrInvalidRepository, err)
	}

	if head.Type() == plumbing.SymbolicReference {
		return head.Target().Short(), nil
	}

	return RefHead, nil
}
