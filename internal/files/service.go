package files

import (
	"context"
	"fmt"

	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/paging"
	"github.com/apiarycd/revisr/internal/status"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Config struct {
	PageSize int
}

type Service struct {
	runner  Runner
	repo    Locker
	records RecordSource

	config Config
	logger *zap.Logger
}

func NewService(runner Runner, repo Locker, records RecordSource, config Config, logger *zap.Logger) *Service {
	if config.PageSize <= 0 {
		config.PageSize = paging.DefaultPageSize
	}

	return &Service{
		runner:  runner,
		repo:    repo,
		records: records,

		config: config,
		logger: logger,
	}
}

// Pending lists uncommitted changes in the working tree, one page at a time.
func (s *Service) Pending(ctx context.Context, page int) (paging.Page[status.Entry], error) {
	unlock := s.repo.RLock()
	defer unlock()

	lines, err := s.runner.Run(ctx, git.StatusShort())
	if err != nil {
		return paging.Page[status.Entry]{}, fmt.Errorf("failed to read pending files: %w", err)
	}

	entries := status.ParseLines(lines, func(err error) {
		s.logger.Warn("malformed status line", zap.Error(err))
	})

	return paging.Paginate(entries, page, s.config.PageSize), nil
}

// Committed pages through the files captured with a commit record.
func (s *Service) Committed(ctx context.Context, id uuid.UUID, page int) (paging.Page[status.Entry], error) {
	record, err := s.records.Get(ctx, id)
	if err != nil {
		return paging.Page[status.Entry]{}, err
	}

	return paging.Paginate(record.Files, page, s.config.PageSize), nil
}

func (s *Service) Diff(ctx context.Context, file string) (*Diff, error) {
	cmd, err := git.DiffFile(file)
	if err != nil {
		return nil, err
	}

	unlock := s.repo.RLock()
	defer unlock()

	lines, err := s.runner.Run(ctx, cmd)
	if err != nil {
		return nil, fmt.Errorf("failed to diff %s: %w", file, err)
	}

	return &Diff{File: file, Lines: lines}, nil
}
