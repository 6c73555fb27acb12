package commits

import (
	"context"
	"fmt"

	"github.com/apiarycd/revisr/internal/paging"
	"github.com/google/uuid"
	"go.uber.org/zap"
)

type Service struct {
	records *Repository

	logger *zap.Logger
}

func NewService(records *Repository, logger *zap.Logger) *Service {
	return &Service{
		records: records,
		logger:  logger,
	}
}

// Create persists the record of a commit made by the commit action.
func (s *Service) Create(ctx context.Context, draft RecordDraft) (*Record, error) {
	s.logger.Info("creating commit record",
		zap.String("hash", draft.Hash),
		zap.Int("files", len(draft.Files)))

	record, err := s.records.Create(ctx, &draft)
	if err != nil {
		s.logger.Error("failed to create commit record", zap.String("hash", draft.Hash), zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.logger.Info("commit record created", zap.String("id", record.ID.String()))
	return record, nil
}

func (s *Service) Get(ctx context.Context, id uuid.UUID) (*Record, error) {
	s.logger.Debug("getting commit record", zap.String("id", id.String()))

	record, err := s.records.GetByID(ctx, id)
	if err != nil {
		s.logger.Error("failed to get commit record", zap.String("id", id.String()), zap.Error(err))
		return nil, err
	}

	return record, nil
}

func (s *Service) GetByHash(ctx context.Context, hash string) (*Record, error) {
	s.logger.Debug("getting commit record by hash", zap.String("hash", hash))

	record, err := s.records.GetByHash(ctx, hash)
	if err != nil {
		s.logger.Error("failed to get commit record", zap.String("hash", hash), zap.Error(err))
		return nil, err
	}

	return record, nil
}

// List returns one page of records, newest first.
func (s *Service) List(ctx context.Context, page, size int) (paging.Page[Record], error) {
	s.logger.Debug("listing commit records", zap.Int("page", page))

	records, err := s.records.List(ctx)
	if err != nil {
		s.logger.Error("failed to list commit records", zap.Error(err))
		return paging.Page[Record]{}, err
	}

	return paging.Paginate(records, page, size), nil
}
