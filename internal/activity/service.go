package activity

import (
	"context"
	"fmt"
	"time"

	"go.uber.org/zap"
)

const DefaultRecentLimit = 10

type Config struct {
	RecentLimit int
}

type Service struct {
	events *Repository

	config Config
	logger *zap.Logger
}

func NewService(events *Repository, config Config, logger *zap.Logger) *Service {
	if config.RecentLimit <= 0 {
		config.RecentLimit = DefaultRecentLimit
	}

	return &Service{
		events: events,

		config: config,
		logger: logger,
	}
}

// Append journals an event. Failures are logged and returned wrapped in
// ErrPersistence; callers treat the journal as best-effort.
func (s *Service) Append(ctx context.Context, kind Kind, message, link string) (*Event, error) {
	if !kind.valid() {
		return nil, fmt.Errorf("%w: %q", ErrInvalidKind, kind)
	}

	event, err := s.events.Append(ctx, &EventDraft{
		Kind:    kind,
		Message: message,
		Link:    link,
		Time:    time.Now(),
	})
	if err != nil {
		s.logger.Error("failed to append activity",
			zap.String("kind", string(kind)),
			zap.String("message", message),
			zap.Error(err))
		return nil, fmt.Errorf("%w: %w", ErrPersistence, err)
	}

	s.logger.Debug("activity appended",
		zap.Uint64("id", event.ID),
		zap.String("kind", string(kind)))

	return event, nil
}

// Recent returns the newest events first. A non-positive limit uses the
// configured default.
func (s *Service) Recent(ctx context.Context, limit int) ([]Event, error) {
	if limit <= 0 {
		limit = s.config.RecentLimit
	}

	events, err := s.events.Recent(ctx, limit)
	if err != nil {
		s.logger.Error("failed to list recent activity", zap.Error(err))
		return nil, err
	}

	return events, nil
}

func (k Kind) valid() bool {
	switch k {
	case KindCommit, KindRevert, KindDiscard, KindBranch, KindPush, KindPull:
		return true
	default:
		return false
	}
}
