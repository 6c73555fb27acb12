package notify

import (
	"context"
	"errors"
	"fmt"
	"html"
	"sync"

	"go.uber.org/zap"
)

var ErrNotify = errors.New("failed to deliver notification")

// Service emails action summaries. Delivery happens in the background and
// never reports back to the caller.
type Service struct {
	config Config
	sender Sender

	wg     sync.WaitGroup
	logger *zap.Logger
}

func NewService(config Config, sender Sender, logger *zap.Logger) *Service {
	if config.Timeout <= 0 {
		config.Timeout = DefaultTimeout
	}
	if config.From == "" {
		config.From = config.Email
	}

	return &Service{
		config: config,
		sender: sender,
		logger: logger,
	}
}

func (s *Service) Enabled() bool {
	return s.config.Enabled && s.config.Email != ""
}

// Notify queues a message. It is a no-op when notifications are disabled.
func (s *Service) Notify(ctx context.Context, subject, body string) {
	if !s.Enabled() {
		s.logger.Debug("notifications disabled", zap.String("subject", subject))
		return
	}

	msg := s.compose(subject, body)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()

		sendCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.config.Timeout)
		defer cancel()

		if err := s.sender.Send(sendCtx, msg); err != nil {
			s.logger.Error("failed to send notification",
				zap.String("subject", msg.Subject),
				zap.Error(fmt.Errorf("%w: %w", ErrNotify, err)))
			return
		}

		s.logger.Info("notification sent",
			zap.String("subject", msg.Subject),
			zap.String("to", msg.To))
	}()
}

// Wait blocks until queued messages are delivered or ctx is done.
func (s *Service) Wait(ctx context.Context) error {
	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		return fmt.Errorf("notifications still in flight: %w", ctx.Err())
	}
}

func (s *Service) compose(subject, body string) Message {
	if s.config.SiteName != "" {
		subject = s.config.SiteName + " - " + subject
	}
	if s.config.DashboardURL != "" {
		body += fmt.Sprintf("<br><br><a href=\"%s\">Click here</a> for more details.",
			html.EscapeString(s.config.DashboardURL))
	}

	return Message{
		From:    s.config.From,
		To:      s.config.Email,
		Subject: subject,
		HTML:    body,
	}
}
