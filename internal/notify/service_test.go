package notify

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeSender struct {
	mu       sync.Mutex
	messages []Message
	err      error
	block    chan struct{}
}

func (f *fakeSender) Send(ctx context.Context, msg Message) error {
	if f.block != nil {
		select {
		case <-f.block:
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	f.mu.Lock()
	defer f.mu.Unlock()
	f.messages = append(f.messages, msg)
	return f.err
}

func (f *fakeSender) sent() []Message {
	f.mu.Lock()
	defer f.mu.Unlock()
	return append([]Message(nil), f.messages...)
}

func TestService_DisabledIsNoop(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(Config{Enabled: false, Email: "ops@example.com"}, sender, zaptest.NewLogger(t))

	svc.Notify(context.Background(), "New Commit", "body")
	require.NoError(t, svc.Wait(context.Background()))

	assert.Empty(t, sender.sent())
}

func TestService_EnabledWithoutRecipientIsNoop(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(Config{Enabled: true}, sender, zaptest.NewLogger(t))

	assert.False(t, svc.Enabled())
	svc.Notify(context.Background(), "New Commit", "body")
	require.NoError(t, svc.Wait(context.Background()))

	assert.Empty(t, sender.sent())
}

func TestService_ComposesMessage(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(Config{
		Enabled:      true,
		Email:        "ops@example.com",
		SiteName:     "My Blog",
		DashboardURL: "https://example.com/wp-admin/admin.php?page=revisr",
	}, sender, zaptest.NewLogger(t))

	svc.Notify(context.Background(), "New Commit", "A new commit was made to the repository:<br> #abc1234 - test")
	require.NoError(t, svc.Wait(context.Background()))

	sent := sender.sent()
	require.Len(t, sent, 1)
	assert.Equal(t, "ops@example.com", sent[0].To)
	assert.Equal(t, "ops@example.com", sent[0].From)
	assert.Equal(t, "My Blog - New Commit", sent[0].Subject)
	assert.Contains(t, sent[0].HTML, "#abc1234 - test")
	assert.Contains(t, sent[0].HTML,
		`<a href="https://example.com/wp-admin/admin.php?page=revisr">Click here</a> for more details.`)
}

func TestService_FailureIsSwallowed(t *testing.T) {
	sender := &fakeSender{err: errors.New("connection refused")}
	svc := NewService(Config{Enabled: true, Email: "ops@example.com"}, sender, zaptest.NewLogger(t))

	svc.Notify(context.Background(), "Changes Pushed", "body")
	require.NoError(t, svc.Wait(context.Background()))

	assert.Len(t, sender.sent(), 1)
}

func TestService_NotifyDoesNotBlock(t *testing.T) {
	sender := &fakeSender{block: make(chan struct{})}
	svc := NewService(Config{Enabled: true, Email: "ops@example.com", Timeout: time.Minute}, sender, zaptest.NewLogger(t))

	done := make(chan struct{})
	go func() {
		svc.Notify(context.Background(), "Changes Pulled", "body")
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("Notify blocked on the transport")
	}

	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()
	require.Error(t, svc.Wait(ctx))

	close(sender.block)
	require.NoError(t, svc.Wait(context.Background()))
	assert.Len(t, sender.sent(), 1)
}

func TestService_CallerCancellationDoesNotAbortDelivery(t *testing.T) {
	sender := &fakeSender{}
	svc := NewService(Config{Enabled: true, Email: "ops@example.com"}, sender, zaptest.NewLogger(t))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	svc.Notify(ctx, "Branch Changed", "body")
	require.NoError(t, svc.Wait(context.Background()))

	assert.Len(t, sender.sent(), 1)
}
