package actions

import (
	"context"

	"github.com/apiarycd/revisr/internal/activity"
)

// Hook runs after an action succeeded. Hooks run in order; an error is
// logged and never changes the action result.
type Hook interface {
	Name() string
	AfterAction(ctx context.Context, outcome Outcome) error
}

type Journal interface {
	Append(ctx context.Context, kind activity.Kind, message, link string) (*activity.Event, error)
}

type Notifier interface {
	Notify(ctx context.Context, subject, body string)
}

type journalHook struct {
	journal Journal
}

func NewJournalHook(journal Journal) Hook {
	return &journalHook{journal: journal}
}

func (h *journalHook) Name() string {
	return "journal"
}

func (h *journalHook) AfterAction(ctx context.Context, outcome Outcome) error {
	_, err := h.journal.Append(ctx, outcome.Kind, outcome.Summary, outcome.Link)
	return err
}

type notifyHook struct {
	notifier Notifier
}

func NewNotifyHook(notifier Notifier) Hook {
	return &notifyHook{notifier: notifier}
}

func (h *notifyHook) Name() string {
	return "notify"
}

func (h *notifyHook) AfterAction(ctx context.Context, outcome Outcome) error {
	h.notifier.Notify(ctx, outcome.Subject, outcome.Body)
	return nil
}
