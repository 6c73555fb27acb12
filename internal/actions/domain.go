package actions

import (
	"context"

	"github.com/apiarycd/revisr/internal/activity"
	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
)

type Action string

const (
	ActionCommit   Action = "commit"
	ActionRevert   Action = "revert"
	ActionDiscard  Action = "discard"
	ActionCheckout Action = "checkout"
	ActionPush     Action = "push"
	ActionPull     Action = "pull"
)

// Result is what the trigger surface gets back from a successful action.
type Result struct {
	Action Action

	// Message is an immediate confirmation for discard, push and pull.
	Message string
	// Redirect is a dashboard query describing the outcome for commit,
	// revert and checkout.
	Redirect string

	Hash   string
	Branch string
	Record *commits.Record
}

// Outcome describes a completed action to the post-action hooks.
type Outcome struct {
	Action Action
	Kind   activity.Kind

	// Summary is the journal line, Link an optional rendering hint for it.
	Summary string
	Link    string

	// Subject and Body are the notification text; Body is HTML.
	Subject string
	Body    string
}

// Runner executes one git command.
type Runner interface {
	Run(ctx context.Context, cmd git.Command) ([]string, error)
}

// Repository resolves HEAD and serializes access to the working tree.
type Repository interface {
	CurrentBranch(ctx context.Context) (string, error)
	Lock() func()
}

// CommitStore persists the record of each commit action and finds it again
// by hash.
type CommitStore interface {
	Create(ctx context.Context, draft commits.RecordDraft) (*commits.Record, error)
	GetByHash(ctx context.Context, hash string) (*commits.Record, error)
}
