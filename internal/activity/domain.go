package activity

import "time"

type Kind string

const (
	KindCommit  Kind = "commit"
	KindRevert  Kind = "revert"
	KindDiscard Kind = "discard"
	KindBranch  Kind = "branch"
	KindPush    Kind = "push"
	KindPull    Kind = "pull"
)

type EventDraft struct {
	Kind    Kind
	Message string
	Link    string // Optional rendering hint, e.g. the API path of a commit record
	Time    time.Time
}

// Event is an immutable journal entry. IDs are strictly increasing and define
// the order of Recent.
type Event struct {
	EventDraft

	ID uint64
}
