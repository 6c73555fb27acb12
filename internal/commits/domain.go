package commits

import (
	"time"

	"github.com/apiarycd/revisr/internal/status"
	"github.com/google/uuid"
)

type RecordDraft struct {
	Title  string
	Hash   string // Short hash of the created commit
	Branch string // Branch the commit was pushed to

	// Files is the pending file list captured right before the commit.
	Files []status.Entry
}

// Record is immutable once created.
type Record struct {
	RecordDraft

	ID        uuid.UUID
	CreatedAt time.Time
}
