package actions

import "github.com/google/uuid"

// CommitRequest represents the request payload for committing pending changes.
type CommitRequest struct {
	Title string `json:"title" validate:"required,min=1,max=255"`
}

// RevertRequest represents the request payload for reverting to a commit.
type RevertRequest struct {
	CommitHash string `json:"commit_hash" validate:"required,min=4,max=40"`
}

// CheckoutRequest represents the request payload for switching branches.
type CheckoutRequest struct {
	Branch string `json:"branch" validate:"required,min=1,max=255"`
}

// ActionResponse represents the outcome of a repository action.
type ActionResponse struct {
	Action   string     `json:"action"`
	Message  string     `json:"message,omitempty"`
	Redirect string     `json:"redirect,omitempty"`
	Hash     string     `json:"hash,omitempty"`
	Branch   string     `json:"branch,omitempty"`
	RecordID *uuid.UUID `json:"record_id,omitempty"`
}
