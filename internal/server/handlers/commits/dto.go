package commits

import (
	"time"

	"github.com/apiarycd/revisr/internal/server/handlers/files"
	"github.com/google/uuid"
)

// CommitResponse represents a commit record in listings.
type CommitResponse struct {
	ID         uuid.UUID `json:"id"`
	Title      string    `json:"title"`
	Hash       string    `json:"hash"`
	Branch     string    `json:"branch"`
	FilesCount int       `json:"files_count"`
	CreatedAt  time.Time `json:"created_at"`
}

// CommitDetailsResponse represents a single commit record with its files.
type CommitDetailsResponse struct {
	CommitResponse

	Files []files.FileResponse `json:"files"`
}
