package commits

import (
	"encoding/json"
	"slices"
	"time"

	"github.com/apiarycd/revisr/internal/status"
	"github.com/apiarycd/revisr/pkg/badgerfx"
	"github.com/google/uuid"
)

type recordModel struct {
	ID        uuid.UUID      `json:"id"`
	Title     string         `json:"title"`
	Hash      string         `json:"commit_hash"`
	Branch    string         `json:"branch"`
	Files     []status.Entry `json:"committed_files"`
	CreatedAt time.Time      `json:"created_at"`
}

func newRecordModel(draft *RecordDraft) *recordModel {
	if draft == nil {
		return nil
	}

	return &recordModel{
		ID:        uuid.Must(uuid.NewV7()),
		Title:     draft.Title,
		Hash:      draft.Hash,
		Branch:    draft.Branch,
		Files:     slices.Clone(draft.Files),
		CreatedAt: time.Now(),
	}
}

func newRecord(model *recordModel) *Record {
	if model == nil {
		return nil
	}

	return &Record{
		RecordDraft: RecordDraft{
			Title:  model.Title,
			Hash:   model.Hash,
			Branch: model.Branch,
			Files:  model.Files,
		},
		ID:        model.ID,
		CreatedAt: model.CreatedAt,
	}
}

func idKey(id uuid.UUID) string {
	return prefixByID + id.String()
}

func hashIndex(hash string) string {
	return prefixByHash + hash
}

func (m *recordModel) StorageKey() string {
	return idKey(m.ID)
}

func (m *recordModel) StorageIndexes() []string {
	if m.Hash == "" {
		return nil
	}
	return []string{hashIndex(m.Hash)}
}

func (m *recordModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *recordModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}

var _ badgerfx.Entity = (*recordModel)(nil)
