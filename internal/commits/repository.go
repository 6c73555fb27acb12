package commits

import (
	"context"
	"errors"
	"fmt"

	"github.com/apiarycd/revisr/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
	"github.com/google/uuid"
)

const (
	prefix = "commit:"

	prefixByID   = prefix + "id:"
	prefixByHash = prefix + "hash:"
)

type Repository struct {
	db      *badger.DB
	records *badgerfx.Repository[*recordModel]
}

func NewRepository(db *badger.DB) *Repository {
	return &Repository{
		db:      db,
		records: badgerfx.NewRepository(func() *recordModel { return &recordModel{} }),
	}
}

// Create stores a new record and indexes it by commit hash.
func (r *Repository) Create(_ context.Context, draft *RecordDraft) (*Record, error) {
	model := newRecordModel(draft)

	if err := r.db.Update(func(txn *badger.Txn) error {
		return r.records.Write(txn, model)
	}); err != nil {
		return nil, fmt.Errorf("failed to create commit record: %w", err)
	}

	return newRecord(model), nil
}

func (r *Repository) GetByID(_ context.Context, id uuid.UUID) (*Record, error) {
	var record *recordModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.records.Read(txn, idKey(id))
		if err != nil {
			return err
		}
		record = found
		return nil
	})
	if errors.Is(err, badgerfx.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get commit record: %w", err)
	}

	return newRecord(record), nil
}

func (r *Repository) GetByHash(_ context.Context, hash string) (*Record, error) {
	var record *recordModel

	err := r.db.View(func(txn *badger.Txn) error {
		found, err := r.records.ReadByIndex(txn, hashIndex(hash))
		if err != nil {
			return err
		}
		record = found
		return nil
	})
	if errors.Is(err, badgerfx.ErrNotFound) {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, hash)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get commit record: %w", err)
	}

	return newRecord(record), nil
}

// List returns all records, newest first. Ids are UUIDv7, so key order is
// creation order.
func (r *Repository) List(_ context.Context) ([]Record, error) {
	var records []Record

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true

		models, err := r.records.List(txn, prefixByID, opts)
		if err != nil {
			return err
		}

		records = make([]Record, 0, len(models))
		for _, model := range models {
			records = append(records, *newRecord(model))
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to list commit records: %w", err)
	}

	return records, nil
}
