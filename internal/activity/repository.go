package activity

import (
	"context"
	"fmt"

	"github.com/apiarycd/revisr/pkg/badgerfx"
	"github.com/dgraph-io/badger/v4"
)

const (
	prefix = "activity:"

	prefixByID  = prefix + "id:"
	sequenceKey = prefix + "sequence"

	sequenceBandwidth = 100
)

// Repository is the append-only event table.
type Repository struct {
	db       *badger.DB
	sequence *badger.Sequence
	events   *badgerfx.Repository[*eventModel]
}

func NewRepository(db *badger.DB) (*Repository, error) {
	sequence, err := db.GetSequence([]byte(sequenceKey), sequenceBandwidth)
	if err != nil {
		return nil, fmt.Errorf("failed to open activity sequence: %w", err)
	}

	return &Repository{
		db:       db,
		sequence: sequence,
		events:   badgerfx.NewRepository(func() *eventModel { return &eventModel{} }),
	}, nil
}

// Append stores a new event under the next sequence id.
func (r *Repository) Append(_ context.Context, draft *EventDraft) (*Event, error) {
	next, err := r.sequence.Next()
	if err != nil {
		return nil, fmt.Errorf("failed to allocate event id: %w", err)
	}

	// Sequences start at zero; ids start at one.
	model := newEventModel(next+1, draft)

	if updErr := r.db.Update(func(txn *badger.Txn) error {
		return r.events.Write(txn, model)
	}); updErr != nil {
		return nil, fmt.Errorf("failed to store event: %w", updErr)
	}

	return newEvent(model), nil
}

// Recent returns up to limit events, newest first.
func (r *Repository) Recent(_ context.Context, limit int) ([]Event, error) {
	var events []Event

	err := r.db.View(func(txn *badger.Txn) error {
		opts := badger.DefaultIteratorOptions
		opts.Reverse = true
		if limit > 0 {
			opts.PrefetchSize = limit
		}

		models, err := r.events.Scan(txn, prefixByID, opts, limit)
		if err != nil {
			return err
		}

		events = make([]Event, 0, len(models))
		for _, model := range models {
			events = append(events, *newEvent(model))
		}

		return nil
	})

	if err != nil {
		return nil, fmt.Errorf("failed to list events: %w", err)
	}

	return events, nil
}

// Close returns unused leased ids to the database.
func (r *Repository) Close() error {
	if err := r.sequence.Release(); err != nil {
		return fmt.Errorf("failed to release activity sequence: %w", err)
	}
	return nil
}
