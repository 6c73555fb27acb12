package activity

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/apiarycd/revisr/pkg/badgerfx"
)

// eventModel is the stored form of an Event.
type eventModel struct {
	ID      uint64    `json:"id"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
	Kind    Kind      `json:"event"`
	Link    string    `json:"link,omitempty"`
}

func newEventModel(id uint64, draft *EventDraft) *eventModel {
	return &eventModel{
		ID:      id,
		Time:    draft.Time,
		Message: draft.Message,
		Kind:    draft.Kind,
		Link:    draft.Link,
	}
}

func newEvent(model *eventModel) *Event {
	if model == nil {
		return nil
	}

	return &Event{
		EventDraft: EventDraft{
			Kind:    model.Kind,
			Message: model.Message,
			Link:    model.Link,
			Time:    model.Time,
		},
		ID: model.ID,
	}
}

// StorageKey zero-pads the id so lexicographic key order is id order.
func (m *eventModel) StorageKey() string {
	return fmt.Sprintf("%s%020d", prefixByID, m.ID)
}

func (m *eventModel) StorageIndexes() []string {
	return nil
}

func (m *eventModel) MarshalStorage() ([]byte, error) {
	return json.Marshal(m)
}

func (m *eventModel) UnmarshalStorage(data []byte) error {
	return json.Unmarshal(data, m)
}

var _ badgerfx.Entity = (*eventModel)(nil)
