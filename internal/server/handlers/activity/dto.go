package activity

import "time"

// RecentQuery limits the number of events returned.
type RecentQuery struct {
	Limit int `query:"limit" validate:"min=0,max=100"`
}

// EventResponse represents one journal entry.
type EventResponse struct {
	ID      uint64    `json:"id"`
	Time    time.Time `json:"time"`
	Message string    `json:"message"`
	Event   string    `json:"event"`
	Link    string    `json:"link,omitempty"`
}
