package commits

import "errors"

var (
	ErrNotFound    = errors.New("commit record not found")
	ErrPersistence = errors.New("failed to persist commit record")
)
