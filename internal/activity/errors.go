package activity

import "errors"

var (
	ErrPersistence = errors.New("failed to persist activity")
	ErrInvalidKind = errors.New("invalid activity kind")
)
