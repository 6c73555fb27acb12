package git

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrRepositoryNotFound = errors.New("repository not found")
	ErrInvalidRepository  = errors.New("invalid repository")
	ErrInvalidArgument    = errors.New("invalid argument")
	ErrProcessFailed      = errors.New("git process failed")
	ErrTimeout            = errors.New("operation timeout")
)

// ProcessFailure describes a git invocation that did not exit cleanly.
type ProcessFailure struct {
	Op       Op
	Args     []string
	ExitCode int
	Stderr   string
	Err      error
}

func (e *ProcessFailure) Error() string {
	msg := fmt.Sprintf("git %s failed", e.Op)
	if e.ExitCode >= 0 {
		msg += fmt.Sprintf(" with exit code %d", e.ExitCode)
	}
	if stderr := strings.TrimSpace(e.Stderr); stderr != "" {
		msg += ": " + stderr
	} else if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ProcessFailure) Unwrap() error {
	return e.Err
}

// Is reports ErrProcessFailed for every ProcessFailure.
func (e *ProcessFailure) Is(target error) bool {
	return target == ErrProcessFailed
}
