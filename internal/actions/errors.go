package actions

import (
	"errors"
	"fmt"

	"github.com/apiarycd/revisr/internal/git"
)

var ErrEmptyHash = errors.New("git log returned no commit hash")

// StepError reports which step of an action failed. Steps after it were not
// run and steps before it were not rolled back.
type StepError struct {
	Action Action
	Step   int
	Op     git.Op
	Err    error
}

func (e *StepError) Error() string {
	return fmt.Sprintf("%s aborted at step %d (%s): %v", e.Action, e.Step, e.Op, e.Err)
}

func (e *StepError) Unwrap() error {
	return e.Err
}
