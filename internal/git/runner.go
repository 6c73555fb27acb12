package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"go.uber.org/zap"
)

// Runner executes git commands against the configured repository.
//
// The process working directory is never changed: every command gets its own
// cmd.Dir, so concurrent callers elsewhere in the process keep theirs.
type Runner struct {
	config Config

	logger *zap.Logger
}

func NewRunner(config Config, logger *zap.Logger) *Runner {
	return &Runner{
		config: config,
		logger: logger,
	}
}

// Run executes cmd and returns its stdout split into lines. Leading
// whitespace is preserved, the trailing newline is not reported as a line.
func (r *Runner) Run(ctx context.Context, cmd Command) ([]string, error) {
	if cmd.op == "" {
		return nil, fmt.Errorf("%w: empty command", ErrInvalidArgument)
	}

	ctx, cancel := context.WithTimeout(ctx, r.config.timeout())
	defer cancel()

	started := time.Now()
	proc := exec.CommandContext(ctx, r.config.binary(), cmd.args...)
	proc.Dir = r.config.Dir
	if env := r.config.env(); len(env) > 0 {
		proc.Env = append(os.Environ(), env...)
	}

	var stdout, stderr bytes.Buffer
	proc.Stdout = &stdout
	proc.Stderr = &stderr

	err := proc.Run()
	logger := r.logger.With(
		zap.String("op", string(cmd.op)),
		zap.Strings("args", cmd.args),
		zap.Duration("elapsed", time.Since(started)),
	)
	if err != nil {
		failure := &ProcessFailure{
			Op:       cmd.op,
			Args:     cmd.Args(),
			ExitCode: -1,
			Stderr:   stderr.String(),
			Err:      err,
		}

		var exitErr *exec.ExitError
		switch {
		case errors.Is(ctx.Err(), context.DeadlineExceeded):
			failure.Err = fmt.Errorf("%w after %s", ErrTimeout, r.config.timeout())
		case errors.As(err, &exitErr):
			failure.ExitCode = exitErr.ExitCode()
		}

		logger.Error("git command failed",
			zap.Int("exit_code", failure.ExitCode),
			zap.String("stderr", strings.TrimSpace(failure.Stderr)),
			zap.Error(err))
		return nil, failure
	}

	logger.Debug("git command finished")

	return splitLines(stdout.String()), nil
}

func splitLines(output string) []string {
	output = strings.TrimRight(output, "\r\n")
	if output == "" {
		return []string{}
	}

	lines := strings.Split(output, "\n")
	for i, line := range lines {
		lines[i] = strings.TrimSuffix(line, "\r")
	}
	return lines
}
