package actions

import (
	"context"
	"errors"
	"fmt"
	"html"
	"net/url"
	"strings"
	"time"

	"github.com/apiarycd/revisr/internal/activity"
	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/status"
	"go.uber.org/zap"
)

const commitsPath = "/api/v1/commits/"

type Config struct {
	Remote string
}

func (c Config) remote() string {
	if c.Remote == "" {
		return git.DefaultRemote
	}
	return c.Remote
}

type Service struct {
	runner  Runner
	repo    Repository
	records CommitStore
	hooks   []Hook
	metrics *Metrics

	config Config
	logger *zap.Logger
}

func NewService(
	runner Runner,
	repo Repository,
	records CommitStore,
	hooks []Hook,
	metrics *Metrics,
	config Config,
	logger *zap.Logger,
) *Service {
	return &Service{
		runner:  runner,
		repo:    repo,
		records: records,
		hooks:   hooks,
		metrics: metrics,

		config: config,
		logger: logger,
	}
}

// Commit stages every change, commits it with title and pushes the current
// branch. The pending changes are captured before staging and stored with
// the commit record.
func (s *Service) Commit(ctx context.Context, title string) (*Result, error) {
	return s.execute(ctx, ActionCommit, func(ctx context.Context) (*Result, *Outcome, error) {
		commit, err := git.CommitWithMessage(title)
		if err != nil {
			return nil, nil, err
		}

		branch, err := s.repo.CurrentBranch(ctx)
		if err != nil {
			return nil, nil, err
		}

		push, err := git.PushBranch(s.config.remote(), branch)
		if err != nil {
			return nil, nil, err
		}

		seq := s.sequence(ActionCommit)

		lines, err := seq.run(ctx, git.StatusShort())
		if err != nil {
			return nil, nil, err
		}
		files := status.ParseLines(lines, func(err error) {
			s.logger.Warn("skipping malformed status line", zap.Error(err))
		})

		if _, err = seq.run(ctx, git.StageAll()); err != nil {
			return nil, nil, err
		}
		if _, err = seq.run(ctx, commit); err != nil {
			return nil, nil, err
		}

		lines, err = seq.run(ctx, git.LastCommitHash())
		if err != nil {
			return nil, nil, err
		}
		hash := firstLine(lines)
		if hash == "" {
			return nil, nil, &StepError{Action: ActionCommit, Step: seq.step, Op: git.OpLastHash, Err: ErrEmptyHash}
		}

		if _, err = seq.run(ctx, push); err != nil {
			return nil, nil, err
		}

		result := &Result{
			Action: ActionCommit,
			Hash:   hash,
			Branch: branch,
		}
		outcome := &Outcome{
			Action:  ActionCommit,
			Kind:    activity.KindCommit,
			Summary: fmt.Sprintf("Committed #%s to the repository.", hash),
			Subject: "New Commit",
			Body: fmt.Sprintf(
				"A new commit was made to the repository:<br> #%s - %s",
				html.EscapeString(hash),
				html.EscapeString(title),
			),
		}

		record, err := s.records.Create(ctx, commits.RecordDraft{
			Title:  title,
			Hash:   hash,
			Branch: branch,
			Files:  files,
		})
		if err != nil {
			s.logger.Error("failed to store commit record", zap.String("hash", hash), zap.Error(err))
		} else {
			result.Record = record
			result.Redirect = recordPath(record)
			outcome.Link = result.Redirect
		}

		return result, outcome, nil
	})
}

// Revert moves the branch to hash while keeping the previous tip's tree,
// stages the difference, pushes and then commits it. When the staged tree
// already matches the tip there is nothing to commit and that step is skipped.
//
// The push runs before the revert commit, so the remote receives the branch
// without that commit.
func (s *Service) Revert(ctx context.Context, hash string) (*Result, error) {
	return s.execute(ctx, ActionRevert, func(ctx context.Context) (*Result, *Outcome, error) {
		if err := git.ValidateHash(hash); err != nil {
			return nil, nil, err
		}

		hard, err := git.HardReset(hash)
		if err != nil {
			return nil, nil, err
		}
		soft, err := git.SoftReset(git.RefPreviousHead)
		if err != nil {
			return nil, nil, err
		}
		commit, err := git.CommitWithMessage("Reverted to commit: #" + hash)
		if err != nil {
			return nil, nil, err
		}

		branch, err := s.repo.CurrentBranch(ctx)
		if err != nil {
			return nil, nil, err
		}
		push, err := git.PushBranch(s.config.remote(), branch)
		if err != nil {
			return nil, nil, err
		}

		seq := s.sequence(ActionRevert)
		if err = seq.runAll(ctx, hard, soft, git.StageAll()); err != nil {
			return nil, nil, err
		}
		staged, err := seq.run(ctx, git.StatusShort())
		if err != nil {
			return nil, nil, err
		}
		if err = seq.runAll(ctx, push); err != nil {
			return nil, nil, err
		}
		if len(staged) == 0 {
			s.logger.Info("tree already matches revert target, nothing to commit", zap.String("hash", hash))
		} else if err = seq.runAll(ctx, commit); err != nil {
			return nil, nil, err
		}

		result := &Result{
			Action:   ActionRevert,
			Redirect: "?" + url.Values{"revert": {"success"}, "commit": {hash}}.Encode(),
			Hash:     hash,
			Branch:   branch,
		}
		outcome := &Outcome{
			Action:  ActionRevert,
			Kind:    activity.KindRevert,
			Summary: fmt.Sprintf("Reverted to commit #%s.", hash),
			Subject: "Commit Reverted",
			Body:    fmt.Sprintf("The repository was reverted to commit #%s.", html.EscapeString(hash)),
		}

		// Targets committed through this service link back to their record.
		record, err := s.records.GetByHash(ctx, hash)
		switch {
		case err == nil:
			result.Record = record
			outcome.Link = recordPath(record)
		case !errors.Is(err, commits.ErrNotFound):
			s.logger.Warn("failed to look up revert target record", zap.String("hash", hash), zap.Error(err))
		}

		return result, outcome, nil
	})
}

// Discard throws away every uncommitted change to tracked files.
func (s *Service) Discard(ctx context.Context) (*Result, error) {
	return s.execute(ctx, ActionDiscard, func(ctx context.Context) (*Result, *Outcome, error) {
		if err := s.sequence(ActionDiscard).runAll(ctx, mustHardResetHead()); err != nil {
			return nil, nil, err
		}

		return &Result{
				Action:  ActionDiscard,
				Message: "Successfully discarded uncommitted changes.",
			}, &Outcome{
				Action:  ActionDiscard,
				Kind:    activity.KindDiscard,
				Summary: "Discarded all changes to the working directory.",
				Subject: "Changes Discarded",
				Body:    "All uncommitted changes were discarded from the repository.",
			}, nil
	})
}

// Checkout discards uncommitted changes and switches to branch.
func (s *Service) Checkout(ctx context.Context, branch string) (*Result, error) {
	return s.execute(ctx, ActionCheckout, func(ctx context.Context) (*Result, *Outcome, error) {
		checkout, err := git.Checkout(branch)
		if err != nil {
			return nil, nil, err
		}

		if err = s.sequence(ActionCheckout).runAll(ctx, mustHardResetHead(), checkout); err != nil {
			return nil, nil, err
		}

		return &Result{
				Action:   ActionCheckout,
				Redirect: "?" + url.Values{"checkout": {"success"}, "branch": {branch}}.Encode(),
				Branch:   branch,
			}, &Outcome{
				Action:  ActionCheckout,
				Kind:    activity.KindBranch,
				Summary: fmt.Sprintf("Checked out branch: %s.", branch),
				Subject: "Branch Changed",
				Body:    fmt.Sprintf("The repository was switched to the branch %s.", html.EscapeString(branch)),
			}, nil
	})
}

// Push discards uncommitted changes and pushes HEAD to the remote.
func (s *Service) Push(ctx context.Context) (*Result, error) {
	return s.execute(ctx, ActionPush, func(ctx context.Context) (*Result, *Outcome, error) {
		push, err := git.PushHead(s.config.remote())
		if err != nil {
			return nil, nil, err
		}

		if err = s.sequence(ActionPush).runAll(ctx, mustHardResetHead(), push); err != nil {
			return nil, nil, err
		}

		return &Result{
				Action:  ActionPush,
				Message: "Successfully pushed to the remote.",
			}, &Outcome{
				Action:  ActionPush,
				Kind:    activity.KindPush,
				Summary: "Pushed changes to the remote repository.",
				Subject: "Changes Pushed",
				Body:    "Changes were pushed to the remote repository.",
			}, nil
	})
}

// Pull discards uncommitted changes and pulls from the remote.
func (s *Service) Pull(ctx context.Context) (*Result, error) {
	return s.execute(ctx, ActionPull, func(ctx context.Context) (*Result, *Outcome, error) {
		pull, err := git.Pull(s.config.remote())
		if err != nil {
			return nil, nil, err
		}

		if err = s.sequence(ActionPull).runAll(ctx, mustHardResetHead(), pull); err != nil {
			return nil, nil, err
		}

		return &Result{
				Action:  ActionPull,
				Message: "Successfully pulled from the remote.",
			}, &Outcome{
				Action:  ActionPull,
				Kind:    activity.KindPull,
				Summary: "Pulled changes from the remote repository.",
				Subject: "Changes Pulled",
				Body:    "Changes were pulled from the remote repository.",
			}, nil
	})
}

// execute holds the exclusive repository lock for the whole action. The
// caller's cancellation is not propagated: once started, a sequence runs to
// completion or to its first failing step.
func (s *Service) execute(
	ctx context.Context,
	action Action,
	fn func(ctx context.Context) (*Result, *Outcome, error),
) (*Result, error) {
	ctx = context.WithoutCancel(ctx)

	unlock := s.repo.Lock()
	defer unlock()

	started := time.Now()
	result, outcome, err := fn(ctx)
	elapsed := time.Since(started).Seconds()

	if err != nil {
		label := outcomeFailure
		if errors.Is(err, git.ErrInvalidArgument) {
			label = outcomeInvalid
		}
		s.metrics.observe(action, label, elapsed)
		s.logger.Warn("action failed", zap.String("action", string(action)), zap.Error(err))
		return nil, err
	}

	s.metrics.observe(action, outcomeSuccess, elapsed)
	s.logger.Info("action completed", zap.String("action", string(action)), zap.Float64("seconds", elapsed))

	for _, hook := range s.hooks {
		if hookErr := hook.AfterAction(ctx, *outcome); hookErr != nil {
			s.logger.Error(
				"post-action hook failed",
				zap.String("action", string(action)),
				zap.String("hook", hook.Name()),
				zap.Error(hookErr),
			)
		}
	}

	return result, nil
}

type sequence struct {
	runner Runner
	action Action
	step   int
}

func (s *Service) sequence(action Action) *sequence {
	return &sequence{runner: s.runner, action: action}
}

func (q *sequence) run(ctx context.Context, cmd git.Command) ([]string, error) {
	q.step++

	lines, err := q.runner.Run(ctx, cmd)
	if err != nil {
		return nil, &StepError{Action: q.action, Step: q.step, Op: cmd.Op(), Err: err}
	}
	return lines, nil
}

func (q *sequence) runAll(ctx context.Context, cmds ...git.Command) error {
	for _, cmd := range cmds {
		if _, err := q.run(ctx, cmd); err != nil {
			return err
		}
	}
	return nil
}

func mustHardResetHead() git.Command {
	cmd, err := git.HardReset(git.RefHead)
	if err != nil {
		panic(err)
	}
	return cmd
}

func recordPath(record *commits.Record) string {
	return commitsPath + record.ID.String()
}

func firstLine(lines []string) string {
	if len(lines) == 0 {
		return ""
	}
	return strings.TrimSpace(lines[0])
}
