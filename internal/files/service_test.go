package files

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/apiarycd/revisr/internal/status"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type fakeRunner struct {
	lines []string
	err   error
	calls []string
}

func (f *fakeRunner) Run(_ context.Context, cmd git.Command) ([]string, error) {
	f.calls = append(f.calls, cmd.String())
	return f.lines, f.err
}

type fakeLocker struct {
	readers int
	held    int
}

func (f *fakeLocker) RLock() func() {
	f.readers++
	f.held++
	return func() { f.held-- }
}

type fakeRecords map[uuid.UUID]*commits.Record

func (f fakeRecords) Get(_ context.Context, id uuid.UUID) (*commits.Record, error) {
	record, ok := f[id]
	if !ok {
		return nil, commits.ErrNotFound
	}
	return record, nil
}

func statusLines(n int) []string {
	lines := make([]string, n)
	for i := range lines {
		lines[i] = fmt.Sprintf(" M file%02d.txt", i+1)
	}
	return lines
}

func TestService_PendingPaginates(t *testing.T) {
	runner := &fakeRunner{lines: statusLines(45)}
	locker := &fakeLocker{}
	svc := NewService(runner, locker, fakeRecords{}, Config{}, zaptest.NewLogger(t))

	page, err := svc.Pending(context.Background(), 3)
	require.NoError(t, err)

	assert.Equal(t, []string{"git status --short"}, runner.calls)
	assert.Equal(t, 3, page.Page)
	assert.Equal(t, 3, page.TotalPages)
	assert.Equal(t, 45, page.TotalItems)
	require.Len(t, page.Items, 5)
	assert.Equal(t, "file41.txt", page.Items[0].Path)

	assert.Equal(t, 1, locker.readers)
	assert.Zero(t, locker.held)
}

func TestService_PendingClampsPage(t *testing.T) {
	svc := NewService(&fakeRunner{lines: statusLines(45)}, &fakeLocker{}, fakeRecords{}, Config{PageSize: 20}, zaptest.NewLogger(t))

	page, err := svc.Pending(context.Background(), 99)
	require.NoError(t, err)
	assert.Equal(t, 3, page.Page)

	page, err = svc.Pending(context.Background(), -4)
	require.NoError(t, err)
	assert.Equal(t, 1, page.Page)
	assert.Len(t, page.Items, 20)
}

func TestService_PendingEmptyTree(t *testing.T) {
	svc := NewService(&fakeRunner{}, &fakeLocker{}, fakeRecords{}, Config{}, zaptest.NewLogger(t))

	page, err := svc.Pending(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, 1, page.TotalPages)
	assert.Empty(t, page.Items)
	assert.NotNil(t, page.Items)
}

func TestService_PendingMalformedLineIsUnknown(t *testing.T) {
	svc := NewService(&fakeRunner{lines: []string{"?? new.txt", "x"}}, &fakeLocker{}, fakeRecords{}, Config{}, zaptest.NewLogger(t))

	page, err := svc.Pending(context.Background(), 1)
	require.NoError(t, err)
	assert.Equal(t, []status.Entry{
		{Path: "new.txt", Kind: status.KindUntracked},
		{Path: "x", Kind: status.KindUnknown},
	}, page.Items)
}

func TestService_PendingRunnerFailure(t *testing.T) {
	runner := &fakeRunner{err: &git.ProcessFailure{Op: git.OpStatus, ExitCode: 128}}
	locker := &fakeLocker{}
	svc := NewService(runner, locker, fakeRecords{}, Config{}, zaptest.NewLogger(t))

	_, err := svc.Pending(context.Background(), 1)
	require.ErrorIs(t, err, git.ErrProcessFailed)
	assert.Zero(t, locker.held)
}

func TestService_Committed(t *testing.T) {
	id := uuid.Must(uuid.NewV7())
	files := make([]status.Entry, 25)
	for i := range files {
		files[i] = status.Entry{Path: fmt.Sprintf("f%d", i), Kind: status.KindAdded}
	}
	records := fakeRecords{id: {ID: id, RecordDraft: commits.RecordDraft{Files: files}}}
	svc := NewService(&fakeRunner{}, &fakeLocker{}, records, Config{PageSize: 10}, zaptest.NewLogger(t))

	page, err := svc.Committed(context.Background(), id, 3)
	require.NoError(t, err)
	assert.Equal(t, 3, page.TotalPages)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, "f20", page.Items[0].Path)

	_, err = svc.Committed(context.Background(), uuid.Must(uuid.NewV7()), 1)
	require.ErrorIs(t, err, commits.ErrNotFound)
}

func TestService_DiffRejectsUnsafePaths(t *testing.T) {
	runner := &fakeRunner{}
	svc := NewService(runner, &fakeLocker{}, fakeRecords{}, Config{}, zaptest.NewLogger(t))

	for _, file := range []string{"", "../etc/passwd", "/etc/passwd", "a/../../b", "a\x00b"} {
		_, err := svc.Diff(context.Background(), file)
		require.ErrorIs(t, err, git.ErrInvalidArgument, file)
	}
	assert.Empty(t, runner.calls)
}

func TestService_DiffAgainstHead(t *testing.T) {
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git binary not found in PATH")
	}

	dir := t.TempDir()
	run := func(args ...string) {
		cmd := exec.Command("git", args...)
		cmd.Dir = dir
		cmd.Env = append(os.Environ(),
			"GIT_AUTHOR_NAME=Test", "GIT_AUTHOR_EMAIL=test@example.com",
			"GIT_COMMITTER_NAME=Test", "GIT_COMMITTER_EMAIL=test@example.com")
		out, err := cmd.CombinedOutput()
		require.NoError(t, err, string(out))
	}

	run("init")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("one\n"), 0o644))
	run("add", "-A")
	run("commit", "-m", "initial")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "a.txt"), []byte("two\n"), 0o644))

	logger := zaptest.NewLogger(t)
	config := git.Config{Dir: dir}
	repo, err := git.NewRepository(config, logger)
	require.NoError(t, err)

	svc := NewService(git.NewRunner(config, logger), repo, fakeRecords{}, Config{}, logger)

	diff, err := svc.Diff(context.Background(), "a.txt")
	require.NoError(t, err)
	assert.Equal(t, "a.txt", diff.File)
	assert.Contains(t, diff.Lines, "-one")
	assert.Contains(t, diff.Lines, "+two")
}
