package actions

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/apiarycd/revisr/internal/actions"
	"github.com/apiarycd/revisr/internal/commits"
	"github.com/apiarycd/revisr/internal/git"
	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap/zaptest"
)

type scriptedRunner struct {
	calls  []git.Op
	failOn git.Op
}

func (r *scriptedRunner) Run(_ context.Context, cmd git.Command) ([]string, error) {
	r.calls = append(r.calls, cmd.Op())
	if cmd.Op() == r.failOn {
		return nil, &git.ProcessFailure{Op: cmd.Op(), ExitCode: 1, Stderr: "rejected"}
	}
	if cmd.Op() == git.OpLastHash {
		return []string{"abc1234"}, nil
	}
	return nil, nil
}

type branchRepository struct{}

func (branchRepository) CurrentBranch(context.Context) (string, error) { return "main", nil }
func (branchRepository) Lock() func()                                  { return func() {} }

type memoryStore struct{}

func (memoryStore) Create(_ context.Context, draft commits.RecordDraft) (*commits.Record, error) {
	return &commits.Record{RecordDraft: draft, ID: uuid.Must(uuid.NewV7())}, nil
}

func (memoryStore) GetByHash(context.Context, string) (*commits.Record, error) {
	return nil, commits.ErrNotFound
}

func newApp(t *testing.T, runner *scriptedRunner) *fiber.App {
	t.Helper()

	logger := zaptest.NewLogger(t)
	svc := actions.NewService(
		runner,
		branchRepository{},
		memoryStore{},
		nil,
		actions.NewMetrics(prometheus.NewRegistry()),
		actions.Config{},
		logger,
	)

	app := fiber.New()
	NewHandler(svc, validator.New(), logger).Register(app.Group("/api/v1"))
	return app
}

func post(t *testing.T, app *fiber.App, path, body string) (*http.Response, ActionResponse) {
	t.Helper()

	req := httptest.NewRequest(http.MethodPost, path, strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)

	resp, err := app.Test(req)
	require.NoError(t, err)
	t.Cleanup(func() { _ = resp.Body.Close() })

	var out ActionResponse
	if resp.StatusCode < http.StatusBadRequest {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}
	return resp, out
}

func TestHandler_Commit(t *testing.T) {
	runner := &scriptedRunner{}
	resp, out := post(t, newApp(t, runner), "/api/v1/actions/commit", `{"title":"Update homepage"}`)

	assert.Equal(t, http.StatusCreated, resp.StatusCode)
	assert.Equal(t, "commit", out.Action)
	assert.Equal(t, "abc1234", out.Hash)
	require.NotNil(t, out.RecordID)
	assert.Equal(t, "/api/v1/commits/"+out.RecordID.String(), out.Redirect)
}

func TestHandler_CommitValidation(t *testing.T) {
	runner := &scriptedRunner{}
	resp, _ := post(t, newApp(t, runner), "/api/v1/actions/commit", `{"title":""}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, runner.calls)
}

func TestHandler_RevertRejectsNonHash(t *testing.T) {
	runner := &scriptedRunner{}
	resp, _ := post(t, newApp(t, runner), "/api/v1/actions/revert", `{"commit_hash":"--hard"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, runner.calls)
}

func TestHandler_RevertRejectsPrefixedHash(t *testing.T) {
	runner := &scriptedRunner{}
	resp, _ := post(t, newApp(t, runner), "/api/v1/actions/revert", `{"commit_hash":"0xabc1"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, runner.calls)
}

func TestHandler_Revert(t *testing.T) {
	runner := &scriptedRunner{}
	resp, out := post(t, newApp(t, runner), "/api/v1/actions/revert", `{"commit_hash":"def5678"}`)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "?commit=def5678&revert=success", out.Redirect)
	assert.Nil(t, out.RecordID)
}

func TestHandler_CheckoutInvalidRef(t *testing.T) {
	runner := &scriptedRunner{}
	resp, _ := post(t, newApp(t, runner), "/api/v1/actions/checkout", `{"branch":"a..b"}`)

	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Empty(t, runner.calls)
}

func TestHandler_Discard(t *testing.T) {
	resp, out := post(t, newApp(t, &scriptedRunner{}), "/api/v1/actions/discard", "")

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Successfully discarded uncommitted changes.", out.Message)
	assert.Nil(t, out.RecordID)
}

func TestHandler_PushFailureIsBadGateway(t *testing.T) {
	runner := &scriptedRunner{failOn: git.OpPush}
	resp, _ := post(t, newApp(t, runner), "/api/v1/actions/push", "")

	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, []git.Op{git.OpResetHard, git.OpPush}, runner.calls)
}
