package validation

import (
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type titleRequest struct {
	Title string `json:"title" validate:"required,max=8"`
}

type limitQuery struct {
	Limit int `query:"limit" validate:"min=0,max=100"`
}

func newApp() *fiber.App {
	v := validator.New()
	app := fiber.New()

	app.Post("/body", DecorateWithBodyEx(v, func(c *fiber.Ctx, req *titleRequest) error {
		return c.SendString(req.Title)
	}))
	app.Get("/query", DecorateWithQueryEx(v, func(c *fiber.Ctx, req *limitQuery) error {
		return c.JSON(req)
	}))

	return app
}

func send(t *testing.T, app *fiber.App, req *http.Request) (int, string) {
	t.Helper()

	resp, err := app.Test(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)
	return resp.StatusCode, string(body)
}

func jsonRequest(body string) *http.Request {
	req := httptest.NewRequest(http.MethodPost, "/body", strings.NewReader(body))
	req.Header.Set(fiber.HeaderContentType, fiber.MIMEApplicationJSON)
	return req
}

func TestDecorateWithBodyEx(t *testing.T) {
	app := newApp()

	code, body := send(t, app, jsonRequest(`{"title":"hello"}`))
	assert.Equal(t, http.StatusOK, code)
	assert.Equal(t, "hello", body)

	code, _ = send(t, app, jsonRequest(`{"title":""}`))
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = send(t, app, jsonRequest(`{"title":"far too long"}`))
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = send(t, app, jsonRequest(`{`))
	assert.Equal(t, http.StatusBadRequest, code)
}

func TestDecorateWithQueryEx(t *testing.T) {
	app := newApp()

	code, body := send(t, app, httptest.NewRequest(http.MethodGet, "/query?limit=5", nil))
	assert.Equal(t, http.StatusOK, code)
	assert.JSONEq(t, `{"Limit":5}`, body)

	code, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/query?limit=500", nil))
	assert.Equal(t, http.StatusBadRequest, code)

	code, _ = send(t, app, httptest.NewRequest(http.MethodGet, "/query?limit=abc", nil))
	assert.Equal(t, http.StatusBadRequest, code)
}
