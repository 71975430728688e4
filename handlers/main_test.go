package handlers_test

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"
	_ "modernc.org/sqlite"

	"hrms-backend/config"
	"hrms-backend/router"
)

// fakeMailer records reset mails instead of dialing SMTP.
type fakeMailer struct {
	sentTo       []string
	lastPassword string
	failNext     bool
}

func (m *fakeMailer) SendPasswordReset(to, firstName, tempPassword string) error {
	if m.failNext {
		m.failNext = false
		return errSMTP
	}
	m.sentTo = append(m.sentTo, to)
	m.lastPassword = tempPassword
	return nil
}

var errSMTP = &smtpError{}

type smtpError struct{}

func (e *smtpError) Error() string { return "smtp unreachable" }

func setupTestApp(t *testing.T) (*fiber.App, *sql.DB, *fakeMailer) {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	require.NoError(t, err)
	// An in-memory SQLite database exists per connection; keep exactly one.
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { db.Close() })

	require.NoError(t, config.InitDatabase(db))

	cfg := &config.AppConfig{
		AdminEmail:    "admin@gmail.com",
		AdminPassword: "123",
	}
	mail := &fakeMailer{}

	app := fiber.New()
	router.SetupRoutes(app, db, cfg, mail)
	return app, db, mail
}

func doRequest(t *testing.T, app *fiber.App, method, path string, body any) (*http.Response, map[string]interface{}) {
	t.Helper()

	var reader io.Reader
	if body != nil {
		raw, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(raw)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var decoded map[string]interface{}
	if len(raw) > 0 {
		// Listing endpoints return arrays; those tests decode the body
		// themselves via doRequestList.
		_ = json.Unmarshal(raw, &decoded)
	}
	return resp, decoded
}

func doRequestList(t *testing.T, app *fiber.App, path string) (*http.Response, []map[string]interface{}) {
	t.Helper()

	req := httptest.NewRequest(http.MethodGet, path, nil)
	resp, err := app.Test(req, -1)
	require.NoError(t, err)

	var decoded []map[string]interface{}
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&decoded))
	return resp, decoded
}

// registerEmployee creates an employee and returns its id.
func registerEmployee(t *testing.T, app *fiber.App, email string) string {
	t.Helper()

	resp, body := doRequest(t, app, http.MethodPost, "/register", map[string]any{
		"first_name": "Asha",
		"last_name":  "Verma",
		"email":      email,
		"password":   "secret123",
	})
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}

// activateEmployee clears the first-login flag so plain logins succeed.
func activateEmployee(t *testing.T, app *fiber.App, id, newPassword string) {
	t.Helper()

	resp, _ := doRequest(t, app, http.MethodPut, "/force-change-password", map[string]any{
		"user_id":      id,
		"new_password": newPassword,
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)
}
