package api

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog"
	"github.com/terraincognita07/accessaid/internal/db"
)

const testSecretKey = "test-secret-key-with-at-least-32-characters"

type testAccount struct {
	UserID uint
	Email  string
	Token  string
}

func newTestApp(t *testing.T) (*fiber.App, *db.Repositories) {
	t.Helper()
	return newTestAppWithOptions(t, Options{})
}

func newTestAppWithOptions(t *testing.T, options Options) (*fiber.App, *db.Repositories) {
	t.Helper()

	databasePath := filepath.Join(t.TempDir(), "accessaid-api-test.db")
	database, err := db.OpenSQLite(databasePath)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	options.SecretKey = testSecretKey
	options.Logger = zerolog.Nop()
	repositories := db.NewRepositories(database)
	handler, err := NewHandler(repositories, options)
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	app := fiber.New()
	RegisterRoutes(app, handler)
	return app, repositories
}

func doJSON(t *testing.T, app *fiber.App, method string, path string, token string, payload any) *http.Response {
	t.Helper()

	var body io.Reader
	if payload != nil {
		encoded, err := json.Marshal(payload)
		if err != nil {
			t.Fatalf("encode payload: %v", err)
		}
		body = bytes.NewReader(encoded)
	}

	request := httptest.NewRequest(method, path, body)
	if payload != nil {
		request.Header.Set("Content-Type", "application/json")
	}
	if token != "" {
		request.Header.Set("Authorization", "Bearer "+token)
	}

	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("%s %s failed: %v", method, path, err)
	}
	t.Cleanup(func() {
		_ = response.Body.Close()
	})
	return response
}

func expectStatus(t *testing.T, response *http.Response, expected int) {
	t.Helper()
	if response.StatusCode != expected {
		body, _ := io.ReadAll(response.Body)
		t.Fatalf("expected status %d, got %d: %s", expected, response.StatusCode, string(body))
	}
}

func decodeJSON[T any](t *testing.T, response *http.Response) T {
	t.Helper()

	var payload T
	if err := json.NewDecoder(response.Body).Decode(&payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	return payload
}

func readAPIError(t *testing.T, body io.Reader) string {
	t.Helper()

	payload := map[string]any{}
	raw, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read response body: %v", err)
	}
	if err := json.Unmarshal(raw, &payload); err != nil {
		t.Fatalf("decode response body: %v", err)
	}
	message, _ := payload["error"].(string)
	return message
}

type authPayload struct {
	User struct {
		UserID   uint   `json:"user_id"`
		Email    string `json:"email"`
		IsActive bool   `json:"is_active"`
	} `json:"user"`
	Token     string `json:"token"`
	TokenType string `json:"token_type"`
}

func registerTestAccount(t *testing.T, app *fiber.App, email string) testAccount {
	t.Helper()

	response := doJSON(t, app, http.MethodPost, "/api/users", "", map[string]any{
		"email": email,
		"pin":   "1234",
		"name":  "Test Person",
	})
	expectStatus(t, response, http.StatusOK)

	payload := decodeJSON[authPayload](t, response)
	if payload.Token == "" || payload.User.UserID == 0 {
		t.Fatalf("expected token and user id in register response, got %#v", payload)
	}
	return testAccount{UserID: payload.User.UserID, Email: payload.User.Email, Token: payload.Token}
}

type reminderPayload struct {
	ReminderID       uint       `json:"reminder_id"`
	UserID           uint       `json:"user_id"`
	Title            string     `json:"title"`
	ReminderDatetime time.Time  `json:"reminder_datetime"`
	Frequency        string     `json:"frequency"`
	Priority         string     `json:"priority"`
	IsActive         bool       `json:"is_active"`
	IsCompleted      bool       `json:"is_completed"`
	CompletedAt      *time.Time `json:"completed_at"`
}
