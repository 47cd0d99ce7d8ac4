package main

import (
	"bytes"
	"io"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/accessaid/internal/api"
	"github.com/terraincognita07/accessaid/internal/db"
)

func TestNewAppServesHealthWithRequestID(t *testing.T) {
	database, err := db.OpenSQLite(filepath.Join(t.TempDir(), "accessaid-main.db"))
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() {
		_ = db.Close(database)
	})

	handler, err := api.NewHandler(db.NewRepositories(database), api.Options{
		SecretKey: "0123456789abcdef0123456789abcdef",
		Logger:    zerolog.Nop(),
	})
	if err != nil {
		t.Fatalf("init handler: %v", err)
	}

	var accessLog bytes.Buffer
	app := newApp(handler, "*", &accessLog)

	request := httptest.NewRequest(http.MethodGet, "/api/health", nil)
	request.Header.Set("Origin", "https://client.example.com")
	response, err := app.Test(request, -1)
	if err != nil {
		t.Fatalf("health request failed: %v", err)
	}
	defer response.Body.Close()

	if response.StatusCode != http.StatusOK {
		t.Fatalf("expected status 200, got %d", response.StatusCode)
	}
	if response.Header.Get("X-Request-ID") == "" {
		t.Fatal("expected request id header")
	}
	if response.Header.Get("Access-Control-Allow-Origin") == "" {
		t.Fatal("expected CORS header on cross-origin request")
	}
	body, _ := io.ReadAll(response.Body)
	if !strings.Contains(string(body), `"ok"`) {
		t.Fatalf("unexpected health body %q", string(body))
	}
	if !strings.Contains(accessLog.String(), "/api/health") {
		t.Fatalf("expected access log entry, got %q", accessLog.String())
	}
}

func TestRootCommandRegistersSubcommands(t *testing.T) {
	root := newRootCommand(os.Stdin, io.Discard)

	for _, name := range []string{"serve", "seed", "reset-pin", "set-pin"} {
		command, _, err := root.Find([]string{name})
		if err != nil || command == root {
			t.Fatalf("expected subcommand %q, err=%v", name, err)
		}
	}
}

func TestResetPINRequiresEmailFlag(t *testing.T) {
	root := newRootCommand(os.Stdin, io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"reset-pin"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "email") {
		t.Fatalf("expected missing email flag error, got %v", err)
	}
}

func TestServeRefusesMissingSecretKey(t *testing.T) {
	unsetEnv(t, "ACCESSAID_SECRET_KEY")
	t.Setenv("ACCESSAID_DB_PATH", filepath.Join(t.TempDir(), "accessaid-serve.db"))

	root := newRootCommand(os.Stdin, io.Discard)
	root.SetErr(io.Discard)
	root.SetArgs([]string{"serve"})

	err := root.Execute()
	if err == nil || !strings.Contains(err.Error(), "SECRET_KEY") {
		t.Fatalf("expected secret key error, got %v", err)
	}
}

func TestSeedCommandPopulatesDatabase(t *testing.T) {
	databasePath := filepath.Join(t.TempDir(), "accessaid-seed-cmd.db")
	t.Setenv("ACCESSAID_DB_PATH", databasePath)
	t.Setenv("ACCESSAID_LOG_LEVEL", "error")

	var out bytes.Buffer
	root := newRootCommand(os.Stdin, &out)
	root.SetArgs([]string{"seed"})
	if err := root.Execute(); err != nil {
		t.Fatalf("seed command failed: %v", err)
	}
	if !strings.Contains(out.String(), "seeded successfully") {
		t.Fatalf("unexpected seed output %q", out.String())
	}
}

func unsetEnv(t *testing.T, key string) {
	t.Helper()
	t.Setenv(key, "")
	if err := os.Unsetenv(key); err != nil {
		t.Fatalf("unset %s: %v", key, err)
	}
}
