package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/terraincognita07/accessaid/internal/models"
)

func TestSyncDeviceUpsertsByIdentifier(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	account := registerTestAccount(t, app, "devices@example.com")
	path := fmt.Sprintf("/api/users/%d/devices", account.UserID)

	first := doJSON(t, app, http.MethodPost, path, account.Token, map[string]any{
		"device_identifier": "phone-1",
		"device_name":       "Phone",
		"platform":          "ios",
	})
	expectStatus(t, first, http.StatusCreated)
	created := decodeJSON[models.DeviceSync](t, first)

	second := doJSON(t, app, http.MethodPost, path, account.Token, map[string]any{
		"device_identifier": "phone-1",
		"sync_status":       "error",
	})
	expectStatus(t, second, http.StatusOK)
	updated := decodeJSON[models.DeviceSync](t, second)
	if updated.ID != created.ID || updated.SyncStatus != models.SyncStatusError || updated.DeviceName != "Phone" {
		t.Fatalf("expected in-place update, got %#v", updated)
	}

	list := doJSON(t, app, http.MethodGet, path, account.Token, nil)
	expectStatus(t, list, http.StatusOK)
	if devices := decodeJSON[[]models.DeviceSync](t, list); len(devices) != 1 {
		t.Fatalf("expected one device, got %d", len(devices))
	}

	invalid := doJSON(t, app, http.MethodPost, path, account.Token, map[string]any{"sync_status": "active"})
	expectStatus(t, invalid, http.StatusBadRequest)
}

func TestAccessibilityLogsRecordAndList(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	account := registerTestAccount(t, app, "a11y@example.com")
	path := fmt.Sprintf("/api/users/%d/accessibility-logs", account.UserID)

	for _, action := range []string{"open", "close"} {
		response := doJSON(t, app, http.MethodPost, path, account.Token, map[string]any{
			"feature_used": "voice_navigation",
			"action":       action,
			"context_data": map[string]any{"screen": "home"},
		})
		expectStatus(t, response, http.StatusOK)
	}

	list := doJSON(t, app, http.MethodGet, path+"?limit=1", account.Token, nil)
	expectStatus(t, list, http.StatusOK)
	entries := decodeJSON[[]models.AccessibilityLog](t, list)
	if len(entries) != 1 || entries[0].Action != "close" {
		t.Fatalf("expected newest entry only, got %#v", entries)
	}

	invalid := doJSON(t, app, http.MethodPost, path, account.Token, map[string]any{"action": "open"})
	expectStatus(t, invalid, http.StatusBadRequest)
}

func TestMLModelCatalog(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	account := registerTestAccount(t, app, "ml@example.com")

	created := doJSON(t, app, http.MethodPost, "/api/ml-models", account.Token, map[string]any{
		"model_name":     "reminder-timing",
		"model_type":     "regression",
		"version":        "1.0.0",
		"accuracy_score": 0.82,
	})
	expectStatus(t, created, http.StatusOK)
	model := decodeJSON[models.MLModel](t, created)

	found := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/ml-models/%d", model.ID), account.Token, nil)
	expectStatus(t, found, http.StatusOK)

	missing := doJSON(t, app, http.MethodGet, "/api/ml-models/9999", account.Token, nil)
	expectStatus(t, missing, http.StatusNotFound)

	invalid := doJSON(t, app, http.MethodPost, "/api/ml-models", account.Token, map[string]any{"model_name": "x"})
	expectStatus(t, invalid, http.StatusBadRequest)
}
