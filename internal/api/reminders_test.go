package api

import (
	"fmt"
	"net/http"
	"testing"
	"time"
)

func TestReminderLifecycleScenario(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	registerTestAccount(t, app, "scenario@example.com")

	login := doJSON(t, app, http.MethodPost, "/api/sessions", "", map[string]any{"email": "scenario@example.com", "pin": "1234"})
	expectStatus(t, login, http.StatusOK)
	session := decodeJSON[authPayload](t, login)
	wrong := doJSON(t, app, http.MethodPost, "/api/sessions", "", map[string]any{"email": "scenario@example.com", "pin": "0000"})
	expectStatus(t, wrong, http.StatusUnauthorized)

	remindersPath := fmt.Sprintf("/api/users/%d/reminders", session.User.UserID)
	created := doJSON(t, app, http.MethodPost, remindersPath, session.Token, map[string]any{
		"title":             "Take pills",
		"reminder_datetime": "2030-01-02T08:00:00+02:00",
		"frequency":         "daily",
		"priority":          "high",
	})
	expectStatus(t, created, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, created)
	if !reminder.ReminderDatetime.Equal(time.Date(2030, time.January, 2, 6, 0, 0, 0, time.UTC)) {
		t.Fatalf("expected datetime normalized to UTC, got %s", reminder.ReminderDatetime)
	}

	list := doJSON(t, app, http.MethodGet, remindersPath, session.Token, nil)
	expectStatus(t, list, http.StatusOK)
	reminders := decodeJSON[[]reminderPayload](t, list)
	if len(reminders) != 1 || reminders[0].ReminderID != reminder.ReminderID {
		t.Fatalf("expected the created reminder in list, got %#v", reminders)
	}

	deleted := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/reminders/%d", reminder.ReminderID), session.Token, nil)
	expectStatus(t, deleted, http.StatusOK)

	empty := doJSON(t, app, http.MethodGet, remindersPath, session.Token, nil)
	expectStatus(t, empty, http.StatusOK)
	if remaining := decodeJSON[[]reminderPayload](t, empty); len(remaining) != 0 {
		t.Fatalf("expected empty reminder list after delete, got %d", len(remaining))
	}

	again := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/reminders/%d", reminder.ReminderID), session.Token, nil)
	expectStatus(t, again, http.StatusNotFound)
}

func TestCreateReminderDefaultsToOneHourAhead(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	account := registerTestAccount(t, app, "default-time@example.com")

	before := time.Now().UTC()
	response := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", account.UserID), account.Token, map[string]any{
		"title": "Stretch",
	})
	expectStatus(t, response, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, response)

	expected := before.Add(time.Hour)
	if reminder.ReminderDatetime.Before(expected.Add(-time.Minute)) || reminder.ReminderDatetime.After(expected.Add(time.Minute)) {
		t.Fatalf("expected reminder near %s, got %s", expected, reminder.ReminderDatetime)
	}
	if reminder.Frequency != "once" || reminder.Priority != "medium" || !reminder.IsActive {
		t.Fatalf("unexpected defaults %#v", reminder)
	}
}

func TestCreateReminderRejectsBadDatetimeWithoutWriting(t *testing.T) {
	t.Parallel()

	app, repositories := newTestApp(t)
	account := registerTestAccount(t, app, "bad-time@example.com")

	for _, value := range []string{"tomorrow", "2030-01-02T08:00:00", "2030-13-40T00:00:00Z"} {
		response := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", account.UserID), account.Token, map[string]any{
			"title":             "Broken",
			"reminder_datetime": value,
		})
		expectStatus(t, response, http.StatusBadRequest)
		if message := readAPIError(t, response.Body); message != "invalid datetime format" {
			t.Fatalf("datetime %q: unexpected error %q", value, message)
		}
	}

	reminders, err := repositories.Reminders.ListByUser(account.UserID)
	if err != nil {
		t.Fatalf("list reminders: %v", err)
	}
	if len(reminders) != 0 {
		t.Fatalf("expected no reminders after rejected input, got %d", len(reminders))
	}
}

func TestUserScopedRoutesReportMissingBeforeForbidden(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	owner := registerTestAccount(t, app, "owner@example.com")
	other := registerTestAccount(t, app, "other@example.com")

	missing := doJSON(t, app, http.MethodGet, "/api/users/9999/reminders", owner.Token, nil)
	expectStatus(t, missing, http.StatusNotFound)
	if message := readAPIError(t, missing.Body); message != "user not found" {
		t.Fatalf("unexpected error %q", message)
	}

	foreign := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/reminders", other.UserID), owner.Token, nil)
	expectStatus(t, foreign, http.StatusForbidden)

	invalid := doJSON(t, app, http.MethodGet, "/api/users/abc/reminders", owner.Token, nil)
	expectStatus(t, invalid, http.StatusBadRequest)
}

func TestForeignReminderLooksMissing(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	owner := registerTestAccount(t, app, "reminder-owner@example.com")
	intruder := registerTestAccount(t, app, "intruder@example.com")

	created := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", owner.UserID), owner.Token, map[string]any{"title": "Private"})
	expectStatus(t, created, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, created)

	path := fmt.Sprintf("/api/reminders/%d", reminder.ReminderID)
	update := doJSON(t, app, http.MethodPut, path, intruder.Token, map[string]any{"title": "Hijacked"})
	expectStatus(t, update, http.StatusNotFound)

	remove := doJSON(t, app, http.MethodDelete, path, intruder.Token, nil)
	expectStatus(t, remove, http.StatusNotFound)
}

func TestUpdateReminderCompletionStampsOnce(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	account := registerTestAccount(t, app, "complete@example.com")

	created := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", account.UserID), account.Token, map[string]any{"title": "Water plants"})
	expectStatus(t, created, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, created)
	if reminder.CompletedAt != nil {
		t.Fatal("expected new reminder without completed_at")
	}

	path := fmt.Sprintf("/api/reminders/%d", reminder.ReminderID)
	completed := doJSON(t, app, http.MethodPut, path, account.Token, map[string]any{"is_completed": true})
	expectStatus(t, completed, http.StatusOK)
	afterComplete := decodeJSON[reminderPayload](t, completed)
	if !afterComplete.IsCompleted || afterComplete.CompletedAt == nil {
		t.Fatalf("expected completed reminder with timestamp, got %#v", afterComplete)
	}

	reopened := doJSON(t, app, http.MethodPut, path, account.Token, map[string]any{"is_completed": false})
	expectStatus(t, reopened, http.StatusOK)
	afterReopen := decodeJSON[reminderPayload](t, reopened)
	if afterReopen.IsCompleted {
		t.Fatal("expected reminder to be reopened")
	}
	if afterReopen.CompletedAt == nil || !afterReopen.CompletedAt.Equal(*afterComplete.CompletedAt) {
		t.Fatalf("expected completed_at to be kept, got %v", afterReopen.CompletedAt)
	}

	invalid := doJSON(t, app, http.MethodPut, path, account.Token, map[string]any{"frequency": "hourly"})
	expectStatus(t, invalid, http.StatusBadRequest)
}

func TestUpdateReminderRepeatedCompletionKeepsStamp(t *testing.T) {
	t.Parallel()

	app, repositories := newTestApp(t)
	account := registerTestAccount(t, app, "recomplete@example.com")

	created := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", account.UserID), account.Token, map[string]any{"title": "Take pills"})
	expectStatus(t, created, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, created)

	path := fmt.Sprintf("/api/reminders/%d", reminder.ReminderID)
	expectStatus(t, doJSON(t, app, http.MethodPut, path, account.Token, map[string]any{"is_completed": true}), http.StatusOK)

	stored, err := repositories.Reminders.FindByID(reminder.ReminderID)
	if err != nil {
		t.Fatalf("load reminder: %v", err)
	}
	firstStamp := time.Date(2026, time.March, 10, 12, 0, 0, 0, time.UTC)
	stored.CompletedAt = &firstStamp
	if err := repositories.Reminders.Save(&stored); err != nil {
		t.Fatalf("backdate completed_at: %v", err)
	}

	again := doJSON(t, app, http.MethodPut, path, account.Token, map[string]any{"is_completed": true})
	expectStatus(t, again, http.StatusOK)
	afterAgain := decodeJSON[reminderPayload](t, again)
	if !afterAgain.IsCompleted {
		t.Fatal("expected reminder to stay completed")
	}
	if afterAgain.CompletedAt == nil || !afterAgain.CompletedAt.Equal(firstStamp) {
		t.Fatalf("expected completed_at %v to be kept, got %v", firstStamp, afterAgain.CompletedAt)
	}
}
