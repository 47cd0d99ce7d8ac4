package api

import (
	"fmt"
	"net/http"
	"testing"

	"github.com/terraincognita07/accessaid/internal/models"
)

func TestNotificationStatusTransitions(t *testing.T) {
	t.Parallel()

	app, _ := newTestApp(t)
	account := registerTestAccount(t, app, "notify@example.com")

	created := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", account.UserID), account.Token, map[string]any{
		"title":    "Doctor",
		"priority": "urgent",
	})
	expectStatus(t, created, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, created)

	response := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/reminders/%d/notifications", reminder.ReminderID), account.Token, map[string]any{
		"notification_type": "push",
	})
	expectStatus(t, response, http.StatusOK)
	notification := decodeJSON[models.Notification](t, response)
	if notification.Message != "Reminder: Doctor" || notification.Status != models.NotificationStatusPending {
		t.Fatalf("unexpected notification defaults %#v", notification)
	}
	if notification.UserID != account.UserID {
		t.Fatalf("expected user id copied from reminder, got %d", notification.UserID)
	}

	statusPath := fmt.Sprintf("/api/notifications/%d/status", notification.ID)
	sent := doJSON(t, app, http.MethodPut, statusPath, account.Token, map[string]any{"status": "sent"})
	expectStatus(t, sent, http.StatusOK)
	afterSent := decodeJSON[models.Notification](t, sent)
	if afterSent.SentTime == nil {
		t.Fatal("expected sent_time after transition to sent")
	}

	again := doJSON(t, app, http.MethodPut, statusPath, account.Token, map[string]any{"status": "failed"})
	expectStatus(t, again, http.StatusConflict)

	read := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/notifications/%d/read", notification.ID), account.Token, nil)
	expectStatus(t, read, http.StatusOK)
	if afterRead := decodeJSON[models.Notification](t, read); !afterRead.IsRead || afterRead.ReadAt == nil {
		t.Fatalf("expected read notification, got %#v", afterRead)
	}

	pending := doJSON(t, app, http.MethodGet, fmt.Sprintf("/api/users/%d/notifications?status=pending", account.UserID), account.Token, nil)
	expectStatus(t, pending, http.StatusOK)
	if got := decodeJSON[[]models.Notification](t, pending); len(got) != 0 {
		t.Fatalf("expected no pending notifications, got %d", len(got))
	}

	invalidType := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/reminders/%d/notifications", reminder.ReminderID), account.Token, map[string]any{
		"notification_type": "pager",
	})
	expectStatus(t, invalidType, http.StatusBadRequest)
}

func TestReminderDeleteRemovesNotifications(t *testing.T) {
	t.Parallel()

	app, repositories := newTestApp(t)
	account := registerTestAccount(t, app, "cascade-reminder@example.com")

	created := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/users/%d/reminders", account.UserID), account.Token, map[string]any{"title": "Garbage day"})
	expectStatus(t, created, http.StatusOK)
	reminder := decodeJSON[reminderPayload](t, created)

	for _, kind := range []string{"voice", "sms"} {
		response := doJSON(t, app, http.MethodPost, fmt.Sprintf("/api/reminders/%d/notifications", reminder.ReminderID), account.Token, map[string]any{"notification_type": kind})
		expectStatus(t, response, http.StatusOK)
	}

	deleted := doJSON(t, app, http.MethodDelete, fmt.Sprintf("/api/reminders/%d", reminder.ReminderID), account.Token, nil)
	expectStatus(t, deleted, http.StatusOK)

	notifications, err := repositories.Notifications.ListByReminder(reminder.ReminderID)
	if err != nil {
		t.Fatalf("list notifications: %v", err)
	}
	if len(notifications) != 0 {
		t.Fatalf("expected notifications removed with reminder, got %d", len(notifications))
	}
}
