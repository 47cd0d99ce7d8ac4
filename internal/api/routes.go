package api

import "github.com/gofiber/fiber/v2"

func RegisterRoutes(app *fiber.App, handler *Handler) {
	app.Get("/", handler.Root)
	app.Get("/healthz", handler.Readiness)
	registerAPIRoutes(app, handler)
	app.Use(handler.NotFound)
}

func registerAPIRoutes(app *fiber.App, handler *Handler) {
	api := app.Group("/api")

	api.Get("/health", handler.Health)
	api.Post("/users", handler.Register)
	api.Post("/sessions", handler.Login)

	users := api.Group("/users", handler.AuthRequired)
	users.Get("", handler.ListUsers)
	users.Get("/:id", handler.GetUser)

	owned := users.Group("/:id", handler.OwnerOnly)
	owned.Put("", handler.UpdateUser)
	owned.Delete("", handler.DeleteUser)
	owned.Get("/preferences", handler.GetPreferences)
	owned.Put("/preferences", handler.ReplacePreferences)
	owned.Get("/reminders", handler.ListReminders)
	owned.Post("/reminders", handler.CreateReminder)
	owned.Get("/tasks", handler.ListTasks)
	owned.Post("/tasks", handler.CreateTask)
	owned.Get("/notifications", handler.ListUserNotifications)
	owned.Get("/tts-history", handler.ListTTSHistory)
	owned.Post("/tts-history", handler.RecordTTS)
	owned.Get("/settings", handler.ListSettings)
	owned.Post("/settings", handler.UpsertSetting)
	owned.Get("/devices", handler.ListDevices)
	owned.Post("/devices", handler.SyncDevice)
	owned.Get("/accessibility-logs", handler.ListAccessibilityLogs)
	owned.Post("/accessibility-logs", handler.RecordAccessibilityLog)

	reminders := api.Group("/reminders", handler.AuthRequired)
	reminders.Put("/:id", handler.UpdateReminder)
	reminders.Delete("/:id", handler.DeleteReminder)
	reminders.Get("/:id/notifications", handler.ListReminderNotifications)
	reminders.Post("/:id/notifications", handler.CreateNotification)

	tasks := api.Group("/tasks", handler.AuthRequired)
	tasks.Put("/:id", handler.UpdateTask)
	tasks.Delete("/:id", handler.DeleteTask)

	notifications := api.Group("/notifications", handler.AuthRequired)
	notifications.Put("/:id/status", handler.UpdateNotificationStatus)
	notifications.Post("/:id/read", handler.MarkNotificationRead)

	mlModels := api.Group("/ml-models", handler.AuthRequired)
	mlModels.Get("", handler.ListMLModels)
	mlModels.Post("", handler.RegisterMLModel)
	mlModels.Get("/:id", handler.GetMLModel)

	api.Post("/seed-data", handler.AuthRequired, handler.SeedData)
}
