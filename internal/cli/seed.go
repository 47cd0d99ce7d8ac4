package cli

import (
	"context"
	"fmt"
	"io"

	"github.com/rs/zerolog"
	"github.com/terraincognita07/accessaid/internal/db"
	"github.com/terraincognita07/accessaid/internal/seed"
)

func RunSeedCommand(ctx context.Context, repositories *db.Repositories, logger zerolog.Logger, out io.Writer) error {
	summary, err := seed.NewSeeder(repositories, logger).Run(ctx)
	if err != nil {
		return fmt.Errorf("seed database: %w", err)
	}

	if summary.Skipped {
		fmt.Fprintln(out, "Sample data already present, nothing to do")
		return nil
	}
	fmt.Fprintln(out, "Database seeded successfully with sample data")
	fmt.Fprintf(out, "Users: %d, tasks: %d, reminders: %d, notifications: %d\n",
		summary.Users, summary.Tasks, summary.Reminders, summary.Notifications)
	fmt.Fprintf(out, "Settings: %d, TTS entries: %d, devices: %d, accessibility logs: %d\n",
		summary.Settings, summary.TTSHistory, summary.Devices, summary.AccessibilityLogs)
	fmt.Fprintf(out, "Sign in with any sample account using PIN %s\n", seed.DefaultPIN)
	return nil
}
