package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	fiberlogger "github.com/gofiber/fiber/v2/middleware/logger"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/fiber/v2/middleware/requestid"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/terraincognita07/accessaid/internal/api"
	"github.com/terraincognita07/accessaid/internal/cli"
	"github.com/terraincognita07/accessaid/internal/config"
	"github.com/terraincognita07/accessaid/internal/db"
	"github.com/terraincognita07/accessaid/internal/logger"
)

const (
	serviceName     = "accessaid"
	shutdownTimeout = 10 * time.Second
)

func main() {
	if err := newRootCommand(os.Stdin, os.Stdout).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdin *os.File, stdout io.Writer) *cobra.Command {
	root := &cobra.Command{
		Use:          serviceName,
		Short:        "AccessAid accessibility reminder backend",
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	}
	root.SetOut(stdout)

	root.AddCommand(&cobra.Command{
		Use:   "serve",
		Short: "Start the HTTP API",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runServe(cmd.Context())
		},
	})

	root.AddCommand(&cobra.Command{
		Use:   "seed",
		Short: "Insert the sample dataset",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return withRepositories(func(repositories *db.Repositories, log zerolog.Logger) error {
				return cli.RunSeedCommand(cmd.Context(), repositories, log, cmd.OutOrStdout())
			})
		},
	})

	resetPIN := &cobra.Command{
		Use:   "reset-pin",
		Short: "Replace a user's PIN with a random one",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			return withRepositories(func(repositories *db.Repositories, _ zerolog.Logger) error {
				return cli.RunResetPINCommand(repositories.WithContext(cmd.Context()), email, cmd.OutOrStdout())
			})
		},
	}
	resetPIN.Flags().String("email", "", "account email")
	_ = resetPIN.MarkFlagRequired("email")
	root.AddCommand(resetPIN)

	setPIN := &cobra.Command{
		Use:   "set-pin",
		Short: "Set a user's PIN interactively",
		RunE: func(cmd *cobra.Command, _ []string) error {
			email, _ := cmd.Flags().GetString("email")
			return withRepositories(func(repositories *db.Repositories, _ zerolog.Logger) error {
				return cli.RunSetPINCommand(repositories.WithContext(cmd.Context()), email, stdin, cmd.OutOrStdout())
			})
		},
	}
	setPIN.Flags().String("email", "", "account email")
	_ = setPIN.MarkFlagRequired("email")
	root.AddCommand(setPIN)

	return root
}

func loadRuntime() (*config.Config, zerolog.Logger, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	level, err := cfg.ZerologLevel()
	if err != nil {
		return nil, zerolog.Nop(), err
	}
	time.Local = cfg.Location
	return cfg, logger.New(serviceName, level), nil
}

func openRepositories(cfg *config.Config, log zerolog.Logger) (*db.Repositories, func(), error) {
	database, err := db.Open(db.Options{
		Driver: cfg.DBDriver,
		Path:   cfg.DBPath,
		URL:    cfg.DatabaseURL,
		Logger: log,
	})
	if err != nil {
		return nil, nil, fmt.Errorf("database init failed: %w", err)
	}
	closeDatabase := func() {
		if err := db.Close(database); err != nil {
			log.Error().Err(err).Msg("close database failed")
		}
	}
	return db.NewRepositories(database), closeDatabase, nil
}

func withRepositories(run func(repositories *db.Repositories, log zerolog.Logger) error) error {
	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	repositories, closeDatabase, err := openRepositories(cfg, log)
	if err != nil {
		return err
	}
	defer closeDatabase()
	return run(repositories, log)
}

func runServe(ctx context.Context) error {
	if ctx == nil {
		ctx = context.Background()
	}

	cfg, log, err := loadRuntime()
	if err != nil {
		return err
	}
	secretKey, err := cfg.RequireSecretKey()
	if err != nil {
		return err
	}

	repositories, closeDatabase, err := openRepositories(cfg, log)
	if err != nil {
		return err
	}
	defer closeDatabase()

	handler, err := api.NewHandler(repositories, api.Options{
		SecretKey:          secretKey,
		TokenTTL:           cfg.TokenTTL,
		Logger:             log,
		EnableSeedEndpoint: cfg.EnableSeedEndpoint,
	})
	if err != nil {
		return fmt.Errorf("handler init failed: %w", err)
	}

	app := newApp(handler, cfg.AllowedOrigins(), os.Stdout)

	sigCtx, stopSignals := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
	defer stopSignals()

	go func() {
		<-sigCtx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := app.ShutdownWithContext(shutdownCtx); err != nil {
			log.Error().Err(err).Msg("server shutdown failed")
		}
	}()

	log.Info().
		Str("addr", cfg.ListenAddr()).
		Str("db_driver", cfg.DBDriver).
		Str("tz", cfg.Location.String()).
		Bool("seed_endpoint", cfg.EnableSeedEndpoint).
		Msg("AccessAid listening")
	if err := app.Listen(cfg.ListenAddr()); err != nil && !errors.Is(err, context.Canceled) {
		return fmt.Errorf("server exited: %w", err)
	}
	log.Info().Msg("server stopped")
	return nil
}

func newApp(handler *api.Handler, allowedOrigins string, accessLog io.Writer) *fiber.App {
	app := fiber.New(fiber.Config{
		AppName:               "AccessAid",
		DisableStartupMessage: true,
	})

	app.Use(recover.New())
	app.Use(requestid.New())
	app.Use(fiberlogger.New(fiberlogger.Config{
		Format: "${time} ${locals:requestid} ${status} ${method} ${path} ${latency}\n",
		Output: accessLog,
	}))
	app.Use(cors.New(cors.Config{
		AllowOrigins: allowedOrigins,
		AllowHeaders: "Origin, Content-Type, Accept, Authorization",
		AllowMethods: "GET,POST,PUT,DELETE,OPTIONS",
	}))

	api.RegisterRoutes(app, handler)
	return app
}
