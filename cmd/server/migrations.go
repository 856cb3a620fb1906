package main

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/mlefebvre/tasktrack-api/internal/config"
	"github.com/pressly/goose/v3"
)

// MigrationTableName is the table used by goose to track applied migrations.
const MigrationTableName = "schema_migrations"

// migrationsDir is the default migrations location relative to the project root.
const migrationsDir = "internal/platform/postgres/migrations"

// slogGooseLogger adapts the goose logger interface to slog.
type slogGooseLogger struct{}

func (l *slogGooseLogger) Printf(format string, v ...interface{}) {
	slog.Info(fmt.Sprintf(format, v...))
}

// Fatalf logs at error level without exiting; the error propagates back to
// main, which owns process exit.
func (l *slogGooseLogger) Fatalf(format string, v ...interface{}) {
	slog.Error(fmt.Sprintf(format, v...))
}

// applyMigrations brings the schema up to the latest version. It is run on
// every server start so a fresh database needs no separate migration step.
func applyMigrations(db *sql.DB, logger *slog.Logger) error {
	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}

	if err := configureGoose(); err != nil {
		return err
	}

	start := time.Now()
	if err := goose.Up(db, dir); err != nil {
		return fmt.Errorf("goose up failed: %w", err)
	}

	logger.Info("Database migrations applied",
		"dir", dir,
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

// runMigrationCommand executes a single goose command against the configured
// database and returns. Used by the -migrate flag.
func runMigrationCommand(cfg *config.Config, command, migrationName string) error {
	log := slog.Default().With(
		slog.String("component", "migrations"),
		slog.String("command", command))

	dir, err := findMigrationsDir()
	if err != nil {
		return err
	}

	if err := configureGoose(); err != nil {
		return err
	}

	db, err := sql.Open("pgx", cfg.Database.URL)
	if err != nil {
		return fmt.Errorf("failed to open database connection: %w", err)
	}
	defer func() {
		if closeErr := db.Close(); closeErr != nil {
			log.Error("Error closing database connection", "error", closeErr)
		}
	}()

	start := time.Now()
	log.Info("Executing migration command", "dir", dir)

	switch command {
	case "up":
		err = goose.Up(db, dir)
	case "down":
		err = goose.Down(db, dir)
	case "reset":
		err = goose.Reset(db, dir)
	case "status":
		err = goose.Status(db, dir)
	case "version":
		err = goose.Version(db, dir)
	case "create":
		if migrationName == "" {
			return fmt.Errorf("migration name is required for 'create' command")
		}
		err = goose.Create(db, dir, migrationName, "sql")
	default:
		return fmt.Errorf(
			"unknown migration command: %s (expected up, down, reset, status, version, or create)",
			command,
		)
	}

	if err != nil {
		return fmt.Errorf("migration command %q failed: %w", command, err)
	}

	log.Info("Migration command completed",
		"duration_ms", time.Since(start).Milliseconds())
	return nil
}

func configureGoose() error {
	goose.SetLogger(&slogGooseLogger{})
	goose.SetTableName(MigrationTableName)
	if err := goose.SetDialect("postgres"); err != nil {
		return fmt.Errorf("failed to set goose dialect: %w", err)
	}
	return nil
}

// findMigrationsDir locates the migrations directory, first relative to the
// working directory and then walking up toward the project root. Binaries are
// commonly started either from the repo root or from cmd/server.
func findMigrationsDir() (string, error) {
	candidate := migrationsDir
	for range [4]int{} {
		if info, err := os.Stat(candidate); err == nil && info.IsDir() {
			return filepath.Abs(candidate)
		}
		candidate = filepath.Join("..", candidate)
	}
	return "", fmt.Errorf("migrations directory not found (looked for %s)", migrationsDir)
}
