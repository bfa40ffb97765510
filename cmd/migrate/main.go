package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strconv"

	"runway.app/api/common/logger"
	"runway.app/api/core/config"
	"runway.app/api/core/db"
)

const usage = `usage: migrate <command>

commands:
  up          apply all pending migrations
  down [N]    roll back N migrations (default 1)
  version     print the applied schema version
`

func main() {
	ctx := context.Background()

	if len(os.Args) < 2 {
		fmt.Fprint(os.Stderr, usage)
		os.Exit(2)
	}

	cfg, err := config.Load(config.ServiceTypeMigrate)
	if err != nil {
		slog.ErrorContext(ctx, "failed to load config", "error", err)
		os.Exit(1)
	}
	logger.Setup(cfg)
	ctx = logger.WithLogFields(ctx, logger.LogFields{Component: "runway.migrate"})

	if err := run(ctx, cfg.DB.DSN, os.Args[1:]); err != nil {
		slog.ErrorContext(ctx, "migration failed", "error", err)
		os.Exit(1)
	}
}

func run(ctx context.Context, dsn string, args []string) error {
	mg, err := db.NewMigrator(dsn)
	if err != nil {
		return err
	}
	defer mg.Close()

	switch args[0] {
	case "up":
		if err := mg.Up(); err != nil {
			return err
		}
	case "down":
		steps := 1
		if len(args) > 1 {
			steps, err = strconv.Atoi(args[1])
			if err != nil {
				return fmt.Errorf("invalid step count %q: %w", args[1], err)
			}
		}
		if err := mg.Down(steps); err != nil {
			return err
		}
	case "version":
	default:
		return fmt.Errorf("unknown command %q\n%s", args[0], usage)
	}

	version, dirty, err := mg.Version()
	if err != nil {
		return err
	}
	slog.InfoContext(ctx, "schema version", "command", args[0], "version", version, "dirty", dirty)
	return nil
}
