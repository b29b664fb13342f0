package main

import (
	"context"
	"log/slog"
	"os"

	"github.com/pressly/goose/v3"

	"github.com/ghuser/grow/migrations"
	"github.com/ghuser/grow/pkg/config"
	"github.com/ghuser/grow/pkg/database"
	"github.com/ghuser/grow/pkg/logger"
	"github.com/ghuser/grow/pkg/migrator"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		slog.Error("failed to load config", "error", err)
		os.Exit(1)
	}
	log := logger.New(cfg)
	ctx := context.Background()

	var applied []int64
	switch cfg.StorageDriver {
	case config.DriverPostgres:
		applied, err = migrator.RunMigrations(ctx, cfg.DatabaseURL, migrations.FS)
	case config.DriverSQLite:
		var db *database.Database
		db, err = database.OpenSQLite(ctx, cfg.SQLitePath, log)
		if err == nil {
			applied, err = migrator.Up(ctx, db.DB(), goose.DialectSQLite3, migrations.FS)
			_ = db.Close()
		}
	default:
		log.Info("storage driver has no schema, nothing to migrate", "driver", cfg.StorageDriver)
		return
	}
	if err != nil {
		log.Error("migration failed", "driver", cfg.StorageDriver, "error", err)
		os.Exit(1)
	}
	log.Info("migrations applied", "driver", cfg.StorageDriver, "versions", applied)
}
