package main

import (
	"errors"
	"flag"
	"log/slog"
	"os"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"
	"github.com/joho/godotenv"

	"github.com/orderdesk/supplier-orders/internal/config"
	"github.com/orderdesk/supplier-orders/internal/postgres"
)

func main() {
	godotenv.Load()

	down := flag.Bool("down", false, "roll back all migrations")
	source := flag.String("source", "file://migrations", "migration source")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stdout, nil))
	conf := config.New()

	m, err := migrate.New(*source, postgres.URL(conf.Postgres))
	if err != nil {
		logger.Error("failed to init migrations", slog.Any("error", err))
		os.Exit(1)
	}
	defer m.Close()

	if *down {
		err = m.Down()
	} else {
		err = m.Up()
	}

	if errors.Is(err, migrate.ErrNoChange) {
		logger.Info("no migrations to apply")
		return
	}
	if err != nil {
		logger.Error("failed to run migrations", slog.Any("error", err))
		os.Exit(1)
	}

	logger.Info("migrations applied")
}
