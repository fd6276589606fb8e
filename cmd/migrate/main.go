package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"strconv"

	"github.com/golang-migrate/migrate/v4"
	_ "github.com/golang-migrate/migrate/v4/database/postgres"
	_ "github.com/golang-migrate/migrate/v4/source/file"

	"taxara/internal/config"
	"taxara/internal/repository/postgres"
)

const (
	migrationsPath = "file://db/migrations"
	rateSeedPath   = "db/seeds/rate_overrides.sql"
)

func usage() {
	fmt.Println("Usage: migrate [up|down|steps N|version|seed]")
	fmt.Println("  seed applies the statutory rate-override seed produced by seedrates")
}

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load config: %v", err)
	}

	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}

	cmd := os.Args[1]
	if cmd == "seed" {
		if err := applyRateSeed(cfg); err != nil {
			log.Fatalf("seed failed: %v", err)
		}
		log.Printf("rate overrides seeded from %s", rateSeedPath)
		return
	}

	m, err := migrate.New(migrationsPath, cfg.DB.DSN())
	if err != nil {
		log.Fatalf("failed to create migrate instance: %v", err)
	}
	defer m.Close()

	switch cmd {
	case "up":
		if err := m.Up(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migration up failed: %v", err)
		}
		log.Println("migrations applied successfully")

	case "down":
		if err := m.Down(); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migration down failed: %v", err)
		}
		log.Println("migrations reverted successfully")

	case "steps":
		if len(os.Args) < 3 {
			log.Fatal("steps requires a number argument")
		}
		n, err := strconv.Atoi(os.Args[2])
		if err != nil {
			log.Fatalf("invalid steps argument: %v", err)
		}
		if err := m.Steps(n); err != nil && err != migrate.ErrNoChange {
			log.Fatalf("migration steps failed: %v", err)
		}
		log.Printf("applied %d migration steps", n)

	case "version":
		version, dirty, err := m.Version()
		if err != nil {
			log.Fatalf("failed to get version: %v", err)
		}
		fmt.Printf("version: %d, dirty: %v\n", version, dirty)

	default:
		fmt.Printf("unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func applyRateSeed(cfg *config.Config) error {
	script, err := os.ReadFile(rateSeedPath)
	if err != nil {
		return fmt.Errorf("reading %s: %w", rateSeedPath, err)
	}

	db, err := postgres.NewDB(&cfg.DB)
	if err != nil {
		return err
	}
	defer db.Close()

	if _, err := db.ExecContext(context.Background(), string(script)); err != nil {
		return fmt.Errorf("executing seed: %w", err)
	}
	return nil
}
