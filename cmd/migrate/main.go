// cmd/migrate/main.go
// Applies or inspects schema migrations without starting the API server
package main

import (
	"database/sql"
	"flag"
	"fmt"
	"log"
	"os"

	_ "github.com/lib/pq"
	"github.com/pressly/goose/v3"

	"Quill/internal/config"
)

func usage() {
	fmt.Fprintf(os.Stderr, "usage: migrate [up|down|status|version|reset]\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	command := "up"
	if flag.NArg() > 0 {
		command = flag.Arg(0)
	}

	cfg, err := config.LoadDatabase()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Connecting to database...")
	db, err := sql.Open("postgres", cfg.DatabaseURL)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer db.Close()

	if err := db.Ping(); err != nil {
		log.Fatalf("Failed to ping database: %v", err)
	}

	if err := goose.SetDialect("postgres"); err != nil {
		log.Fatalf("Failed to set goose dialect: %v", err)
	}

	switch command {
	case "up":
		err = goose.Up(db, cfg.MigrationsDir)
	case "down":
		err = goose.Down(db, cfg.MigrationsDir)
	case "status":
		err = goose.Status(db, cfg.MigrationsDir)
	case "version":
		err = goose.Version(db, cfg.MigrationsDir)
	case "reset":
		err = goose.Reset(db, cfg.MigrationsDir)
	default:
		usage()
		os.Exit(2)
	}

	if err != nil {
		log.Fatalf("migrate %s failed: %v", command, err)
	}

	log.Printf("migrate %s completed", command)
}
