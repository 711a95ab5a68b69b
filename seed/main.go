// seed/main.go
package main

import (
	"flag"
	"log"
	"os"

	"github.com/joho/godotenv"
	"gorm.io/driver/postgres"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/pulseprimer/ecg_api/seed/seeders"
)

func main() {
	// Load environment variables
	if err := godotenv.Load(); err != nil {
		log.Println("No .env file found, using system environment variables")
	}

	var (
		dbPath = flag.String("db", "", "SQLite database path (overrides CONTENT_DB env var)")
		force  = flag.Bool("force", false, "Overwrite lessons that already exist")
		help   = flag.Bool("help", false, "Show help message")
	)
	flag.Parse()

	if *help {
		showHelp()
		return
	}

	db, err := openDatabase(*dbPath)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	mainSeeder := seeders.NewMainSeeder(db)

	if err := mainSeeder.SeedAll(*force); err != nil {
		log.Fatalf("Failed to seed database: %v", err)
	}

	log.Println("Seeding operation completed successfully!")
}

func openDatabase(dbPath string) (*gorm.DB, error) {
	cfg := &gorm.Config{
		Logger: logger.Default.LogMode(logger.Info),
	}

	if url := os.Getenv("DATABASE_URL"); url != "" && dbPath == "" {
		log.Println("Connecting to Postgres content store")
		return gorm.Open(postgres.Open(url), cfg)
	}

	if dbPath == "" {
		dbPath = os.Getenv("CONTENT_DB")
		if dbPath == "" {
			dbPath = "content.db"
		}
	}

	log.Printf("Connecting to SQLite content store: %s", dbPath)
	return gorm.Open(sqlite.Open(dbPath), cfg)
}

func showHelp() {
	log.Println(`
Lesson Corpus Seeding Tool

Usage: go run seed/main.go [flags]

Flags:
  -db string
        SQLite database path (overrides CONTENT_DB environment variable)
  -force
        Overwrite lessons that already exist in the store
  -help
        Show this help message

Environment Variables:
  DATABASE_URL - Postgres connection string (takes precedence)
  CONTENT_DB   - SQLite database path (default: content.db)
`)
}
