package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"pawmart/config"
	"pawmart/pkg/database"
)

const usage = `
PawMart - Database CLI Tool

Usage:
  migrate [command] [flags]

Commands:
  up          Run all migrations
  down        Rollback all migrations
  status      Show database connection status
  seed        Seed the database with an admin account
  seed-dev    Seed with development/test data
  reset       Drop all tables and re-run migrations (DANGEROUS)
  truncate    Truncate all tables (DANGEROUS)

Flags:
  -migrations string   Path to migrations directory (default "migrations")
  -admin-email string  Admin email for seeding (default "admin@pawmart.local")

Examples:
  go run cmd/migrate/main.go up
  go run cmd/migrate/main.go seed-dev
  go run cmd/migrate/main.go reset
`

func main() {
	migrationsDir := flag.String("migrations", "migrations", "Path to migrations directory")
	adminEmail := flag.String("admin-email", "admin@pawmart.local", "Admin email for seeding")

	flag.Usage = func() {
		fmt.Print(usage)
	}
	flag.Parse()

	if flag.NArg() < 1 {
		flag.Usage()
		os.Exit(1)
	}

	command := flag.Arg(0)

	cfg := config.LoadConfig()
	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	defer database.Close()

	switch command {
	case "up":
		runMigrationsUp(*migrationsDir)
	case "down":
		runMigrationsDown(*migrationsDir)
	case "status":
		showStatus()
	case "seed":
		runSeed(*adminEmail)
	case "seed-dev":
		runSeedDevelopment()
	case "reset":
		runReset(*migrationsDir)
	case "truncate":
		runTruncate()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		flag.Usage()
		os.Exit(1)
	}
}

func runMigrationsUp(migrationsDir string) {
	log.Println("Running migrations UP...")
	if err := database.ApplyMigrations(migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Migrations completed successfully")
}

func runMigrationsDown(migrationsDir string) {
	log.Println("Rolling back migrations...")
	if err := database.RollbackMigrations(migrationsDir); err != nil {
		log.Fatalf("Rollback failed: %v", err)
	}
	log.Println("Rollback completed successfully")
}

func showStatus() {
	log.Println("Checking database status...")

	if err := database.Ping(); err != nil {
		log.Fatalf("Database connection failed: %v", err)
	}
	log.Println("Database connection: OK")

	tables := []string{"users", "pets", "orders", "order_items", "adoption_applications", "webhook_logs"}
	for _, table := range tables {
		exists, err := database.TableExists(table)
		if err != nil {
			log.Printf("Error checking table %s: %v", table, err)
			continue
		}
		if exists {
			count, _ := database.GetTableCount(table)
			log.Printf("Table %-24s exists (%d rows)", table, count)
		} else {
			log.Printf("Table %-24s does not exist", table)
		}
	}

	if err := database.HealthCheck(); err != nil {
		log.Printf("Health check warning: %v", err)
	} else {
		log.Println("Health check: PASSED")
	}
}

func runSeed(adminEmail string) {
	log.Println("Seeding database (production mode)...")
	id, err := database.SeedAdmin(adminEmail)
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Printf("Admin user created/verified: %s (ID: %s)", adminEmail, id)
}

func runSeedDevelopment() {
	log.Println("Seeding database (development mode)...")
	result, err := database.SeedDevelopment()
	if err != nil {
		log.Fatalf("Seeding failed: %v", err)
	}
	log.Println("Seed Summary:")
	log.Printf("   - Admin: %s", result.AdminID)
	log.Printf("   - Users: %d", len(result.UserIDs))
	log.Printf("   - Pets: %d", len(result.PetIDs))
}

func runReset(migrationsDir string) {
	log.Println("WARNING: This will DROP all tables and re-run migrations!")

	if err := database.DropAllTables(); err != nil {
		log.Fatalf("Failed to drop tables: %v", err)
	}
	if err := database.ApplyMigrations(migrationsDir); err != nil {
		log.Fatalf("Migration failed: %v", err)
	}
	log.Println("Database reset completed")
}

func runTruncate() {
	log.Println("WARNING: This will TRUNCATE all tables!")
	if err := database.TruncateAllTables(); err != nil {
		log.Fatalf("Truncate failed: %v", err)
	}
	log.Println("All tables truncated")
}
