package database

import (
	"database/sql"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"

	"pawmart/config"
)

var DB *sql.DB

func Connect(cfg *config.Config) error {
	dsn := fmt.Sprintf("host=%s user=%s password=%s dbname=%s port=%s sslmode=disable TimeZone=UTC",
		cfg.DBHost, cfg.DBUser, cfg.DBPassword, cfg.DBName, cfg.DBPort)

	db, err := sql.Open("pgx", dsn)
	if err != nil {
		return fmt.Errorf("failed to open database: %w", err)
	}

	// Connection pool settings
	db.SetMaxIdleConns(10)
	db.SetMaxOpenConns(100)
	db.SetConnMaxLifetime(time.Hour)

	if err := db.Ping(); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}

	DB = db
	log.Println("Database connection established")
	return nil
}

func Close() {
	if DB != nil {
		_ = DB.Close()
	}
}

func Ping() error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	return DB.Ping()
}

// HealthCheck runs a trivial query to verify the connection is serving.
func HealthCheck() error {
	if DB == nil {
		return fmt.Errorf("database not connected")
	}
	var one int
	return DB.QueryRow("SELECT 1").Scan(&one)
}

// ApplyMigrations reads .sql files from the migrations directory in
// lexicographic order and executes them. Files ending in _down.sql are
// skipped; those belong to RollbackMigrations.
func ApplyMigrations(migrationsDir string) error {
	files, err := migrationFiles(migrationsDir, false)
	if err != nil {
		return err
	}

	for _, path := range files {
		content, err := os.ReadFile(path)
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", path, err)
		}

		log.Printf("Applying migration: %s", filepath.Base(path))
		if _, err := DB.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", filepath.Base(path), err)
		}
	}
	return nil
}

// RollbackMigrations executes the *_down.sql files in reverse order.
func RollbackMigrations(migrationsDir string) error {
	files, err := migrationFiles(migrationsDir, true)
	if err != nil {
		return err
	}

	for i := len(files) - 1; i >= 0; i-- {
		content, err := os.ReadFile(files[i])
		if err != nil {
			return fmt.Errorf("failed to read migration file %s: %w", files[i], err)
		}

		log.Printf("Rolling back migration: %s", filepath.Base(files[i]))
		if _, err := DB.Exec(string(content)); err != nil {
			return fmt.Errorf("failed to roll back migration %s: %w", filepath.Base(files[i]), err)
		}
	}
	return nil
}

func migrationFiles(dir string, down bool) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("failed to read migrations directory: %w", err)
	}

	var files []string
	for _, entry := range entries {
		name := entry.Name()
		if filepath.Ext(name) != ".sql" {
			continue
		}
		isDown := strings.HasSuffix(name, "_down.sql")
		if isDown == down {
			files = append(files, filepath.Join(dir, name))
		}
	}
	sort.Strings(files)
	return files, nil
}

func TableExists(table string) (bool, error) {
	var exists bool
	err := DB.QueryRow(`
        SELECT EXISTS (
            SELECT 1 FROM information_schema.tables
            WHERE table_schema = 'public' AND table_name = $1
        )
    `, table).Scan(&exists)
	return exists, err
}

func GetTableCount(table string) (int64, error) {
	var count int64
	err := DB.QueryRow(fmt.Sprintf("SELECT COUNT(1) FROM %s", table)).Scan(&count)
	return count, err
}

var coreTables = []string{"webhook_logs", "order_items", "orders", "adoption_applications", "pets", "users"}

// DropAllTables removes every table this service owns. Destructive.
func DropAllTables() error {
	for _, table := range coreTables {
		if _, err := DB.Exec(fmt.Sprintf("DROP TABLE IF EXISTS %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to drop table %s: %w", table, err)
		}
	}
	return nil
}

// TruncateAllTables clears every table this service owns. Destructive.
func TruncateAllTables() error {
	for _, table := range coreTables {
		if _, err := DB.Exec(fmt.Sprintf("TRUNCATE TABLE %s CASCADE", table)); err != nil {
			return fmt.Errorf("failed to truncate table %s: %w", table, err)
		}
	}
	return nil
}
