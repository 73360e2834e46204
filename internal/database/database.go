package database

import (
	"context"
	"embed"
	"fmt"
	"io/fs"
	"path"
	"sort"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	_ "github.com/mattn/go-sqlite3"
	"go.uber.org/zap"

	"postboard/internal/config"
)

//go:embed migrations
var migrationsFS embed.FS

type DB struct {
	*sqlx.DB
	log *zap.Logger
}

func ConnectDB(cfg *config.Config, log *zap.Logger) (*DB, error) {
	driver := cfg.DB.Driver

	switch driver {
	case config.DriverPostgres:
		log.Info("connecting to database",
			zap.String("driver", driver),
			zap.String("host", cfg.DB.DbHOST),
			zap.String("dbname", cfg.DB.DbNAME))
	case config.DriverSQLite:
		log.Info("connecting to database",
			zap.String("driver", driver),
			zap.String("path", cfg.DB.Path))
	default:
		return nil, fmt.Errorf("unsupported database driver %q", driver)
	}

	db, err := sqlx.Connect(driver, cfg.DB.DSN())
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	if driver == config.DriverSQLite {
		// single writer; also keeps an in-memory database on one connection
		db.SetMaxOpenConns(1)
		db.SetConnMaxLifetime(0)
	} else {
		db.SetMaxOpenConns(cfg.DB.MaxOpenConns)
		db.SetMaxIdleConns(5)
		db.SetConnMaxLifetime(30 * time.Minute)
	}

	dbStruct := &DB{DB: db, log: log}

	if cfg.DB.RunMigrations {
		if err := dbStruct.RunMigrations(); err != nil {
			db.Close()
			return nil, err
		}
	}

	if err := dbStruct.HealthCheck(); err != nil {
		db.Close()
		return nil, fmt.Errorf("database health check failed: %w", err)
	}

	log.Info("database connection established")
	return dbStruct, nil
}

func (db *DB) CloseDB() error {
	return db.DB.Close()
}

// RunMigrations applies the embedded schema files for the current driver in
// lexical order. Every statement is idempotent.
func (db *DB) RunMigrations() error {
	dir := path.Join("migrations", db.DriverName())

	entries, err := fs.ReadDir(migrationsFS, dir)
	if err != nil {
		return fmt.Errorf("no migrations for driver %s: %w", db.DriverName(), err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if !entry.IsDir() && path.Ext(entry.Name()) == ".sql" {
			names = append(names, entry.Name())
		}
	}
	sort.Strings(names)

	for _, name := range names {
		migrationSQL, err := fs.ReadFile(migrationsFS, path.Join(dir, name))
		if err != nil {
			return fmt.Errorf("failed to read migration %s: %w", name, err)
		}

		db.log.Info("applying migration", zap.String("file", name))

		if _, err := db.Exec(string(migrationSQL)); err != nil {
			return fmt.Errorf("failed to apply migration %s: %w", name, err)
		}
	}

	return nil
}

func (db *DB) HealthCheck() error {
	if db == nil || db.DB == nil {
		return fmt.Errorf("database connection is not initialized")
	}

	return db.Ping()
}

// CountTables reports how many user tables the store holds.
func (db *DB) CountTables(ctx context.Context) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM information_schema.tables
		WHERE table_schema = 'public'
	`
	if db.DriverName() == config.DriverSQLite {
		query = `
			SELECT COUNT(*)
			FROM sqlite_master
			WHERE type = 'table' AND name NOT LIKE 'sqlite_%'
		`
	}

	var count int
	if err := db.GetContext(ctx, &count, query); err != nil {
		return 0, fmt.Errorf("failed to count tables: %w", err)
	}

	return count, nil
}
