package database

import (
	"context"
	"database/sql"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	_ "github.com/lib/pq"
	"gorm.io/driver/postgres"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
	"gorm.io/gorm/logger"
)

// SessionFactory hands out sessions bound to one shared connection pool.
// Loaded objects are plain structs, so nothing is expired after a commit.
type SessionFactory struct {
	db *gorm.DB
}

// NewSession returns a session bound to ctx. Sessions are cheap and must
// not be shared between requests.
func (f *SessionFactory) NewSession(ctx context.Context) *gorm.DB {
	return f.db.WithContext(ctx)
}

// Close closes the underlying connection pool.
func (f *SessionFactory) Close() error {
	sqlDB, err := f.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

// Option tweaks the ORM configuration used by StartEngine.
type Option func(*gorm.Config)

// WithLogLevel sets ORM statement logging: silent, error, warn or info.
func WithLogLevel(level string) Option {
	return func(c *gorm.Config) {
		c.Logger = newLogger(parseLogLevel(level))
	}
}

// StartEngine opens the pool for connectionString, optionally drops and/or
// creates the tables for models in a single transaction, and returns the
// session factory. It is meant to run once at process start; concurrent
// bootstraps from several processes are not coordinated.
func StartEngine(ctx context.Context, connectionString string, makeDrop, makeUp bool, models []any, opts ...Option) (*SessionFactory, error) {
	dsn, err := DriverDSN(connectionString)
	if err != nil {
		return nil, err
	}

	sqlDB, err := sql.Open("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Set connection pool settings
	sqlDB.SetMaxOpenConns(25)
	sqlDB.SetMaxIdleConns(5)

	// Verify connection
	if err := sqlDB.PingContext(ctx); err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	cfg := &gorm.Config{Logger: newLogger(logger.Warn)}
	for _, opt := range opts {
		opt(cfg)
	}

	db, err := gorm.Open(postgres.New(postgres.Config{Conn: sqlDB}), cfg)
	if err != nil {
		sqlDB.Close()
		return nil, fmt.Errorf("failed to initialise orm: %w", err)
	}

	schema := SearchPath(connectionString)
	err = db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if makeUp && schema != "" {
			if err := tx.Exec("CREATE SCHEMA IF NOT EXISTS ?", clause.Table{Name: schema}).Error; err != nil {
				return fmt.Errorf("failed to create schema %s: %w", schema, err)
			}
		}
		if makeDrop {
			if err := tx.Migrator().DropTable(models...); err != nil {
				return fmt.Errorf("failed to drop tables: %w", err)
			}
			log.Println("drop all tables finished")
		}
		if makeUp {
			if err := tx.AutoMigrate(models...); err != nil {
				return fmt.Errorf("failed to create tables: %w", err)
			}
			log.Println("create all tables finished")
		}
		return nil
	})
	if err != nil {
		sqlDB.Close()
		return nil, err
	}

	return &SessionFactory{db: db}, nil
}

func newLogger(level logger.LogLevel) logger.Interface {
	return logger.New(log.New(os.Stdout, "\r\n", log.LstdFlags), logger.Config{
		SlowThreshold:             200 * time.Millisecond,
		LogLevel:                  level,
		IgnoreRecordNotFoundError: true,
		Colorful:                  false,
	})
}

func parseLogLevel(name string) logger.LogLevel {
	switch strings.ToLower(name) {
	case "silent":
		return logger.Silent
	case "error":
		return logger.Error
	case "info":
		return logger.Info
	default:
		return logger.Warn
	}
}
