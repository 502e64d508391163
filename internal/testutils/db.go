// Package testutils shares one bootstrapped database between the tests of a
// package.
package testutils

import (
	"context"
	"log"
	"testing"
	"time"

	"gql_subgraphs/internal/config"
	"gql_subgraphs/internal/database"

	"github.com/joho/godotenv"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Sessions is set by TestMain; nil means PostgreSQL was not reachable.
var Sessions *database.SessionFactory

// Connect loads ../../.env when present and bootstraps models into a fresh
// schema, so packages testing in parallel never see each other's tables.
func Connect(schema string, models []any) (*database.SessionFactory, error) {
	if err := godotenv.Load("../../.env"); err != nil {
		log.Printf("no .env file loaded: %v", err)
	}

	pg := config.Load().Postgres
	pg.Schema = schema

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return database.StartEngine(ctx, pg.ConnectionString(), true, true, models, database.WithLogLevel("silent"))
}

// Returns already created session factory
func SetupDB(t *testing.T) *database.SessionFactory {
	t.Helper()
	if Sessions == nil {
		t.Skip("PostgreSQL is not reachable, skipping database test")
	}
	return Sessions
}

// Truncate empties the tables of models between tests.
func Truncate(t *testing.T, models ...any) {
	t.Helper()
	db := SetupDB(t).NewSession(context.Background())
	for _, model := range models {
		stmt := &gorm.Statement{DB: db}
		if err := stmt.Parse(model); err != nil {
			t.Fatalf("Failed to parse %T: %v", model, err)
		}
		if err := db.Exec("TRUNCATE TABLE ? CASCADE", clause.Table{Name: stmt.Schema.Table}).Error; err != nil {
			t.Fatalf("Failed to clear %s: %v", stmt.Schema.Table, err)
		}
	}
}
