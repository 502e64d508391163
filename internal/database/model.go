// Package database provides the PostgreSQL engine bootstrap, request-scoped
// sessions and generic lookups shared by every subgraph.
package database

import (
	"github.com/google/uuid"
)

// Model is embedded by every entity. The id is generated by the server on
// insert, so a zero value is left out of the INSERT and read back.
type Model struct {
	ID uuid.UUID `gorm:"type:uuid;primaryKey;default:gen_random_uuid()"`
}
