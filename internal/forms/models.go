// Package forms declares the request (workflow) tables and the lookups the
// forms subgraph resolves against them.
package forms

import (
	"github.com/google/uuid"

	"gql_subgraphs/internal/database"
)

// User is owned by another subgraph; only its id lives here.
type User struct {
	database.Model

	Requests []Request `gorm:"foreignKey:UserID"`
}

func (User) TableName() string { return "users" }

// Request is a workflow request.
type Request struct {
	database.Model
	Name string

	UserID *uuid.UUID `gorm:"type:uuid;column:user_id"`
	User   *User      `gorm:"foreignKey:UserID"`
}

func (Request) TableName() string { return "requests" }

// Models lists every table of the domain in creation order.
func Models() []any {
	return []any{&User{}, &Request{}}
}
