package graph

import (
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
)

// UUID is the UUID scalar. It is parsed while arguments are bound, so a
// malformed id fails validation before any resolver runs.
type UUID struct {
	uuid.UUID
}

func (UUID) ImplementsGraphQLType(name string) bool {
	return name == "UUID"
}

func (u *UUID) UnmarshalGraphQL(input interface{}) error {
	s, ok := input.(string)
	if !ok {
		return fmt.Errorf("UUID must be a string, got %T", input)
	}
	parsed, err := uuid.Parse(s)
	if err != nil {
		return fmt.Errorf("invalid UUID %q: %w", s, err)
	}
	u.UUID = parsed
	return nil
}

// ID renders a primary key as a GraphQL ID.
func ID(id uuid.UUID) graphql.ID {
	return graphql.ID(id.String())
}

// Time wraps a nullable timestamp column.
func Time(t *time.Time) *graphql.Time {
	if t == nil {
		return nil
	}
	return &graphql.Time{Time: *t}
}

// String maps an empty column to null.
func String(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

// MaxPageSize bounds the limit argument of every *_page field.
const MaxPageSize = 100

// Page clamps skip/limit arguments into query bounds.
func Page(skip, limit int32) (int, int) {
	s, l := int(skip), int(limit)
	if s < 0 {
		s = 0
	}
	if l < 0 {
		l = 10
	}
	if l > MaxPageSize {
		l = MaxPageSize
	}
	return s, l
}
