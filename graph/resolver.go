// Package graph holds what the subgraphs share: scalars, federation support
// and the HTTP handler.
package graph

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
	"gorm.io/gorm"

	"gql_subgraphs/internal/database"
)

// Subgraph is what one domain contributes to a running service.
type Subgraph struct {
	Name   string
	Models []any
	Schema func() (*graphql.Schema, error)
}

// ParseSchema binds source to the root resolver.
func ParseSchema(source string, resolver interface{}) (*graphql.Schema, error) {
	return graphql.ParseSchema(source, resolver,
		graphql.UseStringDescriptions(),
		graphql.MaxParallelism(20),
	)
}

// Lookup calls a data-access function with the session of the request.
func Lookup[K, T any](ctx context.Context, key K, find func(*gorm.DB, K) (T, error)) (T, error) {
	session, err := database.SessionFromContext(ctx)
	if err != nil {
		var zero T
		return zero, err
	}
	return find(session, key)
}

// Wrap converts rows into their object resolvers.
func Wrap[T, R any](rows []*T, wrap func(*T) R) []R {
	result := make([]R, len(rows))
	for i, row := range rows {
		result[i] = wrap(row)
	}
	return result
}

// Loader returns an EntityFunc loading rows owned by this subgraph. Absent
// rows yield a nil interface, not a typed nil.
func Loader[T, R any](find func(*gorm.DB, uuid.UUID) (*T, error), wrap func(*T) R) EntityFunc {
	return func(ctx context.Context, id uuid.UUID) (interface{}, error) {
		row, err := Lookup(ctx, id, find)
		if err != nil || row == nil {
			return nil, err
		}
		return wrap(row), nil
	}
}

// Query executes query against schema in-process and decodes the data into
// out. GraphQL errors are joined into the returned error.
func Query(ctx context.Context, schema *graphql.Schema, query string, variables map[string]interface{}, out interface{}) error {
	resp := schema.Exec(ctx, query, "", variables)
	if len(resp.Errors) > 0 {
		errs := make([]error, len(resp.Errors))
		for i, e := range resp.Errors {
			errs[i] = e
		}
		return fmt.Errorf("query failed: %w", errors.Join(errs...))
	}
	if err := json.Unmarshal(resp.Data, out); err != nil {
		return fmt.Errorf("failed to decode query result: %w", err)
	}
	return nil
}
