// Package forms is the GraphQL subgraph for workflow requests.
package forms

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"

	"gql_subgraphs/graph"
	formsdb "gql_subgraphs/internal/forms"
)

//go:embed schema.graphqls
var schemaSource string

// Resolver is the root resolver of the forms subgraph.
type Resolver struct{}

// NewSchema parses the subgraph schema and binds it to a new Resolver.
func NewSchema() (*graphql.Schema, error) {
	return graph.NewSchema(schemaSource, &Resolver{})
}

// Subgraph describes the forms service.
var Subgraph = graph.Subgraph{
	Name:   "forms",
	Models: formsdb.Models(),
	Schema: NewSchema,
}
