// Package publications is the GraphQL subgraph for publications and their
// authors.
package publications

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"

	"gql_subgraphs/graph"
	publicationsdb "gql_subgraphs/internal/publications"
)

//go:embed schema.graphqls
var schemaSource string

// Resolver is the root resolver of the publications subgraph.
type Resolver struct{}

func NewSchema() (*graphql.Schema, error) {
	return graph.NewSchema(schemaSource, &Resolver{})
}

// Subgraph describes the publications service.
var Subgraph = graph.Subgraph{
	Name:   "publications",
	Models: publicationsdb.Models(),
	Schema: NewSchema,
}
