// Package personalities is the GraphQL subgraph for the personal records of
// users: ranks, studies, certificates, medals, work history and documents.
package personalities

import (
	_ "embed"

	"github.com/graph-gophers/graphql-go"

	"gql_subgraphs/graph"
	personalitiesdb "gql_subgraphs/internal/personalities"
)

//go:embed schema.graphqls
var schemaSource string

type Resolver struct{}

func NewSchema() (*graphql.Schema, error) {
	return graph.NewSchema(schemaSource, &Resolver{})
}

var Subgraph = graph.Subgraph{
	Name:   "personalities",
	Models: personalitiesdb.Models(),
	Schema: NewSchema,
}
