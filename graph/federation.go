package graph

import (
	"bytes"
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"
	"github.com/vektah/gqlparser/v2/ast"
	"github.com/vektah/gqlparser/v2/formatter"
	"github.com/vektah/gqlparser/v2/parser"
)

// Any is the _Any scalar: one entity representation sent by the gateway,
// e.g. {"__typename": "UserGQLModel", "id": "..."}.
type Any map[string]interface{}

func (Any) ImplementsGraphQLType(name string) bool {
	return name == "_Any"
}

func (a *Any) UnmarshalGraphQL(input interface{}) error {
	m, ok := input.(map[string]interface{})
	if !ok {
		return fmt.Errorf("_Any must be an object, got %T", input)
	}
	*a = m
	return nil
}

// Key returns the typename and id of a representation. Every entity in
// these subgraphs is keyed by id.
func (a Any) Key() (string, uuid.UUID, error) {
	typename, _ := a["__typename"].(string)
	if typename == "" {
		return "", uuid.Nil, fmt.Errorf("representation is missing __typename")
	}
	raw, ok := a["id"].(string)
	if !ok {
		return typename, uuid.Nil, fmt.Errorf("representation of %s is missing id", typename)
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return typename, uuid.Nil, fmt.Errorf("representation of %s has invalid id %q: %w", typename, raw, err)
	}
	return typename, id, nil
}

// EntityFunc resolves the entity of one type by id. Returning a nil
// interface marks the entity as absent.
type EntityFunc func(ctx context.Context, id uuid.UUID) (interface{}, error)

// ResolveEntities resolves representations in order with the function
// registered for their __typename.
func ResolveEntities(ctx context.Context, representations []Any, resolvers map[string]EntityFunc) ([]interface{}, error) {
	entities := make([]interface{}, len(representations))
	for i, rep := range representations {
		typename, id, err := rep.Key()
		if err != nil {
			return nil, err
		}
		resolve, ok := resolvers[typename]
		if !ok {
			return nil, fmt.Errorf("unknown entity type %s", typename)
		}
		entities[i], err = resolve(ctx, id)
		if err != nil {
			return nil, err
		}
	}
	return entities, nil
}

// NewSchema binds source to resolver. graph-gophers answers _service with
// the source it parsed, so that text is swapped for the gateway view of
// the schema.
func NewSchema(source string, resolver interface{}) (*graphql.Schema, error) {
	sdl, err := ServiceSDL(source)
	if err != nil {
		return nil, err
	}
	schema, err := ParseSchema(source, resolver)
	if err != nil {
		return nil, fmt.Errorf("failed to bind schema: %w", err)
	}
	schema.ASTSchema().SchemaString = sdl
	return schema, nil
}

var (
	federationTypes      = map[string]bool{"_Any": true, "_Entity": true, "_Service": true}
	federationFields     = map[string]bool{"_service": true, "_entities": true}
	federationDirectives = map[string]bool{"key": true, "extends": true, "external": true, "requires": true, "provides": true}
)

// ServiceSDL returns the schema as the gateway expects it from _service:
// the federation plumbing the gateway supplies itself is removed.
func ServiceSDL(source string) (string, error) {
	doc, err := parser.ParseSchema(&ast.Source{Name: "schema.graphqls", Input: source})
	if err != nil {
		return "", fmt.Errorf("failed to parse schema: %w", err)
	}

	var directives ast.DirectiveDefinitionList
	for _, d := range doc.Directives {
		if !federationDirectives[d.Name] {
			directives = append(directives, d)
		}
	}
	doc.Directives = directives

	var definitions ast.DefinitionList
	for _, def := range doc.Definitions {
		if federationTypes[def.Name] {
			continue
		}
		if def.Name == "Query" {
			var fields ast.FieldList
			for _, f := range def.Fields {
				if !federationFields[f.Name] {
					fields = append(fields, f)
				}
			}
			def.Fields = fields
		}
		definitions = append(definitions, def)
	}
	doc.Definitions = definitions

	var buf bytes.Buffer
	formatter.NewFormatter(&buf).FormatSchemaDocument(doc)
	return buf.String(), nil
}
