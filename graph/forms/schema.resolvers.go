package forms

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"

	"gql_subgraphs/graph"
	"gql_subgraphs/internal/database"
	formsdb "gql_subgraphs/internal/forms"
)

// Resolver for the say_hello_forms field
func (r *Resolver) SayHelloForms(args struct{ ID graph.UUID }) *string {
	result := fmt.Sprintf("Hello %s", args.ID.UUID)
	return &result
}

// Resolver for the request_by_id field
func (r *Resolver) RequestByID(ctx context.Context, args struct{ ID graph.UUID }) (*requestResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, formsdb.ResolveRequestByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newRequest(row), nil
}

// Resolver for the request_page field
func (r *Resolver) RequestPage(ctx context.Context, args struct{ Skip, Limit int32 }) ([]*requestResolver, error) {
	session, err := database.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	skip, limit := graph.Page(args.Skip, args.Limit)
	rows, err := formsdb.ResolveRequestAll(session, skip, limit)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newRequest), nil
}

// Resolver for the _entities field
func (r *Resolver) Entities(ctx context.Context, args struct{ Representations []graph.Any }) ([]*entityResolver, error) {
	entities, err := graph.ResolveEntities(ctx, args.Representations, map[string]graph.EntityFunc{
		"UserGQLModel": func(ctx context.Context, id uuid.UUID) (interface{}, error) {
			return &userResolver{id: id}, nil
		},
		"RequestGQLModel": graph.Loader(formsdb.ResolveRequestByID, newRequest),
	})
	if err != nil {
		return nil, err
	}

	result := make([]*entityResolver, len(entities))
	for i, entity := range entities {
		if entity != nil {
			result[i] = &entityResolver{entity: entity}
		}
	}
	return result, nil
}

func newRequest(row *formsdb.Request) *requestResolver {
	return &requestResolver{row: row}
}

type requestResolver struct {
	row *formsdb.Request
}

func (r *requestResolver) ID() graphql.ID {
	return graph.ID(r.row.ID)
}

func (r *requestResolver) Name() *string {
	return graph.String(r.row.Name)
}

func (r *requestResolver) User() *userResolver {
	if r.row.UserID == nil {
		return nil
	}
	return &userResolver{id: *r.row.UserID}
}

// userResolver is a reference to a user owned by another subgraph; only
// the id is known here.
type userResolver struct {
	id uuid.UUID
}

func (u *userResolver) ID() graphql.ID {
	return graph.ID(u.id)
}

func (u *userResolver) Requests(ctx context.Context) ([]*requestResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, formsdb.ResolveRequestsForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newRequest), nil
}

type entityResolver struct {
	entity interface{}
}

func (e *entityResolver) ToUserGQLModel() (*userResolver, bool) {
	u, ok := e.entity.(*userResolver)
	return u, ok
}

func (e *entityResolver) ToRequestGQLModel() (*requestResolver, bool) {
	r, ok := e.entity.(*requestResolver)
	return r, ok
}
