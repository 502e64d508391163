package publications

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"

	"gql_subgraphs/graph"
	"gql_subgraphs/internal/database"
	publicationsdb "gql_subgraphs/internal/publications"
)

type idArgs struct {
	ID graph.UUID
}

type pageArgs struct {
	Skip, Limit int32
}

// Resolver for the publication_by_id field
func (r *Resolver) PublicationByID(ctx context.Context, args idArgs) (*publicationResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, publicationsdb.ResolvePublicationByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newPublication(row), nil
}

// Resolver for the publication_page field
func (r *Resolver) PublicationPage(ctx context.Context, args pageArgs) ([]*publicationResolver, error) {
	session, err := database.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	skip, limit := graph.Page(args.Skip, args.Limit)
	rows, err := publicationsdb.ResolvePublicationAll(session, skip, limit)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newPublication), nil
}

func (r *Resolver) PublicationTypeByID(ctx context.Context, args idArgs) (*publicationTypeResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, publicationsdb.ResolvePublicationTypeByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newPublicationType(row), nil
}

func (r *Resolver) PublicationTypePage(ctx context.Context, args pageArgs) ([]*publicationTypeResolver, error) {
	session, err := database.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	skip, limit := graph.Page(args.Skip, args.Limit)
	rows, err := publicationsdb.ResolvePublicationTypeAll(session, skip, limit)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newPublicationType), nil
}

func (r *Resolver) AuthorByID(ctx context.Context, args idArgs) (*authorResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, publicationsdb.ResolveAuthorByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newAuthor(row), nil
}

// Resolver for the _entities field
func (r *Resolver) Entities(ctx context.Context, args struct{ Representations []graph.Any }) ([]*entityResolver, error) {
	entities, err := graph.ResolveEntities(ctx, args.Representations, map[string]graph.EntityFunc{
		"UserGQLModel": func(ctx context.Context, id uuid.UUID) (interface{}, error) {
			return &userResolver{id: id}, nil
		},
		"PublicationGQLModel":     graph.Loader(publicationsdb.ResolvePublicationByID, newPublication),
		"PublicationTypeGQLModel": graph.Loader(publicationsdb.ResolvePublicationTypeByID, newPublicationType),
		"AuthorGQLModel":          graph.Loader(publicationsdb.ResolveAuthorByID, newAuthor),
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

// userResolver is a reference to a user owned by another subgraph.
type userResolver struct {
	id uuid.UUID
}

func (u *userResolver) ID() graphql.ID {
	return graph.ID(u.id)
}

func (u *userResolver) Authorships(ctx context.Context) ([]*authorResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, publicationsdb.ResolveAuthorsForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newAuthor), nil
}

type publicationResolver struct {
	row *publicationsdb.Publication
}

func newPublication(row *publicationsdb.Publication) *publicationResolver {
	return &publicationResolver{row: row}
}

func (p *publicationResolver) ID() graphql.ID { return graph.ID(p.row.ID) }
func (p *publicationResolver) Name() *string { return graph.String(p.row.Name) }
func (p *publicationResolver) Place() *string { return graph.String(p.row.Place) }
func (p *publicationResolver) Reference() *string { return graph.String(p.row.Reference) }
func (p *publicationResolver) ExternalID() *string { return graph.String(p.row.ExternalID) }
func (p *publicationResolver) Valid() *bool { return p.row.Valid }

func (p *publicationResolver) PublishedDate() *graphql.Time {
	return graph.Time(p.row.PublishedDate)
}

func (p *publicationResolver) PublicationType(ctx context.Context) (*publicationTypeResolver, error) {
	row, err := graph.Lookup(ctx, p.row.PublicationTypeID, publicationsdb.ResolvePublicationTypeByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newPublicationType(row), nil
}

func (p *publicationResolver) Authors(ctx context.Context) ([]*authorResolver, error) {
	rows, err := graph.Lookup(ctx, p.row.ID, publicationsdb.ResolveAuthorsForPublication)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newAuthor), nil
}

func (p *publicationResolver) TotalShare(ctx context.Context) (float64, error) {
	rows, err := graph.Lookup(ctx, p.row.ID, publicationsdb.ResolveAuthorsForPublication)
	if err != nil {
		return 0, err
	}
	return publicationsdb.TotalShare(rows).InexactFloat64(), nil
}

type publicationTypeResolver struct {
	row *publicationsdb.PublicationType
}

func newPublicationType(row *publicationsdb.PublicationType) *publicationTypeResolver {
	return &publicationTypeResolver{row: row}
}

func (t *publicationTypeResolver) ID() graphql.ID { return graph.ID(t.row.ID) }
func (t *publicationTypeResolver) Type() *string { return graph.String(t.row.Type) }

func (t *publicationTypeResolver) Publications(ctx context.Context) ([]*publicationResolver, error) {
	rows, err := graph.Lookup(ctx, t.row.ID, publicationsdb.ResolvePublicationsForType)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newPublication), nil
}

type authorResolver struct {
	row *publicationsdb.Author
}

func newAuthor(row *publicationsdb.Author) *authorResolver {
	return &authorResolver{row: row}
}

func (a *authorResolver) ID() graphql.ID { return graph.ID(a.row.ID) }
func (a *authorResolver) Order() *int32 { return a.row.Order }
func (a *authorResolver) ExternalID() *string { return graph.String(a.row.ExternalID) }
func (a *authorResolver) User() *userResolver { return &userResolver{id: a.row.UserID} }

// Share is exposed as a float; the column keeps the exact value.
func (a *authorResolver) Share() *float64 {
	if !a.row.Share.Valid {
		return nil
	}
	v := a.row.Share.Decimal.InexactFloat64()
	return &v
}

func (a *authorResolver) Publication(ctx context.Context) (*publicationResolver, error) {
	row, err := graph.Lookup(ctx, a.row.PublicationID, publicationsdb.ResolvePublicationByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newPublication(row), nil
}

type entityResolver struct {
	entity interface{}
}

func (e *entityResolver) ToUserGQLModel() (*userResolver, bool) {
	v, ok := e.entity.(*userResolver)
	return v, ok
}

func (e *entityResolver) ToPublicationGQLModel() (*publicationResolver, bool) {
	v, ok := e.entity.(*publicationResolver)
	return v, ok
}

func (e *entityResolver) ToPublicationTypeGQLModel() (*publicationTypeResolver, bool) {
	v, ok := e.entity.(*publicationTypeResolver)
	return v, ok
}

func (e *entityResolver) ToAuthorGQLModel() (*authorResolver, bool) {
	v, ok := e.entity.(*authorResolver)
	return v, ok
}
