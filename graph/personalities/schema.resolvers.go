package personalities

import (
	"context"

	"github.com/google/uuid"
	"github.com/graph-gophers/graphql-go"

	"gql_subgraphs/graph"
	"gql_subgraphs/internal/database"
	personalitiesdb "gql_subgraphs/internal/personalities"
)

type idArgs struct {
	ID graph.UUID
}

type pageArgs struct {
	Skip, Limit int32
}

func (r *Resolver) RankHistoryByID(ctx context.Context, args idArgs) (*rankHistoryResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveRankHistoryByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newRankHistory(row), nil
}

func (r *Resolver) StudyByID(ctx context.Context, args idArgs) (*studyResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveStudyByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newStudy(row), nil
}

func (r *Resolver) CertificateByID(ctx context.Context, args idArgs) (*certificateResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveCertificateByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newCertificate(row), nil
}

func (r *Resolver) CertificateTypeByID(ctx context.Context, args idArgs) (*certificateTypeResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveCertificateTypeByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newCertificateType(row), nil
}

func (r *Resolver) CertificateTypePage(ctx context.Context, args pageArgs) ([]*certificateTypeResolver, error) {
	session, err := database.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	skip, limit := graph.Page(args.Skip, args.Limit)
	rows, err := personalitiesdb.ResolveCertificateTypeAll(session, skip, limit)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newCertificateType), nil
}

func (r *Resolver) MedalByID(ctx context.Context, args idArgs) (*medalResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveMedalByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newMedal(row), nil
}

func (r *Resolver) MedalTypeByID(ctx context.Context, args idArgs) (*medalTypeResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveMedalTypeByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newMedalType(row), nil
}

func (r *Resolver) MedalTypeGroupByID(ctx context.Context, args idArgs) (*medalTypeGroupResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveMedalTypeGroupByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newMedalTypeGroup(row), nil
}

func (r *Resolver) MedalTypeGroupPage(ctx context.Context, args pageArgs) ([]*medalTypeGroupResolver, error) {
	session, err := database.SessionFromContext(ctx)
	if err != nil {
		return nil, err
	}

	skip, limit := graph.Page(args.Skip, args.Limit)
	rows, err := personalitiesdb.ResolveMedalTypeGroupAll(session, skip, limit)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newMedalTypeGroup), nil
}

func (r *Resolver) WorkHistoryByID(ctx context.Context, args idArgs) (*workHistoryResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveWorkHistoryByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newWorkHistory(row), nil
}

func (r *Resolver) RelatedDocByID(ctx context.Context, args idArgs) (*relatedDocResolver, error) {
	row, err := graph.Lookup(ctx, args.ID.UUID, personalitiesdb.ResolveRelatedDocByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newRelatedDoc(row), nil
}

// Resolver for the _entities field
func (r *Resolver) Entities(ctx context.Context, args struct{ Representations []graph.Any }) ([]*entityResolver, error) {
	entities, err := graph.ResolveEntities(ctx, args.Representations, map[string]graph.EntityFunc{
		"UserGQLModel": func(ctx context.Context, id uuid.UUID) (interface{}, error) {
			return &userResolver{id: id}, nil
		},
		"RankHistoryGQLModel":     graph.Loader(personalitiesdb.ResolveRankHistoryByID, newRankHistory),
		"StudyGQLModel":           graph.Loader(personalitiesdb.ResolveStudyByID, newStudy),
		"CertificateGQLModel":     graph.Loader(personalitiesdb.ResolveCertificateByID, newCertificate),
		"CertificateTypeGQLModel": graph.Loader(personalitiesdb.ResolveCertificateTypeByID, newCertificateType),
		"MedalGQLModel":           graph.Loader(personalitiesdb.ResolveMedalByID, newMedal),
		"MedalTypeGQLModel":       graph.Loader(personalitiesdb.ResolveMedalTypeByID, newMedalType),
		"MedalTypeGroupGQLModel":  graph.Loader(personalitiesdb.ResolveMedalTypeGroupByID, newMedalTypeGroup),
		"WorkHistoryGQLModel":     graph.Loader(personalitiesdb.ResolveWorkHistoryByID, newWorkHistory),
		"RelatedDocGQLModel":      graph.Loader(personalitiesdb.ResolveRelatedDocByID, newRelatedDoc),
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

// userResolver is a reference to a user owned by another subgraph; only
// the id is known here.
type userResolver struct {
	id uuid.UUID
}

func (u *userResolver) ID() graphql.ID {
	return graph.ID(u.id)
}

func (u *userResolver) Ranks(ctx context.Context) ([]*rankHistoryResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, personalitiesdb.ResolveRanksForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newRankHistory), nil
}

func (u *userResolver) Studies(ctx context.Context) ([]*studyResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, personalitiesdb.ResolveStudiesForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newStudy), nil
}

func (u *userResolver) Certificates(ctx context.Context) ([]*certificateResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, personalitiesdb.ResolveCertificatesForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newCertificate), nil
}

func (u *userResolver) Medals(ctx context.Context) ([]*medalResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, personalitiesdb.ResolveMedalsForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newMedal), nil
}

func (u *userResolver) WorkHistories(ctx context.Context) ([]*workHistoryResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, personalitiesdb.ResolveWorkHistoriesForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newWorkHistory), nil
}

func (u *userResolver) RelatedDocs(ctx context.Context) ([]*relatedDocResolver, error) {
	rows, err := graph.Lookup(ctx, u.id, personalitiesdb.ResolveRelatedDocsForUser)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newRelatedDoc), nil
}

type rankHistoryResolver struct {
	row *personalitiesdb.RankHistory
}

func newRankHistory(row *personalitiesdb.RankHistory) *rankHistoryResolver {
	return &rankHistoryResolver{row: row}
}

func (r *rankHistoryResolver) ID() graphql.ID { return graph.ID(r.row.ID) }
func (r *rankHistoryResolver) Name() *string { return graph.String(r.row.Name) }
func (r *rankHistoryResolver) Start() *graphql.Time { return graph.Time(r.row.Start) }
func (r *rankHistoryResolver) End() *graphql.Time { return graph.Time(r.row.End) }
func (r *rankHistoryResolver) User() *userResolver { return &userResolver{id: r.row.UserID} }

type studyResolver struct {
	row *personalitiesdb.Study
}

func newStudy(row *personalitiesdb.Study) *studyResolver {
	return &studyResolver{row: row}
}

func (s *studyResolver) ID() graphql.ID { return graph.ID(s.row.ID) }
func (s *studyResolver) Place() *string { return graph.String(s.row.Place) }
func (s *studyResolver) Program() *string { return graph.String(s.row.Program) }
func (s *studyResolver) Start() *graphql.Time { return graph.Time(s.row.Start) }
func (s *studyResolver) End() *graphql.Time { return graph.Time(s.row.End) }
func (s *studyResolver) User() *userResolver { return &userResolver{id: s.row.UserID} }

type certificateResolver struct {
	row *personalitiesdb.Certificate
}

func newCertificate(row *personalitiesdb.Certificate) *certificateResolver {
	return &certificateResolver{row: row}
}

func (c *certificateResolver) ID() graphql.ID { return graph.ID(c.row.ID) }
func (c *certificateResolver) Name() *string { return graph.String(c.row.Name) }
func (c *certificateResolver) Level() *string { return graph.String(c.row.Level) }
func (c *certificateResolver) User() *userResolver { return &userResolver{id: c.row.UserID} }

func (c *certificateResolver) ValidityStart() *graphql.Time {
	return graph.Time(c.row.ValidityStart)
}

func (c *certificateResolver) ValidityEnd() *graphql.Time {
	return graph.Time(c.row.ValidityEnd)
}

func (c *certificateResolver) CertificateType(ctx context.Context) (*certificateTypeResolver, error) {
	if c.row.CertificateTypeID == nil {
		return nil, nil
	}
	row, err := graph.Lookup(ctx, *c.row.CertificateTypeID, personalitiesdb.ResolveCertificateTypeByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newCertificateType(row), nil
}

type certificateTypeResolver struct {
	row *personalitiesdb.CertificateType
}

func newCertificateType(row *personalitiesdb.CertificateType) *certificateTypeResolver {
	return &certificateTypeResolver{row: row}
}

func (c *certificateTypeResolver) ID() graphql.ID { return graph.ID(c.row.ID) }
func (c *certificateTypeResolver) Name() *string { return graph.String(c.row.Name) }
func (c *certificateTypeResolver) EnName() *string {
	return graph.String(c.row.EnName)
}

func (c *certificateTypeResolver) Certificates(ctx context.Context) ([]*certificateResolver, error) {
	rows, err := graph.Lookup(ctx, c.row.ID, personalitiesdb.ResolveCertificatesForType)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newCertificate), nil
}

type medalResolver struct {
	row *personalitiesdb.Medal
}

func newMedal(row *personalitiesdb.Medal) *medalResolver {
	return &medalResolver{row: row}
}

func (m *medalResolver) ID() graphql.ID { return graph.ID(m.row.ID) }
func (m *medalResolver) Name() *string { return graph.String(m.row.Name) }
func (m *medalResolver) Year() *int32 { return m.row.Year }
func (m *medalResolver) User() *userResolver { return &userResolver{id: m.row.UserID} }

func (m *medalResolver) MedalType(ctx context.Context) (*medalTypeResolver, error) {
	if m.row.MedalTypeID == nil {
		return nil, nil
	}
	row, err := graph.Lookup(ctx, *m.row.MedalTypeID, personalitiesdb.ResolveMedalTypeByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newMedalType(row), nil
}

type medalTypeResolver struct {
	row *personalitiesdb.MedalType
}

func newMedalType(row *personalitiesdb.MedalType) *medalTypeResolver {
	return &medalTypeResolver{row: row}
}

func (m *medalTypeResolver) ID() graphql.ID { return graph.ID(m.row.ID) }
func (m *medalTypeResolver) Name() *string { return graph.String(m.row.Name) }

func (m *medalTypeResolver) MedalTypeGroup(ctx context.Context) (*medalTypeGroupResolver, error) {
	if m.row.MedalTypeGroupID == nil {
		return nil, nil
	}
	row, err := graph.Lookup(ctx, *m.row.MedalTypeGroupID, personalitiesdb.ResolveMedalTypeGroupByID)
	if err != nil || row == nil {
		return nil, err
	}
	return newMedalTypeGroup(row), nil
}

func (m *medalTypeResolver) Medals(ctx context.Context) ([]*medalResolver, error) {
	rows, err := graph.Lookup(ctx, m.row.ID, personalitiesdb.ResolveMedalsForType)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newMedal), nil
}

type medalTypeGroupResolver struct {
	row *personalitiesdb.MedalTypeGroup
}

func newMedalTypeGroup(row *personalitiesdb.MedalTypeGroup) *medalTypeGroupResolver {
	return &medalTypeGroupResolver{row: row}
}

func (g *medalTypeGroupResolver) ID() graphql.ID { return graph.ID(g.row.ID) }
func (g *medalTypeGroupResolver) Name() *string { return graph.String(g.row.Name) }

func (g *medalTypeGroupResolver) MedalTypes(ctx context.Context) ([]*medalTypeResolver, error) {
	rows, err := graph.Lookup(ctx, g.row.ID, personalitiesdb.ResolveMedalTypesForGroup)
	if err != nil {
		return nil, err
	}
	return graph.Wrap(rows, newMedalType), nil
}

type workHistoryResolver struct {
	row *personalitiesdb.WorkHistory
}

func newWorkHistory(row *personalitiesdb.WorkHistory) *workHistoryResolver {
	return &workHistoryResolver{row: row}
}

func (w *workHistoryResolver) ID() graphql.ID { return graph.ID(w.row.ID) }
func (w *workHistoryResolver) Start() *graphql.Time { return graph.Time(w.row.Start) }
func (w *workHistoryResolver) End() *graphql.Time { return graph.Time(w.row.End) }
func (w *workHistoryResolver) Position() *string { return graph.String(w.row.Position) }
func (w *workHistoryResolver) Ico() *string { return graph.String(w.row.ICO) }
func (w *workHistoryResolver) User() *userResolver { return &userResolver{id: w.row.UserID} }

type relatedDocResolver struct {
	row *personalitiesdb.RelatedDoc
}

func newRelatedDoc(row *personalitiesdb.RelatedDoc) *relatedDocResolver {
	return &relatedDocResolver{row: row}
}

func (d *relatedDocResolver) ID() graphql.ID { return graph.ID(d.row.ID) }
func (d *relatedDocResolver) Name() *string { return graph.String(d.row.Name) }
func (d *relatedDocResolver) User() *userResolver { return &userResolver{id: d.row.UserID} }

type entityResolver struct {
	entity interface{}
}

func (e *entityResolver) ToUserGQLModel() (*userResolver, bool) {
	v, ok := e.entity.(*userResolver)
	return v, ok
}

func (e *entityResolver) ToRankHistoryGQLModel() (*rankHistoryResolver, bool) {
	v, ok := e.entity.(*rankHistoryResolver)
	return v, ok
}

func (e *entityResolver) ToStudyGQLModel() (*studyResolver, bool) {
	v, ok := e.entity.(*studyResolver)
	return v, ok
}

func (e *entityResolver) ToCertificateGQLModel() (*certificateResolver, bool) {
	v, ok := e.entity.(*certificateResolver)
	return v, ok
}

func (e *entityResolver) ToCertificateTypeGQLModel() (*certificateTypeResolver, bool) {
	v, ok := e.entity.(*certificateTypeResolver)
	return v, ok
}

func (e *entityResolver) ToMedalGQLModel() (*medalResolver, bool) {
	v, ok := e.entity.(*medalResolver)
	return v, ok
}

func (e *entityResolver) ToMedalTypeGQLModel() (*medalTypeResolver, bool) {
	v, ok := e.entity.(*medalTypeResolver)
	return v, ok
}

func (e *entityResolver) ToMedalTypeGroupGQLModel() (*medalTypeGroupResolver, bool) {
	v, ok := e.entity.(*medalTypeGroupResolver)
	return v, ok
}

func (e *entityResolver) ToWorkHistoryGQLModel() (*workHistoryResolver, bool) {
	v, ok := e.entity.(*workHistoryResolver)
	return v, ok
}

func (e *entityResolver) ToRelatedDocGQLModel() (*relatedDocResolver, bool) {
	v, ok := e.entity.(*relatedDocResolver)
	return v, ok
}
