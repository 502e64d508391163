package publications_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"testing"

	"gql_subgraphs/graph/publications"
	"gql_subgraphs/internal/database"
	publicationsdb "gql_subgraphs/internal/publications"
	"gql_subgraphs/internal/testutils"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	sessions, err := testutils.Connect("test_graph_publications", publicationsdb.Models())
	if err != nil {
		log.Printf("Database tests disabled: %v", err)
	} else {
		testutils.Sessions = sessions
	}

	code := m.Run()

	if sessions != nil {
		_ = sessions.Close()
	}
	os.Exit(code)
}

func exec(t *testing.T, ctx context.Context, query string, vars map[string]interface{}) map[string]interface{} {
	t.Helper()
	schema, err := publications.NewSchema()
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}

	resp := schema.Exec(ctx, query, "", vars)
	if len(resp.Errors) > 0 {
		t.Fatalf("unexpected errors: %v", resp.Errors)
	}
	var data map[string]interface{}
	if err := json.Unmarshal(resp.Data, &data); err != nil {
		t.Fatalf("Failed to decode data %s: %v", resp.Data, err)
	}
	return data
}

type fixture struct {
	user, coauthor publicationsdb.User
	kind           publicationsdb.PublicationType
	paper          publicationsdb.Publication
	first, second  publicationsdb.Author
}

// seed stores one paper written by two users with shares 0.6 and 0.4.
func seed(t *testing.T) (context.Context, *fixture) {
	t.Helper()
	sessions := testutils.SetupDB(t)
	testutils.Truncate(t, publicationsdb.Models()...)
	ctx := context.Background()
	db := sessions.NewSession(ctx)

	f := &fixture{kind: publicationsdb.PublicationType{Type: "article"}}
	create(t, db, &f.user, &f.coauthor, &f.kind)

	valid := true
	f.paper = publicationsdb.Publication{
		Name:              "On subgraphs",
		Place:             "Prague",
		ExternalID:        "ext-1",
		Valid:             &valid,
		PublicationTypeID: f.kind.ID,
	}
	create(t, db, &f.paper)

	one, two := int32(1), int32(2)
	f.second = publicationsdb.Author{
		Order: &two, Share: decimal.NewNullDecimal(decimal.RequireFromString("0.4")),
		UserID: f.coauthor.ID, PublicationID: f.paper.ID,
	}
	f.first = publicationsdb.Author{
		Order: &one, Share: decimal.NewNullDecimal(decimal.RequireFromString("0.6")),
		UserID: f.user.ID, PublicationID: f.paper.ID,
	}
	create(t, db, &f.second, &f.first)

	return database.WithSession(ctx, db), f
}

func create(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to insert %T: %v", row, err)
		}
	}
}

func TestService_SDL(t *testing.T) {
	data := exec(t, context.Background(), `{ _service { sdl } }`, nil)
	sdl, _ := data["_service"].(map[string]interface{})["sdl"].(string)

	for _, want := range []string{
		`type PublicationGQLModel @key(fields: "id")`,
		`type AuthorGQLModel @key(fields: "id")`,
		"authorships",
	} {
		if !strings.Contains(sdl, want) {
			t.Errorf("sdl is missing %q:\n%s", want, sdl)
		}
	}
}

func TestPage_ArgumentsWithoutSession(t *testing.T) {
	schema, err := publications.NewSchema()
	if err != nil {
		t.Fatalf("Failed to build schema: %v", err)
	}

	for _, query := range []string{
		`{ publication_page { id } }`,
		`{ publication_page(skip: 5, limit: 500) { id } }`,
		`{ publication_type_page(limit: 1) { id } }`,
	} {
		resp := schema.Exec(context.Background(), query, "", nil)
		if len(resp.Errors) != 1 || !strings.Contains(resp.Errors[0].Message, database.ErrNoSession.Error()) {
			t.Errorf("%s: expected the missing session error, got %v", query, resp.Errors)
		}
	}
}

func TestPublicationByID(t *testing.T) {
	ctx, f := seed(t)

	data := exec(t, ctx,
		`query($id: UUID!) { publication_by_id(id: $id) {
			name place external_id valid reference
			publication_type { type }
			authors { order share user { id } }
			total_share
		} }`,
		map[string]interface{}{"id": f.paper.ID.String()})

	want := map[string]interface{}{
		"publication_by_id": map[string]interface{}{
			"name":             "On subgraphs",
			"place":            "Prague",
			"external_id":      "ext-1",
			"valid":            true,
			"reference":        nil,
			"publication_type": map[string]interface{}{"type": "article"},
			"authors": []interface{}{
				map[string]interface{}{"order": float64(1), "share": 0.6, "user": map[string]interface{}{"id": f.user.ID.String()}},
				map[string]interface{}{"order": float64(2), "share": 0.4, "user": map[string]interface{}{"id": f.coauthor.ID.String()}},
			},
			"total_share": float64(1),
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("publication_by_id mismatch (-want +got):\n%s", diff)
	}
}

func TestAuthorshipsOfUser(t *testing.T) {
	ctx, f := seed(t)

	data := exec(t, ctx,
		`query($reps: [_Any!]!) { _entities(representations: $reps) {
			... on UserGQLModel { authorships { id publication { name } } }
			... on AuthorGQLModel { share }
		} }`,
		map[string]interface{}{"reps": []interface{}{
			map[string]interface{}{"__typename": "UserGQLModel", "id": f.coauthor.ID.String()},
			map[string]interface{}{"__typename": "AuthorGQLModel", "id": f.first.ID.String()},
			map[string]interface{}{"__typename": "AuthorGQLModel", "id": uuid.New().String()},
		}})

	want := map[string]interface{}{
		"_entities": []interface{}{
			map[string]interface{}{"authorships": []interface{}{
				map[string]interface{}{"id": f.second.ID.String(), "publication": map[string]interface{}{"name": "On subgraphs"}},
			}},
			map[string]interface{}{"share": 0.6},
			nil,
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("_entities mismatch (-want +got):\n%s", diff)
	}
}

func TestPublicationTypes(t *testing.T) {
	ctx, f := seed(t)

	data := exec(t, ctx,
		`query($id: UUID!, $missing: UUID!) {
			publication_type_by_id(id: $id) { type publications { id } }
			publication_type_page { type }
			publication_page(skip: 1) { id }
			author_by_id(id: $missing) { id }
		}`,
		map[string]interface{}{"id": f.kind.ID.String(), "missing": uuid.New().String()})

	want := map[string]interface{}{
		"publication_type_by_id": map[string]interface{}{
			"type":         "article",
			"publications": []interface{}{map[string]interface{}{"id": f.paper.ID.String()}},
		},
		"publication_type_page": []interface{}{map[string]interface{}{"type": "article"}},
		"publication_page":      []interface{}{},
		"author_by_id":          nil,
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("query mismatch (-want +got):\n%s", diff)
	}
}
