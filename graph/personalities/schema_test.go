package personalities_test

import (
	"context"
	"encoding/json"
	"log"
	"os"
	"strings"
	"testing"
	"time"

	"gql_subgraphs/graph/personalities"
	"gql_subgraphs/internal/database"
	personalitiesdb "gql_subgraphs/internal/personalities"
	"gql_subgraphs/internal/testutils"

	"github.com/google/go-cmp/cmp"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

func TestMain(m *testing.M) {
	sessions, err := testutils.Connect("test_graph_personalities", personalitiesdb.Models())
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
	schema, err := personalities.NewSchema()
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

func setup(t *testing.T) (context.Context, *gorm.DB) {
	t.Helper()
	sessions := testutils.SetupDB(t)
	testutils.Truncate(t, personalitiesdb.Models()...)
	ctx := context.Background()
	session := sessions.NewSession(ctx)
	return database.WithSession(ctx, session), session
}

func insert(t *testing.T, db *gorm.DB, rows ...any) {
	t.Helper()
	for _, row := range rows {
		if err := db.Create(row).Error; err != nil {
			t.Fatalf("Failed to insert %T: %v", row, err)
		}
	}
}

func TestSchemaParses(t *testing.T) {
	if _, err := personalities.NewSchema(); err != nil {
		t.Fatalf("NewSchema failed: %v", err)
	}
}

func TestService_SDL(t *testing.T) {
	data := exec(t, context.Background(), `{ _service { sdl } }`, nil)
	sdl, _ := data["_service"].(map[string]interface{})["sdl"].(string)

	for _, typename := range []string{
		"RankHistoryGQLModel", "StudyGQLModel", "CertificateGQLModel", "CertificateTypeGQLModel",
		"MedalGQLModel", "MedalTypeGQLModel", "MedalTypeGroupGQLModel", "WorkHistoryGQLModel",
		"RelatedDocGQLModel",
	} {
		if !strings.Contains(sdl, "type "+typename+` @key(fields: "id")`) {
			t.Errorf("sdl is missing keyed type %s", typename)
		}
	}
	if strings.Contains(sdl, "union _Entity") {
		t.Errorf("sdl should not expose _Entity:\n%s", sdl)
	}
}

func TestEntities_UserStubWithoutSession(t *testing.T) {
	id := uuid.New()
	data := exec(t, context.Background(),
		`query($reps: [_Any!]!) { _entities(representations: $reps) { __typename ... on UserGQLModel { id } } }`,
		map[string]interface{}{"reps": []interface{}{
			map[string]interface{}{"__typename": "UserGQLModel", "id": id.String()},
		}})

	want := map[string]interface{}{
		"_entities": []interface{}{
			map[string]interface{}{"__typename": "UserGQLModel", "id": id.String()},
		},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("_entities mismatch (-want +got):\n%s", diff)
	}
}

func TestUserRecords(t *testing.T) {
	ctx, db := setup(t)

	user := personalitiesdb.User{}
	other := personalitiesdb.User{}
	insert(t, db, &user, &other)

	start := time.Date(2019, 9, 1, 0, 0, 0, 0, time.UTC)
	certType := personalitiesdb.CertificateType{Name: "Jazykova zkouska", EnName: "Language exam"}
	insert(t, db, &certType)
	insert(t, db,
		&personalitiesdb.RankHistory{Name: "captain", Start: &start, UserID: user.ID},
		&personalitiesdb.RankHistory{Name: "major", UserID: other.ID},
		&personalitiesdb.Study{Place: "Brno", Program: "Informatics", UserID: user.ID},
		&personalitiesdb.Certificate{Name: "English", Level: "C1", UserID: user.ID, CertificateTypeID: &certType.ID},
		&personalitiesdb.WorkHistory{Position: "engineer", ICO: "12345678", UserID: user.ID},
		&personalitiesdb.RelatedDoc{Name: "diploma", UserID: user.ID},
	)

	data := exec(t, ctx,
		`query($reps: [_Any!]!) { _entities(representations: $reps) { ... on UserGQLModel {
			ranks { name start }
			studies { place program }
			certificates { name level certificate_type { en_name certificates { name } } }
			medals { id }
			work_histories { position ico }
			related_docs { name user { id } }
		} } }`,
		map[string]interface{}{"reps": []interface{}{
			map[string]interface{}{"__typename": "UserGQLModel", "id": user.ID.String()},
		}})

	got := data["_entities"].([]interface{})[0].(map[string]interface{})

	ranks := got["ranks"].([]interface{})
	if len(ranks) != 1 {
		t.Fatalf("ranks = %v, want only the user's own rank", ranks)
	}
	rank := ranks[0].(map[string]interface{})
	if rank["name"] != "captain" {
		t.Errorf("rank name = %v", rank["name"])
	}
	parsed, err := time.Parse(time.RFC3339, rank["start"].(string))
	if err != nil || !parsed.Equal(start) {
		t.Errorf("rank start = %v, want %v", rank["start"], start)
	}

	want := map[string]interface{}{
		"studies": []interface{}{map[string]interface{}{"place": "Brno", "program": "Informatics"}},
		"certificates": []interface{}{map[string]interface{}{
			"name":  "English",
			"level": "C1",
			"certificate_type": map[string]interface{}{
				"en_name":      "Language exam",
				"certificates": []interface{}{map[string]interface{}{"name": "English"}},
			},
		}},
		"medals":         []interface{}{},
		"work_histories": []interface{}{map[string]interface{}{"position": "engineer", "ico": "12345678"}},
		"related_docs": []interface{}{map[string]interface{}{
			"name": "diploma",
			"user": map[string]interface{}{"id": user.ID.String()},
		}},
	}
	delete(got, "ranks")
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("user records mismatch (-want +got):\n%s", diff)
	}
}

func TestMedalHierarchy(t *testing.T) {
	ctx, db := setup(t)

	user := personalitiesdb.User{}
	group := personalitiesdb.MedalTypeGroup{Name: "state"}
	insert(t, db, &user, &group)
	medalType := personalitiesdb.MedalType{Name: "order", MedalTypeGroupID: &group.ID}
	insert(t, db, &medalType)
	year := int32(2004)
	medal := personalitiesdb.Medal{Name: "Order of the White Lion", Year: &year, UserID: user.ID, MedalTypeID: &medalType.ID}
	untyped := personalitiesdb.Medal{Name: "unnamed", UserID: user.ID}
	insert(t, db, &medal, &untyped)

	data := exec(t, ctx,
		`query($id: UUID!, $untyped: UUID!) {
			medal_by_id(id: $id) { name year user { id } medal_type { name medal_type_group { name medal_types { name } } medals { name } } }
			untyped: medal_by_id(id: $untyped) { year medal_type { id } }
			medal_type_group_page { name }
		}`,
		map[string]interface{}{"id": medal.ID.String(), "untyped": untyped.ID.String()})

	want := map[string]interface{}{
		"medal_by_id": map[string]interface{}{
			"name": "Order of the White Lion",
			"year": float64(2004),
			"user": map[string]interface{}{"id": user.ID.String()},
			"medal_type": map[string]interface{}{
				"name": "order",
				"medal_type_group": map[string]interface{}{
					"name":        "state",
					"medal_types": []interface{}{map[string]interface{}{"name": "order"}},
				},
				"medals": []interface{}{map[string]interface{}{"name": "Order of the White Lion"}},
			},
		},
		"untyped":               map[string]interface{}{"year": nil, "medal_type": nil},
		"medal_type_group_page": []interface{}{map[string]interface{}{"name": "state"}},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("medal query mismatch (-want +got):\n%s", diff)
	}
}

func TestByID_Absent(t *testing.T) {
	ctx, _ := setup(t)
	missing := uuid.New().String()

	data := exec(t, ctx,
		`query($id: UUID!) {
			rank_history_by_id(id: $id) { id }
			study_by_id(id: $id) { id }
			certificate_by_id(id: $id) { id }
			certificate_type_by_id(id: $id) { id }
			medal_by_id(id: $id) { id }
			medal_type_by_id(id: $id) { id }
			medal_type_group_by_id(id: $id) { id }
			work_history_by_id(id: $id) { id }
			related_doc_by_id(id: $id) { id }
			certificate_type_page { id }
		}`,
		map[string]interface{}{"id": missing})

	for field, value := range data {
		if field == "certificate_type_page" {
			if page := value.([]interface{}); len(page) != 0 {
				t.Errorf("certificate_type_page = %v, want empty", page)
			}
			continue
		}
		if value != nil {
			t.Errorf("%s = %v, want null", field, value)
		}
	}
	if len(data) != 10 {
		t.Errorf("got %d fields, want 10", len(data))
	}
}

func TestEntities_OwnedTypes(t *testing.T) {
	ctx, db := setup(t)

	user := personalitiesdb.User{}
	insert(t, db, &user)
	doc := personalitiesdb.RelatedDoc{Name: "contract", UserID: user.ID}
	insert(t, db, &doc)

	data := exec(t, ctx,
		`query($reps: [_Any!]!) { _entities(representations: $reps) {
			... on RelatedDocGQLModel { name }
			... on StudyGQLModel { place }
		} }`,
		map[string]interface{}{"reps": []interface{}{
			map[string]interface{}{"__typename": "RelatedDocGQLModel", "id": doc.ID.String()},
			map[string]interface{}{"__typename": "StudyGQLModel", "id": uuid.New().String()},
		}})

	want := map[string]interface{}{
		"_entities": []interface{}{map[string]interface{}{"name": "contract"}, nil},
	}
	if diff := cmp.Diff(want, data); diff != "" {
		t.Errorf("_entities mismatch (-want +got):\n%s", diff)
	}
}
