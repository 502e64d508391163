package graph

import (
	"net/http"

	"github.com/99designs/gqlgen/graphql/playground"
	"github.com/graph-gophers/graphql-go"
	"github.com/graph-gophers/graphql-go/relay"

	"gql_subgraphs/internal/database"
)

// NewHandler serves one subgraph. POST /graphql runs queries inside a
// per-request session, GET /graphql and GET / open the playground and
// /health reports liveness.
func NewHandler(title string, schema *graphql.Schema, sessions *database.SessionFactory) http.Handler {
	api := database.Middleware(sessions)(&relay.Handler{Schema: schema})
	play := playground.Handler(title, "/graphql")

	mux := http.NewServeMux()
	mux.Handle("/graphql", http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		// Serve playground on GET requests
		if r.Method == http.MethodGet {
			play.ServeHTTP(w, r)
			return
		}
		api.ServeHTTP(w, r)
	}))
	mux.Handle("GET /{$}", play)
	mux.HandleFunc("/health", healthHandler)
	return mux
}

func healthHandler(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	w.Write([]byte(`{"status":"ok"}`))
}
