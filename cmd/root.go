// Package cmd is the command line of the subgraph binary.
package cmd

import (
	"fmt"
	"os"
	"sort"
	"strings"

	_ "github.com/joho/godotenv/autoload"
	"github.com/spf13/cobra"

	"gql_subgraphs/graph"
	"gql_subgraphs/graph/forms"
	"gql_subgraphs/graph/personalities"
	"gql_subgraphs/graph/publications"
	"gql_subgraphs/internal/config"
)

// cfg is read once the autoload import has applied .env.
var cfg = config.Load()

// subgraphs are the domains a process can serve, by name.
var subgraphs = map[string]graph.Subgraph{
	forms.Subgraph.Name:         forms.Subgraph,
	personalities.Subgraph.Name: personalities.Subgraph,
	publications.Subgraph.Name:  publications.Subgraph,
}

var rootCmd = &cobra.Command{
	Use:   "subgraph",
	Short: "Federated GraphQL subgraphs over PostgreSQL",
	Long: `Serves one of the forms, personalities or publications subgraphs.

Connection settings come from POSTGRES_USER, POSTGRES_PASSWORD, POSTGRES_DB
and POSTGRES_HOST; a .env file in the working directory is loaded first.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().BoolVar(&cfg.DropTables, "drop", cfg.DropTables, "Drop all tables of the domain at startup (dev/test only)")
	rootCmd.PersistentFlags().BoolVar(&cfg.CreateTables, "create", cfg.CreateTables, "Create missing tables of the domain at startup")
}

// lookupSubgraph returns the subgraph registered under name.
func lookupSubgraph(name string) (graph.Subgraph, error) {
	sub, ok := subgraphs[name]
	if !ok {
		return graph.Subgraph{}, fmt.Errorf("unknown subgraph %q (expected one of %s)", name, strings.Join(subgraphNames(), ", "))
	}
	return sub, nil
}

func subgraphNames() []string {
	names := make([]string, 0, len(subgraphs))
	for name := range subgraphs {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
