package cmd

import (
	"context"
	"fmt"
	"log"

	"github.com/spf13/cobra"

	"gql_subgraphs/graph"
)

var schemaCmd = &cobra.Command{
	Use:   "schema <forms|personalities|publications>",
	Short: "Create (or with --drop, recreate) the tables of a subgraph and exit",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := lookupSubgraph(args[0])
		if err != nil {
			return err
		}

		sessions, err := bootstrap(cmd.Context(), sub)
		if err != nil {
			return err
		}
		defer sessions.Close()

		log.Printf("Tables of the %s subgraph are ready", sub.Name)
		return nil
	},
}

var sdlCmd = &cobra.Command{
	Use:   "sdl <forms|personalities|publications>",
	Short: "Print the SDL a subgraph reports to the gateway",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := lookupSubgraph(args[0])
		if err != nil {
			return err
		}
		sdl, err := printSDL(cmd.Context(), sub)
		if err != nil {
			return err
		}
		fmt.Fprint(cmd.OutOrStdout(), sdl)
		return nil
	},
}

// printSDL asks the subgraph's own schema for _service.sdl. No database is
// needed.
func printSDL(ctx context.Context, sub graph.Subgraph) (string, error) {
	if ctx == nil {
		ctx = context.Background()
	}
	schema, err := sub.Schema()
	if err != nil {
		return "", fmt.Errorf("failed to build %s schema: %w", sub.Name, err)
	}

	var result struct {
		Service struct {
			SDL string `json:"sdl"`
		} `json:"_service"`
	}
	if err := graph.Query(ctx, schema, `{ _service { sdl } }`, nil, &result); err != nil {
		return "", err
	}
	return result.Service.SDL, nil
}

func init() {
	rootCmd.AddCommand(schemaCmd)
	rootCmd.AddCommand(sdlCmd)
}
