package cmd

import (
	"context"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"gql_subgraphs/graph"
	"gql_subgraphs/internal/database"
)

var serveCmd = &cobra.Command{
	Use:   "serve <forms|personalities|publications>",
	Short: "Start the subgraph server",
	Long: `Start an HTTP server that serves one subgraph.

The server exposes:
  - GraphQL endpoint at /graphql (POST)
  - GraphQL Playground at /graphql and / (GET)
  - Liveness at /health

Examples:
  # Serve the forms subgraph on the default port 8000
  subgraph serve forms

  # Recreate the tables and serve on a custom port
  subgraph serve publications --drop --port 3000`,
	Args: cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		sub, err := lookupSubgraph(args[0])
		if err != nil {
			return err
		}
		return runServer(sub)
	},
}

// bootstrap opens the database for sub, dropping and creating its tables
// as configured.
func bootstrap(ctx context.Context, sub graph.Subgraph) (*database.SessionFactory, error) {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	sessions, err := database.StartEngine(ctx, cfg.Postgres.ConnectionString(),
		cfg.DropTables, cfg.CreateTables, sub.Models, database.WithLogLevel(cfg.LogLevel))
	if err != nil {
		return nil, fmt.Errorf("failed to start %s database: %w", sub.Name, err)
	}
	return sessions, nil
}

// newServer binds the schema of sub and mounts it on an HTTP server. A nil
// sessions serves the schema without a database.
func newServer(sub graph.Subgraph, sessions *database.SessionFactory) (*http.Server, error) {
	schema, err := sub.Schema()
	if err != nil {
		return nil, fmt.Errorf("failed to build %s schema: %w", sub.Name, err)
	}

	return &http.Server{
		Addr:         ":" + cfg.Port,
		Handler:      graph.NewHandler(sub.Name, schema, sessions),
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 15 * time.Second,
		IdleTimeout:  60 * time.Second,
	}, nil
}

func runServer(sub graph.Subgraph) error {
	// Set up signal handling with context
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	sessions, err := bootstrap(ctx, sub)
	if err != nil {
		return err
	}
	defer sessions.Close()

	server, err := newServer(sub, sessions)
	if err != nil {
		return err
	}

	// Channel to listen for server errors
	serverErr := make(chan error, 1)

	go func() {
		log.Printf("Serving %s subgraph at http://localhost:%s/graphql", sub.Name, cfg.Port)
		serverErr <- server.ListenAndServe()
	}()

	// Wait for shutdown signal or server error
	select {
	case err := <-serverErr:
		if err != http.ErrServerClosed {
			return fmt.Errorf("server error: %w", err)
		}
	case <-ctx.Done():
		log.Println("Shutting down...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()

		if err := server.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("graceful shutdown failed: %w", err)
		}
		log.Println("Server stopped")
	}

	return nil
}

func init() {
	serveCmd.Flags().StringVarP(&cfg.Port, "port", "p", cfg.Port, "Port to listen on")
	rootCmd.AddCommand(serveCmd)
}
