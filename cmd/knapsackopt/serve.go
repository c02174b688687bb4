package main

import (
	"context"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/cwbudde/knapsackopt/internal/server"
	"github.com/cwbudde/knapsackopt/internal/store"
)

var (
	serveAddr    string
	serveDataDir string
	serveNoStore bool
	serveParams  = defaultEngineParams()
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Serves the optimization engines over HTTP. Jobs are created via
POST /api/v1/jobs and stream their progress over SSE; results and
convergence traces are persisted under --data-dir.`,
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveAddr, "addr", ":8080", "Listen address")
	serveCmd.Flags().StringVar(&serveDataDir, "data-dir", "./data", "Base directory for persisted results")
	serveCmd.Flags().BoolVar(&serveNoStore, "no-store", false, "Keep results in memory only")
	addEngineFlags(serveCmd, &serveParams)

	rootCmd.AddCommand(serveCmd)
}

func runServe(cmd *cobra.Command, args []string) error {
	registry, err := newRegistry(serveParams)
	if err != nil {
		return err
	}

	var resultStore *store.FSStore
	if !serveNoStore {
		resultStore, err = store.NewFSStore(serveDataDir)
		if err != nil {
			return fmt.Errorf("failed to create result store: %w", err)
		}
	}

	srv := server.NewServer(serveAddr, registry, resultStore)

	errCh := make(chan error, 1)
	go func() {
		if err := srv.Start(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case sig := <-sigCh:
		fmt.Printf("Received %s, shutting down\n", sig)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}
