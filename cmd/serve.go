package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/theirongolddev/goaltrack/internal/config"
	"github.com/theirongolddev/goaltrack/internal/devserver"
	"github.com/theirongolddev/goaltrack/internal/logging"
	"github.com/theirongolddev/goaltrack/internal/store"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagServeAddr         string
	flagServeDB           string
	flagServeOrigins      []string
	flagServeEventsBuffer int
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run a local goal service for development",
	Long: "Serve the goal REST API from a local SQLite database, with " +
		"health, metrics and event endpoints.",
	RunE: runServe,
}

func init() {
	serveCmd.Flags().StringVar(&flagServeAddr, "addr", "", "HTTP listen address (default from config, 127.0.0.1:3001)")
	serveCmd.Flags().StringVar(&flagServeDB, "db", "", "SQLite database path")
	serveCmd.Flags().StringSliceVar(&flagServeOrigins, "cors-origin", []string{"*"}, "Allowed CORS origins")
	serveCmd.Flags().IntVar(&flagServeEventsBuffer, "events-buffer", 200, "Max in-memory events retained")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	// The server always logs to stderr as well as the log file.
	log, closeLog, err := logging.New(logging.Options{
		File:    config.LogPath(cfg),
		Level:   cfg.Log.Level,
		Verbose: true,
	})
	if err != nil {
		return err
	}
	defer closeLog()

	addr := firstNonEmpty(flagServeAddr, cfg.Server.Addr)
	dbPath := firstNonEmpty(flagServeDB, config.ServerDBPath(cfg))

	st, err := store.Open(dbPath)
	if err != nil {
		return err
	}
	defer func() { _ = st.Close() }()

	svc := devserver.New(devserver.Config{
		Addr:           addr,
		AllowedOrigins: flagServeOrigins,
		EventsBuffer:   flagServeEventsBuffer,
	}, st, log.Named("devserver"))

	fmt.Printf("  goaltrack dev service listening on http://%s\n", addr)
	fmt.Printf("  Database: %s\n", dbPath)
	fmt.Printf("  Point the client at it with: goaltrack --api-url http://%s/\n", addr)

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	if err := svc.Run(ctx); err != nil && !errors.Is(err, context.Canceled) {
		log.Error("dev service stopped", zap.Error(err))
		return err
	}
	return nil
}
