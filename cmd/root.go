// Package cmd implements the goaltrack CLI commands.
package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/theirongolddev/goaltrack/internal/config"
	"github.com/theirongolddev/goaltrack/internal/goalsapi"
	"github.com/theirongolddev/goaltrack/internal/logging"
	"github.com/theirongolddev/goaltrack/internal/session"
	"github.com/theirongolddev/goaltrack/internal/store"
	"github.com/theirongolddev/goaltrack/internal/tracker"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var (
	flagAPIURL  string
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:           "goaltrack",
	Short:         "Goal tracking from the terminal",
	Long:          "Track goals by status and category against a goal service.",
	RunE:          runList,
	SilenceUsage:  true,
	SilenceErrors: true,
}

// Execute is the main entry point called from main.go.
func Execute() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		if errors.Is(err, session.ErrNoSession) {
			fmt.Fprintln(os.Stderr, "  Run `goaltrack login --user <id>` first.")
		}
		stop()
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagAPIURL, "api-url", "", "Goal service root URL (overrides config and GOALTRACK_ENV)")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Debug logging to stderr")

	addListFlags(rootCmd)
}

// runtime bundles what a command needs: config, logger, local store and
// the Goal Service client. Commands close it when done.
type runtime struct {
	cfg    config.Config
	log    *zap.Logger
	store  *store.Store
	client *goalsapi.Client

	closeLog func()
}

// openRuntime loads config and wires the logger, local store and client.
func openRuntime() (*runtime, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	log, closeLog, err := logging.New(logging.Options{
		File:    config.LogPath(cfg),
		Level:   cfg.Log.Level,
		Verbose: flagVerbose,
	})
	if err != nil {
		return nil, err
	}

	rt := &runtime{cfg: cfg, log: log, closeLog: closeLog}

	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.store = st

	baseURL, err := config.BaseURL(cfg, flagAPIURL)
	if err != nil {
		rt.Close()
		return nil, err
	}
	client, err := goalsapi.NewClient(baseURL, goalsapi.WithLogger(log))
	if err != nil {
		rt.Close()
		return nil, err
	}
	rt.client = client

	log.Debug("runtime ready",
		zap.String("api", baseURL),
		zap.String("env", config.Environment(cfg)),
		zap.String("db", config.DBPath(cfg)),
	)
	return rt, nil
}

// Close releases the store and flushes the log.
func (rt *runtime) Close() {
	if rt.store != nil {
		_ = rt.store.Close()
	}
	if rt.closeLog != nil {
		rt.closeLog()
	}
}

// controller bootstraps the session and returns a controller for the
// logged-in user. A missing session surfaces as session.ErrNoSession.
func (rt *runtime) controller(ctx context.Context) (*tracker.Controller, error) {
	userID, err := session.Bootstrap(ctx, rt.store)
	if err != nil {
		return nil, err
	}
	return tracker.NewController(rt.client, tracker.NewPage(userID), rt.log), nil
}

// loadedController is controller followed by an initial Load.
func (rt *runtime) loadedController(ctx context.Context) (*tracker.Controller, error) {
	ctrl, err := rt.controller(ctx)
	if err != nil {
		return nil, err
	}
	if err := ctrl.Load(ctx); err != nil {
		return nil, err
	}
	return ctrl, nil
}
