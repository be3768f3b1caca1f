package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/config"
	"github.com/theirongolddev/goaltrack/internal/session"
	"github.com/theirongolddev/goaltrack/internal/store"

	"github.com/spf13/cobra"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(cmd *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.ConfigPath())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [API]")
	fmt.Printf("    Environment: %s\n", orDefault(config.Environment(cfg), "development"))
	if host := config.GetProdHost(cfg); host != "" {
		fmt.Printf("    Prod host:   %s\n", host)
	}
	if u, err := config.BaseURL(cfg, flagAPIURL); err != nil {
		fmt.Printf("    Endpoint:    error: %v\n", err)
	} else {
		fmt.Printf("    Endpoint:    %s\n", u)
	}
	fmt.Println()

	fmt.Println("  [General]")
	fmt.Printf("    Default tab:      %s\n", orDefault(cfg.General.DefaultTab, "all"))
	fmt.Printf("    Default category: %s\n", orDefault(cfg.General.DefaultCategory, "all"))
	fmt.Printf("    Database:         %s\n", config.DBPath(cfg))
	fmt.Printf("    Session:          %s\n", sessionStatus(cmd.Context(), cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  [Log]")
	fmt.Printf("    File:  %s\n", config.LogPath(cfg))
	fmt.Printf("    Level: %s\n", cfg.Log.Level)
	fmt.Println()

	fmt.Println("  [Server]")
	fmt.Printf("    Addr:     %s\n", cfg.Server.Addr)
	fmt.Printf("    Database: %s\n", config.ServerDBPath(cfg))
	fmt.Println()

	fmt.Println("  Run `goaltrack setup` to reconfigure.")
	return nil
}

func sessionStatus(ctx context.Context, cfg config.Config) string {
	st, err := store.Open(config.DBPath(cfg))
	if err != nil {
		return "unavailable (" + err.Error() + ")"
	}
	defer func() { _ = st.Close() }()

	u, err := session.Load(ctx, st)
	switch {
	case errors.Is(err, session.ErrNoSession):
		return "not logged in"
	case err != nil:
		return "error: " + err.Error()
	case u.Name != "":
		return fmt.Sprintf("user %d (%s)", u.ID, u.Name)
	}
	return fmt.Sprintf("user %d", u.ID)
}

func orDefault(s, def string) string {
	if s == "" {
		return def
	}
	return s
}
