package cmd

import (
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/tui"
	"github.com/theirongolddev/goaltrack/internal/tui/theme"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"
	"github.com/spf13/cobra"
)

var flagTUIUser int

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive goal dashboard",
	RunE:  runTUI,
}

func init() {
	tuiCmd.Flags().IntVar(&flagTUIUser, "user", 0, "Open this user's goals without touching the stored session")
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(_ *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	theme.SetActive(rt.cfg.Appearance.Theme)

	// Force TrueColor profile so all background styling produces ANSI codes
	// Without this, lipgloss may default to Ascii profile (no colors)
	lipgloss.SetColorProfile(termenv.TrueColor)

	// Bad preferences in the config fall back to the defaults.
	cat, _ := model.ParseCategory(rt.cfg.General.DefaultCategory)
	tab, _ := model.ParseTab(rt.cfg.General.DefaultTab)

	app := tui.NewApp(tui.Options{
		Service:  rt.client,
		Sessions: rt.store,
		Logger:   rt.log,
		UserID:   flagTUIUser,
		Category: cat,
		Tab:      tab,
		Endpoint: rt.client.BaseURL(),
	})
	p := tea.NewProgram(app, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}

	return nil
}
