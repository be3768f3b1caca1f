package cmd

import (
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var editFlags goalFlags

var editCmd = &cobra.Command{
	Use:     "edit ID",
	Short:   "Update a goal",
	Example: `  goaltrack edit 42 --completed 60 --end 2025-07-01`,
	Args:    cobra.ExactArgs(1),
	RunE:    runEdit,
}

func init() {
	editFlags.register(editCmd)
	rootCmd.AddCommand(editCmd)
}

func runEdit(cmd *cobra.Command, args []string) error {
	id, err := parseGoalID(args[0])
	if err != nil {
		return err
	}
	if !editFlags.any(cmd) {
		return fmt.Errorf("nothing to change; pass at least one of --title, --category, --completed, --end, --step")
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	// PUT carries the full record, so start from the current one.
	ctrl, err := rt.loadedController(cmd.Context())
	if err != nil {
		return err
	}
	current, ok := pipeline.FindByID(ctrl.Page().Goals, id)
	if !ok {
		return fmt.Errorf("goal %d not found", id)
	}

	updated, err := editFlags.apply(cmd, current)
	if err != nil {
		return err
	}
	g, err := ctrl.Edit(cmd.Context(), updated)
	if err != nil {
		return err
	}

	fmt.Printf("  Saved goal %d: %s (%d%%)\n", g.ID, g.Title, g.Completed)
	return nil
}
