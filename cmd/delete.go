package cmd

import (
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/pipeline"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"
)

var flagYes bool

var deleteCmd = &cobra.Command{
	Use:     "delete ID",
	Aliases: []string{"rm"},
	Short:   "Delete a goal",
	Args:    cobra.ExactArgs(1),
	RunE:    runDelete,
}

func init() {
	deleteCmd.Flags().BoolVarP(&flagYes, "yes", "y", false, "Skip the confirmation prompt")
	rootCmd.AddCommand(deleteCmd)
}

func runDelete(cmd *cobra.Command, args []string) error {
	id, err := parseGoalID(args[0])
	if err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctrl, err := rt.loadedController(cmd.Context())
	if err != nil {
		return err
	}
	g, ok := pipeline.FindByID(ctrl.Page().Goals, id)
	if !ok {
		return fmt.Errorf("goal %d not found", id)
	}

	if !flagYes {
		confirm := false
		err := huh.NewConfirm().
			Title(fmt.Sprintf("Delete %q?", g.Title)).
			Affirmative("Delete").
			Negative("Keep").
			Value(&confirm).
			Run()
		if err != nil {
			return err
		}
		if !confirm {
			fmt.Println("  Kept.")
			return nil
		}
	}

	if err := ctrl.Delete(cmd.Context(), id); err != nil {
		return err
	}
	fmt.Printf("  Deleted goal %d: %s\n", id, g.Title)
	return nil
}
