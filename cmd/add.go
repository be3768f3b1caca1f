package cmd

import (
	"fmt"

	"github.com/theirongolddev/goaltrack/internal/model"

	"github.com/spf13/cobra"
)

var addFlags goalFlags

var addCmd = &cobra.Command{
	Use:   "add",
	Short: "Create a goal",
	Example: `  goaltrack add --title "Run a 10k" --category health --end 2025-06-01 \
    --step "[x] Buy shoes" --step "Run 5k"`,
	RunE: runAdd,
}

func init() {
	addFlags.register(addCmd)
	_ = addCmd.MarkFlagRequired("title")
	rootCmd.AddCommand(addCmd)
}

func runAdd(cmd *cobra.Command, _ []string) error {
	draft, err := addFlags.apply(cmd, model.Goal{Category: model.CategoryPersonalDevelopment})
	if err != nil {
		return err
	}
	if err := draft.Validate(); err != nil {
		return err
	}

	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctrl, err := rt.controller(cmd.Context())
	if err != nil {
		return err
	}
	g, err := ctrl.Add(cmd.Context(), draft)
	if err != nil {
		return err
	}

	fmt.Printf("  Added goal %d: %s\n", g.ID, g.Title)
	return nil
}
