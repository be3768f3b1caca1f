package cmd

import (
	"fmt"
	"time"

	"github.com/theirongolddev/goaltrack/internal/cli"
	"github.com/theirongolddev/goaltrack/internal/pipeline"

	"github.com/spf13/cobra"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Goal progress summary by status and category",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	ctrl, err := rt.loadedController(cmd.Context())
	if err != nil {
		return err
	}

	goals := ctrl.Page().Goals
	if len(goals) == 0 {
		fmt.Println("\n  No goals yet.")
		fmt.Println("  Add one with `goaltrack add --title ...`.")
		return nil
	}

	stats := pipeline.Summarize(goals, time.Now())

	fmt.Println()
	fmt.Println(cli.RenderTitle(fmt.Sprintf("GOALS  user #%d", ctrl.Page().UserID)))
	fmt.Println()

	rows := [][]string{
		{"Goals", cli.FormatNumber(int64(stats.Total))},
		{"---"},
		{"Not Started", cli.FormatNumber(int64(stats.NotStarted))},
		{"In Progress", cli.FormatNumber(int64(stats.InProgress))},
		{"Completed", cli.FormatNumber(int64(stats.Completed))},
		{"---"},
		{"Avg Completion", cli.FormatPercent(stats.AverageCompletion)},
		{"Overdue", cli.FormatNumber(int64(stats.Overdue))},
	}
	if stats.StepsTotal > 0 {
		rows = append(rows, []string{"Steps Done", cli.RenderStepProgress(stats.StepsDone, stats.StepsTotal, 10)})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Title:  "Overview",
		Rows:   rows,
		Widths: []int{16, 18},
	}))
	fmt.Println()

	if len(stats.ByCategory) == 0 {
		return nil
	}

	maxGoals := 0
	for _, cs := range stats.ByCategory {
		if cs.Goals > maxGoals {
			maxGoals = cs.Goals
		}
	}

	catRows := make([][]string, 0, len(stats.ByCategory))
	for _, cs := range stats.ByCategory {
		catRows = append(catRows, []string{
			cs.Category.String(),
			cli.FormatNumber(int64(cs.Goals)),
			cli.FormatNumber(int64(cs.Completed)),
			cli.FormatPercent(cs.AverageCompletion),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Goals", "Done", "Avg"},
		Rows:    catRows,
	}))
	fmt.Println()

	for _, cs := range stats.ByCategory {
		label := fmt.Sprintf("%-20s", cs.Category.String())
		fmt.Println(cli.RenderHorizontalBar(label, float64(cs.Goals), float64(maxGoals), 30))
	}
	fmt.Println()

	return nil
}
