package cmd

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/theirongolddev/goaltrack/internal/cli"
	"github.com/theirongolddev/goaltrack/internal/model"
	"github.com/theirongolddev/goaltrack/internal/pipeline"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var (
	flagTab      string
	flagCategory string
	flagOutput   string
)

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List goals by tab and category",
	RunE:  runList,
}

func init() {
	addListFlags(listCmd)
	rootCmd.AddCommand(listCmd)
}

// addListFlags registers the list flags on both the root command and
// `list`, since the root command lists by default.
func addListFlags(c *cobra.Command) {
	c.Flags().StringVarP(&flagTab, "tab", "t", "", "Tab: all, not-started, in-progress, completed")
	c.Flags().StringVarP(&flagCategory, "category", "c", "", "Category name or slug (health, career, fun, ...)")
	c.Flags().StringVarP(&flagOutput, "output", "o", "table", "Output format: table, json, yaml")
}

// goalRecord is the machine-readable listing shape.
type goalRecord struct {
	ID        int          `json:"id" yaml:"id"`
	Title     string       `json:"title" yaml:"title"`
	Category  string       `json:"category" yaml:"category"`
	Status    string       `json:"status" yaml:"status"`
	Completed int          `json:"completed" yaml:"completed"`
	EndDate   string       `json:"endDate,omitempty" yaml:"end_date,omitempty"`
	Steps     []model.Step `json:"steps" yaml:"steps"`
}

func toRecords(goals []model.Goal) []goalRecord {
	out := make([]goalRecord, len(goals))
	for i, g := range goals {
		steps := []model.Step(g.Steps)
		if steps == nil {
			steps = []model.Step{}
		}
		out[i] = goalRecord{
			ID:        g.ID,
			Title:     g.Title,
			Category:  g.Category.String(),
			Status:    pipeline.Classify(g).String(),
			Completed: g.Completed,
			EndDate:   g.EndDate.String(),
			Steps:     steps,
		}
	}
	return out
}

func runList(cmd *cobra.Command, _ []string) error {
	rt, err := openRuntime()
	if err != nil {
		return err
	}
	defer rt.Close()

	tab, err := model.ParseTab(firstNonEmpty(flagTab, rt.cfg.General.DefaultTab))
	if err != nil {
		return err
	}
	cat, err := model.ParseCategory(firstNonEmpty(flagCategory, rt.cfg.General.DefaultCategory))
	if err != nil {
		return err
	}
	if err := checkOutput(flagOutput); err != nil {
		return err
	}

	ctrl, err := rt.loadedController(cmd.Context())
	if err != nil {
		return err
	}
	page := ctrl.Page()
	page.Category = cat
	goals := page.Visible(tab)

	switch flagOutput {
	case "json":
		return writeJSON(os.Stdout, toRecords(goals))
	case "yaml":
		return writeYAML(os.Stdout, toRecords(goals))
	}

	counts := page.Counts()
	title := fmt.Sprintf("GOALS  %s", tab)
	if cat.Concrete() {
		title += "  ·  " + cat.String()
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Printf("  %d all · %d not started · %d in progress · %d completed\n\n",
		counts[model.TabAll], counts[model.TabNotStarted],
		counts[model.TabInProgress], counts[model.TabCompleted])

	if len(goals) == 0 {
		fmt.Println("  No goals here. Add one with `goaltrack add --title ...`.")
		fmt.Println()
		return nil
	}

	fmt.Print(cli.RenderTable(goalTable(goals, time.Now())))
	fmt.Println()
	return nil
}

func goalTable(goals []model.Goal, now time.Time) cli.Table {
	rows := make([][]string, 0, len(goals))
	for _, g := range goals {
		due := cli.FormatDue(g.EndDate, now)
		overdue := !g.IsComplete() && !g.EndDate.IsZero() && cli.DaysUntil(g.EndDate, now) < 0
		rows = append(rows, []string{
			fmt.Sprintf("%d", g.ID),
			cli.Truncate(g.Title, 36),
			g.Category.String(),
			cli.RenderCompletion(g.Completed, 10),
			cli.RenderOverdue(due, overdue),
			cli.FormatSteps(g.Steps),
		})
	}
	return cli.Table{
		Headers:    []string{"ID", "Title", "Category", "Completed", "Due", "Steps"},
		Rows:       rows,
		RightAlign: []bool{true, false, false, false, false, true},
	}
}

func checkOutput(format string) error {
	switch format {
	case "table", "json", "yaml":
		return nil
	}
	return fmt.Errorf("unknown output format %q (want table, json or yaml)", format)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func writeYAML(w io.Writer, v any) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(v); err != nil {
		return err
	}
	return enc.Close()
}

func firstNonEmpty(vals ...string) string {
	for _, v := range vals {
		if v != "" {
			return v
		}
	}
	return ""
}
