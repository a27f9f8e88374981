package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/cli"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
)

var summaryCmd = &cobra.Command{
	Use:   "summary",
	Short: "Spending summary with category and user breakdowns",
	RunE:  runSummary,
}

func init() {
	rootCmd.AddCommand(summaryCmd)
}

func runSummary(_ *cobra.Command, _ []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	if len(t.ld.Expenses()) == 0 {
		fmt.Println("\n  No expenses recorded yet.")
		fmt.Println("  Add one with `expenses add DESCRIPTION AMOUNT`.")
		return nil
	}

	expenses, days := t.summaryWindow()
	if flagUser != "" {
		expenses = ledger.FilterByUser(expenses, flagUser)
	}
	stats := ledger.Summarize(expenses)

	if stats.ExpenseCount == 0 {
		fmt.Println("\n  No expenses in the selected window.")
		return nil
	}

	title := "EXPENSE SUMMARY"
	if days > 0 {
		title = fmt.Sprintf("EXPENSE SUMMARY  Last %dd", days)
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle(title))
	fmt.Println()

	rows := [][]string{
		{"Expenses", cli.FormatNumber(int64(stats.ExpenseCount))},
		{"Users", cli.FormatNumber(int64(stats.UserCount))},
		{"Categories", cli.FormatNumber(int64(stats.Categories))},
		{"---"},
		{"Total", cli.FormatAmount(stats.Total, t.currency())},
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Metric", "Value"},
		Rows:    rows,
	}))

	// Per-category table with share
	catRows := make([][]string, 0, len(stats.ByCategory))
	for _, ct := range stats.ByCategory {
		catRows = append(catRows, []string{
			ct.Category,
			cli.FormatNumber(int64(ct.Count)),
			cli.FormatAmount(ct.Total, t.currency()),
			cli.FormatPercent(ct.SharePercent),
		})
	}
	fmt.Print(cli.RenderTable(cli.Table{
		Title:   "By Category",
		Headers: []string{"Category", "Count", "Total", "Share"},
		Rows:    catRows,
	}))

	// Category bar chart
	entries := make([]cli.BarEntry, 0, len(stats.ByCategory))
	for _, ct := range stats.ByCategory {
		entries = append(entries, cli.BarEntry{Label: ct.Category, Value: ct.Total})
	}
	fmt.Println()
	fmt.Print(cli.RenderBarChart(entries, t.currency(), 30))

	// Per-user table, unless already filtered to one user
	if flagUser == "" && stats.UserCount > 1 {
		userRows := make([][]string, 0, len(stats.ByUser))
		for _, ut := range stats.ByUser {
			userRows = append(userRows, []string{
				ut.User,
				cli.FormatNumber(int64(ut.Count)),
				cli.FormatAmount(ut.Total, t.currency()),
				cli.FormatPercent(ut.SharePercent),
			})
		}
		fmt.Println()
		fmt.Print(cli.RenderTable(cli.Table{
			Title:   "By User",
			Headers: []string{"User", "Count", "Total", "Share"},
			Rows:    userRows,
		}))
	}

	return nil
}
