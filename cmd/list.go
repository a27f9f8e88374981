package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/cli"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
)

var flagListCategory string

var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List recorded expenses",
	RunE:  runList,
}

func init() {
	listCmd.Flags().StringVarP(&flagListCategory, "category", "c", "", "Only show this category")
	rootCmd.AddCommand(listCmd)
}

func runList(_ *cobra.Command, _ []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	expenses, _ := t.summaryWindow()
	if flagUser != "" {
		expenses = ledger.FilterByUser(expenses, flagUser)
	}
	if flagListCategory != "" {
		expenses = ledger.FilterByCategory(expenses, flagListCategory)
	}

	if len(expenses) == 0 {
		fmt.Println("\n  No expenses found.")
		return nil
	}

	rows := make([][]string, 0, len(expenses)+2)
	for _, e := range expenses {
		rows = append(rows, []string{
			cli.FormatDate(e.Date),
			e.Description,
			e.Category,
			e.User,
			cli.FormatAmount(e.Amount, t.currency()),
		})
	}
	rows = append(rows, []string{"---"})
	total := ledger.Summarize(expenses).Total
	rows = append(rows, []string{"", "", "", "TOTAL", cli.FormatAmount(total, t.currency())})

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Date", "Description", "Category", "User", "Amount"},
		Rows:    rows,
	}))
	return nil
}
