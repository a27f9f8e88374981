package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/export"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
)

var exportCmd = &cobra.Command{
	Use:   "export [FILE]",
	Short: "Export expenses to a CSV file",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runExport,
}

func init() {
	rootCmd.AddCommand(exportCmd)
}

func runExport(_ *cobra.Command, args []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	expenses := t.ld.Expenses()
	if flagUser != "" {
		expenses = ledger.FilterByUser(expenses, flagUser)
	}

	path := "expenses.csv"
	if len(args) == 1 {
		path = args[0]
	} else if flagUser != "" {
		path = fmt.Sprintf("expenses-%s.csv", ledger.NormalizeUser(flagUser))
	}

	if err := export.WriteFile(path, expenses); err != nil {
		return err
	}

	if !flagQuiet {
		fmt.Printf("  Exported %d expenses to %s\n", len(expenses), path)
	}
	return nil
}
