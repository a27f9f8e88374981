package cmd

import (
	"fmt"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/cli"
	"github.com/trush081/simple-expense-tracker/internal/model"
)

var flagBudgetUser bool

var budgetCmd = &cobra.Command{
	Use:   "budget",
	Short: "Manage spending budgets",
}

var budgetSetCmd = &cobra.Command{
	Use:   "set TARGET LIMIT",
	Short: "Set or overwrite a budget for a category (or a user with --for-user)",
	Args:  cobra.ExactArgs(2),
	RunE:  runBudgetSet,
}

var budgetStatusCmd = &cobra.Command{
	Use:   "status [TARGET]",
	Short: "Show spending against budgets",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runBudgetStatus,
}

func init() {
	budgetSetCmd.Flags().BoolVar(&flagBudgetUser, "for-user", false, "Target is a user, not a category")
	budgetStatusCmd.Flags().BoolVar(&flagBudgetUser, "for-user", false, "Target is a user, not a category")
	budgetCmd.AddCommand(budgetSetCmd)
	budgetCmd.AddCommand(budgetStatusCmd)
	rootCmd.AddCommand(budgetCmd)
}

func budgetTarget(name string) model.BudgetTarget {
	kind := model.TargetCategory
	if flagBudgetUser {
		kind = model.TargetUser
	}
	return model.BudgetTarget{Kind: kind, Name: name}
}

func runBudgetSet(_ *cobra.Command, args []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	limit, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid limit %q: %w", args[1], err)
	}

	b, err := t.ld.SetBudget(budgetTarget(args[0]), limit)
	if err != nil {
		return err
	}
	if err := t.db.SaveBudget(b); err != nil {
		return fmt.Errorf("saving budget: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Budget for %s %q set to %s\n",
			b.Target.Kind, b.Target.Name, cli.FormatAmount(b.Limit, t.currency()))
	}
	return nil
}

func runBudgetStatus(_ *cobra.Command, args []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	// Single target: detailed view.
	if len(args) == 1 {
		st, err := t.ld.CheckBudget(budgetTarget(args[0]))
		if err != nil {
			return err
		}
		printBudgetStatus(t, st)
		return nil
	}

	budgets := t.ld.Budgets()
	if len(budgets) == 0 {
		fmt.Println("\n  No budgets set. Add one with `expenses budget set TARGET LIMIT`.")
		return nil
	}

	fmt.Println()
	fmt.Println(cli.RenderTitle("BUDGETS"))
	fmt.Println()

	rows := make([][]string, 0, len(budgets))
	for _, b := range budgets {
		st, err := t.ld.CheckBudget(b.Target)
		if err != nil {
			return err
		}
		state := "ok"
		if st.Over {
			state = "OVER"
		}
		rows = append(rows, []string{
			fmt.Sprintf("%s %s", b.Target.Kind, b.Target.Name),
			cli.FormatAmount(st.Spent, t.currency()),
			cli.FormatAmount(st.Limit, t.currency()),
			cli.FormatAmount(st.Remaining, t.currency()),
			cli.RenderBudgetBar(st.Spent, st.Limit, 20),
			state,
		})
	}

	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"Target", "Spent", "Limit", "Remaining", "Usage", ""},
		Rows:    rows,
	}))
	return nil
}

func printBudgetStatus(t *tracker, st model.BudgetStatus) {
	fmt.Println()
	fmt.Printf("  Budget for %s %q\n\n", st.Target.Kind, st.Target.Name)
	fmt.Printf("  Limit:     %s\n", cli.FormatAmount(st.Limit, t.currency()))
	fmt.Printf("  Spent:     %s\n", cli.FormatAmount(st.Spent, t.currency()))
	fmt.Printf("  Remaining: %s\n", cli.FormatAmount(st.Remaining, t.currency()))
	fmt.Printf("  %s\n", cli.RenderBudgetBar(st.Spent, st.Limit, 40))
	if st.Over {
		fmt.Printf("\n  %s\n", cli.OverBudget(fmt.Sprintf(
			"Over budget by %s", cli.FormatAmount(st.Remaining.Neg(), t.currency()))))
	}
	fmt.Println()
}
