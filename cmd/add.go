package cmd

import (
	"errors"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/cli"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
	"github.com/trush081/simple-expense-tracker/internal/model"
)

var (
	flagAddCategory string
	flagAddDate     string
)

var addCmd = &cobra.Command{
	Use:   "add DESCRIPTION AMOUNT",
	Short: "Record a new expense",
	Args:  cobra.ExactArgs(2),
	RunE:  runAdd,
}

func init() {
	addCmd.Flags().StringVarP(&flagAddCategory, "category", "c", "", "Expense category (default from config)")
	addCmd.Flags().StringVar(&flagAddDate, "date", "", "Expense date, YYYY-MM-DD (default: today)")
	rootCmd.AddCommand(addCmd)
}

func runAdd(_ *cobra.Command, args []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	user := t.username()
	if user == "" {
		return errors.New("no user selected — pass --user or set default_user via `expenses setup`")
	}

	amount, err := decimal.NewFromString(args[1])
	if err != nil {
		return fmt.Errorf("invalid amount %q: %w", args[1], err)
	}

	category := flagAddCategory
	if category == "" {
		category = t.cfg.General.DefaultCategory
	}

	date := time.Now()
	if flagAddDate != "" {
		date, err = time.ParseInLocation("2006-01-02", flagAddDate, time.Local)
		if err != nil {
			return fmt.Errorf("invalid date %q (want YYYY-MM-DD): %w", flagAddDate, err)
		}
	}

	e, err := t.ld.AddExpense(args[0], amount, category, user, date)
	if err != nil {
		if errors.Is(err, ledger.ErrUnknownUser) {
			return fmt.Errorf("%w — register with `expenses user add %s`", err, user)
		}
		return err
	}
	if err := t.db.SaveExpense(e); err != nil {
		return fmt.Errorf("saving expense: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Added %s  %s  (%s, %s)\n",
			cli.FormatAmount(e.Amount, t.currency()), e.Description, e.Category, e.User)
	}

	printBudgetWarnings(t, e)
	return nil
}

// printBudgetWarnings reports budgets the new expense counts against,
// flagging any that are now over their limit.
func printBudgetWarnings(t *tracker, e model.Expense) {
	targets := []model.BudgetTarget{
		{Kind: model.TargetUser, Name: e.User},
		{Kind: model.TargetCategory, Name: e.Category},
	}

	for _, target := range targets {
		st, err := t.ld.CheckBudget(target)
		if err != nil {
			continue // no budget set for this target
		}
		if st.Over {
			fmt.Printf("  %s\n", cli.OverBudget(fmt.Sprintf(
				"Budget exceeded for %s %q: spent %s of %s (%s over)",
				target.Kind, target.Name,
				cli.FormatAmount(st.Spent, t.currency()),
				cli.FormatAmount(st.Limit, t.currency()),
				cli.FormatAmount(st.Remaining.Neg(), t.currency()),
			)))
		} else if !flagQuiet {
			fmt.Printf("  %s\n", cli.Muted(fmt.Sprintf(
				"%s %q budget: %s remaining of %s",
				target.Kind, target.Name,
				cli.FormatAmount(st.Remaining, t.currency()),
				cli.FormatAmount(st.Limit, t.currency()),
			)))
		}
	}
}
