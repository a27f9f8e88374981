package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/cli"
)

var userCmd = &cobra.Command{
	Use:   "user",
	Short: "Manage registered users",
}

var userAddCmd = &cobra.Command{
	Use:   "add NAME",
	Short: "Register a new user",
	Args:  cobra.ExactArgs(1),
	RunE:  runUserAdd,
}

var userListCmd = &cobra.Command{
	Use:   "list",
	Short: "List registered users and their totals",
	RunE:  runUserList,
}

func init() {
	userCmd.AddCommand(userAddCmd)
	userCmd.AddCommand(userListCmd)
	rootCmd.AddCommand(userCmd)
}

func runUserAdd(_ *cobra.Command, args []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	u, err := t.ld.AddUser(args[0])
	if err != nil {
		return err
	}
	if err := t.db.SaveUser(u); err != nil {
		return fmt.Errorf("saving user: %w", err)
	}

	if !flagQuiet {
		fmt.Printf("  Registered user %q\n", u.Name)
	}
	return nil
}

func runUserList(_ *cobra.Command, _ []string) error {
	t, err := openTracker()
	if err != nil {
		return err
	}
	defer t.Close()

	users := t.ld.Users()
	if len(users) == 0 {
		fmt.Println("\n  No users registered. Add one with `expenses user add NAME`.")
		return nil
	}

	totals := t.ld.TotalByUser()
	counts := make(map[string]int)
	for _, e := range t.ld.Expenses() {
		counts[e.User]++
	}

	rows := make([][]string, 0, len(users))
	for _, u := range users {
		rows = append(rows, []string{
			u.Name,
			cli.FormatNumber(int64(counts[u.Name])),
			cli.FormatAmount(totals[u.Name], t.currency()),
		})
	}

	fmt.Println()
	fmt.Print(cli.RenderTable(cli.Table{
		Headers: []string{"User", "Expenses", "Total"},
		Rows:    rows,
	}))
	return nil
}
