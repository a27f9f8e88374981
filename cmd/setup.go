package cmd

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/config"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
)

var setupCmd = &cobra.Command{
	Use:   "setup",
	Short: "First-time setup wizard",
	RunE:  runSetup,
}

func init() {
	rootCmd.AddCommand(setupCmd)
}

func runSetup(_ *cobra.Command, _ []string) error {
	reader := bufio.NewReader(os.Stdin)

	// Load existing config or defaults
	cfg, _ := config.Load()

	fmt.Println()
	fmt.Println("  Welcome to Simple Expense Tracker!")
	fmt.Println()

	// 1. Default user
	fmt.Println("  1. Default user")
	fmt.Println("     Expenses are recorded under this name unless --user is given.")
	if cfg.General.DefaultUser != "" {
		fmt.Printf("     Current: %s\n", cfg.General.DefaultUser)
	}
	fmt.Print("     > ")
	name, _ := reader.ReadString('\n')
	name = ledger.NormalizeUser(name)
	if name != "" {
		cfg.General.DefaultUser = name
	}
	fmt.Println()

	// 2. Currency symbol
	fmt.Println("  2. Currency symbol")
	fmt.Printf("     Current: %s (press Enter to keep)\n", cfg.General.CurrencySymbol)
	fmt.Print("     > ")
	symbol, _ := reader.ReadString('\n')
	symbol = strings.TrimSpace(symbol)
	if symbol != "" {
		cfg.General.CurrencySymbol = symbol
	}
	fmt.Println()

	// 3. Default summary window
	fmt.Println("  3. Default summary window")
	fmt.Println("     (1) All time [default]")
	fmt.Println("     (2) 30 days")
	fmt.Println("     (3) 90 days")
	fmt.Print("     > ")
	choice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(choice) {
	case "2":
		cfg.General.DefaultDays = 30
	case "3":
		cfg.General.DefaultDays = 90
	default:
		cfg.General.DefaultDays = 0
	}
	fmt.Println()

	// 4. Theme
	fmt.Println("  4. Color theme")
	fmt.Println("     (1) Flexoki Dark [default]")
	fmt.Println("     (2) Terminal (ANSI 16)")
	fmt.Print("     > ")
	themeChoice, _ := reader.ReadString('\n')
	switch strings.TrimSpace(themeChoice) {
	case "2":
		cfg.Appearance.Theme = "terminal"
	default:
		cfg.Appearance.Theme = "flexoki-dark"
	}

	// Save
	if err := config.Save(cfg); err != nil {
		return fmt.Errorf("saving config: %w", err)
	}

	// Register the default user so the first `expenses add` just works.
	if cfg.General.DefaultUser != "" {
		if t, err := openTracker(); err == nil {
			if u, err := t.ld.AddUser(cfg.General.DefaultUser); err == nil {
				_ = t.db.SaveUser(u)
				fmt.Printf("\n  Registered user %q\n", u.Name)
			}
			t.Close()
		}
	}

	fmt.Println()
	fmt.Printf("  Saved to %s\n", config.Path())
	fmt.Println("  Run `expenses setup` anytime to reconfigure.")
	fmt.Println()

	return nil
}
