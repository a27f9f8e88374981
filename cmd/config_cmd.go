package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/trush081/simple-expense-tracker/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show current configuration",
	RunE:  runConfig,
}

func init() {
	rootCmd.AddCommand(configCmd)
}

func runConfig(_ *cobra.Command, _ []string) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	fmt.Printf("  Config file: %s\n", config.Path())
	if config.Exists() {
		fmt.Println("  Status: loaded")
	} else {
		fmt.Println("  Status: using defaults (no config file)")
	}
	fmt.Println()

	fmt.Println("  [General]")
	if cfg.General.DefaultUser != "" {
		fmt.Printf("    Default user:     %s\n", cfg.General.DefaultUser)
	} else {
		fmt.Println("    Default user:     not set")
	}
	fmt.Printf("    Currency symbol:  %s\n", cfg.General.CurrencySymbol)
	fmt.Printf("    Default category: %s\n", cfg.General.DefaultCategory)
	if cfg.General.DefaultDays > 0 {
		fmt.Printf("    Default window:   %d days\n", cfg.General.DefaultDays)
	} else {
		fmt.Println("    Default window:   all time")
	}
	fmt.Println()

	fmt.Println("  [Database]")
	fmt.Printf("    Path: %s\n", config.DBPath(cfg))
	fmt.Println()

	fmt.Println("  [Appearance]")
	fmt.Printf("    Theme: %s\n", cfg.Appearance.Theme)
	fmt.Println()

	fmt.Println("  Run `expenses setup` to reconfigure.")
	return nil
}
