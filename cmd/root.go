// Package cmd implements the expenses CLI commands.
package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/trush081/simple-expense-tracker/internal/config"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
	"github.com/trush081/simple-expense-tracker/internal/logging"
	"github.com/trush081/simple-expense-tracker/internal/model"
	"github.com/trush081/simple-expense-tracker/internal/store"

	"github.com/spf13/cobra"
)

var (
	flagDB      string
	flagUser    string
	flagDays    int
	flagQuiet   bool
	flagVerbose bool
)

var rootCmd = &cobra.Command{
	Use:   "expenses",
	Short: "Simple Expense Tracker",
	Long:  "Track expenses, budgets, and spending summaries from the command line.",
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logging.Setup(flagVerbose)
	},
	RunE: runSummary,
}

// Execute is the main entry point called from main.go.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&flagDB, "db", "d", "", "Database file (default: XDG data dir)")
	rootCmd.PersistentFlags().StringVarP(&flagUser, "user", "u", "", "Act as this user (default: config default_user)")
	rootCmd.PersistentFlags().IntVarP(&flagDays, "days", "n", -1, "Limit summaries to the last N days (0 = all time)")
	rootCmd.PersistentFlags().BoolVarP(&flagQuiet, "quiet", "q", false, "Suppress informational output")
	rootCmd.PersistentFlags().BoolVarP(&flagVerbose, "verbose", "v", false, "Enable debug logging")
}

// tracker bundles the open database and the ledger loaded from it.
// It is the shared open path used by all commands.
type tracker struct {
	cfg config.Config
	db  *store.DB
	ld  *ledger.Store
}

func openTracker() (*tracker, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	dbPath := flagDB
	if dbPath == "" {
		dbPath = config.DBPath(cfg)
	}

	db, err := store.Open(dbPath)
	if err != nil {
		return nil, err
	}

	ld, err := db.Load()
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("loading ledger: %w", err)
	}

	return &tracker{cfg: cfg, db: db, ld: ld}, nil
}

func (t *tracker) Close() {
	_ = t.db.Close()
}

// username resolves the acting user: --user flag, then config default.
func (t *tracker) username() string {
	if flagUser != "" {
		return ledger.NormalizeUser(flagUser)
	}
	return ledger.NormalizeUser(t.cfg.General.DefaultUser)
}

func (t *tracker) currency() string {
	if t.cfg.General.CurrencySymbol != "" {
		return t.cfg.General.CurrencySymbol
	}
	return "$"
}

// summaryWindow returns the expenses visible under the --days filter
// (or the configured default window when the flag is unset).
func (t *tracker) summaryWindow() ([]model.Expense, int) {
	days := flagDays
	if days < 0 {
		days = t.cfg.General.DefaultDays
	}
	expenses := t.ld.Expenses()
	if days <= 0 {
		return expenses, 0
	}
	since := time.Now().AddDate(0, 0, -days)
	return ledger.FilterSince(expenses, since), days
}
