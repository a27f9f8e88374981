// Package store persists ledger data in a local SQLite database. The
// in-memory ledger stays authoritative; every successful write is mirrored
// here and the full ledger is rebuilt from disk at startup.
package store

import (
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trush081/simple-expense-tracker/internal/ledger"
	"github.com/trush081/simple-expense-tracker/internal/model"

	_ "modernc.org/sqlite" // register sqlite driver
)

// dateLayout is how expense dates are stored; undated expenses store "".
const dateLayout = "2006-01-02"

// DB wraps the SQLite connection.
type DB struct {
	db *sql.DB
}

// Open opens or creates the database at the given path.
func Open(dbPath string) (*DB, error) {
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o750); err != nil {
		return nil, fmt.Errorf("creating data dir: %w", err)
	}

	db, err := sql.Open("sqlite", dbPath+"?_pragma=journal_mode(wal)&_pragma=synchronous(normal)&_pragma=foreign_keys(on)")
	if err != nil {
		return nil, fmt.Errorf("opening db: %w", err)
	}

	if _, err := db.Exec(schemaSQL); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("creating schema: %w", err)
	}

	slog.Debug("database opened", "path", dbPath)
	return &DB{db: db}, nil
}

// Close closes the database.
func (d *DB) Close() error {
	return d.db.Close()
}

// SaveUser persists a registered user.
func (d *DB) SaveUser(u model.User) error {
	_, err := d.db.Exec("INSERT OR REPLACE INTO users (name) VALUES (?)", u.Name)
	return err
}

// SaveExpense appends an expense record.
func (d *DB) SaveExpense(e model.Expense) error {
	date := ""
	if !e.Date.IsZero() {
		date = e.Date.Format(dateLayout)
	}
	_, err := d.db.Exec(`INSERT INTO expenses (description, amount, category, user_name, date)
		VALUES (?, ?, ?, ?, ?)`,
		e.Description, e.Amount.String(), e.Category, e.User, date,
	)
	return err
}

// SaveBudget persists a budget, overwriting any existing one for the target.
func (d *DB) SaveBudget(b model.Budget) error {
	_, err := d.db.Exec(`INSERT OR REPLACE INTO budgets (kind, name, spend_limit)
		VALUES (?, ?, ?)`,
		string(b.Target.Kind), b.Target.Name, b.Limit.String(),
	)
	return err
}

// Load rebuilds the full in-memory ledger from disk. Rows that fail the
// ledger's own validation (which should not happen for data we wrote) are
// reported as errors rather than silently dropped.
func (d *DB) Load() (*ledger.Store, error) {
	ld := ledger.New()

	rows, err := d.db.Query("SELECT name FROM users ORDER BY name")
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()

	for rows.Next() {
		var name string
		if err := rows.Scan(&name); err != nil {
			return nil, err
		}
		if _, err := ld.AddUser(name); err != nil {
			return nil, fmt.Errorf("loading user %q: %w", name, err)
		}
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	expRows, err := d.db.Query(`SELECT description, amount, category, user_name, date
		FROM expenses ORDER BY id`)
	if err != nil {
		return nil, err
	}
	defer func() { _ = expRows.Close() }()

	count := 0
	for expRows.Next() {
		var desc, amountStr, category, user string
		var dateStr sql.NullString
		if err := expRows.Scan(&desc, &amountStr, &category, &user, &dateStr); err != nil {
			return nil, err
		}

		amount, err := decimal.NewFromString(amountStr)
		if err != nil {
			return nil, fmt.Errorf("bad amount %q in expenses table: %w", amountStr, err)
		}

		var date time.Time
		if dateStr.Valid && dateStr.String != "" {
			date, err = time.ParseInLocation(dateLayout, dateStr.String, time.Local)
			if err != nil {
				return nil, fmt.Errorf("bad date %q in expenses table: %w", dateStr.String, err)
			}
		}

		if _, err := ld.AddExpense(desc, amount, category, user, date); err != nil {
			return nil, fmt.Errorf("loading expense %q: %w", desc, err)
		}
		count++
	}
	if err := expRows.Err(); err != nil {
		return nil, err
	}

	budgetRows, err := d.db.Query("SELECT kind, name, spend_limit FROM budgets")
	if err != nil {
		return nil, err
	}
	defer func() { _ = budgetRows.Close() }()

	for budgetRows.Next() {
		var kind, name, limitStr string
		if err := budgetRows.Scan(&kind, &name, &limitStr); err != nil {
			return nil, err
		}
		limit, err := decimal.NewFromString(limitStr)
		if err != nil {
			return nil, fmt.Errorf("bad limit %q in budgets table: %w", limitStr, err)
		}
		target := model.BudgetTarget{Kind: model.TargetKind(kind), Name: name}
		if _, err := ld.SetBudget(target, limit); err != nil {
			return nil, fmt.Errorf("loading budget for %s %q: %w", kind, name, err)
		}
	}
	if err := budgetRows.Err(); err != nil {
		return nil, err
	}

	slog.Debug("ledger loaded", "users", len(ld.Users()), "expenses", count, "budgets", len(ld.Budgets()))
	return ld, nil
}

// ExpenseCount returns the number of stored expenses.
func (d *DB) ExpenseCount() (int, error) {
	var count int
	err := d.db.QueryRow("SELECT COUNT(*) FROM expenses").Scan(&count)
	return count, err
}
