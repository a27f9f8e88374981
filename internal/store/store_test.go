package store

import (
	"path/filepath"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trush081/simple-expense-tracker/internal/model"
)

func openTemp(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "expenses.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { _ = db.Close() })
	return db
}

func mustDec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatal(err)
	}
	return d
}

func TestRoundTrip(t *testing.T) {
	db := openTemp(t)

	if err := db.SaveUser(model.User{Name: "alice"}); err != nil {
		t.Fatalf("SaveUser: %v", err)
	}

	date := time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local)
	e := model.Expense{
		Description: "coffee",
		Amount:      mustDec(t, "3.50"),
		Category:    "food",
		User:        "alice",
		Date:        date,
	}
	if err := db.SaveExpense(e); err != nil {
		t.Fatalf("SaveExpense: %v", err)
	}

	b := model.Budget{
		Target: model.BudgetTarget{Kind: model.TargetCategory, Name: "food"},
		Limit:  mustDec(t, "100"),
	}
	if err := db.SaveBudget(b); err != nil {
		t.Fatalf("SaveBudget: %v", err)
	}

	ld, err := db.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}

	if !ld.HasUser("alice") {
		t.Error("alice missing after reload")
	}

	expenses := ld.Expenses()
	if len(expenses) != 1 {
		t.Fatalf("len(expenses) = %d, want 1", len(expenses))
	}
	got := expenses[0]
	if got.Description != "coffee" || got.Category != "food" || got.User != "alice" {
		t.Errorf("expense = %+v", got)
	}
	if !got.Amount.Equal(e.Amount) {
		t.Errorf("Amount = %s, want %s", got.Amount, e.Amount)
	}
	if !got.Date.Equal(date) {
		t.Errorf("Date = %v, want %v", got.Date, date)
	}

	loaded, ok := ld.Budget(b.Target)
	if !ok {
		t.Fatal("budget missing after reload")
	}
	if !loaded.Limit.Equal(b.Limit) {
		t.Errorf("Limit = %s, want %s", loaded.Limit, b.Limit)
	}
}

func TestLoad_EmptyDatabase(t *testing.T) {
	db := openTemp(t)

	ld, err := db.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if len(ld.Users()) != 0 || len(ld.Expenses()) != 0 {
		t.Error("expected empty ledger from fresh database")
	}
	if !ld.Total().IsZero() {
		t.Errorf("Total = %s, want 0", ld.Total())
	}
}

func TestLoad_UndatedExpense(t *testing.T) {
	db := openTemp(t)

	if err := db.SaveUser(model.User{Name: "alice"}); err != nil {
		t.Fatal(err)
	}
	e := model.Expense{Description: "cash", Amount: mustDec(t, "5"), Category: "misc", User: "alice"}
	if err := db.SaveExpense(e); err != nil {
		t.Fatal(err)
	}

	ld, err := db.Load()
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got := ld.Expenses()[0]; !got.Date.IsZero() {
		t.Errorf("Date = %v, want zero for undated expense", got.Date)
	}
}

func TestSaveBudget_Overwrite(t *testing.T) {
	db := openTemp(t)

	target := model.BudgetTarget{Kind: model.TargetCategory, Name: "food"}
	if err := db.SaveBudget(model.Budget{Target: target, Limit: mustDec(t, "100")}); err != nil {
		t.Fatal(err)
	}
	if err := db.SaveBudget(model.Budget{Target: target, Limit: mustDec(t, "75")}); err != nil {
		t.Fatal(err)
	}

	ld, err := db.Load()
	if err != nil {
		t.Fatal(err)
	}
	b, ok := ld.Budget(target)
	if !ok {
		t.Fatal("budget missing")
	}
	if !b.Limit.Equal(mustDec(t, "75")) {
		t.Errorf("Limit = %s, want 75 (last write wins)", b.Limit)
	}
}

func TestExpenseCount(t *testing.T) {
	db := openTemp(t)
	if err := db.SaveUser(model.User{Name: "alice"}); err != nil {
		t.Fatal(err)
	}
	for i := 0; i < 3; i++ {
		e := model.Expense{Description: "x", Amount: mustDec(t, "1"), Category: "misc", User: "alice"}
		if err := db.SaveExpense(e); err != nil {
			t.Fatal(err)
		}
	}
	n, err := db.ExpenseCount()
	if err != nil {
		t.Fatal(err)
	}
	if n != 3 {
		t.Errorf("ExpenseCount = %d, want 3", n)
	}
}
