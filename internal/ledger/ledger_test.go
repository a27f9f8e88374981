package ledger

import (
	"errors"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trush081/simple-expense-tracker/internal/model"
)

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal %q: %v", s, err)
	}
	return d
}

// newStoreWith registers users and returns the store.
func newStoreWith(t *testing.T, users ...string) *Store {
	t.Helper()
	s := New()
	for _, u := range users {
		if _, err := s.AddUser(u); err != nil {
			t.Fatalf("AddUser(%q): %v", u, err)
		}
	}
	return s
}

func addExpense(t *testing.T, s *Store, desc, amount, category, user string) {
	t.Helper()
	if _, err := s.AddExpense(desc, dec(t, amount), category, user, time.Now()); err != nil {
		t.Fatalf("AddExpense(%q): %v", desc, err)
	}
}

func TestAddUser_Duplicate(t *testing.T) {
	s := newStoreWith(t, "alice")

	_, err := s.AddUser("alice")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("AddUser duplicate: err = %v, want ErrDuplicateUser", err)
	}

	// Normalization: same name with different case/whitespace is a duplicate.
	_, err = s.AddUser("  Alice ")
	if !errors.Is(err, ErrDuplicateUser) {
		t.Errorf("AddUser normalized duplicate: err = %v, want ErrDuplicateUser", err)
	}
}

func TestAddUser_Empty(t *testing.T) {
	s := New()
	if _, err := s.AddUser("   "); err == nil {
		t.Error("AddUser of blank name should fail")
	}
}

func TestAddExpense_UnknownUser(t *testing.T) {
	s := newStoreWith(t, "alice")

	_, err := s.AddExpense("coffee", dec(t, "3.50"), "food", "bob", time.Now())
	if !errors.Is(err, ErrUnknownUser) {
		t.Errorf("err = %v, want ErrUnknownUser", err)
	}
	if len(s.Expenses()) != 0 {
		t.Error("failed add must not modify the store")
	}
}

func TestAddExpense_NegativeAmount(t *testing.T) {
	s := newStoreWith(t, "alice")

	_, err := s.AddExpense("refund?", dec(t, "-1.00"), "food", "alice", time.Now())
	if !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("err = %v, want ErrInvalidAmount", err)
	}
	if len(s.Expenses()) != 0 {
		t.Error("failed add must not modify the store")
	}
}

func TestAddExpense_ZeroAmountAllowed(t *testing.T) {
	s := newStoreWith(t, "alice")
	addExpense(t, s, "freebie", "0", "misc", "alice")
	if !s.Total().IsZero() {
		t.Errorf("Total() = %s, want 0", s.Total())
	}
}

func TestTotal_SumsAllAmounts(t *testing.T) {
	s := newStoreWith(t, "alice")

	if !s.Total().IsZero() {
		t.Errorf("empty Total() = %s, want 0", s.Total())
	}

	addExpense(t, s, "coffee", "3.50", "food", "alice")
	addExpense(t, s, "bus", "2.00", "transport", "alice")

	if want := dec(t, "5.50"); !s.Total().Equal(want) {
		t.Errorf("Total() = %s, want %s", s.Total(), want)
	}
}

func TestTotalByCategory(t *testing.T) {
	s := newStoreWith(t, "alice")
	addExpense(t, s, "coffee", "3.50", "food", "alice")
	addExpense(t, s, "bus", "2.00", "transport", "alice")

	got := s.TotalByCategory()
	if len(got) != 2 {
		t.Fatalf("len = %d, want 2", len(got))
	}
	if !got["food"].Equal(dec(t, "3.50")) {
		t.Errorf("food = %s, want 3.50", got["food"])
	}
	if !got["transport"].Equal(dec(t, "2.00")) {
		t.Errorf("transport = %s, want 2.00", got["transport"])
	}

	// Category totals must sum to the overall total.
	sum := decimal.Zero
	for _, v := range got {
		sum = sum.Add(v)
	}
	if !sum.Equal(s.Total()) {
		t.Errorf("category sum %s != Total %s", sum, s.Total())
	}
}

func TestTotalByUser(t *testing.T) {
	s := newStoreWith(t, "alice", "bob")
	addExpense(t, s, "coffee", "3.50", "food", "alice")
	addExpense(t, s, "lunch", "9.25", "food", "bob")
	addExpense(t, s, "bus", "2.00", "transport", "Alice") // normalized to alice

	got := s.TotalByUser()
	if !got["alice"].Equal(dec(t, "5.50")) {
		t.Errorf("alice = %s, want 5.50", got["alice"])
	}
	if !got["bob"].Equal(dec(t, "9.25")) {
		t.Errorf("bob = %s, want 9.25", got["bob"])
	}
}

func TestSetBudget_Validation(t *testing.T) {
	s := newStoreWith(t, "alice")

	if _, err := s.SetBudget(model.BudgetTarget{Kind: model.TargetCategory, Name: "food"}, dec(t, "-5")); !errors.Is(err, ErrInvalidAmount) {
		t.Errorf("negative limit: err = %v, want ErrInvalidAmount", err)
	}
	if _, err := s.SetBudget(model.BudgetTarget{Kind: model.TargetUser, Name: "bob"}, dec(t, "10")); !errors.Is(err, ErrUnknownUser) {
		t.Errorf("unknown user budget: err = %v, want ErrUnknownUser", err)
	}
	if _, err := s.SetBudget(model.BudgetTarget{Kind: "project", Name: "x"}, dec(t, "10")); err == nil {
		t.Error("invalid target kind should fail")
	}
}

func TestSetBudget_Overwrites(t *testing.T) {
	s := New()
	target := model.BudgetTarget{Kind: model.TargetCategory, Name: "food"}

	if _, err := s.SetBudget(target, dec(t, "100")); err != nil {
		t.Fatal(err)
	}
	if _, err := s.SetBudget(target, dec(t, "50")); err != nil {
		t.Fatal(err)
	}

	b, ok := s.Budget(target)
	if !ok {
		t.Fatal("budget not found after set")
	}
	if !b.Limit.Equal(dec(t, "50")) {
		t.Errorf("Limit = %s, want 50 (overwrite)", b.Limit)
	}
}

func TestCheckBudget(t *testing.T) {
	s := newStoreWith(t, "alice")
	target := model.BudgetTarget{Kind: model.TargetCategory, Name: "food"}

	if _, err := s.CheckBudget(target); !errors.Is(err, ErrNoBudget) {
		t.Errorf("unset budget: err = %v, want ErrNoBudget", err)
	}

	if _, err := s.SetBudget(target, dec(t, "10")); err != nil {
		t.Fatal(err)
	}
	addExpense(t, s, "coffee", "3.50", "food", "alice")
	addExpense(t, s, "bus", "2.00", "transport", "alice")

	st, err := s.CheckBudget(target)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Spent.Equal(dec(t, "3.50")) {
		t.Errorf("Spent = %s, want 3.50 (transport excluded)", st.Spent)
	}
	if !st.Remaining.Equal(dec(t, "6.50")) {
		t.Errorf("Remaining = %s, want 6.50", st.Remaining)
	}
	if st.Over {
		t.Error("Over = true, want false")
	}

	addExpense(t, s, "dinner", "12.00", "food", "alice")
	st, err = s.CheckBudget(target)
	if err != nil {
		t.Fatal(err)
	}
	if !st.Remaining.Equal(dec(t, "-5.50")) {
		t.Errorf("Remaining = %s, want -5.50", st.Remaining)
	}
	if !st.Over {
		t.Error("Over = false, want true when spent > limit")
	}
}

func TestCheckBudget_UserTarget(t *testing.T) {
	s := newStoreWith(t, "alice", "bob")
	target := model.BudgetTarget{Kind: model.TargetUser, Name: "alice"}

	if _, err := s.SetBudget(target, dec(t, "20")); err != nil {
		t.Fatal(err)
	}
	addExpense(t, s, "coffee", "3.50", "food", "alice")
	addExpense(t, s, "lunch", "9.00", "food", "bob")

	st, err := s.CheckBudget(model.BudgetTarget{Kind: model.TargetUser, Name: "  Alice "})
	if err != nil {
		t.Fatal(err)
	}
	if !st.Spent.Equal(dec(t, "3.50")) {
		t.Errorf("Spent = %s, want 3.50 (bob excluded)", st.Spent)
	}
}

func TestCheckBudget_ExactLimitNotOver(t *testing.T) {
	s := newStoreWith(t, "alice")
	target := model.BudgetTarget{Kind: model.TargetCategory, Name: "food"}
	if _, err := s.SetBudget(target, dec(t, "3.50")); err != nil {
		t.Fatal(err)
	}
	addExpense(t, s, "coffee", "3.50", "food", "alice")

	st, err := s.CheckBudget(target)
	if err != nil {
		t.Fatal(err)
	}
	if st.Over {
		t.Error("spending exactly the limit must not flag over-budget")
	}
	if !st.Remaining.IsZero() {
		t.Errorf("Remaining = %s, want 0", st.Remaining)
	}
}

func TestUsers_SortedAndNormalized(t *testing.T) {
	s := newStoreWith(t, "Charlie", "alice", " Bob ")

	users := s.Users()
	want := []string{"alice", "bob", "charlie"}
	if len(users) != len(want) {
		t.Fatalf("len = %d, want %d", len(users), len(want))
	}
	for i, u := range users {
		if u.Name != want[i] {
			t.Errorf("users[%d] = %q, want %q", i, u.Name, want[i])
		}
	}
}

func TestExpenses_PreservesOrder(t *testing.T) {
	s := newStoreWith(t, "alice")
	addExpense(t, s, "first", "1.00", "a", "alice")
	addExpense(t, s, "second", "2.00", "b", "alice")
	addExpense(t, s, "third", "3.00", "c", "alice")

	got := s.Expenses()
	for i, want := range []string{"first", "second", "third"} {
		if got[i].Description != want {
			t.Errorf("expenses[%d] = %q, want %q", i, got[i].Description, want)
		}
	}
}
