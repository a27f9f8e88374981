// Package ledger implements the in-memory expense store: ordered expense
// records, registered users, and budgets, with total and per-category /
// per-user aggregation. Pure computation, no I/O.
package ledger

import (
	"fmt"
	"sort"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trush081/simple-expense-tracker/internal/model"
)

// Store holds all expense data for one ledger. Not safe for concurrent use;
// the CLI is single-threaded.
type Store struct {
	expenses []model.Expense
	users    map[string]model.User
	budgets  map[model.BudgetTarget]model.Budget
}

// New returns an empty store.
func New() *Store {
	return &Store{
		users:   make(map[string]model.User),
		budgets: make(map[model.BudgetTarget]model.Budget),
	}
}

// NormalizeUser canonicalizes a user name the way the tracker stores it.
func NormalizeUser(name string) string {
	return strings.ToLower(strings.TrimSpace(name))
}

// AddUser registers a new user. Fails with ErrDuplicateUser if the
// normalized name is already registered.
func (s *Store) AddUser(name string) (model.User, error) {
	name = NormalizeUser(name)
	if name == "" {
		return model.User{}, fmt.Errorf("user name is empty")
	}
	if _, ok := s.users[name]; ok {
		return model.User{}, fmt.Errorf("%w: %q", ErrDuplicateUser, name)
	}
	u := model.User{Name: name}
	s.users[name] = u
	return u, nil
}

// HasUser reports whether the normalized name is registered.
func (s *Store) HasUser(name string) bool {
	_, ok := s.users[NormalizeUser(name)]
	return ok
}

// AddExpense validates and appends a new expense record. The store is left
// unchanged when validation fails.
func (s *Store) AddExpense(description string, amount decimal.Decimal, category, user string, date time.Time) (model.Expense, error) {
	if amount.IsNegative() {
		return model.Expense{}, fmt.Errorf("%w: %s", ErrInvalidAmount, amount)
	}
	user = NormalizeUser(user)
	if _, ok := s.users[user]; !ok {
		return model.Expense{}, fmt.Errorf("%w: %q", ErrUnknownUser, user)
	}

	e := model.Expense{
		Description: strings.TrimSpace(description),
		Amount:      amount,
		Category:    strings.TrimSpace(category),
		User:        user,
		Date:        date,
	}
	s.expenses = append(s.expenses, e)
	return e, nil
}

// SetBudget creates or overwrites the budget for a category or user.
// User-targeted budgets require a registered user.
func (s *Store) SetBudget(target model.BudgetTarget, limit decimal.Decimal) (model.Budget, error) {
	if limit.IsNegative() {
		return model.Budget{}, fmt.Errorf("%w: %s", ErrInvalidAmount, limit)
	}

	switch target.Kind {
	case model.TargetUser:
		target.Name = NormalizeUser(target.Name)
		if _, ok := s.users[target.Name]; !ok {
			return model.Budget{}, fmt.Errorf("%w: %q", ErrUnknownUser, target.Name)
		}
	case model.TargetCategory:
		target.Name = strings.TrimSpace(target.Name)
	default:
		return model.Budget{}, fmt.Errorf("invalid budget target kind %q", target.Kind)
	}

	b := model.Budget{Target: target, Limit: limit}
	s.budgets[target] = b
	return b, nil
}

// Total returns the sum of all expense amounts, zero for an empty store.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, e := range s.expenses {
		total = total.Add(e.Amount)
	}
	return total
}

// TotalByCategory returns category -> summed amount.
func (s *Store) TotalByCategory() map[string]decimal.Decimal {
	return sumBy(s.expenses, func(e model.Expense) string { return e.Category })
}

// TotalByUser returns user -> summed amount.
func (s *Store) TotalByUser() map[string]decimal.Decimal {
	return sumBy(s.expenses, func(e model.Expense) string { return e.User })
}

func sumBy(expenses []model.Expense, key func(model.Expense) string) map[string]decimal.Decimal {
	totals := make(map[string]decimal.Decimal)
	for _, e := range expenses {
		totals[key(e)] = totals[key(e)].Add(e.Amount)
	}
	return totals
}

// CheckBudget reports spending against the budget for the given target.
// Fails with ErrNoBudget when no budget has been set.
func (s *Store) CheckBudget(target model.BudgetTarget) (model.BudgetStatus, error) {
	if target.Kind == model.TargetUser {
		target.Name = NormalizeUser(target.Name)
	} else {
		target.Name = strings.TrimSpace(target.Name)
	}

	b, ok := s.budgets[target]
	if !ok {
		return model.BudgetStatus{}, fmt.Errorf("%w for %s %q", ErrNoBudget, target.Kind, target.Name)
	}

	spent := decimal.Zero
	for _, e := range s.expenses {
		switch target.Kind {
		case model.TargetUser:
			if e.User == target.Name {
				spent = spent.Add(e.Amount)
			}
		case model.TargetCategory:
			if e.Category == target.Name {
				spent = spent.Add(e.Amount)
			}
		}
	}

	return model.BudgetStatus{
		Target:    target,
		Limit:     b.Limit,
		Spent:     spent,
		Remaining: b.Limit.Sub(spent),
		Over:      spent.GreaterThan(b.Limit),
	}, nil
}

// Budget returns the budget for a target, if one is set.
func (s *Store) Budget(target model.BudgetTarget) (model.Budget, bool) {
	if target.Kind == model.TargetUser {
		target.Name = NormalizeUser(target.Name)
	} else {
		target.Name = strings.TrimSpace(target.Name)
	}
	b, ok := s.budgets[target]
	return b, ok
}

// Users returns all registered users sorted by name.
func (s *Store) Users() []model.User {
	users := make([]model.User, 0, len(s.users))
	for _, u := range s.users {
		users = append(users, u)
	}
	sort.Slice(users, func(i, j int) bool {
		return users[i].Name < users[j].Name
	})
	return users
}

// Expenses returns all expenses in insertion order.
func (s *Store) Expenses() []model.Expense {
	out := make([]model.Expense, len(s.expenses))
	copy(out, s.expenses)
	return out
}

// Budgets returns all budgets sorted by kind then name.
func (s *Store) Budgets() []model.Budget {
	budgets := make([]model.Budget, 0, len(s.budgets))
	for _, b := range s.budgets {
		budgets = append(budgets, b)
	}
	sort.Slice(budgets, func(i, j int) bool {
		if budgets[i].Target.Kind != budgets[j].Target.Kind {
			return budgets[i].Target.Kind < budgets[j].Target.Kind
		}
		return budgets[i].Target.Name < budgets[j].Target.Name
	})
	return budgets
}
