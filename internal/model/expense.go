// Package model defines the core entities tracked by the expense ledger.
package model

import (
	"time"

	"github.com/shopspring/decimal"
)

// Expense is a single recorded spending event. Immutable once created.
type Expense struct {
	Description string
	Amount      decimal.Decimal
	Category    string
	User        string
	Date        time.Time
}

// User is a registered spender. Names are unique within a ledger and
// normalized to lowercase.
type User struct {
	Name string
}

// TargetKind distinguishes what a budget applies to.
type TargetKind string

const (
	TargetCategory TargetKind = "category"
	TargetUser     TargetKind = "user"
)

// BudgetTarget identifies the category or user a budget limits.
type BudgetTarget struct {
	Kind TargetKind
	Name string
}

// Budget is a spending limit for a category or user.
type Budget struct {
	Target BudgetTarget
	Limit  decimal.Decimal
}

// BudgetStatus reports spending against a budget.
type BudgetStatus struct {
	Target    BudgetTarget
	Limit     decimal.Decimal
	Spent     decimal.Decimal
	Remaining decimal.Decimal // Limit - Spent, negative when over
	Over      bool
}
