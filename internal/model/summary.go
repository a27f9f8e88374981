package model

import "github.com/shopspring/decimal"

// CategoryTotal holds aggregated spending for one category.
type CategoryTotal struct {
	Category     string
	Count        int
	Total        decimal.Decimal
	SharePercent float64
}

// UserTotal holds aggregated spending for one user.
type UserTotal struct {
	User         string
	Count        int
	Total        decimal.Decimal
	SharePercent float64
}

// SummaryStats is the top-level aggregate across all expenses in a window.
type SummaryStats struct {
	ExpenseCount int
	UserCount    int
	Categories   int
	Total        decimal.Decimal
	ByCategory   []CategoryTotal
	ByUser       []UserTotal
}
