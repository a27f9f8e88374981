package ledger

import (
	"sort"
	"time"

	"github.com/trush081/simple-expense-tracker/internal/model"
)

// Summarize computes aggregate statistics from a slice of expenses.
// Per-category and per-user breakdowns are sorted by total descending.
func Summarize(expenses []model.Expense) model.SummaryStats {
	var stats model.SummaryStats

	byCategory := make(map[string]*model.CategoryTotal)
	byUser := make(map[string]*model.UserTotal)

	for _, e := range expenses {
		stats.ExpenseCount++
		stats.Total = stats.Total.Add(e.Amount)

		ct, ok := byCategory[e.Category]
		if !ok {
			ct = &model.CategoryTotal{Category: e.Category}
			byCategory[e.Category] = ct
		}
		ct.Count++
		ct.Total = ct.Total.Add(e.Amount)

		ut, ok := byUser[e.User]
		if !ok {
			ut = &model.UserTotal{User: e.User}
			byUser[e.User] = ut
		}
		ut.Count++
		ut.Total = ut.Total.Add(e.Amount)
	}

	stats.Categories = len(byCategory)
	stats.UserCount = len(byUser)

	totalF, _ := stats.Total.Float64()

	stats.ByCategory = make([]model.CategoryTotal, 0, len(byCategory))
	for _, ct := range byCategory {
		if totalF > 0 {
			f, _ := ct.Total.Float64()
			ct.SharePercent = f / totalF * 100
		}
		stats.ByCategory = append(stats.ByCategory, *ct)
	}
	sort.Slice(stats.ByCategory, func(i, j int) bool {
		if !stats.ByCategory[i].Total.Equal(stats.ByCategory[j].Total) {
			return stats.ByCategory[i].Total.GreaterThan(stats.ByCategory[j].Total)
		}
		return stats.ByCategory[i].Category < stats.ByCategory[j].Category
	})

	stats.ByUser = make([]model.UserTotal, 0, len(byUser))
	for _, ut := range byUser {
		if totalF > 0 {
			f, _ := ut.Total.Float64()
			ut.SharePercent = f / totalF * 100
		}
		stats.ByUser = append(stats.ByUser, *ut)
	}
	sort.Slice(stats.ByUser, func(i, j int) bool {
		if !stats.ByUser[i].Total.Equal(stats.ByUser[j].Total) {
			return stats.ByUser[i].Total.GreaterThan(stats.ByUser[j].Total)
		}
		return stats.ByUser[i].User < stats.ByUser[j].User
	})

	return stats
}

// FilterSince returns expenses dated at or after since. Expenses without a
// date are excluded, matching how undated records are treated in summaries.
func FilterSince(expenses []model.Expense, since time.Time) []model.Expense {
	if since.IsZero() {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if e.Date.IsZero() || e.Date.Before(since) {
			continue
		}
		result = append(result, e)
	}
	return result
}

// FilterByUser returns expenses belonging to the given user.
func FilterByUser(expenses []model.Expense, user string) []model.Expense {
	user = NormalizeUser(user)
	if user == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if e.User == user {
			result = append(result, e)
		}
	}
	return result
}

// FilterByCategory returns expenses in the given category.
func FilterByCategory(expenses []model.Expense, category string) []model.Expense {
	if category == "" {
		return expenses
	}
	var result []model.Expense
	for _, e := range expenses {
		if e.Category == category {
			result = append(result, e)
		}
	}
	return result
}
