// Package tui provides the interactive menu mode: pick a user, then add
// expenses, view summaries, manage budgets, and export, without re-running
// the CLI for every action.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
	"github.com/shopspring/decimal"

	"github.com/trush081/simple-expense-tracker/internal/cli"
	"github.com/trush081/simple-expense-tracker/internal/config"
	"github.com/trush081/simple-expense-tracker/internal/export"
	"github.com/trush081/simple-expense-tracker/internal/ledger"
	"github.com/trush081/simple-expense-tracker/internal/model"
	"github.com/trush081/simple-expense-tracker/internal/store"
	"github.com/trush081/simple-expense-tracker/internal/tui/theme"
)

type screen int

const (
	screenUser screen = iota
	screenMenu
	screenAdd
	screenSummary
	screenBudget
	screenExport
)

var menuItems = []string{
	"Add a new expense",
	"View expense summary",
	"Set a budget",
	"Export expenses to CSV",
	"Switch user",
	"Quit",
}

// addValues backs the add-expense form. Held by pointer so the form keeps
// writing to the same struct while the App value is copied between updates.
type addValues struct {
	description string
	amount      string
	category    string
	date        string
}

// budgetValues backs the set-budget form.
type budgetValues struct {
	kind  model.TargetKind
	name  string
	limit string
}

// App is the root Bubble Tea model.
type App struct {
	cfg config.Config
	db  *store.DB
	ld  *ledger.Store

	user   string
	scr    screen
	cursor int

	userIn   textinput.Model
	exportIn textinput.Model

	addForm *huh.Form
	addVals *addValues
	budForm *huh.Form
	budVals *budgetValues

	status string // flash message shown on the menu
	width  int
	height int
}

// NewApp builds the interactive menu over an already-loaded ledger.
func NewApp(cfg config.Config, db *store.DB, ld *ledger.Store) App {
	ui := textinput.New()
	ui.Placeholder = "username"
	ui.CharLimit = 64
	ui.Width = 30
	ui.Focus()

	ei := textinput.New()
	ei.Placeholder = "expenses.csv"
	ei.CharLimit = 128
	ei.Width = 40

	a := App{
		cfg:      cfg,
		db:       db,
		ld:       ld,
		scr:      screenUser,
		userIn:   ui,
		exportIn: ei,
	}
	if user := ledger.NormalizeUser(cfg.General.DefaultUser); user != "" && ld.HasUser(user) {
		a.user = user
		a.scr = screenMenu
	}
	return a
}

func (a App) Init() tea.Cmd {
	if a.scr == screenUser {
		return textinput.Blink
	}
	return nil
}

func (a App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if ws, ok := msg.(tea.WindowSizeMsg); ok {
		a.width = ws.Width
		a.height = ws.Height
		return a, nil
	}

	switch a.scr {
	case screenUser:
		return a.updateUser(msg)
	case screenMenu:
		return a.updateMenu(msg)
	case screenAdd, screenBudget:
		return a.updateForm(msg)
	case screenSummary:
		if key, ok := msg.(tea.KeyMsg); ok {
			if key.String() == "ctrl+c" {
				return a, tea.Quit
			}
			a.scr = screenMenu
		}
		return a, nil
	case screenExport:
		return a.updateExport(msg)
	}
	return a, nil
}

func (a App) updateUser(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c", "esc":
			return a, tea.Quit
		case "enter":
			name := ledger.NormalizeUser(a.userIn.Value())
			if name == "" {
				return a, nil
			}
			if !a.ld.HasUser(name) {
				u, err := a.ld.AddUser(name)
				if err != nil {
					a.status = err.Error()
					return a, nil
				}
				if err := a.db.SaveUser(u); err != nil {
					a.status = err.Error()
					return a, nil
				}
				a.status = fmt.Sprintf("Registered user %q", name)
			} else {
				a.status = fmt.Sprintf("Welcome back, %s!", name)
			}
			a.user = name
			a.userIn.SetValue("")
			a.scr = screenMenu
			a.cursor = 0
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.userIn, cmd = a.userIn.Update(msg)
	return a, cmd
}

func (a App) updateMenu(msg tea.Msg) (tea.Model, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return a, nil
	}

	switch key.String() {
	case "ctrl+c", "q":
		return a, tea.Quit
	case "up", "k":
		if a.cursor > 0 {
			a.cursor--
		}
	case "down", "j":
		if a.cursor < len(menuItems)-1 {
			a.cursor++
		}
	case "enter":
		a.status = ""
		switch a.cursor {
		case 0:
			return a.startAdd()
		case 1:
			a.scr = screenSummary
		case 2:
			return a.startBudget()
		case 3:
			a.exportIn.SetValue("")
			a.exportIn.Focus()
			a.scr = screenExport
			return a, textinput.Blink
		case 4:
			a.user = ""
			a.userIn.Focus()
			a.scr = screenUser
			return a, textinput.Blink
		case 5:
			return a, tea.Quit
		}
	}
	return a, nil
}

func (a App) startAdd() (tea.Model, tea.Cmd) {
	vals := &addValues{
		category: a.cfg.General.DefaultCategory,
		date:     time.Now().Format("2006-01-02"),
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewInput().
				Title("Description").
				Value(&vals.description).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("description is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Amount").
				Value(&vals.amount).
				Validate(validateAmount),
			huh.NewInput().
				Title("Category").
				Value(&vals.category),
			huh.NewInput().
				Title("Date (YYYY-MM-DD)").
				Value(&vals.date).
				Validate(validateDate),
		),
	)

	a.addVals = vals
	a.addForm = form
	a.scr = screenAdd
	return a, form.Init()
}

func (a App) startBudget() (tea.Model, tea.Cmd) {
	vals := &budgetValues{kind: model.TargetUser, name: a.user}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[model.TargetKind]().
				Title("Budget for").
				Options(
					huh.NewOption("User", model.TargetUser),
					huh.NewOption("Category", model.TargetCategory),
				).
				Value(&vals.kind),
			huh.NewInput().
				Title("Name").
				Value(&vals.name).
				Validate(func(s string) error {
					if strings.TrimSpace(s) == "" {
						return fmt.Errorf("name is required")
					}
					return nil
				}),
			huh.NewInput().
				Title("Limit").
				Value(&vals.limit).
				Validate(validateAmount),
		),
	)

	a.budVals = vals
	a.budForm = form
	a.scr = screenBudget
	return a, form.Init()
}

// updateForm drives the active huh form until it completes or aborts.
func (a App) updateForm(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok && key.String() == "ctrl+c" {
		return a, tea.Quit
	}

	form := a.addForm
	if a.scr == screenBudget {
		form = a.budForm
	}

	m, cmd := form.Update(msg)
	if f, ok := m.(*huh.Form); ok {
		form = f
		if a.scr == screenAdd {
			a.addForm = f
		} else {
			a.budForm = f
		}
	}

	switch form.State {
	case huh.StateCompleted:
		if a.scr == screenAdd {
			a = a.finishAdd()
		} else {
			a = a.finishBudget()
		}
		a.scr = screenMenu
		return a, nil
	case huh.StateAborted:
		a.scr = screenMenu
		return a, nil
	}
	return a, cmd
}

func (a App) finishAdd() App {
	vals := a.addVals
	amount, err := decimal.NewFromString(strings.TrimSpace(vals.amount))
	if err != nil {
		a.status = fmt.Sprintf("invalid amount %q", vals.amount)
		return a
	}

	var date time.Time
	if strings.TrimSpace(vals.date) != "" {
		date, err = time.ParseInLocation("2006-01-02", strings.TrimSpace(vals.date), time.Local)
		if err != nil {
			a.status = fmt.Sprintf("invalid date %q", vals.date)
			return a
		}
	}

	e, err := a.ld.AddExpense(vals.description, amount, vals.category, a.user, date)
	if err != nil {
		a.status = err.Error()
		return a
	}
	if err := a.db.SaveExpense(e); err != nil {
		a.status = err.Error()
		return a
	}

	a.status = fmt.Sprintf("Added %s  %s", cli.FormatAmount(e.Amount, a.currency()), e.Description)
	if st, err := a.ld.CheckBudget(model.BudgetTarget{Kind: model.TargetUser, Name: a.user}); err == nil && st.Over {
		a.status += fmt.Sprintf("  — budget exceeded by %s!", cli.FormatAmount(st.Remaining.Neg(), a.currency()))
	}
	return a
}

func (a App) finishBudget() App {
	vals := a.budVals
	limit, err := decimal.NewFromString(strings.TrimSpace(vals.limit))
	if err != nil {
		a.status = fmt.Sprintf("invalid limit %q", vals.limit)
		return a
	}

	b, err := a.ld.SetBudget(model.BudgetTarget{Kind: vals.kind, Name: vals.name}, limit)
	if err != nil {
		a.status = err.Error()
		return a
	}
	if err := a.db.SaveBudget(b); err != nil {
		a.status = err.Error()
		return a
	}

	a.status = fmt.Sprintf("Budget for %s %q set to %s",
		b.Target.Kind, b.Target.Name, cli.FormatAmount(b.Limit, a.currency()))
	return a
}

func (a App) updateExport(msg tea.Msg) (tea.Model, tea.Cmd) {
	if key, ok := msg.(tea.KeyMsg); ok {
		switch key.String() {
		case "ctrl+c":
			return a, tea.Quit
		case "esc":
			a.scr = screenMenu
			return a, nil
		case "enter":
			path := strings.TrimSpace(a.exportIn.Value())
			if path == "" {
				path = fmt.Sprintf("expenses-%s.csv", a.user)
			}
			expenses := ledger.FilterByUser(a.ld.Expenses(), a.user)
			if err := export.WriteFile(path, expenses); err != nil {
				a.status = err.Error()
			} else {
				a.status = fmt.Sprintf("Exported %d expenses to %s", len(expenses), path)
			}
			a.scr = screenMenu
			return a, nil
		}
	}

	var cmd tea.Cmd
	a.exportIn, cmd = a.exportIn.Update(msg)
	return a, cmd
}

func (a App) currency() string {
	if a.cfg.General.CurrencySymbol != "" {
		return a.cfg.General.CurrencySymbol
	}
	return "$"
}

func (a App) View() string {
	t := theme.Active

	titleStyle := lipgloss.NewStyle().Foreground(t.Accent).Bold(true)
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	valueStyle := lipgloss.NewStyle().Foreground(t.TextPrimary)
	accentStyle := lipgloss.NewStyle().Foreground(t.Accent)
	greenStyle := lipgloss.NewStyle().Foreground(t.Green)

	var b strings.Builder
	b.WriteString("\n")
	b.WriteString(titleStyle.Render("  Simple Expense Tracker"))
	if a.user != "" {
		b.WriteString(labelStyle.Render(fmt.Sprintf("   user: %s", a.user)))
	}
	b.WriteString("\n\n")

	switch a.scr {
	case screenUser:
		b.WriteString(valueStyle.Render("  Who is spending?"))
		b.WriteString("\n\n  ")
		b.WriteString(a.userIn.View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render("  Enter to continue, Esc to quit. New names are registered."))

	case screenMenu:
		for i, item := range menuItems {
			if i == a.cursor {
				b.WriteString(accentStyle.Render(fmt.Sprintf("  > %s", item)))
			} else {
				b.WriteString(labelStyle.Render(fmt.Sprintf("    %s", item)))
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  j/k to move, Enter to select, q to quit"))
		if a.status != "" {
			b.WriteString("\n\n")
			b.WriteString(greenStyle.Render("  " + a.status))
		}

	case screenAdd:
		b.WriteString(a.addForm.View())

	case screenBudget:
		b.WriteString(a.budForm.View())

	case screenSummary:
		b.WriteString(a.renderSummary())
		b.WriteString("\n")
		b.WriteString(labelStyle.Render("  Press any key to return"))

	case screenExport:
		b.WriteString(valueStyle.Render("  Export file name"))
		b.WriteString("\n\n  ")
		b.WriteString(a.exportIn.View())
		b.WriteString("\n\n")
		b.WriteString(labelStyle.Render(fmt.Sprintf("  Enter to export (blank = expenses-%s.csv), Esc to cancel", a.user)))
	}

	b.WriteString("\n")
	return b.String()
}

func (a App) renderSummary() string {
	t := theme.Active
	labelStyle := lipgloss.NewStyle().Foreground(t.TextMuted)
	overStyle := lipgloss.NewStyle().Foreground(t.Red)

	expenses := ledger.FilterByUser(a.ld.Expenses(), a.user)
	if len(expenses) == 0 {
		return labelStyle.Render("  No expenses found.") + "\n"
	}

	stats := ledger.Summarize(expenses)

	var b strings.Builder
	b.WriteString(fmt.Sprintf("  Total expenses: %s\n", cli.FormatAmount(stats.Total, a.currency())))

	if st, err := a.ld.CheckBudget(model.BudgetTarget{Kind: model.TargetUser, Name: a.user}); err == nil {
		b.WriteString(fmt.Sprintf("  Budget:         %s\n", cli.FormatAmount(st.Limit, a.currency())))
		if st.Over {
			b.WriteString(overStyle.Render(fmt.Sprintf("  Budget exceeded by %s!", cli.FormatAmount(st.Remaining.Neg(), a.currency()))))
			b.WriteString("\n")
		} else {
			b.WriteString(fmt.Sprintf("  Remaining:      %s\n", cli.FormatAmount(st.Remaining, a.currency())))
		}
	}

	b.WriteString("\n")
	b.WriteString(labelStyle.Render("  Category-wise expenses:"))
	b.WriteString("\n\n")

	entries := make([]cli.BarEntry, 0, len(stats.ByCategory))
	for _, ct := range stats.ByCategory {
		entries = append(entries, cli.BarEntry{Label: ct.Category, Value: ct.Total})
	}
	b.WriteString(cli.RenderBarChart(entries, a.currency(), 30))

	return b.String()
}

func validateAmount(s string) error {
	d, err := decimal.NewFromString(strings.TrimSpace(s))
	if err != nil {
		return fmt.Errorf("not a number")
	}
	if d.IsNegative() {
		return fmt.Errorf("must not be negative")
	}
	return nil
}

func validateDate(s string) error {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}
	if _, err := time.ParseInLocation("2006-01-02", s, time.Local); err != nil {
		return fmt.Errorf("want YYYY-MM-DD")
	}
	return nil
}
