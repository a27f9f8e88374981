// Package export writes expense records to CSV, matching the column layout
// description,amount,category,user,date.
package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"

	"github.com/trush081/simple-expense-tracker/internal/model"
)

var header = []string{"description", "amount", "category", "user", "date"}

// WriteCSV writes the expenses as CSV with a header row.
func WriteCSV(w io.Writer, expenses []model.Expense) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(header); err != nil {
		return fmt.Errorf("writing header: %w", err)
	}

	for _, e := range expenses {
		date := ""
		if !e.Date.IsZero() {
			date = e.Date.Format("2006-01-02")
		}
		record := []string{e.Description, e.Amount.String(), e.Category, e.User, date}
		if err := cw.Write(record); err != nil {
			return fmt.Errorf("writing expense %q: %w", e.Description, err)
		}
	}

	cw.Flush()
	return cw.Error()
}

// WriteFile exports the expenses to the named CSV file.
func WriteFile(path string, expenses []model.Expense) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644)
	if err != nil {
		return fmt.Errorf("creating export file: %w", err)
	}
	defer f.Close()

	if err := WriteCSV(f, expenses); err != nil {
		return err
	}
	return f.Close()
}
