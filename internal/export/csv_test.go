package export

import (
	"encoding/csv"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/trush081/simple-expense-tracker/internal/model"
)

func sampleExpenses(t *testing.T) []model.Expense {
	t.Helper()
	amt := func(s string) decimal.Decimal {
		d, err := decimal.NewFromString(s)
		if err != nil {
			t.Fatal(err)
		}
		return d
	}
	return []model.Expense{
		{
			Description: "coffee",
			Amount:      amt("3.50"),
			Category:    "food",
			User:        "alice",
			Date:        time.Date(2025, 6, 1, 0, 0, 0, 0, time.Local),
		},
		{
			Description: "bus, late night",
			Amount:      amt("2.00"),
			Category:    "transport",
			User:        "alice",
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, sampleExpenses(t)); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(strings.NewReader(b.String())).ReadAll()
	if err != nil {
		t.Fatalf("reading back: %v", err)
	}

	if len(records) != 3 {
		t.Fatalf("len(records) = %d, want header + 2 rows", len(records))
	}
	wantHeader := []string{"description", "amount", "category", "user", "date"}
	for i, h := range wantHeader {
		if records[0][i] != h {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], h)
		}
	}

	if records[1][0] != "coffee" || records[1][1] != "3.5" || records[1][4] != "2025-06-01" {
		t.Errorf("row 1 = %v", records[1])
	}
	// Commas in descriptions must survive quoting; undated rows export "".
	if records[2][0] != "bus, late night" {
		t.Errorf("row 2 description = %q", records[2][0])
	}
	if records[2][4] != "" {
		t.Errorf("row 2 date = %q, want empty", records[2][4])
	}
}

func TestWriteCSV_Empty(t *testing.T) {
	var b strings.Builder
	if err := WriteCSV(&b, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	lines := strings.Split(strings.TrimSpace(b.String()), "\n")
	if len(lines) != 1 {
		t.Errorf("empty export should be header only, got %d lines", len(lines))
	}
}

func TestWriteFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	if err := WriteFile(path, sampleExpenses(t)); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "coffee") {
		t.Error("exported file missing expense data")
	}
}
