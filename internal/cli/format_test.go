package cli

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestFormatAmount(t *testing.T) {
	tests := []struct {
		name   string
		amount string
		symbol string
		want   string
	}{
		{"simple", "3.5", "$", "$3.50"},
		{"zero", "0", "$", "$0.00"},
		{"thousands", "1234.5", "$", "$1,234.50"},
		{"millions", "1234567.89", "$", "$1,234,567.89"},
		{"negative", "-12.3", "$", "-$12.30"},
		{"euro", "99.99", "€", "€99.99"},
		{"rounds", "2.999", "$", "$3.00"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d, err := decimal.NewFromString(tt.amount)
			if err != nil {
				t.Fatal(err)
			}
			if got := FormatAmount(d, tt.symbol); got != tt.want {
				t.Errorf("FormatAmount(%s) = %q, want %q", tt.amount, got, tt.want)
			}
		})
	}
}

func TestFormatNumber(t *testing.T) {
	tests := []struct {
		in   int64
		want string
	}{
		{0, "0"},
		{999, "999"},
		{1000, "1,000"},
		{1234567, "1,234,567"},
		{-4500, "-4,500"},
	}
	for _, tt := range tests {
		if got := FormatNumber(tt.in); got != tt.want {
			t.Errorf("FormatNumber(%d) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestFormatDate(t *testing.T) {
	if got := FormatDate(time.Time{}); got != "—" {
		t.Errorf("zero date = %q, want dash", got)
	}
	d := time.Date(2025, 6, 1, 15, 4, 5, 0, time.Local)
	if got := FormatDate(d); got != "2025-06-01" {
		t.Errorf("FormatDate = %q, want 2025-06-01", got)
	}
}

func TestRenderBarChart(t *testing.T) {
	entries := []BarEntry{
		{Label: "food", Value: decimal.NewFromInt(10)},
		{Label: "transport", Value: decimal.NewFromInt(5)},
	}
	out := RenderBarChart(entries, "$", 20)
	if out == "" {
		t.Fatal("empty chart output")
	}
	for _, want := range []string{"food", "transport", "$10.00", "$5.00"} {
		if !strings.Contains(out, want) {
			t.Errorf("chart output missing %q", want)
		}
	}
}

func TestRenderBarChart_Empty(t *testing.T) {
	if out := RenderBarChart(nil, "$", 20); out != "" {
		t.Errorf("empty entries should render nothing, got %q", out)
	}
}

func TestRenderTable_HasAllCells(t *testing.T) {
	out := RenderTable(Table{
		Headers: []string{"Category", "Total"},
		Rows: [][]string{
			{"food", "$10.00"},
			{"---"},
			{"TOTAL", "$10.00"},
		},
	})
	for _, want := range []string{"Category", "Total", "food", "$10.00", "TOTAL"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q", want)
		}
	}
}
