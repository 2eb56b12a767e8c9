// Package reports is the aggregation engine: it turns a set of transactions
// into a financial summary and the pie, bar, and line chart datasets. Every
// function is pure and recomputes from the full input on each call; nothing
// is cached or incrementally maintained.
package reports

import (
	"sort"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/validation"
)

// Summary holds aggregate totals over a transaction set.
type Summary struct {
	TotalIncome      float64 `json:"total_income"`
	TotalExpenses    float64 `json:"total_expenses"`
	Balance          float64 `json:"balance"`
	TransactionCount int     `json:"transaction_count"`
}

// PieSlice is one bucket of the income-vs-expense pie chart.
type PieSlice struct {
	Label string  `json:"type"`
	Total float64 `json:"total"`
}

// BarEntry is the expense total for one category.
type BarEntry struct {
	Category string  `json:"category"`
	Total    float64 `json:"total"`
}

// LinePoint is the revenue/expense pair for one calendar month.
type LinePoint struct {
	Month   string  `json:"month"`
	Revenue float64 `json:"revenue"`
	Expense float64 `json:"expense"`
}

// ChartData bundles the three chart datasets.
type ChartData struct {
	Pie  []PieSlice  `json:"pie"`
	Bar  []BarEntry  `json:"bar"`
	Line []LinePoint `json:"line"`
}

// Summarize computes totals by type. An empty input yields an all-zero
// summary; balance is always income minus expenses.
func Summarize(transactions []models.Transaction) Summary {
	var s Summary
	for _, tx := range transactions {
		switch tx.Type {
		case models.TransactionTypeIncome:
			s.TotalIncome += tx.Amount
		case models.TransactionTypeExpense:
			s.TotalExpenses += tx.Amount
		}
	}
	s.Balance = s.TotalIncome - s.TotalExpenses
	s.TransactionCount = len(transactions)
	return s
}

// PieDataset returns one slice per transaction type with a positive total.
// When both totals are zero the result is empty and the caller is expected
// to render a "no data" state.
func PieDataset(transactions []models.Transaction) []PieSlice {
	s := Summarize(transactions)

	slices := []PieSlice{}
	if s.TotalIncome > 0 {
		slices = append(slices, PieSlice{Label: string(models.TransactionTypeIncome), Total: s.TotalIncome})
	}
	if s.TotalExpenses > 0 {
		slices = append(slices, PieSlice{Label: string(models.TransactionTypeExpense), Total: s.TotalExpenses})
	}
	return slices
}

// BarDataset sums expense amounts grouped by category. Categories without
// expenses are omitted. Entries are sorted by descending total, ties broken
// by category name, so repeated runs produce identical output.
func BarDataset(transactions []models.Transaction) []BarEntry {
	totals := make(map[string]float64)
	for _, tx := range transactions {
		if tx.Type == models.TransactionTypeExpense {
			totals[tx.Category] += tx.Amount
		}
	}

	entries := make([]BarEntry, 0, len(totals))
	for category, total := range totals {
		if total <= 0 {
			continue
		}
		entries = append(entries, BarEntry{Category: category, Total: total})
	}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Total != entries[j].Total {
			return entries[i].Total > entries[j].Total
		}
		return entries[i].Category < entries[j].Category
	})
	return entries
}

// LineDataset groups transactions into per-month revenue/expense pairs,
// keyed by the "YYYY-MM" of the occurrence date and sorted ascending by
// month key. Transactions whose dates do not parse are silently skipped:
// malformed legacy rows must not break reporting.
func LineDataset(transactions []models.Transaction) []LinePoint {
	months := make(map[string]*LinePoint)
	for _, tx := range transactions {
		occurred, ok := ParseOccurredAt(tx.OccurredAt)
		if !ok {
			continue
		}

		key := occurred.Format("2006-01")
		point, exists := months[key]
		if !exists {
			point = &LinePoint{Month: key}
			months[key] = point
		}

		if tx.Type == models.TransactionTypeIncome {
			point.Revenue += tx.Amount
		} else {
			point.Expense += tx.Amount
		}
	}

	points := make([]LinePoint, 0, len(months))
	for _, point := range months {
		points = append(points, *point)
	}
	// Lexicographic order is chronological order for zero-padded keys.
	sort.Slice(points, func(i, j int) bool { return points[i].Month < points[j].Month })
	return points
}

// Charts computes all three datasets in one pass over the store snapshot.
func Charts(transactions []models.Transaction) ChartData {
	return ChartData{
		Pie:  PieDataset(transactions),
		Bar:  BarDataset(transactions),
		Line: LineDataset(transactions),
	}
}

// ParseOccurredAt parses a storage-form occurrence date, accepting a
// date-only value as midnight. The boolean is false for malformed text.
func ParseOccurredAt(text string) (time.Time, bool) {
	if t, err := time.Parse(validation.StorageLayout, text); err == nil {
		return t, true
	}
	if t, err := time.Parse(validation.StorageDateLayout, text); err == nil {
		return t, true
	}
	return time.Time{}, false
}
