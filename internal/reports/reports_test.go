package reports

import (
	"reflect"
	"testing"

	"fintrack/internal/models"
)

func tx(txType models.TransactionType, category string, amount float64, occurredAt string) models.Transaction {
	return models.Transaction{
		Type:       txType,
		Category:   category,
		Amount:     amount,
		OccurredAt: occurredAt,
	}
}

// The reference scenario: one salary and two food expenses across two months.
func scenario() []models.Transaction {
	return []models.Transaction{
		tx(models.TransactionTypeIncome, "Salary", 1000, "2024-01-15 09:00:00"),
		tx(models.TransactionTypeExpense, "Food", 200, "2024-01-20 12:30:00"),
		tx(models.TransactionTypeExpense, "Food", 50, "2024-02-01 18:00:00"),
	}
}

func TestSummarize(t *testing.T) {
	t.Run("reference scenario", func(t *testing.T) {
		got := Summarize(scenario())
		want := Summary{TotalIncome: 1000, TotalExpenses: 250, Balance: 750, TransactionCount: 3}
		if got != want {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("empty input yields all zeros", func(t *testing.T) {
		got := Summarize(nil)
		if got != (Summary{}) {
			t.Errorf("got %+v, want zero summary", got)
		}
	})

	t.Run("balance is always income minus expenses", func(t *testing.T) {
		sets := [][]models.Transaction{
			nil,
			scenario(),
			{tx(models.TransactionTypeIncome, "Salary", 10, "2024-01-01 00:00:00")},
			{tx(models.TransactionTypeExpense, "Food", 10, "2024-01-01 00:00:00")},
			{
				tx(models.TransactionTypeExpense, "Food", 300, "2024-03-05 10:00:00"),
				tx(models.TransactionTypeIncome, "Freelance", 120.5, "2024-03-06 10:00:00"),
			},
		}
		for _, set := range sets {
			s := Summarize(set)
			if s.Balance != s.TotalIncome-s.TotalExpenses {
				t.Errorf("balance %v != income %v - expenses %v", s.Balance, s.TotalIncome, s.TotalExpenses)
			}
		}
	})
}

func TestPieDataset(t *testing.T) {
	t.Run("one slice per type with a positive total", func(t *testing.T) {
		got := PieDataset(scenario())
		want := []PieSlice{
			{Label: "income", Total: 1000},
			{Label: "expense", Total: 250},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("all-income set has no expense slice", func(t *testing.T) {
		got := PieDataset([]models.Transaction{
			tx(models.TransactionTypeIncome, "Salary", 500, "2024-01-01 00:00:00"),
		})
		if len(got) != 1 || got[0].Label != "income" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("all-expense set has no income slice", func(t *testing.T) {
		got := PieDataset([]models.Transaction{
			tx(models.TransactionTypeExpense, "Food", 500, "2024-01-01 00:00:00"),
		})
		if len(got) != 1 || got[0].Label != "expense" {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("empty input yields an empty slice, not nil error state", func(t *testing.T) {
		got := PieDataset(nil)
		if len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})
}

func TestBarDataset(t *testing.T) {
	t.Run("sums expenses by category", func(t *testing.T) {
		got := BarDataset(scenario())
		want := []BarEntry{{Category: "Food", Total: 250}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("income categories are ignored", func(t *testing.T) {
		got := BarDataset([]models.Transaction{
			tx(models.TransactionTypeIncome, "Salary", 1000, "2024-01-15 09:00:00"),
		})
		if len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})

	t.Run("sorted by descending total", func(t *testing.T) {
		got := BarDataset([]models.Transaction{
			tx(models.TransactionTypeExpense, "Food", 50, "2024-01-01 00:00:00"),
			tx(models.TransactionTypeExpense, "Housing", 900, "2024-01-02 00:00:00"),
			tx(models.TransactionTypeExpense, "Transport", 120, "2024-01-03 00:00:00"),
		})
		want := []BarEntry{
			{Category: "Housing", Total: 900},
			{Category: "Transport", Total: 120},
			{Category: "Food", Total: 50},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("never includes a non-positive total", func(t *testing.T) {
		for _, entry := range BarDataset(scenario()) {
			if entry.Total <= 0 {
				t.Errorf("entry %+v has non-positive total", entry)
			}
		}
	})
}

func TestLineDataset(t *testing.T) {
	t.Run("reference scenario groups by month", func(t *testing.T) {
		got := LineDataset(scenario())
		want := []LinePoint{
			{Month: "2024-01", Revenue: 1000, Expense: 200},
			{Month: "2024-02", Revenue: 0, Expense: 50},
		}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("sorted ascending by month key", func(t *testing.T) {
		got := LineDataset([]models.Transaction{
			tx(models.TransactionTypeExpense, "Food", 10, "2024-12-01 00:00:00"),
			tx(models.TransactionTypeExpense, "Food", 10, "2024-02-01 00:00:00"),
			tx(models.TransactionTypeExpense, "Food", 10, "2023-11-01 00:00:00"),
		})
		for i := 1; i < len(got); i++ {
			if got[i-1].Month >= got[i].Month {
				t.Errorf("months out of order: %+v", got)
			}
		}
	})

	t.Run("a single month yields a single point", func(t *testing.T) {
		got := LineDataset([]models.Transaction{
			tx(models.TransactionTypeIncome, "Salary", 100, "2024-05-01 00:00:00"),
			tx(models.TransactionTypeExpense, "Food", 40, "2024-05-20 00:00:00"),
		})
		want := []LinePoint{{Month: "2024-05", Revenue: 100, Expense: 40}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("unparsable dates are silently skipped", func(t *testing.T) {
		got := LineDataset([]models.Transaction{
			tx(models.TransactionTypeIncome, "Salary", 100, "2024-05-01 00:00:00"),
			tx(models.TransactionTypeExpense, "Food", 40, "corrupted"),
			tx(models.TransactionTypeExpense, "Food", 40, ""),
		})
		want := []LinePoint{{Month: "2024-05", Revenue: 100, Expense: 0}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("date-only values are accepted", func(t *testing.T) {
		got := LineDataset([]models.Transaction{
			tx(models.TransactionTypeExpense, "Food", 40, "2024-05-20"),
		})
		want := []LinePoint{{Month: "2024-05", Revenue: 0, Expense: 40}}
		if !reflect.DeepEqual(got, want) {
			t.Errorf("got %+v, want %+v", got, want)
		}
	})

	t.Run("deterministic across runs", func(t *testing.T) {
		input := []models.Transaction{
			tx(models.TransactionTypeExpense, "Food", 10, "2024-03-01 00:00:00"),
			tx(models.TransactionTypeIncome, "Salary", 20, "2024-01-01 00:00:00"),
			tx(models.TransactionTypeExpense, "Transport", 30, "2024-02-01 00:00:00"),
		}
		first := LineDataset(input)
		for i := 0; i < 10; i++ {
			if again := LineDataset(input); !reflect.DeepEqual(first, again) {
				t.Fatalf("run %d differs: %+v vs %+v", i, first, again)
			}
		}
	})

	t.Run("empty input yields an empty series", func(t *testing.T) {
		if got := LineDataset(nil); len(got) != 0 {
			t.Errorf("got %+v", got)
		}
	})
}
