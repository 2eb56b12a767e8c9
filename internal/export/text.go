package export

import (
	"fmt"
	"io"
	"strings"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/validation"
)

// Fixed column widths for the transaction table. Category and description
// are truncated on purpose to keep the report aligned.
const (
	textCategoryWidth    = 12
	textDescriptionWidth = 15
)

func writeText(w io.Writer, transactions []models.Transaction, summary reports.Summary, opts Options) error {
	var b strings.Builder

	rule := strings.Repeat("═", 58)
	b.WriteString("╔" + rule + "╗\n")
	b.WriteString("║" + center("FINANCIAL REPORT", 58) + "║\n")
	b.WriteString("╚" + rule + "╝\n\n")

	b.WriteString("Export date: " + time.Now().Format(validation.DisplayLayout) + "\n")
	fmt.Fprintf(&b, "Total transactions: %d\n\n", len(transactions))

	if opts.IncludeSummary {
		b.WriteString("FINANCIAL SUMMARY\n")
		fmt.Fprintf(&b, "  Total income:   %18s\n", FormatCurrency(summary.TotalIncome))
		fmt.Fprintf(&b, "  Total expenses: %18s\n", FormatCurrency(summary.TotalExpenses))
		fmt.Fprintf(&b, "  Balance:        %18s\n", FormatCurrency(summary.Balance))
		b.WriteString("\n")
	}

	if opts.IncludeTransactions {
		b.WriteString("TRANSACTIONS\n")
		fmt.Fprintf(&b, "  %4s  %-10s  %-7s  %-*s  %12s  %-*s\n",
			"ID", "Date", "Type",
			textCategoryWidth, "Category",
			"Amount",
			textDescriptionWidth, "Description")
		b.WriteString("  " + strings.Repeat("─", 72) + "\n")

		for _, tx := range transactions {
			date := tx.OccurredAt
			if len(date) > 10 {
				date = date[:10]
			}

			sign := "+"
			if tx.Type == models.TransactionTypeExpense {
				sign = "-"
			}
			amount := sign + "R$ " + strings.ReplaceAll(fmt.Sprintf("%.2f", tx.Amount), ".", ",")

			fmt.Fprintf(&b, "  %4d  %-10s  %-7s  %-*s  %12s  %-*s\n",
				tx.ID, date, tx.Type,
				textCategoryWidth, truncate(tx.Category, textCategoryWidth),
				amount,
				textDescriptionWidth, truncate(tx.Description, textDescriptionWidth))
		}
		b.WriteString("\n")
	}

	b.WriteString(strings.Repeat("─", 60) + "\n")
	b.WriteString("Report generated by fintrack\n")

	_, err := io.WriteString(w, b.String())
	return err
}

func truncate(s string, width int) string {
	runes := []rune(s)
	if len(runes) > width {
		return string(runes[:width])
	}
	return s
}

func center(s string, width int) string {
	if len(s) >= width {
		return s
	}
	left := (width - len(s)) / 2
	right := width - len(s) - left
	return strings.Repeat(" ", left) + s + strings.Repeat(" ", right)
}
