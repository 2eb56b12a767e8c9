package export

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"fintrack/internal/models"
	"fintrack/internal/reports"
)

// csvHeader is the transaction table header. Amounts use "." as the decimal
// point with two places: the CSV form is for machines, not locales.
var csvHeader = []string{"ID", "Date", "Type", "Category", "Amount", "Description"}

func writeCSV(w io.Writer, transactions []models.Transaction, summary reports.Summary, opts Options) error {
	cw := csv.NewWriter(w)

	if opts.IncludeSummary {
		rows := [][]string{
			{"FINANCIAL SUMMARY"},
			{"Total Income", fmt.Sprintf("%.2f", summary.TotalIncome)},
			{"Total Expenses", fmt.Sprintf("%.2f", summary.TotalExpenses)},
			{"Balance", fmt.Sprintf("%.2f", summary.Balance)},
			{"Transaction Count", strconv.Itoa(summary.TransactionCount)},
			{},
		}
		for _, row := range rows {
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	if opts.IncludeTransactions {
		if err := cw.Write(csvHeader); err != nil {
			return err
		}
		for _, tx := range transactions {
			row := []string{
				strconv.FormatUint(uint64(tx.ID), 10),
				tx.OccurredAt,
				string(tx.Type),
				tx.Category,
				fmt.Sprintf("%.2f", tx.Amount),
				tx.Description,
			}
			if err := cw.Write(row); err != nil {
				return err
			}
		}
	}

	cw.Flush()
	return cw.Error()
}
