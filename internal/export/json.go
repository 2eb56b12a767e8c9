package export

import (
	"encoding/json"
	"io"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/reports"
)

const sourceLabel = "Fintrack Export"

type exportInfo struct {
	ExportDate        string `json:"export_date"`
	TotalTransactions int    `json:"total_transactions"`
	SourceLabel       string `json:"source_label"`
}

// jsonDocument uses pointer fields so that the summary and transactions
// keys appear exactly when their include flag is set, even for an empty
// transaction list.
type jsonDocument struct {
	ExportInfo   exportInfo            `json:"export_info"`
	Summary      *reports.Summary      `json:"summary,omitempty"`
	Transactions *[]models.Transaction `json:"transactions,omitempty"`
}

func writeJSON(w io.Writer, transactions []models.Transaction, summary reports.Summary, opts Options) error {
	doc := jsonDocument{
		ExportInfo: exportInfo{
			ExportDate:        time.Now().Format(time.RFC3339),
			TotalTransactions: len(transactions),
			SourceLabel:       sourceLabel,
		},
	}

	if opts.IncludeSummary {
		doc.Summary = &summary
	}
	if opts.IncludeTransactions {
		if transactions == nil {
			transactions = []models.Transaction{}
		}
		doc.Transactions = &transactions
	}

	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(doc)
}
