package export

import (
	"bytes"
	"encoding/csv"
	"encoding/json"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
	"time"

	"fintrack/internal/models"
	"fintrack/internal/reports"
	"fintrack/internal/testutil"
)

func sampleTransactions() []models.Transaction {
	return []models.Transaction{
		{
			ID:          2,
			Type:        models.TransactionTypeExpense,
			Category:    "Food",
			Amount:      200.5,
			Description: "groceries",
			OccurredAt:  "2024-01-20 12:30:00",
		},
		{
			ID:          1,
			Type:        models.TransactionTypeIncome,
			Category:    "Salary",
			Amount:      1000,
			Description: "",
			OccurredAt:  "2024-01-15 09:00:00",
		},
	}
}

func TestParseFormat(t *testing.T) {
	for _, in := range []string{"csv", "json", "text"} {
		got, err := ParseFormat(in)
		testutil.AssertNoError(t, err)
		if string(got) != in {
			t.Errorf("ParseFormat(%q) = %q", in, got)
		}
	}

	for _, in := range []string{"pdf", "xml", ""} {
		_, err := ParseFormat(in)
		testutil.AssertAppError(t, err, "UNSUPPORTED_FORMAT")
	}
}

func TestCSVExport(t *testing.T) {
	txs := sampleTransactions()
	summary := reports.Summarize(txs)

	t.Run("transactions round trip through a conformant parser", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatCSV, IncludeTransactions: true}
		testutil.AssertNoError(t, Write(&buf, txs, summary, opts))

		records, err := csv.NewReader(&buf).ReadAll()
		testutil.AssertNoError(t, err)

		if len(records) != 3 {
			t.Fatalf("got %d records, want header + 2 rows", len(records))
		}
		wantHeader := []string{"ID", "Date", "Type", "Category", "Amount", "Description"}
		for i, col := range wantHeader {
			if records[0][i] != col {
				t.Errorf("header[%d] = %q, want %q", i, records[0][i], col)
			}
		}

		// Caller order is preserved: the expense row came first.
		for i, tx := range txs {
			row := records[i+1]
			if row[0] != strconv.Itoa(int(tx.ID)) || row[2] != string(tx.Type) || row[3] != tx.Category || row[5] != tx.Description {
				t.Errorf("row %d = %v does not match %+v", i, row, tx)
			}
			amount, err := strconv.ParseFloat(row[4], 64)
			testutil.AssertNoError(t, err)
			if amount != tx.Amount {
				t.Errorf("row %d amount = %v, want %v", i, amount, tx.Amount)
			}
		}
	})

	t.Run("amounts use two decimals and a dot", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatCSV, IncludeTransactions: true}
		testutil.AssertNoError(t, Write(&buf, txs, summary, opts))

		if !strings.Contains(buf.String(), "200.50") {
			t.Errorf("expected machine-formatted amount in output:\n%s", buf.String())
		}
		if strings.Contains(buf.String(), "200,50") {
			t.Errorf("locale-formatted amount leaked into CSV:\n%s", buf.String())
		}
	})

	t.Run("empty set still produces a header-only table", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatCSV, IncludeTransactions: true}
		testutil.AssertNoError(t, Write(&buf, nil, reports.Summary{}, opts))

		records, err := csv.NewReader(&buf).ReadAll()
		testutil.AssertNoError(t, err)
		if len(records) != 1 {
			t.Fatalf("got %d records, want header only", len(records))
		}
	})

	t.Run("summary block is opt-in", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatCSV, IncludeSummary: true, IncludeTransactions: true}
		testutil.AssertNoError(t, Write(&buf, txs, summary, opts))

		out := buf.String()
		if !strings.Contains(out, "FINANCIAL SUMMARY") || !strings.Contains(out, "1000.00") {
			t.Errorf("summary block missing:\n%s", out)
		}
	})
}

func TestJSONExport(t *testing.T) {
	txs := sampleTransactions()
	summary := reports.Summarize(txs)

	decode := func(t *testing.T, opts Options, transactions []models.Transaction) map[string]json.RawMessage {
		t.Helper()
		var buf bytes.Buffer
		testutil.AssertNoError(t, Write(&buf, transactions, summary, opts))
		var doc map[string]json.RawMessage
		testutil.AssertNoError(t, json.Unmarshal(buf.Bytes(), &doc))
		return doc
	}

	t.Run("keys follow the include flags", func(t *testing.T) {
		doc := decode(t, Options{Format: FormatJSON, IncludeSummary: true}, txs)
		if _, ok := doc["summary"]; !ok {
			t.Error("summary key missing")
		}
		if _, ok := doc["transactions"]; ok {
			t.Error("transactions key present without its flag")
		}

		doc = decode(t, Options{Format: FormatJSON, IncludeTransactions: true}, txs)
		if _, ok := doc["summary"]; ok {
			t.Error("summary key present without its flag")
		}
		if _, ok := doc["transactions"]; !ok {
			t.Error("transactions key missing")
		}
	})

	t.Run("export info is always present", func(t *testing.T) {
		doc := decode(t, Options{Format: FormatJSON}, txs)
		var info struct {
			ExportDate        string `json:"export_date"`
			TotalTransactions int    `json:"total_transactions"`
			SourceLabel       string `json:"source_label"`
		}
		testutil.AssertNoError(t, json.Unmarshal(doc["export_info"], &info))
		if info.TotalTransactions != 2 || info.SourceLabel == "" || info.ExportDate == "" {
			t.Errorf("unexpected export info: %+v", info)
		}
	})

	t.Run("string fields survive exactly", func(t *testing.T) {
		long := strings.Repeat("description well beyond any truncation width ", 4)
		input := []models.Transaction{{
			ID: 1, Type: models.TransactionTypeExpense, Category: "Food",
			Amount: 1, Description: long, OccurredAt: "2024-01-01 00:00:00",
		}}
		doc := decode(t, Options{Format: FormatJSON, IncludeTransactions: true}, input)

		var decoded []models.Transaction
		testutil.AssertNoError(t, json.Unmarshal(doc["transactions"], &decoded))
		if decoded[0].Description != long {
			t.Error("description was altered by JSON export")
		}
	})

	t.Run("empty list with the flag set keeps the key", func(t *testing.T) {
		doc := decode(t, Options{Format: FormatJSON, IncludeTransactions: true}, nil)
		raw, ok := doc["transactions"]
		if !ok {
			t.Fatal("transactions key missing for empty list")
		}
		var decoded []models.Transaction
		testutil.AssertNoError(t, json.Unmarshal(raw, &decoded))
		if len(decoded) != 0 {
			t.Errorf("got %+v", decoded)
		}
	})
}

func TestTextExport(t *testing.T) {
	txs := []models.Transaction{{
		ID:          7,
		Type:        models.TransactionTypeExpense,
		Category:    "A very long category name",
		Amount:      1234.5,
		Description: "a description that runs far past the column",
		OccurredAt:  "2024-01-20 12:30:00",
	}}
	summary := reports.Summarize(txs)

	t.Run("category and description are truncated to their columns", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatText, IncludeTransactions: true}
		testutil.AssertNoError(t, Write(&buf, txs, summary, opts))

		out := buf.String()
		if !strings.Contains(out, "A very long ") {
			t.Errorf("category not truncated to 12 chars:\n%s", out)
		}
		if strings.Contains(out, "A very long category name") {
			t.Errorf("full category leaked into fixed-width table:\n%s", out)
		}
		if strings.Contains(out, "a description that runs far past the column") {
			t.Errorf("full description leaked into fixed-width table:\n%s", out)
		}
	})

	t.Run("summary uses locale currency formatting", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatText, IncludeSummary: true}
		testutil.AssertNoError(t, Write(&buf, txs, summary, opts))

		if !strings.Contains(buf.String(), "R$ 1.234,50") {
			t.Errorf("expected grouped currency value:\n%s", buf.String())
		}
	})

	t.Run("table rows only show the date portion", func(t *testing.T) {
		var buf bytes.Buffer
		opts := Options{Format: FormatText, IncludeTransactions: true}
		testutil.AssertNoError(t, Write(&buf, txs, summary, opts))

		if !strings.Contains(buf.String(), "2024-01-20  ") {
			t.Errorf("expected date-only column:\n%s", buf.String())
		}
		if strings.Contains(buf.String(), "2024-01-20 12:30:00") {
			t.Errorf("time leaked into the date column:\n%s", buf.String())
		}
	})
}

func TestFormatCurrency(t *testing.T) {
	cases := []struct {
		in   float64
		want string
	}{
		{0, "R$ 0,00"},
		{1234.56, "R$ 1.234,56"},
		{1000000, "R$ 1.000.000,00"},
		{-42.5, "-R$ 42,50"},
		{999.99, "R$ 999,99"},
	}
	for _, tc := range cases {
		if got := FormatCurrency(tc.in); got != tc.want {
			t.Errorf("FormatCurrency(%v) = %q, want %q", tc.in, got, tc.want)
		}
	}
}

func TestFilename(t *testing.T) {
	now := time.Date(2024, 1, 15, 13, 5, 0, 0, time.UTC)

	if got := Filename(FormatCSV, now); got != "finances_20240115_130500.csv" {
		t.Errorf("got %q", got)
	}
	if got := Filename(FormatText, now); got != "finances_20240115_130500.txt" {
		t.Errorf("got %q", got)
	}
}

func TestWriteFile(t *testing.T) {
	txs := sampleTransactions()
	summary := reports.Summarize(txs)
	opts := Options{Format: FormatCSV, IncludeTransactions: true}

	t.Run("writes to a valid path", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "out.csv")
		testutil.AssertNoError(t, WriteFile(path, txs, summary, opts))
	})

	t.Run("surfaces an IO error for an unwritable target", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "missing", "out.csv")
		err := WriteFile(path, txs, summary, opts)
		testutil.AssertAppError(t, err, "EXPORT_IO_ERROR")
	})
}
