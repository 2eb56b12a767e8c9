// Package export serializes a transaction set and its summary into CSV,
// JSON, or a fixed-width text report. Exporting is a pure read-then-format
// pipeline: it never touches the store, and the transaction order is
// whatever the caller passed in (the API passes most-recent first).
package export

import (
	"io"
	"os"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
	"fintrack/internal/reports"
)

// Format identifies an export serialization.
type Format string

const (
	FormatCSV  Format = "csv"
	FormatJSON Format = "json"
	FormatText Format = "text"
)

// ParseFormat validates a format name.
func ParseFormat(value string) (Format, error) {
	switch Format(value) {
	case FormatCSV, FormatJSON, FormatText:
		return Format(value), nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrUnsupportedFormat, "format must be csv, json, or text")
	}
}

// Options selects what an export contains and how it is serialized.
type Options struct {
	Format              Format
	IncludeSummary      bool
	IncludeTransactions bool
}

// Write serializes the given transactions and summary to w.
func Write(w io.Writer, transactions []models.Transaction, summary reports.Summary, opts Options) error {
	switch opts.Format {
	case FormatCSV:
		return writeCSV(w, transactions, summary, opts)
	case FormatJSON:
		return writeJSON(w, transactions, summary, opts)
	case FormatText:
		return writeText(w, transactions, summary, opts)
	default:
		return apperrors.ErrUnsupportedFormat
	}
}

// WriteFile exports to a file path. An unwritable target surfaces as an
// EXPORT_IO_ERROR; it is never retried.
func WriteFile(path string, transactions []models.Transaction, summary reports.Summary, opts Options) error {
	f, err := os.Create(path)
	if err != nil {
		return apperrors.Wrap(apperrors.ErrExportIO, err)
	}
	defer f.Close()

	if err := Write(f, transactions, summary, opts); err != nil {
		return err
	}
	if err := f.Sync(); err != nil {
		return apperrors.Wrap(apperrors.ErrExportIO, err)
	}
	return nil
}

// Filename generates a timestamped export file name.
func Filename(format Format, now time.Time) string {
	ext := string(format)
	if format == FormatText {
		ext = "txt"
	}
	return "finances_" + now.Format("20060102_150405") + "." + ext
}

// ContentType returns the MIME type served for the format.
func ContentType(format Format) string {
	switch format {
	case FormatCSV:
		return "text/csv"
	case FormatJSON:
		return "application/json"
	default:
		return "text/plain; charset=utf-8"
	}
}
