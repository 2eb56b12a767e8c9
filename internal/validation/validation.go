// Package validation parses and validates user-supplied amount, date, type,
// and category text. Dates exist in two text forms: the display form
// "DD/MM/YYYY HH:MM" shown to users and the storage form
// "YYYY-MM-DD HH:MM:SS" kept in the store. Conversion between the two is
// lossless except for seconds: the display form has minute precision, so
// seconds are zeroed on the way into storage and dropped on the way out.
package validation

import (
	"slices"
	"strconv"
	"strings"
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Timestamp text layouts.
const (
	DisplayLayout     = "02/01/2006 15:04"
	StorageLayout     = "2006-01-02 15:04:05"
	StorageDateLayout = "2006-01-02"
)

// Amount parses a monetary amount. Both "." and "," are accepted as the
// fractional separator; the value must be strictly greater than zero.
func Amount(text string) (float64, error) {
	normalized := strings.ReplaceAll(strings.TrimSpace(text), ",", ".")
	value, err := strconv.ParseFloat(normalized, 64)
	if err != nil {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount "+strconv.Quote(text)+" is not a number")
	}
	if value <= 0 {
		return 0, apperrors.WithMessage(apperrors.ErrInvalidAmount, "amount must be greater than zero")
	}
	return value, nil
}

// DisplayDateTime strictly parses a display-form timestamp.
func DisplayDateTime(text string) (time.Time, error) {
	t, err := time.Parse(DisplayLayout, text)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "date must match DD/MM/YYYY HH:MM")
	}
	return t, nil
}

// StorageDateTime strictly parses a storage-form timestamp.
func StorageDateTime(text string) (time.Time, error) {
	t, err := time.Parse(StorageLayout, text)
	if err != nil {
		return time.Time{}, apperrors.WithMessage(apperrors.ErrInvalidDate, "date must match YYYY-MM-DD HH:MM:SS")
	}
	return t, nil
}

// DisplayToStorage converts a display-form timestamp to storage form.
// Seconds are not representable in the display form and default to 00.
func DisplayToStorage(text string) (string, error) {
	t, err := DisplayDateTime(text)
	if err != nil {
		return "", err
	}
	return t.Format(StorageLayout), nil
}

// StorageToDisplay converts a storage-form timestamp to display form,
// dropping seconds. A date-only value renders with a 00:00 time. Anything
// else is returned unchanged so that malformed legacy rows still display.
func StorageToDisplay(text string) string {
	if t, err := time.Parse(StorageLayout, text); err == nil {
		return t.Format(DisplayLayout)
	}
	if t, err := time.Parse(StorageDateLayout, text); err == nil {
		return t.Format(DisplayLayout)
	}
	return text
}

// TransactionType checks membership in {income, expense}.
func TransactionType(value string) (models.TransactionType, error) {
	t := models.TransactionType(value)
	if !t.Valid() {
		return "", apperrors.ErrInvalidType
	}
	return t, nil
}

// Category checks membership in the provided category list.
func Category(value string, allowed []string) error {
	if !slices.Contains(allowed, value) {
		return apperrors.WithMessage(apperrors.ErrInvalidCategory, "unknown category "+strconv.Quote(value))
	}
	return nil
}
