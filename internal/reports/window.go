package reports

import (
	"time"

	apperrors "fintrack/internal/errors"
	"fintrack/internal/models"
)

// Window selects the time range a report covers.
type Window string

const (
	WindowAll        Window = "all"
	WindowLast30Days Window = "30days"
	WindowThisMonth  Window = "this_month"
)

// ParseWindow validates a window name. An empty value means all data.
func ParseWindow(value string) (Window, error) {
	switch Window(value) {
	case "", WindowAll:
		return WindowAll, nil
	case WindowLast30Days:
		return WindowLast30Days, nil
	case WindowThisMonth:
		return WindowThisMonth, nil
	default:
		return "", apperrors.WithMessage(apperrors.ErrInvalidInput, "period must be all, 30days, or this_month")
	}
}

// Filter keeps the transactions that fall inside the window, comparing
// calendar dates only (time of day is ignored). A transaction whose
// occurrence date does not parse is kept: reports favour over-inclusion
// over silently losing rows.
func Filter(transactions []models.Transaction, window Window, now time.Time) []models.Transaction {
	if window == WindowAll {
		return transactions
	}

	filtered := make([]models.Transaction, 0, len(transactions))
	for _, tx := range transactions {
		occurred, ok := ParseOccurredAt(tx.OccurredAt)
		if !ok {
			filtered = append(filtered, tx)
			continue
		}

		switch window {
		case WindowLast30Days:
			if dateOnly(now).Sub(dateOnly(occurred)) <= 30*24*time.Hour {
				filtered = append(filtered, tx)
			}
		case WindowThisMonth:
			if occurred.Year() == now.Year() && occurred.Month() == now.Month() {
				filtered = append(filtered, tx)
			}
		}
	}
	return filtered
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
