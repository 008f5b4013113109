package entity

import (
	"fmt"
	"strings"
	"time"

	errs "github.com/yozi-budget/yozi-backend/internal/domain/error"
)

// DateLayout is the wire format for calendar dates
const DateLayout = "2006-01-02"

// Calendar dates (transaction dates, budget months) are represented as midnight UTC
// of the civil date. The year, month and day are taken from t in its own location,
// so callers convert "now" into the configured zone before calling DateOf.

// DateOf truncates t to its civil date
func DateOf(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// MonthStart returns the normalized month of t: the first day of its calendar month
func MonthStart(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, time.UTC)
}

// MonthEnd returns the last day of t's calendar month
func MonthEnd(t time.Time) time.Time {
	return MonthStart(t).AddDate(0, 1, -1)
}

// AddMonths shifts the normalized month of t by n months
func AddMonths(t time.Time, n int) time.Time {
	return MonthStart(t).AddDate(0, n, 0)
}

// DateRange is an inclusive range of calendar dates
type DateRange struct {
	From time.Time
	To   time.Time
}

// MonthRange returns [first day, last day] of t's month
func MonthRange(t time.Time) DateRange {
	return DateRange{From: MonthStart(t), To: MonthEnd(t)}
}

// Contains reports whether the civil date of t falls inside the range
func (r DateRange) Contains(t time.Time) bool {
	d := DateOf(t)
	return !d.Before(r.From) && !d.After(r.To)
}

// String formats the range for logging
func (r DateRange) String() string {
	return fmt.Sprintf("%s..%s", r.From.Format(DateLayout), r.To.Format(DateLayout))
}

// ParseDate parses a YYYY-MM-DD string into a calendar date
func ParseDate(value string) (time.Time, error) {
	value = strings.TrimSpace(value)
	if value == "" {
		return time.Time{}, fmt.Errorf("%w: date is required", errs.ErrInvalidDate)
	}

	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return time.Time{}, fmt.Errorf("%w: %q is not in %s format", errs.ErrInvalidDate, value, DateLayout)
	}

	return t, nil
}
