package core

import (
	"fmt"
	"time"
)

const (
	dateLayout      = "2006-01-02"
	timestampLayout = "2006-01-02 15:04"
)

// Clock holds the process-wide simulated date. Every date-dependent
// derivation reads the same clock, so advancing it re-ages the whole
// ledger consistently. Tests inject arbitrary start dates.
type Clock struct {
	now time.Time
}

// NewClock returns a clock positioned at the given instant.
func NewClock(start time.Time) *Clock {
	return &Clock{now: start}
}

// Today returns the current simulated date truncated to midnight UTC.
func (c *Clock) Today() time.Time {
	return dateOnly(c.now)
}

// DateString returns the current simulated date as YYYY-MM-DD.
func (c *Clock) DateString() string {
	return c.now.Format(dateLayout)
}

// Timestamp returns the current simulated instant as YYYY-MM-DD HH:MM,
// the format used by history entries.
func (c *Clock) Timestamp() string {
	return c.now.Format(timestampLayout)
}

// Advance moves the clock forward by the given number of calendar days.
// The clock only moves forward: days must be positive.
func (c *Clock) Advance(days int) error {
	if days <= 0 {
		return fmt.Errorf("%w: advance requires a positive day count, got %d", ErrValidation, days)
	}
	c.now = c.now.AddDate(0, 0, days)
	return nil
}

// ParseDate parses a YYYY-MM-DD calendar date.
func ParseDate(s string) (time.Time, error) {
	t, err := time.Parse(dateLayout, s)
	if err != nil {
		return time.Time{}, fmt.Errorf("invalid date %q: %w", s, err)
	}
	return t, nil
}

// DaysBetween returns the whole-day difference a − b, ignoring time of day.
// The result is negative when a is before b.
func DaysBetween(a, b time.Time) int {
	return int(dateOnly(a).Sub(dateOnly(b)).Hours() / 24)
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
