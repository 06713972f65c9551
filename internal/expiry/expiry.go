// Package expiry converts calendar-date strings into parsed dates, display
// format, and an expiry classification used for alerting and filtering.
package expiry

import (
	"fmt"
	"math"
	"time"
)

// Classification codes.
const (
	CodeNone    = "none"
	CodeExpired = "expired"
	CodeWarning = "warning"
	CodeGood    = "good"
)

// WarningWindowDays is the inclusive upper bound of the "expiring soon" window.
const WarningWindowDays = 90

// wireFormat is the calendar-date format items carry on the wire and in storage.
const wireFormat = "2006-01-02"

// displayFormat is the human-facing date format used in the UI and CSV export.
const displayFormat = "02/01/2006"

// Classification describes how close an item is to its expiry date.
// Days is nil when the item has no parseable expiry date.
type Classification struct {
	Label string `json:"label"`
	Code  string `json:"code"`
	Days  *int   `json:"days"`
}

// Parse converts a wire-format date string into a time.Time.
// Returns false on empty or unparseable input.
func Parse(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	t, err := time.Parse(wireFormat, s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}

// Format renders a wire-format date string as DD/MM/YYYY.
// Returns "" when the input cannot be parsed.
func Format(s string) string {
	t, ok := Parse(s)
	if !ok {
		return ""
	}
	return t.Format(displayFormat)
}

// DaysBetween returns the whole-day difference between two instants, with
// both sides truncated to midnight so DST shifts cannot produce fractional
// days.
func DaysBetween(from, to time.Time) int {
	a := time.Date(from.Year(), from.Month(), from.Day(), 0, 0, 0, 0, time.UTC)
	b := time.Date(to.Year(), to.Month(), to.Day(), 0, 0, 0, 0, time.UTC)
	return int(math.Round(b.Sub(a).Hours() / 24))
}

// Classify determines the expiry state of a date string relative to today.
func Classify(s string, today time.Time) Classification {
	d, ok := Parse(s)
	if !ok {
		return Classification{Label: "No Expiry", Code: CodeNone}
	}

	days := DaysBetween(today, d)
	switch {
	case days < 0:
		return Classification{Label: "Expired", Code: CodeExpired, Days: &days}
	case days <= WarningWindowDays:
		return Classification{Label: fmt.Sprintf("Expires in %d %s", days, dayNoun(days)), Code: CodeWarning, Days: &days}
	default:
		return Classification{Label: fmt.Sprintf("%d %s left", days, dayNoun(days)), Code: CodeGood, Days: &days}
	}
}

func dayNoun(n int) string {
	if n == 1 {
		return "day"
	}
	return "days"
}
