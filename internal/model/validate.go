package model

import (
	"strconv"
	"strings"
)

// ValidationError carries every rule violation found in a submission.
type ValidationError []string

func (e ValidationError) Error() string {
	return strings.Join(e, "; ")
}

// Validate checks a payload against the submission rules and returns all
// violations, not just the first. An empty result means the payload is valid.
// The payload is not mutated.
func Validate(p Payload) ValidationError {
	var errs ValidationError

	if p.Category == "" {
		errs = append(errs, "Category is required")
	}
	if p.ItemName == "" {
		errs = append(errs, "Item name is required")
	}
	if p.ExpiryDate == "" {
		errs = append(errs, "Expiry date is required")
	}

	q := strings.TrimSpace(p.Quantity)
	if q == "" {
		return errs
	}
	n, err := strconv.Atoi(q)
	if err != nil {
		errs = append(errs, "Quantity must be a number")
	} else if n < 0 {
		errs = append(errs, "Quantity cannot be negative")
	}

	return errs
}
