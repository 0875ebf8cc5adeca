package utils

import (
	"errors"
	"regexp"
	"time"
)

// Date parameters arrive as YYYY-MM-DD strings on the query string and the
// report form.
const dateLayout = "2006-01-02"

var datePattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)

// ValidateDate validates date strings in YYYY-MM-DD format.
func ValidateDate(date string) error {
	if date == "" {
		return errors.New("date cannot be empty")
	}

	if !datePattern.MatchString(date) {
		return errors.New("date must be in YYYY-MM-DD format")
	}

	if _, err := time.Parse(dateLayout, date); err != nil {
		return errors.New("invalid date value")
	}

	return nil
}

// ParseDate parses a YYYY-MM-DD string after validating it.
func ParseDate(date string) (time.Time, error) {
	if err := ValidateDate(date); err != nil {
		return time.Time{}, err
	}
	return time.Parse(dateLayout, date)
}

// ValidateDateRange validates that from does not come after to.
func ValidateDateRange(from, to time.Time) error {
	if from.After(to) {
		return errors.New("from date cannot be after to date")
	}
	return nil
}
