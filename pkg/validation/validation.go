package validation

import (
	"fmt"
	"time"
)

const MinPage = 1

func ValidatePage(page int) error {
	if page < MinPage {
		return fmt.Errorf("page must be %d or greater, got %d", MinPage, page)
	}
	return nil
}

func ValidateNonEmptyString(fieldName, value string) error {
	if value == "" {
		return fmt.Errorf("%s cannot be empty", fieldName)
	}
	return nil
}

func ValidateBookingStatus(status string) error {
	if status == "" {
		return nil // no filter
	}
	validStatuses := map[string]bool{
		"pending":   true,
		"confirmed": true,
		"active":    true,
		"completed": true,
		"cancelled": true,
	}
	if !validStatuses[status] {
		return fmt.Errorf("invalid booking status: %s (must be one of: pending, confirmed, active, completed, cancelled)", status)
	}
	return nil
}

// ValidateDateRange checks that both dates parse as YYYY-MM-DD and that from
// does not come after to.
func ValidateDateRange(from, to string) error {
	fromDate, err := time.Parse("2006-01-02", from)
	if err != nil {
		return fmt.Errorf("invalid from date: %s (expected YYYY-MM-DD)", from)
	}
	toDate, err := time.Parse("2006-01-02", to)
	if err != nil {
		return fmt.Errorf("invalid to date: %s (expected YYYY-MM-DD)", to)
	}
	if fromDate.After(toDate) {
		return fmt.Errorf("from date %s is after to date %s", from, to)
	}
	return nil
}
