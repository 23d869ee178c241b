package utils

import (
	"errors"
	"regexp"
	"strings"
	"time"

	"taxidash.io/internal/trips"
)

// Compiled regular expressions for validation
var (
	// Detect potentially dangerous characters - more focused on injection patterns
	dangerousPattern = regexp.MustCompile(`[<>]|--|\/\*|\*\/|;.*--`)

	// Detect HTML/script tags
	htmlTagPattern = regexp.MustCompile(`<[^>]*>`)
)

const maxCompanyLength = 100

// ValidateCompany validates a company name taken from a query string.
// Empty names are allowed and select every company.
func ValidateCompany(company string) error {
	if company == "" {
		return nil
	}

	if len(company) > maxCompanyLength {
		return errors.New("company too long (max 100 characters)")
	}

	if dangerousPattern.MatchString(company) {
		return errors.New("company contains invalid characters")
	}

	return nil
}

// ValidateDate validates date strings in YYYY-MM-DD format
func ValidateDate(date string) error {
	// Empty dates are allowed (the default range applies)
	if date == "" {
		return nil
	}

	if _, err := time.Parse(trips.DateLayout, date); err != nil {
		return errors.New("invalid date format, use YYYY-MM-DD")
	}

	return nil
}

// ValidateDateRange rejects a range whose start is after its end.
func ValidateDateRange(start, end time.Time) error {
	if start.After(end) {
		return errors.New("start date must not be after end date")
	}
	return nil
}

// ValidatePrecision validates a geohash precision. Zero disables bucketing.
func ValidatePrecision(precision, max int) error {
	if precision < 0 || precision > max {
		return errors.New("precision must be between 0 and 12")
	}
	return nil
}

// SanitizeInput removes HTML tags and other potentially dangerous content
func SanitizeInput(input string) string {
	// Remove HTML tags
	sanitized := htmlTagPattern.ReplaceAllString(input, "")

	// Trim whitespace
	sanitized = strings.TrimSpace(sanitized)

	return sanitized
}

// ValidateAndSanitizeCompany validates a company name and returns it
// sanitized and canonicalized.
func ValidateAndSanitizeCompany(company string) (string, error) {
	if err := ValidateCompany(company); err != nil {
		return "", err
	}

	return trips.NormalizeCompany(SanitizeInput(company)), nil
}
