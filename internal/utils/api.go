package utils

import (
	"fmt"
	"net/url"
	"strconv"
	"time"

	"taxidash.io/internal/trips"
)

// ParseIntParam retrieves an int value from the provided URL query parameters.
// If the key is not present it returns def; if the value is invalid it
// returns def and records a field error.
func ParseIntParam(params url.Values, key string, def int, fieldErrors map[string][]string) (int, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if val == "" {
		return def, fieldErrors
	}

	n, err := strconv.Atoi(val)
	if err != nil {
		fieldErrors[key] = append(fieldErrors[key], fmt.Sprintf("Invalid field value for field %q.", key))
		return def, fieldErrors
	}
	return n, fieldErrors
}

// ParseDateParam retrieves a YYYY-MM-DD date from the query, falling back to
// def when the key is absent.
func ParseDateParam(params url.Values, key string, def time.Time, fieldErrors map[string][]string) (time.Time, map[string][]string) {
	if fieldErrors == nil {
		fieldErrors = make(map[string][]string)
	}

	val := params.Get(key)
	if err := ValidateDate(val); err != nil {
		fieldErrors[key] = append(fieldErrors[key], err.Error())
		return def, fieldErrors
	}
	if val == "" {
		return def, fieldErrors
	}

	t, _ := time.Parse(trips.DateLayout, val)
	return t, fieldErrors
}

// ParseSelection reads the company, start and end query parameters. Missing
// dates take the default range. The returned map is empty when the
// selection is valid.
func ParseSelection(params url.Values) (trips.Selection, map[string][]string) {
	fieldErrors := make(map[string][]string)
	sel := trips.DefaultSelection()

	company, err := ValidateAndSanitizeCompany(params.Get("company"))
	if err != nil {
		fieldErrors["company"] = append(fieldErrors["company"], err.Error())
	}
	sel.Company = company

	sel.Start, fieldErrors = ParseDateParam(params, "start", trips.DefaultStart, fieldErrors)
	sel.End, fieldErrors = ParseDateParam(params, "end", trips.DefaultEnd, fieldErrors)

	if len(fieldErrors["start"]) == 0 && len(fieldErrors["end"]) == 0 {
		if err := ValidateDateRange(sel.Start, sel.End); err != nil {
			fieldErrors["start"] = append(fieldErrors["start"], err.Error())
		}
	}

	return sel, fieldErrors
}
