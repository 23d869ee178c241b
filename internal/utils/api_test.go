package utils

import (
	"net/url"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"taxidash.io/internal/trips"
)

func TestParseSelectionDefaults(t *testing.T) {
	sel, fieldErrors := ParseSelection(url.Values{})
	assert.Empty(t, fieldErrors)
	assert.Equal(t, trips.DefaultSelection(), sel)
}

func TestParseSelection(t *testing.T) {
	params := url.Values{
		"company": {"Flash Cab"},
		"start":   {"2024-01-02"},
		"end":     {"2024-01-31"},
	}

	sel, fieldErrors := ParseSelection(params)
	assert.Empty(t, fieldErrors)
	assert.Equal(t, "Flash Cab", sel.Company)
	assert.Equal(t, time.Date(2024, time.January, 2, 0, 0, 0, 0, time.UTC), sel.Start)
	assert.Equal(t, time.Date(2024, time.January, 31, 0, 0, 0, 0, time.UTC), sel.End)
}

func TestParseSelectionErrors(t *testing.T) {
	t.Run("bad date", func(t *testing.T) {
		_, fieldErrors := ParseSelection(url.Values{"start": {"January"}})
		assert.Equal(t, []string{"invalid date format, use YYYY-MM-DD"}, fieldErrors["start"])
	})

	t.Run("reversed range", func(t *testing.T) {
		_, fieldErrors := ParseSelection(url.Values{"start": {"2024-03-01"}, "end": {"2024-01-01"}})
		assert.Equal(t, []string{"start date must not be after end date"}, fieldErrors["start"])
	})

	t.Run("bad company", func(t *testing.T) {
		_, fieldErrors := ParseSelection(url.Values{"company": {"<x>"}})
		assert.Len(t, fieldErrors["company"], 1)
	})
}

func TestParseIntParam(t *testing.T) {
	n, fieldErrors := ParseIntParam(url.Values{"precision": {"5"}}, "precision", 0, nil)
	assert.Equal(t, 5, n)
	assert.Empty(t, fieldErrors)

	n, fieldErrors = ParseIntParam(url.Values{}, "precision", 3, nil)
	assert.Equal(t, 3, n)
	assert.Empty(t, fieldErrors)

	n, fieldErrors = ParseIntParam(url.Values{"precision": {"high"}}, "precision", 0, nil)
	assert.Equal(t, 0, n)
	assert.Equal(t, []string{`Invalid field value for field "precision".`}, fieldErrors["precision"])
}
