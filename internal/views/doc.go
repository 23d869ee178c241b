// Package views shapes filtered trips into the small tables the dashboard's
// charts and map layers consume. Column names in the JSON output are the
// contract with the display layer and must not change.
package views
