package db

import (
	"strings"
)

// IsMissingTable checks if an error indicates a table that does not exist.
// A language distribution may omit whole tables (e.g. no morpho table for
// index-model languages); the accessor reports those as absent, never as a
// failure.
//
// The string matching is necessary because the sqlite driver returns its own
// error types that we cannot wrap at the source.
func IsMissingTable(err error) bool {
	if err == nil {
		return false
	}
	return strings.Contains(err.Error(), "no such table")
}
