package db

import "strings"

// CaseInsensitiveLike builds an OR-combined case-insensitive substring
// predicate over the given columns for free-text search.
func CaseInsensitiveLike(columns []string, query string) (string, []interface{}) {
	pattern := "%" + strings.ToLower(query) + "%"
	conds := make([]string, len(columns))
	args := make([]interface{}, len(columns))
	for i, c := range columns {
		conds[i] = "LOWER(" + c + ") LIKE ?"
		args[i] = pattern
	}
	return strings.Join(conds, " OR "), args
}
