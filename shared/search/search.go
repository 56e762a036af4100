// Package search filters in-memory collections with composable predicates.
// List endpoints load the full working set from the repository, then narrow it
// here with a free-text query and categorical selectors combined with AND.
package search

import "strings"

// Predicate reports whether an item should survive filtering.
type Predicate[T any] func(item T) bool

// Text matches when the query, lowercased and trimmed, is a substring of at
// least one of the extracted fields. An empty query matches everything.
func Text[T any](query string, fields func(item T) []string) Predicate[T] {
	query = strings.ToLower(strings.TrimSpace(query))

	return func(item T) bool {
		if query == "" {
			return true
		}

		for _, field := range fields(item) {
			if strings.Contains(strings.ToLower(field), query) {
				return true
			}
		}

		return false
	}
}

// Term matches when the extracted field equals the selected value exactly.
// The sentinel value "all" (or an empty selection) disables the constraint.
func Term[T any](selected string, field func(item T) string) Predicate[T] {
	return func(item T) bool {
		if selected == "" || selected == "all" {
			return true
		}

		return field(item) == selected
	}
}

// Apply keeps the items satisfying every predicate, preserving input order.
// The input slice is never mutated.
func Apply[T any](items []T, predicates ...Predicate[T]) []T {
	result := make([]T, 0, len(items))

	for _, item := range items {
		keep := true

		for _, predicate := range predicates {
			if !predicate(item) {
				keep = false

				break
			}
		}

		if keep {
			result = append(result, item)
		}
	}

	return result
}
