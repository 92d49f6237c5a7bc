package client

import "strings"

// Filter returns the elements whose text contains search, ignoring case.
// An empty search keeps everything. items is never modified and the result
// is a new, non-nil slice.
func Filter[T any](items []T, search string, text func(T) string) []T {
	out := make([]T, 0, len(items))
	needle := strings.ToLower(search)
	for _, it := range items {
		if needle == "" || strings.Contains(strings.ToLower(text(it)), needle) {
			out = append(out, it)
		}
	}
	return out
}
