package pagination

import "errors"

// ErrPageOutOfRange is returned when the requested page number falls outside
// [1, TotalPages]. Callers treat it as a not-found condition, not a server
// error.
var ErrPageOutOfRange = errors.New("page not found")

// TotalPages returns ceil(count / pageSize). An empty set has zero pages:
// no page number is valid against it.
func TotalPages(count, pageSize int) int {
	if count == 0 {
		return 0
	}
	return (count + pageSize - 1) / pageSize
}

// Slice returns the items belonging to the given 1-based page. The page
// slices partition the input with no overlap and no gaps: concatenating
// pages 1..TotalPages reproduces the input exactly.
//
// Returns ErrPageOutOfRange when page < 1 or page > TotalPages, including
// every page against an empty input. The function is pure and holds no
// state between invocations.
func Slice[T any](items []T, page, pageSize int) ([]T, error) {
	totalPages := TotalPages(len(items), pageSize)
	if page < 1 || page > totalPages {
		return nil, ErrPageOutOfRange
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], nil
}
