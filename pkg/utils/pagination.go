package utils

import "math"

// NormalizePaging validates a 1-based page request and caps the page size at
// maxSize. Out-of-range page numbers are rejected, never silently fixed up,
// including pages whose offset would not fit in an int.
func NormalizePaging(pageNumber, pageSize, maxSize int) (int, int, error) {
	if pageNumber < 1 {
		return 0, 0, ErrInvalidPage
	}
	if pageSize < 1 {
		return 0, 0, ErrInvalidPageSize
	}
	if pageSize > maxSize {
		pageSize = maxSize
	}
	if pageNumber-1 > math.MaxInt/pageSize {
		return 0, 0, ErrInvalidPage
	}
	return pageNumber, pageSize, nil
}

// Offset is the number of rows to skip for a 1-based page.
func Offset(pageNumber, pageSize int) int {
	return (pageNumber - 1) * pageSize
}
