package helpers

import "math"

const (
	DefaultPage  = 1
	DefaultLimit = 10
	MaxLimit     = 100
)

// ClampPagination normalizes raw page/limit values to the allowed ranges
// (page >= 1, 1 <= limit <= 100) and returns them with the SQL offset.
func ClampPagination(page, limit int) (normPage, normLimit int, offset uint64) {
	if page < 1 {
		page = DefaultPage
	}
	if limit < 1 || limit > MaxLimit {
		limit = DefaultLimit
	}
	return page, limit, uint64((page - 1) * limit)
}

// TotalPages computes ceil(total / limit) for the list meta block.
func TotalPages(total int64, limit int) int {
	if limit < 1 {
		limit = DefaultLimit
	}
	if total <= 0 {
		return 0
	}
	return int(math.Ceil(float64(total) / float64(limit)))
}

// NormalizeOrder maps a raw order value to "ASC" or "DESC", defaulting
// to descending.
func NormalizeOrder(order string) string {
	if order == "asc" || order == "ASC" {
		return "ASC"
	}
	return "DESC"
}
