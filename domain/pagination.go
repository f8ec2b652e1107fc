package domain

// Paginate slices items into fixed-size pages. pageCount has a floor of 1
// and the requested page is clamped into [1, pageCount], so out-of-range
// input degrades to a valid page instead of an error.
func Paginate[T any](items []T, page, pageSize int) (pageItems []T, clampedPage, pageCount int) {
	if pageSize < 1 {
		pageSize = 1
	}

	pageCount = (len(items) + pageSize - 1) / pageSize
	if pageCount < 1 {
		pageCount = 1
	}

	if page < 1 {
		page = 1
	}
	if page > pageCount {
		page = pageCount
	}

	start := (page - 1) * pageSize
	end := start + pageSize
	if start > len(items) {
		start = len(items)
	}
	if end > len(items) {
		end = len(items)
	}

	return items[start:end], page, pageCount
}

// ClampPageSize resolves a client-supplied page size against server-side
// bounds. Zero or negative requests fall back to the default.
func ClampPageSize(requested, fallback, max int) int {
	if requested < 1 {
		return fallback
	}
	if requested > max {
		return max
	}
	return requested
}

// CapItems bounds the candidate set before pagination math, independent of
// upstream feed size.
func CapItems[T any](items []T, max int) []T {
	if max > 0 && len(items) > max {
		return items[:max]
	}
	return items
}
