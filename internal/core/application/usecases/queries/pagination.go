package queries

// normalizePage applies the page defaults: negative skip is treated as
// zero, a non-positive limit falls back to DefaultPageSize, and limits
// above MaxPageSize are clamped.
func normalizePage(skip, limit int) (int, int) {
	if skip < 0 {
		skip = 0
	}
	if limit <= 0 {
		limit = DefaultPageSize
	}
	if limit > MaxPageSize {
		limit = MaxPageSize
	}
	return skip, limit
}
