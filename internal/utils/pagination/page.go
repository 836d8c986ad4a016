package pagination

// Meta describes the position of one page within a larger result set.
type Meta struct {
	Page       int
	Limit      int
	TotalCount int
	TotalPages int
	HasMore    bool
}

// Paginate slices a sorted item set into the requested page and computes page
// metadata. totalCount is the size of the full filtered set and is never
// altered by slicing. A page past the end yields an empty slice with accurate
// metadata rather than an error.
func Paginate[T any](items []T, page, limit, totalCount int) ([]T, Meta) {
	meta := Meta{
		Page:       page,
		Limit:      limit,
		TotalCount: totalCount,
		TotalPages: totalPages(totalCount, limit),
	}
	meta.HasMore = page < meta.TotalPages

	start := (page - 1) * limit
	if start >= len(items) {
		return []T{}, meta
	}
	end := start + limit
	if end > len(items) {
		end = len(items)
	}
	return items[start:end], meta
}

// totalPages is ceil(totalCount / limit).
func totalPages(totalCount, limit int) int {
	if limit <= 0 || totalCount <= 0 {
		return 0
	}
	return (totalCount + limit - 1) / limit
}
