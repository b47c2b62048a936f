package utils

// Paginate normalizes a 1-based page/limit pair and returns the query offset
func Paginate(page, limit int) (offset, normalizedLimit int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = 10
	}
	return (page - 1) * limit, limit
}
