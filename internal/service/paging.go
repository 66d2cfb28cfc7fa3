package service

const (
	defaultPageLimit = 50
	maxPageLimit     = 100
)

// normalizePaging clamps list paging parameters to safe values
func normalizePaging(page, limit int) (int, int) {
	if page < 1 {
		page = 1
	}
	if limit < 1 {
		limit = defaultPageLimit
	}
	if limit > maxPageLimit {
		limit = maxPageLimit
	}
	return page, limit
}
