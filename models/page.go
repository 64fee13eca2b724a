package models

// Pagination describes one page of a filtered result set. Total counts
// the whole filtered set, not just the returned slice.
type Pagination struct {
	Page  int64 `json:"page"`
	Limit int64 `json:"limit"`
	Total int64 `json:"total"`
	Pages int64 `json:"pages"`
}

// TradePage is a paginated, enriched trade listing.
type TradePage struct {
	Data       []Trade    `json:"data"`
	Pagination Pagination `json:"pagination"`
}

// NewPagination computes page metadata; Pages is ceil(total/limit).
func NewPagination(page, limit, total int64) Pagination {
	pages := int64(0)
	if total > 0 {
		pages = (total + limit - 1) / limit
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}
