package repository

// Pagination defaults applied when the caller omits or mangles the query
// parameters.
const (
	DefaultPage     = 1
	DefaultPageSize = 10
)

// Pagination describes one page of a listing.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"pageSize"`
	TotalItems int64 `json:"totalItems"`
	TotalPages int   `json:"totalPages"`
}

// NormalizePage clamps page and pageSize to the defaults when non-positive.
func NormalizePage(page, pageSize int) (int, int) {
	if page < 1 {
		page = DefaultPage
	}
	if pageSize < 1 {
		pageSize = DefaultPageSize
	}
	return page, pageSize
}

// NewPagination computes page metadata. TotalPages is ceil(total/pageSize);
// a page beyond range is legal and simply yields an empty item list.
func NewPagination(page, pageSize int, totalItems int64) Pagination {
	totalPages := int((totalItems + int64(pageSize) - 1) / int64(pageSize))
	return Pagination{
		Page:       page,
		PageSize:   pageSize,
		TotalItems: totalItems,
		TotalPages: totalPages,
	}
}

// Offset returns the number of rows to skip for this page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}
