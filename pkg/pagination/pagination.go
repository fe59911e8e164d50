// Package pagination pages through listings served by the api and the cli
package pagination

// MaxPageSize caps how many items one page may hold
const MaxPageSize = 500

// Params selects one page. A PageSize of 0 means everything on a single page.
type Params struct {
	Page     int
	PageSize int
}

// CalculateOffsetLimit turns the page into a storage offset and limit.
// A limit of 0 means no limit.
func (p Params) CalculateOffsetLimit() (offset, limit int) {
	if p.PageSize <= 0 {
		return 0, 0
	}

	page := p.Page
	if page < 1 {
		page = 1
	}

	limit = min(p.PageSize, MaxPageSize)
	return (page - 1) * limit, limit
}

// BuildMeta describes the page given the total number of matching items
func (p Params) BuildMeta(totalItems int) Meta {
	meta := Meta{
		Page:       max(p.Page, 1),
		TotalItems: totalItems,
	}

	_, meta.PageSize = p.CalculateOffsetLimit()
	switch {
	case meta.PageSize > 0:
		meta.TotalPages = (totalItems + meta.PageSize - 1) / meta.PageSize
	case totalItems > 0:
		meta.TotalPages = 1
	}

	return meta
}

// Meta is returned next to a page of items
type Meta struct {
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalItems int `json:"totalItems"`
	TotalPages int `json:"totalPages"`
}
