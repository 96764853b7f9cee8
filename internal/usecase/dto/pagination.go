// Package dto carries the request and response schemas of the use case
// layer. Inbound types declare validator tags mirroring the domain bounds;
// outbound types are built from entities and never expose password hashes.
package dto

// Pagination defaults and cap.
const (
	DefaultPage         = 1
	DefaultItemsPerPage = 20
	MaxItemsPerPage     = 100
)

// PageParams is the inbound pagination query.
type PageParams struct {
	Page         int `query:"page"`
	ItemsPerPage int `query:"items_per_page"`
}

// Normalized clamps the raw query values to the supported range. Zero and
// negative values fall back to the defaults.
func (p PageParams) Normalized() (page, itemsPerPage int) {
	page = p.Page
	if page < 1 {
		page = DefaultPage
	}
	itemsPerPage = p.ItemsPerPage
	if itemsPerPage < 1 {
		itemsPerPage = DefaultItemsPerPage
	}
	if itemsPerPage > MaxItemsPerPage {
		itemsPerPage = MaxItemsPerPage
	}
	return page, itemsPerPage
}

// PageMeta describes one page of a listing.
type PageMeta struct {
	TotalCount   int64 `json:"total_count"`
	Page         int   `json:"page"`
	ItemsPerPage int   `json:"items_per_page"`
}

// NewPageMeta builds the listing metadata.
func NewPageMeta(total int64, page, itemsPerPage int) PageMeta {
	return PageMeta{TotalCount: total, Page: page, ItemsPerPage: itemsPerPage}
}
