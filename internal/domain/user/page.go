package user

const (
	// DefaultPage is used when no page is supplied.
	DefaultPage int64 = 1
	// DefaultPageSize is used when no page size is supplied.
	DefaultPageSize int64 = 10
	// MaxPageSize caps a single page of results.
	MaxPageSize int64 = 100
)

// PageRequest describes one page of an ordered listing.
type PageRequest struct {
	Page     int64 // 1-based page number
	PageSize int64 // records per page
}

// Normalize clamps out-of-range values to safe defaults.
// Page 0 or negative would produce a negative offset; it is clamped to the
// first page rather than rejected.
func (p PageRequest) Normalize() PageRequest {
	if p.Page <= 0 {
		p.Page = DefaultPage
	}
	if p.PageSize <= 0 {
		p.PageSize = DefaultPageSize
	}
	if p.PageSize > MaxPageSize {
		p.PageSize = MaxPageSize
	}
	return p
}

// Offset returns the zero-based index of the first record on the page.
func (p PageRequest) Offset() int64 {
	return (p.Page - 1) * p.PageSize
}
