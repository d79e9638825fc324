// internal/pkg/pagination/pagination.go
package pagination

// Ellipsis marks a collapsed gap in the visible page window.
const Ellipsis = -1

// DefaultDelta is the number of pages shown on each side of the current page.
const DefaultDelta = 2

// Paginator computes page counts, item slices and the visible page-number
// window for a fixed page size. Pages are 1-indexed.
type Paginator struct {
	page     int
	pageSize int
	total    int
	delta    int
}

// New creates a paginator positioned on page 1.
func New(pageSize, delta int) *Paginator {
	if pageSize <= 0 {
		pageSize = 1
	}
	if delta <= 0 {
		delta = DefaultDelta
	}
	return &Paginator{page: 1, pageSize: pageSize, delta: delta}
}

// SetTotal updates the total item count. The current page is clamped into
// the new valid range.
func (p *Paginator) SetTotal(total int) {
	if total < 0 {
		total = 0
	}
	p.total = total
	if p.page > p.TotalPages() {
		p.page = p.TotalPages()
	}
}

// Page returns the current page.
func (p *Paginator) Page() int {
	return p.page
}

// PageSize returns the fixed page size.
func (p *Paginator) PageSize() int {
	return p.pageSize
}

// TotalItems returns the total item count.
func (p *Paginator) TotalItems() int {
	return p.total
}

// TotalPages returns ceil(total/pageSize), never less than 1.
func (p *Paginator) TotalPages() int {
	pages := (p.total + p.pageSize - 1) / p.pageSize
	if pages < 1 {
		pages = 1
	}
	return pages
}

// SetPage moves to the given page. Out-of-range requests are rejected and
// the returned bool reports whether the page changed.
func (p *Paginator) SetPage(page int) bool {
	if page < 1 || page > p.TotalPages() {
		return false
	}
	p.page = page
	return true
}

// Reset returns to page 1.
func (p *Paginator) Reset() {
	p.page = 1
}

// CanPrev reports whether a previous page exists.
func (p *Paginator) CanPrev() bool {
	return p.page > 1
}

// CanNext reports whether a next page exists.
func (p *Paginator) CanNext() bool {
	return p.page < p.TotalPages()
}

// Prev moves one page back; rejected at page 1.
func (p *Paginator) Prev() bool {
	if !p.CanPrev() {
		return false
	}
	p.page--
	return true
}

// Next moves one page forward; rejected at the last page.
func (p *Paginator) Next() bool {
	if !p.CanNext() {
		return false
	}
	p.page++
	return true
}

// SliceBounds returns the half-open [start, end) item range for the current
// page, clamped to the total item count.
func (p *Paginator) SliceBounds() (int, int) {
	start := (p.page - 1) * p.pageSize
	if start > p.total {
		start = p.total
	}
	end := start + p.pageSize
	if end > p.total {
		end = p.total
	}
	return start, end
}

// VisiblePages returns the page numbers to render: always the first and last
// page, up to delta pages on each side of the current page, with any gap
// larger than one page collapsed into an Ellipsis marker.
func (p *Paginator) VisiblePages() []int {
	totalPages := p.TotalPages()

	var window []int
	for i := max(2, p.page-p.delta); i <= min(totalPages-1, p.page+p.delta); i++ {
		window = append(window, i)
	}

	pages := make([]int, 0, len(window)+4)
	if p.page-p.delta > 2 {
		pages = append(pages, 1, Ellipsis)
	} else {
		pages = append(pages, 1)
	}

	pages = append(pages, window...)

	if p.page+p.delta < totalPages-1 {
		pages = append(pages, Ellipsis, totalPages)
	} else if totalPages > 1 {
		pages = append(pages, totalPages)
	}

	return pages
}
