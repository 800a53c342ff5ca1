package views

// Paginator keeps a cursor inside a fixed-size window over a list
type Paginator struct {
	pageSize int
	offset   int
	cursor   int
	total    int
}

// NewPaginator creates a paginator showing pageSize rows
func NewPaginator(pageSize int) *Paginator {
	if pageSize <= 0 {
		pageSize = 10
	}
	return &Paginator{pageSize: pageSize}
}

// SetPageSize changes the window height, keeping the cursor visible
func (p *Paginator) SetPageSize(size int) {
	if size > 0 {
		p.pageSize = size
		p.follow()
	}
}

// SetTotal sets the list length and clamps the cursor
func (p *Paginator) SetTotal(total int) {
	p.total = total
	p.cursor = max(0, min(p.cursor, total-1))
	p.follow()
}

// Cursor returns the absolute cursor position
func (p *Paginator) Cursor() int { return p.cursor }

// Total returns the list length
func (p *Paginator) Total() int { return p.total }

// Move shifts the cursor by delta rows within bounds
func (p *Paginator) Move(delta int) {
	p.cursor = max(0, min(p.cursor+delta, p.total-1))
	p.follow()
}

// VisibleRange returns the half-open range of rows on screen
func (p *Paginator) VisibleRange() (start, end int) {
	return p.offset, min(p.offset+p.pageSize, p.total)
}

// follow scrolls the window so the cursor stays on screen
func (p *Paginator) follow() {
	switch {
	case p.cursor < p.offset:
		p.offset = p.cursor
	case p.cursor >= p.offset+p.pageSize:
		p.offset = p.cursor - p.pageSize + 1
	}
	p.offset = max(0, min(p.offset, p.total-p.pageSize))
}
