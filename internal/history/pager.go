package history

// Pager slices a sequence into fixed-size pages. Pages are 1-indexed and the
// current page starts at 1. An empty sequence has 0 total pages with the
// current page clamped to 1; Page then returns an empty slice. The pager
// lives for the lifetime of its view and has no terminal state.
type Pager[T any] struct {
	items    []T
	pageSize int
	current  int
}

// NewPager creates a pager over items. A non-positive pageSize falls back
// to 1.
func NewPager[T any](items []T, pageSize int) *Pager[T] {
	if pageSize < 1 {
		pageSize = 1
	}
	return &Pager[T]{
		items:    items,
		pageSize: pageSize,
		current:  1,
	}
}

// SetItems replaces the sequence and resets to page 1. Call this whenever
// the filtered set changes so stale page numbers never persist.
func (p *Pager[T]) SetItems(items []T) {
	p.items = items
	p.Reset()
}

// Len returns the number of items in the full sequence.
func (p *Pager[T]) Len() int {
	return len(p.items)
}

// CurrentPage returns the 1-indexed current page number.
func (p *Pager[T]) CurrentPage() int {
	return p.current
}

// TotalPages returns ceil(len/pageSize); 0 for an empty sequence.
func (p *Pager[T]) TotalPages() int {
	return (len(p.items) + p.pageSize - 1) / p.pageSize
}

// Page returns the slice of items on the current page.
func (p *Pager[T]) Page() []T {
	start := (p.current - 1) * p.pageSize
	if start >= len(p.items) {
		return []T{}
	}
	end := start + p.pageSize
	if end > len(p.items) {
		end = len(p.items)
	}
	return p.items[start:end]
}

// GoToPage moves to page n; a no-op when n is outside [1, TotalPages].
func (p *Pager[T]) GoToPage(n int) {
	if n >= 1 && n <= p.TotalPages() {
		p.current = n
	}
}

// Next advances one page; a no-op on the last page.
func (p *Pager[T]) Next() {
	if p.HasNext() {
		p.current++
	}
}

// Prev moves back one page; a no-op on the first page.
func (p *Pager[T]) Prev() {
	if p.HasPrev() {
		p.current--
	}
}

// Reset returns to page 1.
func (p *Pager[T]) Reset() {
	p.current = 1
}

// HasNext reports whether a later page exists.
func (p *Pager[T]) HasNext() bool {
	return p.current < p.TotalPages()
}

// HasPrev reports whether an earlier page exists.
func (p *Pager[T]) HasPrev() bool {
	return p.current > 1
}
