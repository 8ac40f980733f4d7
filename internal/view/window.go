package view

import "github.com/devrev/ordermade/internal/model"

// Window is the visible part of a tenant's order list.
type Window struct {
	Orders      []model.Order
	Offset      int
	Page        int
	PageSize    int
	TotalPages  int
	TotalOrders int
}

// Index returns the 1-based position of the i-th visible order in the full list.
func (w Window) Index(i int) int {
	return w.Offset + i + 1
}

// HasPrev reports whether a previous page exists.
func (w Window) HasPrev() bool {
	return w.Page > 1
}

// HasNext reports whether a next page exists.
func (w Window) HasNext() bool {
	return w.Page < w.TotalPages
}

// Pages returns the page numbers around the current one, at most
// 2*siblings+1 entries, always within [1, TotalPages].
func (w Window) Pages(siblings int) []int {
	if w.TotalPages == 0 {
		return nil
	}
	lo := w.Page - siblings
	hi := w.Page + siblings
	if lo < 1 {
		hi += 1 - lo
		lo = 1
	}
	if hi > w.TotalPages {
		lo -= hi - w.TotalPages
		hi = w.TotalPages
	}
	if lo < 1 {
		lo = 1
	}

	pages := make([]int, 0, hi-lo+1)
	for p := lo; p <= hi; p++ {
		pages = append(pages, p)
	}
	return pages
}
