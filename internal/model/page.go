package model

// PageSize is the fixed number of photo slots and the API page size.
const PageSize = 3

// PageState tracks the gallery's authoritative pagination position. Offset is
// always a multiple of PageSize; TotalCount comes from the last successful
// fetch.
type PageState struct {
	Offset     int
	TotalCount int
}

// LastPageOffset returns the offset of the final page for the current total,
// or 0 when the gallery is empty.
func (p PageState) LastPageOffset() int {
	if p.TotalCount <= 0 {
		return 0
	}
	return (p.TotalCount - 1) / PageSize * PageSize
}

// NextOffset computes the offset reached by moving one page in the given
// direction (+1 or -1), wrapping below zero to the last page and past the end
// back to zero. The gallery is a cyclic carousel.
func (p PageState) NextOffset(direction int) int {
	next := p.Offset + PageSize*direction
	if next < 0 {
		return p.LastPageOffset()
	}
	if next >= p.TotalCount {
		return 0
	}
	return next
}
