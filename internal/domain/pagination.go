package domain

// Pagination describes a zero-based page window over the movie collection.
type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Limit() int {
	return p.PerPage
}

func (p Pagination) Offset() int {
	return p.Page * p.PerPage
}

// PageRef points at an adjacent page. The API layer renders it into a locator.
type PageRef struct {
	Page    int
	PerPage int
}

type Metadata struct {
	CurrentPage int
	PerPage     int
	TotalPages  int
	TotalItems  int
	Prev        *PageRef
	Next        *PageRef
}

// NewMetadata computes the page descriptors for a window over totalItems rows.
// An empty collection is not an error: it yields zero totals and no page refs.
// A window starting at or past the end of a non-empty collection is out of range.
func NewMetadata(totalItems int, p Pagination) (*Metadata, error) {
	if p.Offset() >= totalItems && totalItems > 0 {
		return nil, ErrPageOutOfRange
	}

	m := &Metadata{
		CurrentPage: p.Page,
		PerPage:     p.PerPage,
		TotalPages:  (totalItems + p.PerPage - 1) / p.PerPage,
		TotalItems:  totalItems,
	}

	if p.Page > 0 {
		m.Prev = &PageRef{Page: p.Page - 1, PerPage: p.PerPage}
	}
	if p.Offset()+p.PerPage < totalItems {
		m.Next = &PageRef{Page: p.Page + 1, PerPage: p.PerPage}
	}

	return m, nil
}
