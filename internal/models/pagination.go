package models

// Page describes one page of an offset-paginated listing.
type Page struct {
	Number  int
	PerPage int
}

// Offset returns the number of rows to skip.
func (p Page) Offset() int {
	return (p.Number - 1) * p.PerPage
}

// TotalPages returns ceil(total / PerPage), 0 for an empty listing.
func (p Page) TotalPages(total int) int {
	if total <= 0 || p.PerPage <= 0 {
		return 0
	}
	return (total + p.PerPage - 1) / p.PerPage
}
