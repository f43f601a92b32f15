package page

// Pageable is the cursor echoed back by the backend.
type Pageable struct {
	PageNumber int `json:"pageNumber"`
	PageSize   int `json:"pageSize"`
}

// Page is the paginated envelope returned by every list endpoint.
type Page[T any] struct {
	Content       []T      `json:"content"`
	TotalPages    int      `json:"totalPages"`
	TotalElements int64    `json:"totalElements"`
	Pageable      Pageable `json:"pageable"`
}

// DisplayPage is the 1-based page number shown to humans.
func (p *Page[T]) DisplayPage() int {
	return p.Pageable.PageNumber + 1
}

// IsEmpty reports whether the page carries no items.
func (p *Page[T]) IsEmpty() bool {
	return len(p.Content) == 0
}
