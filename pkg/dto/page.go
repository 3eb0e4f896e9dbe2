package dto

// PageRequest carries pagination parameters. Page is zero-based.
type PageRequest struct {
	Page int
	Size int
}

// Offset returns the row offset for the request.
func (p PageRequest) Offset() int {
	return p.Page * p.Size
}

// Valid reports whether the request can be applied to a query.
func (p PageRequest) Valid() bool {
	return p.Size > 0 && p.Page >= 0
}

// Page is one page of results plus the total match count.
type Page[T any] struct {
	Items      []T   `json:"items"`
	Page       int   `json:"page"`
	Size       int   `json:"size"`
	TotalItems int64 `json:"total_items"`
}
