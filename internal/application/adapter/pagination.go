// Package adapter defines interfaces that will be implemented in the integration layer.
package adapter

// Default and maximum page sizes for list operations.
const (
	DefaultPageLimit = 20
	MaxPageLimit     = 100
)

// Pagination defines pagination options.
type Pagination struct {
	Page  int
	Limit int
}

// Normalize fills in defaults and clamps the limit.
func (p Pagination) Normalize() Pagination {
	if p.Page < 1 {
		p.Page = 1
	}
	if p.Limit < 1 {
		p.Limit = DefaultPageLimit
	}
	if p.Limit > MaxPageLimit {
		p.Limit = MaxPageLimit
	}
	return p
}

// Offset returns the number of rows to skip.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.Limit
}

// TotalPages returns the number of pages needed for total rows.
func (p Pagination) TotalPages(total int64) int {
	if p.Limit <= 0 {
		return 0
	}
	return int((total + int64(p.Limit) - 1) / int64(p.Limit))
}
