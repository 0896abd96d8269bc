// utils/pagination.go
package utils

const (
	DefaultPageSize = 20
	MaxPageSize     = 100
)

// Page is a normalized pagination window.
type Page struct {
	Number int `json:"page"`
	Size   int `json:"size"`
}

// NewPage clamps raw query values into a usable window.
func NewPage(number, size int) Page {
	if number < 1 {
		number = 1
	}
	if size < 1 {
		size = DefaultPageSize
	}
	if size > MaxPageSize {
		size = MaxPageSize
	}
	return Page{Number: number, Size: size}
}

func (p Page) Offset() int {
	return (p.Number - 1) * p.Size
}

func (p Page) Limit() int {
	return p.Size
}

// SliceBounds returns the [start, end) window of p over a slice of length n.
func (p Page) SliceBounds(n int) (int, int) {
	start := p.Offset()
	if start > n {
		start = n
	}
	end := start + p.Size
	if end > n {
		end = n
	}
	return start, end
}
