package domain

import "math"

// PageSize is the fixed number of items returned per listing page.
const PageSize = 10

// MaxPage is the highest page number whose offset fits in an int.
const MaxPage = math.MaxInt/PageSize + 1

// Page selects a 1-based slice of a listing. The zero value disables pagination
// and returns the full result set.
type Page struct {
	Number int
}

func (p Page) Paginated() bool { return p.Number > 0 }

func (p Page) Offset() int {
	if p.Number <= 1 {
		return 0
	}
	if p.Number > MaxPage {
		return math.MaxInt
	}
	return (p.Number - 1) * PageSize
}

func (p Page) Limit() int { return PageSize }
