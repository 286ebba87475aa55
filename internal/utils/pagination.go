package utils

import (
	"math"
	"strconv"
)

// PageSize is the fixed number of posts per listing page.
const PageSize = 10

// Page describes one slice of an ordered result set.
type Page struct {
	Number     int // 1-based
	TotalPages int
	Offset     int
	Limit      int
	HasNext    bool
	HasPrev    bool
}

// Paginate turns a total row count and the raw ?page= parameter into a Page.
// Non-numeric or missing parameters mean page 1; out-of-range requests clamp
// to the first or last page instead of failing. An empty result set still
// yields a valid page 1.
func Paginate(total int64, pageParam string) Page {
	totalPages := int(math.Ceil(float64(total) / float64(PageSize)))
	if totalPages == 0 {
		totalPages = 1
	}

	page := 1
	if n, err := strconv.Atoi(pageParam); err == nil {
		page = n
	}
	if page < 1 {
		page = 1
	}
	if page > totalPages {
		page = totalPages
	}

	return Page{
		Number:     page,
		TotalPages: totalPages,
		Offset:     (page - 1) * PageSize,
		Limit:      PageSize,
		HasNext:    page < totalPages,
		HasPrev:    page > 1,
	}
}
