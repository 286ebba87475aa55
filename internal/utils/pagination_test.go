package utils

import (
	"testing"
)

func TestPaginate(t *testing.T) {
	tests := []struct {
		name       string
		total      int64
		pageParam  string
		wantNumber int
		wantTotal  int
		wantOffset int
		wantNext   bool
		wantPrev   bool
	}{
		{"first page by default", 25, "", 1, 3, 0, true, false},
		{"explicit first page", 25, "1", 1, 3, 0, true, false},
		{"middle page", 25, "2", 2, 3, 10, true, true},
		{"last page", 25, "3", 3, 3, 20, false, true},
		{"non-numeric falls back to first", 25, "abc", 1, 3, 0, true, false},
		{"zero clamps to first", 25, "0", 1, 3, 0, true, false},
		{"negative clamps to first", 25, "-4", 1, 3, 0, true, false},
		{"beyond last clamps to last", 25, "99", 3, 3, 20, false, true},
		{"empty set still yields page 1", 0, "7", 1, 1, 0, false, false},
		{"exact multiple of page size", 20, "2", 2, 2, 10, false, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			page := Paginate(tt.total, tt.pageParam)
			if page.Number != tt.wantNumber {
				t.Errorf("Number = %d, want %d", page.Number, tt.wantNumber)
			}
			if page.TotalPages != tt.wantTotal {
				t.Errorf("TotalPages = %d, want %d", page.TotalPages, tt.wantTotal)
			}
			if page.Offset != tt.wantOffset {
				t.Errorf("Offset = %d, want %d", page.Offset, tt.wantOffset)
			}
			if page.HasNext != tt.wantNext {
				t.Errorf("HasNext = %v, want %v", page.HasNext, tt.wantNext)
			}
			if page.HasPrev != tt.wantPrev {
				t.Errorf("HasPrev = %v, want %v", page.HasPrev, tt.wantPrev)
			}
			if page.Limit != PageSize {
				t.Errorf("Limit = %d, want %d", page.Limit, PageSize)
			}
		})
	}
}

// 13 posts at page size 10: page 1 holds 10 items, page 2 holds the last 3.
func TestPaginateThirteenItems(t *testing.T) {
	first := Paginate(13, "1")
	if got := int64(first.Limit); got != 10 {
		t.Errorf("page 1 limit = %d, want 10", got)
	}
	if !first.HasNext {
		t.Error("page 1 of 13 items should have a next page")
	}

	second := Paginate(13, "2")
	if remaining := 13 - second.Offset; remaining != 3 {
		t.Errorf("page 2 should expose the last 3 items, offset leaves %d", remaining)
	}
	if second.HasNext {
		t.Error("page 2 of 13 items is the last page")
	}
}
