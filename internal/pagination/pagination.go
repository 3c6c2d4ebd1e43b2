package pagination

import (
	"errors"
	"fmt"
	"math"
)

// ErrInvalidPage is returned by Paginate when page or page size is below one.
var ErrInvalidPage = errors.New("page and page_size must be positive integers")

// IndexRange returns the start and end indexes of a 1-indexed page. Both
// saturate at math.MaxInt when the page lies beyond the addressable range.
func IndexRange(page, pageSize int) (start, end int) {
	if page > 1 && pageSize > 0 && page-1 > (math.MaxInt-pageSize)/pageSize {
		return math.MaxInt, math.MaxInt
	}
	start = (page - 1) * pageSize
	end = start + pageSize
	return start, end
}

// Page is one page of a larger result set with navigation hints.
type Page[T any] struct {
	Page       int  `json:"page"`
	PageSize   int  `json:"page_size"`
	Data       []T  `json:"data"`
	NextPage   *int `json:"next_page"`
	PrevPage   *int `json:"prev_page"`
	TotalPages int  `json:"total_pages"`
	Total      int  `json:"total"`
}

// Paginate slices items for the given page. A page past the end yields an
// empty Data slice rather than an error.
func Paginate[T any](items []T, page, pageSize int) (Page[T], error) {
	if page < 1 || pageSize < 1 {
		return Page[T]{}, fmt.Errorf("%w: page=%d page_size=%d", ErrInvalidPage, page, pageSize)
	}

	start, end := IndexRange(page, pageSize)
	data := []T{}
	if start < len(items) {
		data = items[start:min(end, len(items))]
	}

	total := len(items)
	totalPages := total / pageSize
	if total%pageSize != 0 {
		totalPages++
	}

	p := Page[T]{
		Page:       page,
		PageSize:   len(data),
		Data:       data,
		TotalPages: totalPages,
		Total:      total,
	}
	if page < totalPages {
		next := page + 1
		p.NextPage = &next
	}
	if page > 1 {
		prev := page - 1
		p.PrevPage = &prev
	}
	return p, nil
}
