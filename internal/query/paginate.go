package query

// DefaultPageSize is the number of items shown per page.
const DefaultPageSize = 10

// pageWindowSize is the width of the page-number strip.
const pageWindowSize = 5

// Window is one page of a filtered and sorted sequence.
// Invariant: 0 <= StartIndex <= EndIndex <= len(sequence).
type Window[T any] struct {
	Items      []T
	StartIndex int
	EndIndex   int
	TotalPages int
}

// TotalPages returns ceil(n/pageSize). Zero items yield zero pages.
func TotalPages(n, pageSize int) int {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if n <= 0 {
		return 0
	}
	return (n + pageSize - 1) / pageSize
}

// Paginate slices items into the window for page. Pages outside the
// sequence yield an empty window at its end.
func Paginate[T any](items []T, page, pageSize int) Window[T] {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	if page < 1 {
		page = 1
	}
	n := len(items)
	start := min((page-1)*pageSize, n)
	end := min(start+pageSize, n)
	return Window[T]{
		Items:      items[start:end:end],
		StartIndex: start,
		EndIndex:   end,
		TotalPages: TotalPages(n, pageSize),
	}
}

// PrevPage returns max(1, page-1).
func PrevPage(page int) int {
	return max(1, page-1)
}

// NextPage returns min(totalPages, page+1), never below 1.
func NextPage(page, totalPages int) int {
	return max(1, min(totalPages, page+1))
}

// GotoPage clamps page into [1, totalPages], or 1 when there are no pages.
func GotoPage(page, totalPages int) int {
	if totalPages < 1 {
		return 1
	}
	return max(1, min(page, totalPages))
}

// PageNumbers returns the page numbers to display: every page when there are
// at most five, otherwise a five-wide window around page clamped to the ends.
func PageNumbers(page, totalPages int) []int {
	if totalPages <= 0 {
		return []int{}
	}
	page = GotoPage(page, totalPages)

	first, last := 1, totalPages
	if totalPages > pageWindowSize {
		switch {
		case page <= 3:
			first, last = 1, pageWindowSize
		case page >= totalPages-2:
			first, last = totalPages-pageWindowSize+1, totalPages
		default:
			first, last = page-2, page+2
		}
	}

	numbers := make([]int, 0, last-first+1)
	for p := first; p <= last; p++ {
		numbers = append(numbers, p)
	}
	return numbers
}
