package format

import (
	"encoding/json"
	"io"

	"github.com/cristianoliveira/hrdesk/internal/views"
)

// Pagination describes the position of a page in the result set.
type Pagination struct {
	TotalItems   int `json:"total_items"`
	TotalPages   int `json:"total_pages"`
	CurrentPage  int `json:"current_page"`
	ItemsPerPage int `json:"items_per_page"`
}

// PageDocument is the JSON form of a list page, shared by the CLI and the
// HTTP API.
type PageDocument struct {
	Kind          string     `json:"kind"`
	Items         []any      `json:"items"`
	Pagination    Pagination `json:"pagination"`
	FilteredCount int        `json:"filtered_count"`
	TotalCount    int        `json:"total_count"`
	PageNumbers   []int      `json:"page_numbers"`
	Summary       string     `json:"summary"`
}

// NewPageDocument converts page to its JSON document.
func NewPageDocument(page views.Page) PageDocument {
	items := page.Items
	if items == nil {
		items = []any{}
	}
	numbers := page.PageNumbers
	if numbers == nil {
		numbers = []int{}
	}
	return PageDocument{
		Kind:  page.Kind.String(),
		Items: items,
		Pagination: Pagination{
			TotalItems:   page.FilteredCount,
			TotalPages:   page.TotalPages,
			CurrentPage:  page.Page,
			ItemsPerPage: page.PageSize,
		},
		FilteredCount: page.FilteredCount,
		TotalCount:    page.TotalCount,
		PageNumbers:   numbers,
		Summary:       page.Summary(),
	}
}

// JSONFormatter writes a PageDocument.
type JSONFormatter struct {
	Indent bool
}

func (f *JSONFormatter) FormatPage(page views.Page, w io.Writer) error {
	enc := json.NewEncoder(w)
	if f.Indent {
		enc.SetIndent("", "  ")
	}
	return enc.Encode(NewPageDocument(page))
}
