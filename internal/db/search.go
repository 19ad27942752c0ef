package db

import "github.com/kailas-cloud/propdex/internal/domain/filter"

// ListQuery selects documents matching Filters, ascending by SortBy.
type ListQuery struct {
	IndexName    string
	Filters      filter.Expression
	SortBy       string // SORTABLE attribute; empty keeps engine order
	Offset       int
	Limit        int
	ReturnFields []string // JSON paths or attributes; empty returns the whole document
}

// SearchResult holds the total hit count and the returned page.
type SearchResult struct {
	Total   int
	Entries []SearchEntry
}

// SearchEntry is one returned key with its requested fields.
type SearchEntry struct {
	Key    string
	Fields map[string]string
}
