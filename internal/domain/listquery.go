package domain

// Defaults of the list contract. Every collection endpoint shares them.
const (
	DefaultPage      = 1
	DefaultLimit     = 10
	DefaultSortBy    = "createdAt"
	DefaultSortOrder = "DESC"
	MaxLimit         = 200
)

// ListQuery is built fresh per request from query-string values and
// discarded after producing a ListResult.
type ListQuery struct {
	Page      int
	Limit     int
	Search    string
	SortBy    string
	SortOrder string
	Filters   map[string]string
}

// DefaultListQuery returns the query every collection endpoint starts from.
func DefaultListQuery() ListQuery {
	return ListQuery{
		Page:      DefaultPage,
		Limit:     DefaultLimit,
		SortBy:    DefaultSortBy,
		SortOrder: DefaultSortOrder,
		Filters:   map[string]string{},
	}
}

// Offset converts page/limit into the SQL window offset.
func (q ListQuery) Offset() int {
	return (q.Page - 1) * q.Limit
}

type Pagination struct {
	Page  int   `json:"page"`
	Limit int   `json:"limit"`
	Total int64 `json:"total"`
	Pages int   `json:"pages"`
}

// NewPagination computes pages = ceil(total/limit), normalized to 1 when the
// set is empty so callers can always request page 1.
func NewPagination(page, limit int, total int64) Pagination {
	pages := int(total) / limit
	if int(total)%limit > 0 {
		pages++
	}
	if pages < 1 {
		pages = 1
	}
	return Pagination{Page: page, Limit: limit, Total: total, Pages: pages}
}

// Record is one entity row keyed by API field names.
type Record = map[string]any

type ListResult struct {
	Data       []Record   `json:"data"`
	Pagination Pagination `json:"pagination"`
}
