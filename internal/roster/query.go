package roster

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"
)

// DefaultLimit matches the endpoint default page size.
const DefaultLimit = 20

// MaxLimit is the endpoint's upper bound on page size.
const MaxLimit = 100

// ItemsPerPageOptions are the page sizes offered to callers.
var ItemsPerPageOptions = []int{10, 20, 50, 100}

// Query is the canonical query descriptor. A Query is always fully defined;
// construct with DefaultQuery and mutate, never from a zero value.
type Query struct {
	Search    string
	Field     SearchField
	Filters   []Filter
	SortBy    SortField
	SortOrder SortDirection
	Page      int
	Limit     int
}

// DefaultQuery returns the initial query state: search all fields, sort by
// name ascending, first page.
func DefaultQuery(limit int) Query {
	if limit <= 0 {
		limit = DefaultLimit
	}
	if limit > MaxLimit {
		limit = MaxLimit
	}
	return Query{
		Field:     SearchFieldAll,
		SortBy:    SortFieldName,
		SortOrder: SortAsc,
		Page:      1,
		Limit:     limit,
	}
}

// SearchTerm returns the trimmed search text; whitespace-only input
// normalizes to no query.
func (q Query) SearchTerm() string {
	return strings.TrimSpace(q.Search)
}

// Values encodes the query as endpoint parameters. Search and field are only
// sent when the trimmed search text is non-empty; filters are sent as a JSON
// array with wire-typed values.
func (q Query) Values() (url.Values, error) {
	v := url.Values{}
	v.Set("page", strconv.Itoa(q.Page))
	v.Set("limit", strconv.Itoa(q.Limit))
	v.Set("sort_by", string(q.SortBy))
	v.Set("sort_order", string(q.SortOrder))

	if term := q.SearchTerm(); term != "" {
		v.Set("search", term)
		v.Set("field", string(q.Field))
	}

	if len(q.Filters) > 0 {
		for _, f := range q.Filters {
			if !f.Complete() {
				return nil, fmt.Errorf("incomplete filter on field %q", f.Field)
			}
		}
		raw, err := json.Marshal(q.Filters)
		if err != nil {
			return nil, fmt.Errorf("marshal filters: %w", err)
		}
		v.Set("filters", string(raw))
	}

	return v, nil
}

// CacheKey returns a stable identifier for this query, suitable for the
// result cache. url.Values.Encode sorts keys, so equal queries always
// produce equal keys. A query carrying an incomplete filter gets an empty
// key; such a query never reaches the fetch boundary anyway.
func (q Query) CacheKey() string {
	v, err := q.Values()
	if err != nil {
		return ""
	}
	return v.Encode()
}
