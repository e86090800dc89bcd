// Package listing shapes an in-memory collection into a paginated, filtered
// and sorted page according to request query parameters.
package listing

import (
	"cmp"
	"fmt"
	"net/url"
	"slices"
	"strconv"
	"strings"

	"fleet_manager/internal/apperr"
)

const (
	ParamPage     = "page"
	ParamPageSize = "pageSize"
	ParamSearch   = "search"
	ParamSortBy   = "sortBy"
	ParamSortDir  = "sortDir"

	DefaultPageSize = 10
)

// Record is anything that can expose its fields by JSON name.
type Record interface {
	Fields() map[string]any
}

// Query is the parsed form of the list query parameters. A zero Page means
// no pagination was requested.
type Query struct {
	Page     int
	PageSize int
	Search   string
	SortBy   string
	Desc     bool
	Filters  map[string]string
}

// Page is one slice of a shaped collection.
type Page[T any] struct {
	Items      []T `json:"items"`
	Total      int `json:"total"`
	Page       int `json:"page"`
	PageSize   int `json:"pageSize"`
	TotalPages int `json:"totalPages"`
}

// ParseQuery reads the reserved parameters and keeps every other parameter
// as a candidate field filter.
func ParseQuery(values url.Values) (Query, error) {
	q := Query{Filters: map[string]string{}}

	for key, vals := range values {
		if len(vals) == 0 {
			continue
		}
		v := strings.TrimSpace(vals[0])
		switch key {
		case ParamPage:
			n, err := positiveInt(key, v)
			if err != nil {
				return Query{}, err
			}
			q.Page = n
		case ParamPageSize:
			n, err := positiveInt(key, v)
			if err != nil {
				return Query{}, err
			}
			q.PageSize = n
		case ParamSearch:
			q.Search = v
		case ParamSortBy:
			q.SortBy = v
		case ParamSortDir:
			switch strings.ToLower(v) {
			case "", "asc":
			case "desc":
				q.Desc = true
			default:
				return Query{}, apperr.Validation(ParamSortDir + ": Expected 'asc' | 'desc'")
			}
		default:
			if v != "" {
				q.Filters[key] = v
			}
		}
	}

	if q.Page > 0 && q.PageSize == 0 {
		q.PageSize = DefaultPageSize
	}
	if q.PageSize > 0 && q.Page == 0 {
		q.Page = 1
	}
	return q, nil
}

func positiveInt(key, v string) (int, error) {
	n, err := strconv.Atoi(v)
	if err != nil || n < 1 {
		return 0, apperr.Validation(key + ": Must be a positive integer")
	}
	return n, nil
}

// Build filters, sorts and paginates items. The input slice is not modified
// and insertion order is kept for everything the query does not reorder.
func Build[T Record](items []T, q Query) (Page[T], error) {
	type row struct {
		item   T
		fields map[string]any
	}

	rows := make([]row, 0, len(items))
	for _, item := range items {
		r := row{item: item, fields: item.Fields()}
		if matches(r.fields, q) {
			rows = append(rows, r)
		}
	}

	if q.SortBy != "" {
		var zero T
		if _, ok := zero.Fields()[q.SortBy]; !ok {
			return Page[T]{}, apperr.Validation(fmt.Sprintf("%s: Unknown field '%s'", ParamSortBy, q.SortBy))
		}
		slices.SortStableFunc(rows, func(a, b row) int {
			c := compareValues(a.fields[q.SortBy], b.fields[q.SortBy])
			if q.Desc {
				return -c
			}
			return c
		})
	}

	total := len(rows)
	page := Page[T]{Total: total, Items: make([]T, 0)}

	start, end := 0, total
	if q.PageSize > 0 {
		page.Page = q.Page
		page.PageSize = q.PageSize
		page.TotalPages = total / q.PageSize
		if total%q.PageSize != 0 {
			page.TotalPages++
		}
		// past the last page; also keeps the offset below from overflowing
		if q.Page-1 >= page.TotalPages {
			return page, nil
		}
		start = (q.Page - 1) * q.PageSize
		end = start + min(q.PageSize, total-start)
	} else {
		page.Page = 1
		page.PageSize = total
		if total > 0 {
			page.TotalPages = 1
		}
	}

	for _, r := range rows[start:end] {
		page.Items = append(page.Items, r.item)
	}
	return page, nil
}

func matches(fields map[string]any, q Query) bool {
	for name, want := range q.Filters {
		got, ok := fields[name]
		if !ok {
			// not a field of this entity
			continue
		}
		if got == nil {
			if !strings.EqualFold(want, "null") {
				return false
			}
			continue
		}
		if !containsFold(stringify(got), want) {
			return false
		}
	}

	if q.Search == "" {
		return true
	}
	for _, v := range fields {
		if s, ok := v.(string); ok && containsFold(s, q.Search) {
			return true
		}
	}
	return false
}

// compareValues orders nulls first and never reorders values whose types
// differ.
func compareValues(a, b any) int {
	switch {
	case a == nil && b == nil:
		return 0
	case a == nil:
		return -1
	case b == nil:
		return 1
	}

	switch av := a.(type) {
	case string:
		if bv, ok := b.(string); ok {
			return cmp.Compare(strings.ToLower(av), strings.ToLower(bv))
		}
	case int:
		if bv, ok := b.(int); ok {
			return cmp.Compare(av, bv)
		}
	case float64:
		if bv, ok := b.(float64); ok {
			return cmp.Compare(av, bv)
		}
	}
	return 0
}

func stringify(v any) string {
	if s, ok := v.(string); ok {
		return s
	}
	return fmt.Sprint(v)
}

func containsFold(s, sub string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(sub))
}
