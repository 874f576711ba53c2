// Package query turns raw list-query inputs into validated, structured
// specs the storage layer can execute in a single composed query.
package query

import (
	"net/url"
	"strconv"

	"github.com/threadhub-dev/threadhub/internal/domain"
	"github.com/threadhub-dev/threadhub/internal/errors"
)

// Filter is the conjunction of whichever optional constraints were present.
// Absent or malformed inputs impose no constraint.
type Filter struct {
	UserId     *domain.UserId
	CategoryId *domain.CategoryId
}

const (
	SortById        = "id"
	SortByTitle     = "title"
	SortByCreatedAt = "created_at"

	OrderAsc  = "asc"
	OrderDesc = "desc"
)

// sortable is the allow-list of fields a listing may be ordered by.
var sortable = map[string]bool{
	SortById:        true,
	SortByTitle:     true,
	SortByCreatedAt: true,
}

type Sort struct {
	Field string
	Desc  bool
}

type Pagination struct {
	Page    int
	PerPage int
}

func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PerPage
}

// Relations declares which associated entities get attached to results.
type Relations struct {
	User     bool
	Category bool
	Replies  bool
}

// ListQuery is the full validated shape of a thread listing request.
type ListQuery struct {
	Filter     Filter
	Sort       Sort
	Pagination Pagination
	Relations  Relations
}

// ParseFilter reads user_id and category_id. Values that do not parse to a
// positive integer are treated as absent, never as an error.
func ParseFilter(values url.Values) Filter {
	var f Filter
	if id, ok := positiveInt(values.Get("user_id")); ok {
		f.UserId = &id
	}
	if id, ok := positiveInt(values.Get("category_id")); ok {
		f.CategoryId = &id
	}
	return f
}

// ParseSort validates sort_by against the allow-list (default id) and reads
// order, where anything other than "desc" means ascending.
func ParseSort(values url.Values) (Sort, error) {
	field := values.Get("sort_by")
	if field == "" {
		field = SortById
	}
	if !sortable[field] {
		return Sort{}, errors.Newf(errors.Validation, "unknown sort field %q", field)
	}
	return Sort{Field: field, Desc: values.Get("order") == OrderDesc}, nil
}

// ParsePagination reads page (default 1) and per_page (default
// defaultPerPage, clamped to maxPerPage). Non-numeric or non-positive
// values are rejected.
func ParsePagination(values url.Values, defaultPerPage, maxPerPage int) (Pagination, error) {
	page, err := boundedInt(values.Get("page"), "page", 1)
	if err != nil {
		return Pagination{}, err
	}
	perPage, err := boundedInt(values.Get("per_page"), "per_page", defaultPerPage)
	if err != nil {
		return Pagination{}, err
	}
	if perPage > maxPerPage {
		perPage = maxPerPage
	}
	return Pagination{Page: page, PerPage: perPage}, nil
}

// ParseList assembles the complete listing spec. Owner and category are
// always attached; reply attachment is opt-in via with_replies.
func ParseList(values url.Values, defaultPerPage, maxPerPage int) (ListQuery, error) {
	sort, err := ParseSort(values)
	if err != nil {
		return ListQuery{}, err
	}
	pagination, err := ParsePagination(values, defaultPerPage, maxPerPage)
	if err != nil {
		return ListQuery{}, err
	}
	withReplies, _ := strconv.ParseBool(values.Get("with_replies"))
	return ListQuery{
		Filter:     ParseFilter(values),
		Sort:       sort,
		Pagination: pagination,
		Relations:  Relations{User: true, Category: true, Replies: withReplies},
	}, nil
}

func positiveInt(raw string) (int64, bool) {
	if raw == "" {
		return 0, false
	}
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func boundedInt(raw, name string, fallback int) (int, error) {
	if raw == "" {
		return fallback, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, errors.Newf(errors.Validation, "%s must be a positive integer", name)
	}
	return n, nil
}
