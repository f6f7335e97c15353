// Package pagination parses the shared list query parameters.
package pagination

import (
	"net/http"
	"strconv"
	"strings"
	"time"

	"github.com/dropDatabas3/teamspace/internal/query"
)

// FromRequest builds query.Params from the request's query string.
// Out-of-range or malformed values fall back to defaults; clients never
// get an error for a bad pagination parameter.
func FromRequest(r *http.Request) query.Params {
	q := r.URL.Query()
	p := query.Params{
		OrderBy:        strings.TrimSpace(q.Get("order_by")),
		OrderDirection: strings.ToLower(strings.TrimSpace(q.Get("order_direction"))),
	}
	if v, err := strconv.Atoi(q.Get("page")); err == nil {
		p.Page = v
	}
	if v, err := strconv.Atoi(q.Get("per_page")); err == nil {
		p.PerPage = v
	}
	return p.Normalize()
}

// QueryString returns the trimmed query parameter, or nil if absent/empty.
func QueryString(r *http.Request, key string) *string {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	return &v
}

// QueryBool parses a boolean query parameter ("true"/"false", "1"/"0").
// Returns nil if absent or malformed.
func QueryBool(r *http.Request, key string) *bool {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return nil
	}
	return &b
}

// QueryTime parses an RFC 3339 timestamp query parameter.
// Returns nil if absent or malformed.
func QueryTime(r *http.Request, key string) *time.Time {
	v := strings.TrimSpace(r.URL.Query().Get(key))
	if v == "" {
		return nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return nil
	}
	return &t
}
