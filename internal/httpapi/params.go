package httpapi

import (
	"net/http"
	"net/url"
	"strconv"
	"strings"

	"github.com/samber/lo"

	"github.com/Alp4ka/gotable"
)

// Query parameter names accepted by the view endpoint.
const (
	paramSearch    = "search"
	paramKeys      = "keys"
	paramSort      = "sort"
	paramPage      = "page"
	paramPerPage   = "per_page"
	paramNeighbors = "neighbors"
)

// ParseViewParams builds view parameters from the request query on top of
// defaults. Every malformed parameter is reported in the returned details,
// keyed by parameter name; parameters are only usable when details is empty.
func ParseViewParams(r *http.Request, defaults gotable.Parameters, columns []string) (*gotable.Parameters, map[string]string) {
	q := r.URL.Query()
	params := defaults.Clone()
	details := make(map[string]string)

	if q.Has(paramSearch) {
		params = params.WithSearch(strings.TrimSpace(q.Get(paramSearch)))
	}

	if keys := q.Get(paramKeys); keys != "" {
		params = params.WithSearchKeys(lo.Compact(lo.Map(strings.Split(keys, ","), func(k string, _ int) string {
			return strings.TrimSpace(k)
		}))...)
	}

	if sort := q.Get(paramSort); sort != "" {
		column, dir, err := gotable.ParseSort(sort, columns)
		if err != nil {
			details[paramSort] = err.Error()
		} else {
			params = params.WithSort(column, dir)
		}
	}

	if n, ok := parseInt(q, paramPage, 1, details); ok {
		params = params.WithCurrentPage(n)
	}

	if n, ok := parseInt(q, paramPerPage, 1, details); ok {
		params = params.WithResultSet(gotable.NormalizeResultSet(n))
	}

	if n, ok := parseInt(q, paramNeighbors, 0, details); ok {
		params = params.WithPageNeighbors(n)
	}

	return params, details
}

// parseInt reads an optional integer parameter no smaller than minimum. ok is
// false when the parameter is absent or invalid; invalid values are recorded
// in details.
func parseInt(q url.Values, name string, minimum int, details map[string]string) (int, bool) {
	values, present := q[name]
	if !present || len(values) == 0 || values[0] == "" {
		return 0, false
	}

	n, err := strconv.Atoi(strings.TrimSpace(values[0]))
	if err != nil {
		details[name] = "must be an integer"
		return 0, false
	}
	if n < minimum {
		details[name] = "must be >= " + strconv.Itoa(minimum)
		return 0, false
	}

	return n, true
}
