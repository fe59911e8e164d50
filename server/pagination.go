package server

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/kasuboski/dvrdispatch/pkg/pagination"
)

// parsePaginationParams reads ?page= and ?pageSize= from the request.
// Without a pageSize everything is returned on the first page.
func parsePaginationParams(r *http.Request) (pagination.Params, error) {
	params := pagination.Params{Page: 1}

	qp := r.URL.Query()
	if raw := qp.Get("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil || page < 1 {
			return params, fmt.Errorf("invalid page %q: must be a positive integer", raw)
		}
		params.Page = page
	}

	if raw := qp.Get("pageSize"); raw != "" {
		size, err := strconv.Atoi(raw)
		if err != nil || size < 0 || size > pagination.MaxPageSize {
			return params, fmt.Errorf("invalid pageSize %q: must be between 0 and %d", raw, pagination.MaxPageSize)
		}
		params.PageSize = size
	}

	return params, nil
}
