package api

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/ncnews/ncnews/internal/domain"
	"github.com/ncnews/ncnews/internal/store"
)

// getPathInt extracts an integer identifier from the URL path. A value that
// does not parse as an integer is a malformed identifier, which is always a
// 400, never a 404.
func getPathInt(r *http.Request, paramName string) (int, error) {
	raw := chi.URLParam(r, paramName)
	id, err := strconv.Atoi(raw)
	if err != nil {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidID, paramName, raw)
	}
	return id, nil
}

// getQueryPositiveInt parses an optional positive-integer query parameter,
// returning def when the parameter is absent. Zero, negative, and
// non-numeric values are rejected.
func getQueryPositiveInt(r *http.Request, name string, def int) (int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return def, nil
	}
	n, err := strconv.Atoi(raw)
	if err != nil || n <= 0 {
		return 0, fmt.Errorf("%w: %s %q", domain.ErrInvalidQueryParam, name, raw)
	}
	return n, nil
}

// getPageParams parses the limit and p query parameters shared by the
// paginated list endpoints.
func getPageParams(r *http.Request) (store.Page, error) {
	limit, err := getQueryPositiveInt(r, "limit", store.DefaultLimit)
	if err != nil {
		return store.Page{}, err
	}
	p, err := getQueryPositiveInt(r, "p", store.DefaultPage)
	if err != nil {
		return store.Page{}, err
	}
	return store.Page{Limit: limit, Page: p}, nil
}
