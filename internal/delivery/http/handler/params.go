package handler

import (
	"net/http"
	"strconv"

	"estatehub/pkg/response"
)

// parsePagination reads page/limit query params with sane defaults.
func parsePagination(r *http.Request) (page, limit int) {
	page, _ = strconv.Atoi(r.URL.Query().Get("page"))
	if page < 1 {
		page = 1
	}
	limit, _ = strconv.Atoi(r.URL.Query().Get("limit"))
	if limit < 1 || limit > 100 {
		limit = 20
	}
	return page, limit
}

func paginationMeta(page, limit int, total int64) *response.Meta {
	totalPages := int(total) / limit
	if int(total)%limit != 0 {
		totalPages++
	}
	return &response.Meta{Page: page, Limit: limit, Total: total, TotalPages: totalPages}
}
