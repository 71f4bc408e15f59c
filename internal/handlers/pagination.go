package handlers

import (
	"errors"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"

	"mealmate/internal/middleware"
	"mealmate/internal/models"
	"mealmate/internal/store"
)

var errInvalidPagination = errors.New("invalid pagination params")

func parsePaginationParams(pageStr, limitStr string) (int64, int64, error) {
	page := int64(1)
	limit := int64(20)

	if pageStr != "" {
		p, err := strconv.ParseInt(pageStr, 10, 64)
		if err != nil || p < 1 {
			return 0, 0, errInvalidPagination
		}
		page = p
	}

	if limitStr != "" {
		l, err := strconv.ParseInt(limitStr, 10, 64)
		if err != nil || l < 1 || l > 100 {
			return 0, 0, errInvalidPagination
		}
		limit = l
	}

	return page, limit, nil
}

// listQueryFromRequest reads search, tags, type, category and pagination.
// Pagination applies only when page or limit is present; otherwise every
// match is returned.
func listQueryFromRequest(c *gin.Context) (store.ListQuery, error) {
	q := store.ListQuery{
		Search:   c.Query("search"),
		Tags:     models.ParseStringList(c.Query("tags")),
		Types:    models.ParseStringList(c.Query("type")),
		Category: c.Query("category"),
	}

	pageStr, limitStr := c.Query("page"), c.Query("limit")
	middleware.Logger(c).WithFields(logrus.Fields{
		"route":  c.FullPath(),
		"search": sanitizeLogValue(q.Search, 80),
		"page":   pageStr,
		"limit":  limitStr,
	}).Debug("list query")

	if pageStr == "" && limitStr == "" {
		return q, nil
	}

	page, limit, err := parsePaginationParams(pageStr, limitStr)
	if err != nil {
		return store.ListQuery{}, err
	}
	q.Page, q.Limit = page, limit
	return q, nil
}

func listResponse(items interface{}, total int64, q store.ListQuery) gin.H {
	body := gin.H{"data": items, "total": total}
	if q.Limit > 0 {
		body["pagination"] = gin.H{"page": q.Page, "limit": q.Limit}
	}
	return body
}

func sanitizeLogValue(value string, max int) string {
	trimmed := strings.TrimSpace(value)
	if max <= 0 {
		max = 80
	}
	if len(trimmed) <= max {
		return trimmed
	}
	return trimmed[:max] + "..."
}
