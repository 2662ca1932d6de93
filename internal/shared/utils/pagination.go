package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/shared/constants"
)

// Pagination holds parsed pagination parameters.
type Pagination struct {
	Page     int
	PageSize int
}

// Offset returns the number of rows to skip for the current page.
func (p Pagination) Offset() int {
	return (p.Page - 1) * p.PageSize
}

// ValidatePagination normalizes page and pageSize, capping the size at MaxPageSize.
func ValidatePagination(page, pageSize int) Pagination {
	if page < 1 {
		page = constants.DefaultPage
	}
	if pageSize < 1 {
		pageSize = constants.DefaultPageSize
	}
	if pageSize > constants.MaxPageSize {
		pageSize = constants.MaxPageSize
	}
	return Pagination{Page: page, PageSize: pageSize}
}

// ParsePagination reads page and page_size from the query string.
func ParsePagination(c *gin.Context) Pagination {
	return ValidatePagination(
		parseQueryInt(c, "page", constants.DefaultPage),
		parseQueryInt(c, "page_size", constants.DefaultPageSize),
	)
}

func parseQueryInt(c *gin.Context, key string, defaultVal int) int {
	if val := c.Query(key); val != "" {
		if n, err := strconv.Atoi(val); err == nil && n >= 1 {
			return n
		}
	}
	return defaultVal
}

// TotalPages calculates total pages for a given total count.
func TotalPages(total int64, pageSize int) int {
	if total == 0 || pageSize <= 0 {
		return 1
	}
	return int((total + int64(pageSize) - 1) / int64(pageSize))
}
