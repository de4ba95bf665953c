package httputil

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// PageResult is the paginated envelope returned by list endpoints.
type PageResult[T any] struct {
	Total int64 `json:"total"`
	Rows  []T   `json:"rows"`
}

// ParsePage safely parses and validates page and pageSize query parameters.
// Defaults are page 1 and pageSize 10; pageSize cannot exceed 100.
func ParsePage(c *gin.Context) (page, pageSize int, err error) {
	pageStr := c.DefaultQuery("page", "1")
	page, err = strconv.Atoi(pageStr)
	if err != nil || page < 1 {
		return 0, 0, fmt.Errorf("invalid page parameter: must be a positive integer")
	}

	pageSizeStr := c.DefaultQuery("pageSize", "10")
	pageSize, err = strconv.Atoi(pageSizeStr)
	if err != nil || pageSize < 1 || pageSize > 100 {
		return 0, 0, fmt.Errorf("invalid pageSize parameter: must be between 1 and 100")
	}

	return page, pageSize, nil
}

// PageToOffset converts page/pageSize semantics to offset/limit semantics.
func PageToOffset(page, pageSize int) (offset, limit int) {
	return (page - 1) * pageSize, pageSize
}
