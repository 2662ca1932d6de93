package utils

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/cragbase/cragbase/internal/shared/errors"
)

// ParseUintParam parses a numeric record ID from a URL path parameter.
// entityName is used in error messages (e.g., "boulder", "area").
func ParseUintParam(c *gin.Context, paramName, entityName string) (uint, error) {
	raw := c.Param(paramName)
	if raw == "" {
		return 0, errors.NewValidationError(entityName + " ID is required")
	}

	id, err := strconv.ParseUint(raw, 10, 64)
	if err != nil || id == 0 {
		return 0, errors.NewValidationError(fmt.Sprintf("invalid %s ID", entityName))
	}

	return uint(id), nil
}
