package helper_util

import (
	"fmt"
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetIDParam reads a positive integer id from the named path parameter.
func GetIDParam(c *gin.Context, name string) (int64, error) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid %s %q", name, c.Param(name))
	}
	return id, nil
}

// GetLimitParam reads ?limit=, falling back to def and capping at max.
func GetLimitParam(c *gin.Context, def, max int) (int, error) {
	limit, err := strconv.Atoi(c.DefaultQuery("limit", strconv.Itoa(def)))
	if err != nil || limit <= 0 {
		return 0, fmt.Errorf("invalid limit %q", c.Query("limit"))
	}
	if limit > max {
		limit = max
	}
	return limit, nil
}
