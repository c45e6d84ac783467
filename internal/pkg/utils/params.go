package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// PathID parses a positive integer path parameter.
func PathID(c *gin.Context, name string) (int64, bool) {
	id, err := strconv.ParseInt(c.Param(name), 10, 64)
	if err != nil || id <= 0 {
		return 0, false
	}
	return id, true
}

func StringPtr(s string) *string {
	return &s
}

// StringOr dereferences p, falling back to def when p is nil.
func StringOr(p *string, def string) string {
	if p == nil {
		return def
	}
	return *p
}
