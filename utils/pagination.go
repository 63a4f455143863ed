package utils

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// GetPage reads the 1-indexed page number from the query string.
func GetPage(c *gin.Context) int {
	page, _ := strconv.Atoi(c.DefaultQuery("page", "1"))
	if page <= 0 {
		page = 1
	}
	return page
}

// GetPageSize reads the page size from the query string. Bounds are enforced
// by the listings service, not here.
func GetPageSize(c *gin.Context, fallback int) int {
	pageSize, err := strconv.Atoi(c.DefaultQuery("page_size", strconv.Itoa(fallback)))
	if err != nil {
		return fallback
	}
	return pageSize
}
