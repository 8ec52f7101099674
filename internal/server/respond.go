package server

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/kasirhq/kasir/pkg/db/pagination"
)

type pageMeta struct {
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalCount int64 `json:"total_count"`
	TotalPages int   `json:"total_pages"`
}

func respondData(c *gin.Context, data any) {
	c.JSON(http.StatusOK, gin.H{"success": true, "data": data})
}

func respondCreated(c *gin.Context, data any, message string) {
	c.JSON(http.StatusCreated, gin.H{"success": true, "data": data, "message": message})
}

func respondMessage(c *gin.Context, message string) {
	c.JSON(http.StatusOK, gin.H{"success": true, "message": message})
}

// respondList renders a paginated collection. count reflects the page, not the
// filtered total; the total lives in pagination.total_count.
func respondList(c *gin.Context, key string, items any, count int, pi pagination.PageInfo) {
	c.JSON(http.StatusOK, gin.H{
		"success": true,
		key:       items,
		"count":   count,
		"pagination": pageMeta{
			Page:       pi.Page,
			Limit:      pi.Limit,
			TotalCount: pi.TotalCount,
			TotalPages: pi.TotalPages,
		},
	})
}
