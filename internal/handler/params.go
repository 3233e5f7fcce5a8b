package handler

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// parsePage reads the optional :page route param, defaulting to 1.
func parsePage(c *gin.Context) int {
	page, err := strconv.Atoi(c.Param("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}

// pageFromQuery reads a ?page= query value, defaulting to 1.
func pageFromQuery(c *gin.Context) int {
	page, err := strconv.Atoi(c.Query("page"))
	if err != nil || page < 1 {
		return 1
	}
	return page
}
