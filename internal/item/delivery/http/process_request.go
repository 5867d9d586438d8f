package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processItemReq binds an item body, JSON or form-encoded.
func (h *handler) processItemReq(c *gin.Context) (itemReq, error) {
	var req itemReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processIDParam parses the :id path segment as a positive integer.
func (h *handler) processIDParam(c *gin.Context) (int64, error) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil || id <= 0 {
		return 0, errInvalidID
	}
	return id, nil
}
