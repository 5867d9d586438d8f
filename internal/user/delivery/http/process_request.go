package http

import (
	"strconv"

	"github.com/gin-gonic/gin"
)

// processSignupReq binds the signup body (JSON or form).
func (h *handler) processSignupReq(c *gin.Context) (signupReq, error) {
	var req signupReq
	if err := c.ShouldBind(&req); err != nil {
		return req, err
	}
	return req, nil
}

// processLoginReq binds the login body (JSON or form).
func (h *handler) processLoginReq(c *gin.Context) (loginReq, error) {
	var req loginReq
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
