package response

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	pkgErrors "notes-api/pkg/errors"
)

// OK sends 200 with data serialized as the body itself, without an envelope.
func OK(c *gin.Context, data any) {
	c.JSON(http.StatusOK, data)
}

// Text sends 200 with a plain-text body.
func Text(c *gin.Context, msg string) {
	c.String(http.StatusOK, msg)
}

// Message sends 200 with {"message": msg}.
func Message(c *gin.Context, msg string) {
	c.JSON(http.StatusOK, MessageResp{Message: msg})
}

// Preflight acknowledges a CORS preflight request.
func Preflight(c *gin.Context) {
	c.AbortWithStatusJSON(http.StatusOK, StatusResp{Status: PreflightStatus})
}

// Error sends an error response. *errors.HTTPError keeps its status code,
// anything else is treated as a malformed request.
func Error(c *gin.Context, err error) {
	var httpErr *pkgErrors.HTTPError
	if errors.As(err, &httpErr) {
		c.AbortWithStatusJSON(httpErr.Code, Resp{
			ErrorCode: httpErr.Code,
			Message:   httpErr.Message,
		})
		return
	}

	c.AbortWithStatusJSON(http.StatusBadRequest, Resp{
		ErrorCode: http.StatusBadRequest,
		Message:   err.Error(),
	})
}

// InternalError sends 500 without leaking err to the client.
func InternalError(c *gin.Context, err error) {
	c.AbortWithStatusJSON(http.StatusInternalServerError, Resp{
		ErrorCode: InternalServerErrorCode,
		Message:   DefaultErrorMessage,
	})
}

// Warning sends {"Warning": msg} with the given status.
func Warning(c *gin.Context, code int, msg string) {
	c.AbortWithStatusJSON(code, WarningResp{Warning: msg})
}

// ServiceUnavailable sends 503.
func ServiceUnavailable(c *gin.Context, msg string) {
	c.AbortWithStatusJSON(http.StatusServiceUnavailable, Resp{
		ErrorCode: http.StatusServiceUnavailable,
		Message:   msg,
	})
}
