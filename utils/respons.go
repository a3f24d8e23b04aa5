package utils

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

type JSONResponse struct {
	Status  bool        `json:"status"`
	Message string      `json:"message"`
	Data    interface{} `json:"data,omitempty"`
}

// RespondJSON writes the standard success envelope.
func RespondJSON(c *gin.Context, code int, message string, data interface{}) {
	c.JSON(code, JSONResponse{
		Status:  code >= 200 && code < 300,
		Message: message,
		Data:    data,
	})
}

// RespondError writes a plain {"error": ...} body. The message is what the
// caller is allowed to see; log details separately before calling this.
func RespondError(c *gin.Context, code int, message string) {
	c.JSON(code, gin.H{"error": message})
}

// RespondInternalError logs the underlying error and returns a generic 500
// so data-layer details never reach the response body.
func RespondInternalError(c *gin.Context, err error) {
	ErrorLogger.Printf("%s %s: %v", c.Request.Method, c.Request.URL.Path, err)
	RespondError(c, http.StatusInternalServerError, "Internal server error")
}
