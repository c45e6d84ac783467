package response

import "github.com/gin-gonic/gin"

func Success(c *gin.Context, statusCode int, data interface{}) {
	c.JSON(statusCode, data)
}

func Error(c *gin.Context, statusCode int, message string) {
	c.JSON(statusCode, gin.H{
		"error": message,
	})
}

func ErrorWithDetails(c *gin.Context, statusCode int, message string, details any) {
	c.JSON(statusCode, gin.H{
		"error":   message,
		"details": details,
	})
}

// Abort records err on the context for the request logger and writes a
// fixed message; store failures never reach the client verbatim.
func Abort(c *gin.Context, statusCode int, message string, err error) {
	if err != nil {
		_ = c.Error(err)
	}
	c.AbortWithStatusJSON(statusCode, gin.H{
		"error": message,
	})
}
