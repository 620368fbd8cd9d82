package response

import "github.com/gin-gonic/gin"

// The API speaks a flat {success, message, ...} envelope. Handlers never put
// internal error detail into a failure body; anything unexpected is logged
// server-side and surfaced as a generic message.

// OK writes a success body with optional extra fields merged in.
func OK(c *gin.Context, status int, message string, extra gin.H) {
	body := gin.H{"success": true, "message": message}
	for k, v := range extra {
		body[k] = v
	}
	c.JSON(status, body)
}

// Fail writes {success:false, message}.
func Fail(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"success": false, "message": message})
}

// FailDetails writes a failure body with a details field, used for
// request validation errors.
func FailDetails(c *gin.Context, status int, message string, details any) {
	c.JSON(status, gin.H{"success": false, "message": message, "details": details})
}

// AbortFail writes {success:false, message} and aborts the handler chain.
func AbortFail(c *gin.Context, status int, message string) {
	c.AbortWithStatusJSON(status, gin.H{"success": false, "message": message})
}
