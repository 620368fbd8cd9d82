package middleware

import (
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"

	"github.com/jobdeck/jobdeck/pkg/helpers"
	"github.com/jobdeck/jobdeck/pkg/response"
)

// Context keys set by RequireAuth.
const (
	CtxUserIDKey    = "userID"
	CtxUserEmailKey = "userEmail"
	CtxUserNameKey  = "userName"
)

const msgTokenRequired = "Valid authorization token required"

// RequireAuth validates the Authorization bearer token and injects the
// applicant's id, email, and name into the Gin context. Every failure mode
// gets the same 401 body.
func RequireAuth(jwt *helpers.JWTManager) gin.HandlerFunc {
	return func(c *gin.Context) {
		token := bearerToken(c.GetHeader("Authorization"))
		if token == "" {
			response.AbortFail(c, http.StatusUnauthorized, msgTokenRequired)
			return
		}
		claims, err := jwt.Parse(token)
		if err != nil {
			response.AbortFail(c, http.StatusUnauthorized, msgTokenRequired)
			return
		}
		id, ok := claims.IntUserID()
		if !ok {
			response.AbortFail(c, http.StatusUnauthorized, msgTokenRequired)
			return
		}
		c.Set(CtxUserIDKey, id)
		c.Set(CtxUserEmailKey, claims.Email)
		c.Set(CtxUserNameKey, strings.TrimSpace(claims.FirstName+" "+claims.LastName))
		c.Next()
	}
}

// UserID reads the authenticated applicant id set by RequireAuth.
func UserID(c *gin.Context) (int, bool) {
	v, ok := c.Get(CtxUserIDKey)
	if !ok {
		return 0, false
	}
	id, ok := v.(int)
	return id, ok
}

func bearerToken(header string) string {
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
		return ""
	}
	return strings.TrimSpace(parts[1])
}
