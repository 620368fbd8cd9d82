package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jobdeck/jobdeck/pkg/helpers"
)

func authRouter(jwt *helpers.JWTManager) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", RequireAuth(jwt), func(c *gin.Context) {
		id, _ := UserID(c)
		c.JSON(http.StatusOK, gin.H{"userId": id})
	})
	return r
}

func TestRequireAuth(t *testing.T) {
	jwt := helpers.NewJWTManager("test-secret", "JobPortalAPI", 168*time.Hour)
	token, err := jwt.Generate(42, "jane@example.com", "Jane", "Doe")
	require.NoError(t, err)

	expired := helpers.NewJWTManager("test-secret", "JobPortalAPI", -time.Minute)
	expiredToken, err := expired.Generate(42, "jane@example.com", "Jane", "Doe")
	require.NoError(t, err)

	wrongSecret := helpers.NewJWTManager("other-secret", "JobPortalAPI", time.Hour)
	forgedToken, err := wrongSecret.Generate(42, "jane@example.com", "Jane", "Doe")
	require.NoError(t, err)

	tests := []struct {
		name       string
		header     string
		wantStatus int
		wantBody   string
	}{
		{"valid bearer", "Bearer " + token, http.StatusOK, `"userId":42`},
		{"lowercase scheme", "bearer " + token, http.StatusOK, `"userId":42`},
		{"missing header", "", http.StatusUnauthorized, "Valid authorization token required"},
		{"no scheme", token, http.StatusUnauthorized, "Valid authorization token required"},
		{"wrong scheme", "Basic " + token, http.StatusUnauthorized, "Valid authorization token required"},
		{"expired token", "Bearer " + expiredToken, http.StatusUnauthorized, "Valid authorization token required"},
		{"forged token", "Bearer " + forgedToken, http.StatusUnauthorized, "Valid authorization token required"},
		{"garbage token", "Bearer not.a.token", http.StatusUnauthorized, "Valid authorization token required"},
	}

	r := authRouter(jwt)
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req := httptest.NewRequest(http.MethodGet, "/protected", nil)
			if tt.header != "" {
				req.Header.Set("Authorization", tt.header)
			}
			rr := httptest.NewRecorder()
			r.ServeHTTP(rr, req)

			assert.Equal(t, tt.wantStatus, rr.Code)
			assert.Contains(t, rr.Body.String(), tt.wantBody)
			if tt.wantStatus == http.StatusUnauthorized {
				assert.Contains(t, rr.Body.String(), `"success":false`)
			}
		})
	}
}
