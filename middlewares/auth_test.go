package middlewares

import (
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/OhadLibai/Timely-sub002/utils"
	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testSecret = "test-secret"

func newAuthRouter(roles ...string) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()
	r.GET("/protected", AuthMiddleware(testSecret, roles...), func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"userId": utils.CurrentUserID(c),
			"role":   utils.CurrentRole(c),
		})
	})
	return r
}

func doRequest(r *gin.Engine, token string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, "/protected", nil)
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func TestAuthMiddleware(t *testing.T) {
	t.Run("missing header", func(t *testing.T) {
		w := doRequest(newAuthRouter(), "")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("garbage token", func(t *testing.T) {
		w := doRequest(newAuthRouter(), "not-a-jwt")
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("wrong secret", func(t *testing.T) {
		token, err := utils.GenerateToken(1, "customer", "other-secret", time.Hour)
		require.NoError(t, err)
		w := doRequest(newAuthRouter(), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("expired token", func(t *testing.T) {
		token, err := utils.GenerateToken(1, "customer", testSecret, -time.Minute)
		require.NoError(t, err)
		w := doRequest(newAuthRouter(), token)
		assert.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("valid token passes claims through", func(t *testing.T) {
		token, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
		require.NoError(t, err)
		w := doRequest(newAuthRouter(), token)
		assert.Equal(t, http.StatusOK, w.Code)
		assert.Contains(t, w.Body.String(), `"userId":7`)
		assert.Contains(t, w.Body.String(), `"role":"customer"`)
	})

	t.Run("role enforcement", func(t *testing.T) {
		customer, err := utils.GenerateToken(7, "customer", testSecret, time.Hour)
		require.NoError(t, err)
		admin, err := utils.GenerateToken(8, "admin", testSecret, time.Hour)
		require.NoError(t, err)

		r := newAuthRouter("admin")
		assert.Equal(t, http.StatusForbidden, doRequest(r, customer).Code)
		assert.Equal(t, http.StatusOK, doRequest(r, admin).Code)
	})
}
