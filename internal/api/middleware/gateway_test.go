package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
)

func setupGatewayTestRouter(capture *map[string]any) *gin.Engine {
	gin.SetMode(gin.TestMode)
	router := gin.New()
	router.Use(OptionalGatewayAuth())
	router.GET("/probe", func(c *gin.Context) {
		if userID, ok := GetUserIDFromGateway(c); ok {
			(*capture)["user_id"] = userID
			(*capture)["user_email"] = c.GetString("user_email")
			(*capture)["user_role"] = c.GetString("user_role")
		}
		c.Status(http.StatusOK)
	})
	return router
}

func TestOptionalGatewayAuth_TrustsGatewayHeaders(t *testing.T) {
	capture := map[string]any{}
	router := setupGatewayTestRouter(&capture)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	req.Header.Set("X-User-ID", "user-42")
	req.Header.Set("X-User-Email", "writer@example.com")
	req.Header.Set("X-User-Role", "author")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "user-42", capture["user_id"])
	assert.Equal(t, "writer@example.com", capture["user_email"])
	assert.Equal(t, "author", capture["user_role"])
}

func TestOptionalGatewayAuth_AnonymousPassesThrough(t *testing.T) {
	capture := map[string]any{}
	router := setupGatewayTestRouter(&capture)

	req := httptest.NewRequest(http.MethodGet, "/probe", nil)
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	assert.Equal(t, http.StatusOK, w.Code)
	assert.Empty(t, capture, "no identity keys may be set for anonymous requests")
}
