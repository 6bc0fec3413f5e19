package handler

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"feathernote/middleware"
	"feathernote/services"
	"feathernote/usecase"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// Logout must succeed and clear the cookie even without Redis; the
// token then simply stays valid until its natural expiry.
func TestLogoutWithoutBlacklistClearsCookie(t *testing.T) {
	prev := services.TokenBlacklist
	services.TokenBlacklist = nil
	defer func() { services.TokenBlacklist = prev }()

	userService := &usecase.UserService{}

	router := gin.New()
	router.POST("/api/user/logout", middleware.AuthMiddleware(), func(c *gin.Context) {
		LogoutHandler(c, userService)
	})

	token, err := services.GenerateToken(uuid.NewString())
	require.NoError(t, err)

	req := httptest.NewRequest(http.MethodPost, "/api/user/logout", nil)
	req.AddCookie(&http.Cookie{Name: middleware.TokenCookieName, Value: token})

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)

	require.Equal(t, http.StatusOK, w.Code)

	cookies := w.Result().Cookies()
	require.Len(t, cookies, 1)
	assert.Equal(t, middleware.TokenCookieName, cookies[0].Name)
	assert.Empty(t, cookies[0].Value)
	assert.Negative(t, cookies[0].MaxAge)
}
