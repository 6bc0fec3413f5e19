package middleware

import (
	"strings"

	"feathernote/services"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
)

// TokenCookieName is the cookie the browser UI carries the credential
// token in. API clients may send a Bearer header instead.
const TokenCookieName = "token"

// AuthMiddleware resolves the acting user from the request credential
// and aborts with 401 before any handler runs when it cannot. Handlers
// downstream read the identity with c.GetString("user_id").
func AuthMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		tokenString := credentialToken(c)
		if tokenString == "" {
			utils.Unauthorized(c, "Not authenticated")
			c.Abort()
			return
		}

		if services.IsTokenBlacklisted(c.Request.Context(), tokenString) {
			utils.Unauthorized(c, "Token has been invalidated")
			c.Abort()
			return
		}

		userID, err := services.ParseToken(tokenString)
		if err != nil {
			utils.Unauthorized(c, "Invalid or expired token")
			c.Abort()
			return
		}

		c.Set("user_id", userID)
		c.Set("credential_token", tokenString)
		c.Next()
	}
}

func credentialToken(c *gin.Context) string {
	if cookie, err := c.Cookie(TokenCookieName); err == nil && cookie != "" {
		return cookie
	}

	authHeader := c.GetHeader("Authorization")
	if strings.HasPrefix(authHeader, "Bearer ") {
		return strings.TrimPrefix(authHeader, "Bearer ")
	}
	return ""
}
