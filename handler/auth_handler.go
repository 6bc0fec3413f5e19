package handler

import (
	"errors"
	"os"

	"feathernote/dto"
	"feathernote/middleware"
	"feathernote/model"
	"feathernote/repository"
	"feathernote/usecase"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
)

func RegistrationHandler(c *gin.Context, userService *usecase.UserService) {
	var user model.User
	if err := c.ShouldBindJSON(&user); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	if err := userService.Register(c.Request.Context(), &user); err != nil {
		if errors.Is(err, repository.ErrEmailTaken) {
			utils.Conflict(c, "Email already in use")
			return
		}
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Created(c, gin.H{"message": "User registered successfully"})
}

// LoginHandler verifies the credentials and sets the signed token as
// an httpOnly cookie; the body carries the token too for API clients.
func LoginHandler(c *gin.Context, userService *usecase.UserService) {
	var loginReq dto.LoginRequest
	if err := c.ShouldBindJSON(&loginReq); err != nil {
		utils.BadRequest(c, "Invalid request")
		return
	}

	token, user, err := userService.Login(c.Request.Context(),
		loginReq.Email, loginReq.Password,
		c.Request.UserAgent(), c.ClientIP())
	if err != nil {
		if errors.Is(err, usecase.ErrInvalidCredentials) {
			middleware.AuthAttempts.WithLabelValues("failure").Inc()
			utils.Unauthorized(c, "Invalid email or password")
			return
		}
		utils.InternalError(c, "Login failed")
		return
	}

	middleware.AuthAttempts.WithLabelValues("success").Inc()
	setTokenCookie(c, token, int(utils.JWTExpirationTime))

	utils.Success(c, gin.H{
		"message":   "Login successful",
		"token":     token,
		"full_name": user.FullName,
	})
}

func setTokenCookie(c *gin.Context, token string, maxAge int) {
	secure := os.Getenv("GO_ENV") == "production"
	c.SetCookie(middleware.TokenCookieName, token, maxAge, "/", "", secure, true)
}
