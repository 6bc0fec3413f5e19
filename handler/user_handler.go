package handler

import (
	"errors"

	"feathernote/dto"
	"feathernote/repository"
	"feathernote/usecase"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
)

// LogoutHandler revokes the presented token and clears the cookie.
func LogoutHandler(c *gin.Context, userService *usecase.UserService) {
	token := c.GetString("credential_token")

	if err := userService.Logout(c.Request.Context(), token); err != nil {
		utils.InternalError(c, "Logout failed")
		return
	}

	setTokenCookie(c, "", -1)
	utils.Success(c, gin.H{"message": "Logged out successfully"})
}

func GetProfileHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	user, err := userService.GetProfile(c.Request.Context(), userID)
	if err != nil {
		if errors.Is(err, repository.ErrUserNotFound) {
			utils.NotFound(c, "User not found")
			return
		}
		utils.InternalError(c, "Failed to load profile")
		return
	}

	utils.Success(c, dto.ToProfileResponse(user))
}

func UpdateProfileHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	var req dto.UpdateProfileRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	err := userService.UpdateProfile(c.Request.Context(), userID, req.FullName, req.Bio, req.AvatarURL)
	if err != nil {
		utils.BadRequest(c, err.Error())
		return
	}

	utils.Success(c, gin.H{"message": "Profile updated successfully"})
}

func GetSessionsHandler(c *gin.Context, userService *usecase.UserService) {
	userID := c.GetString("user_id")

	sessions, err := userService.GetSessions(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load sessions")
		return
	}

	utils.Success(c, dto.ToSessionResponses(sessions))
}
