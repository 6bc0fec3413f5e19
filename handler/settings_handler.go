package handler

import (
	"feathernote/dto"
	"feathernote/model"
	"feathernote/usecase"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
)

func GetSettingsHandler(c *gin.Context, extrasService *usecase.ExtrasService) {
	userID := c.GetString("user_id")

	settings, err := extrasService.GetSettings(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load settings")
		return
	}

	utils.Success(c, settings)
}

func SaveSettingsHandler(c *gin.Context, extrasService *usecase.ExtrasService) {
	userID := c.GetString("user_id")

	var req dto.SaveSettingsRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.BadRequest(c, "Invalid request body")
		return
	}

	err := extrasService.SaveSettings(c.Request.Context(), userID, &model.Settings{
		Theme:         req.Theme,
		Notifications: req.Notifications,
		SortBy:        req.SortBy,
		SortOrder:     req.SortOrder,
	})
	if err != nil {
		utils.InternalError(c, "Failed to save settings")
		return
	}

	utils.Success(c, gin.H{"message": "Settings saved successfully"})
}

func ListActivityHandler(c *gin.Context, extrasService *usecase.ExtrasService) {
	userID := c.GetString("user_id")

	entries, err := extrasService.ListActivity(c.Request.Context(), userID)
	if err != nil {
		utils.InternalError(c, "Failed to load activity")
		return
	}

	utils.Success(c, dto.ToActivityResponses(entries))
}
