package handler

import (
	"context"
	"net/http"
	"time"

	"feathernote/services"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
)

// HealthHandler reports liveness of the store and the blacklist.
func HealthHandler(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), 2*time.Second)
	defer cancel()

	status := gin.H{
		"status": "ok",
		"time":   time.Now().UTC().Format(time.RFC3339),
	}

	if utils.MongoClient != nil {
		if err := utils.MongoClient.Ping(ctx, nil); err != nil {
			status["status"] = "degraded"
			status["mongo"] = "unreachable"
		} else {
			status["mongo"] = "ok"
		}
	}

	if services.TokenBlacklist != nil {
		if err := services.TokenBlacklist.Client.Ping(ctx).Err(); err != nil {
			status["redis"] = "unreachable"
		} else {
			status["redis"] = "ok"
		}
	}

	code := http.StatusOK
	if status["status"] != "ok" {
		code = http.StatusServiceUnavailable
	}
	c.JSON(code, status)
}
