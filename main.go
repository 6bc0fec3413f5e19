package main

import (
	"fmt"
	"log"
	"os"
	"time"

	"feathernote/handler"
	"feathernote/logger"
	"feathernote/middleware"
	"feathernote/repository"
	"feathernote/services"
	"feathernote/usecase"
	"feathernote/utils"

	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

func init() {
	if err := godotenv.Load(); err != nil && os.Getenv("GO_ENV") != "test" {
		log.Fatalf("Error loading .env file: %v", err)
	}

	requiredEnvVars := []string{
		"MONGO_URI",
		"MONGO_DB",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"PORT",
	}

	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	logger.Init()
	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func setupRouter() *gin.Engine {
	router := gin.New()

	notesRepo := repository.GetNotesRepo(utils.MongoClient)
	usersRepo := repository.GetUsersRepo(utils.MongoClient)
	sessionsRepo := repository.GetSessionsRepo(utils.MongoClient)
	settingsRepo := repository.GetSettingsRepo(utils.MongoClient)
	activityRepo := repository.GetActivityRepo(utils.MongoClient)

	notesService := &usecase.NotesService{
		NotesRepo:    notesRepo,
		ActivityRepo: activityRepo,
	}
	userService := &usecase.UserService{
		UsersRepo:    usersRepo,
		SessionsRepo: sessionsRepo,
	}
	extrasService := &usecase.ExtrasService{
		SettingsRepo: settingsRepo,
		ActivityRepo: activityRepo,
	}

	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.RequestLogger())
	router.Use(middleware.MetricsMiddleware())
	router.Use(middleware.RecoveryMiddleware())

	router.GET("/health", handler.HealthHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	// Public routes
	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", func(c *gin.Context) {
				handler.RegistrationHandler(c, userService)
			})
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, userService)
			})
		}
	}

	// Protected routes
	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.POST("/logout", func(c *gin.Context) {
				handler.LogoutHandler(c, userService)
			})
			user.GET("/profile", func(c *gin.Context) {
				handler.GetProfileHandler(c, userService)
			})
			user.PUT("/profile", func(c *gin.Context) {
				handler.UpdateProfileHandler(c, userService)
			})
			user.GET("/sessions", func(c *gin.Context) {
				handler.GetSessionsHandler(c, userService)
			})
		}

		notes := protected.Group("/notes")
		{
			notes.GET("", func(c *gin.Context) {
				handler.ListNotesHandler(c, notesService)
			})
			notes.GET("/archived", func(c *gin.Context) {
				handler.ListArchivedNotesHandler(c, notesService)
			})
			notes.GET("/due", func(c *gin.Context) {
				handler.ListDueNotesHandler(c, notesService)
			})
			notes.GET("/tags", func(c *gin.Context) {
				handler.ListTagsHandler(c, notesService)
			})
			notes.GET("/:id", func(c *gin.Context) {
				handler.GetNoteHandler(c, notesService)
			})

			notes.POST("", func(c *gin.Context) {
				handler.CreateNoteHandler(c, notesService)
			})
			notes.PUT("/:id", func(c *gin.Context) {
				handler.UpdateNoteHandler(c, notesService)
			})
			notes.DELETE("/:id", func(c *gin.Context) {
				handler.DeleteNoteHandler(c, notesService)
			})

			notes.POST("/:id/archive", func(c *gin.Context) {
				handler.ArchiveNoteHandler(c, notesService)
			})
			notes.POST("/:id/unarchive", func(c *gin.Context) {
				handler.UnarchiveNoteHandler(c, notesService)
			})
			notes.POST("/:id/pin", func(c *gin.Context) {
				handler.PinNoteHandler(c, notesService)
			})
			notes.POST("/:id/unpin", func(c *gin.Context) {
				handler.UnpinNoteHandler(c, notesService)
			})
			notes.POST("/:id/lock", func(c *gin.Context) {
				handler.LockNoteHandler(c, notesService)
			})
			notes.POST("/:id/unlock", func(c *gin.Context) {
				handler.UnlockNoteHandler(c, notesService)
			})
		}

		settings := protected.Group("/settings")
		{
			settings.GET("", func(c *gin.Context) {
				handler.GetSettingsHandler(c, extrasService)
			})
			settings.PUT("", func(c *gin.Context) {
				handler.SaveSettingsHandler(c, extrasService)
			})
		}

		protected.GET("/activity", func(c *gin.Context) {
			handler.ListActivityHandler(c, extrasService)
		})
	}

	return router
}

func main() {
	db := utils.MongoClient.Database(os.Getenv("MONGO_DB"))
	if err := repository.SetupIndexes(db); err != nil {
		log.Fatalf("Failed to set up indexes: %v", err)
	}

	// Redis is optional: without it tokens simply cannot be revoked
	// before expiry.
	if redisURL := os.Getenv("REDIS_URL"); redisURL != "" {
		blacklist, err := services.NewTokenBlacklist(redisURL)
		if err != nil {
			log.Fatalf("Failed to connect to Redis: %v", err)
		}
		services.TokenBlacklist = blacklist
	}

	stopMetrics := utils.StartSystemMetrics(utils.GetEnvAsDuration("SYSTEM_METRICS_INTERVAL", 15*time.Second))
	defer stopMetrics()

	router := setupRouter()

	port := utils.GetEnvAsString("PORT", "8080")
	serverAddr := fmt.Sprintf(":%s", port)
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
