package main

import (
	"fmt"
	"log"
	"os"

	"main/handler"
	"main/middleware"
	"main/repository"
	"main/services"
	"main/usecase"
	"main/utils"

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
		"USERS_COLLECTION",
		"SESSION_COLLECTION",
		"JWT_SECRET_KEY",
		"JWT_EXPIRATION_TIME",
		"REFRESH_TOKEN_EXPIRATION_TIME",
		"REDIS_URL",
		"PORT",
	}
	for _, envVar := range requiredEnvVars {
		if os.Getenv(envVar) == "" && os.Getenv("GO_ENV") != "test" {
			log.Fatalf("Required environment variable %s is not set", envVar)
		}
	}

	utils.InitValidator()
	utils.InitJWT()
	utils.InitMongoClient()
}

func initRedis() {
	redisURL := os.Getenv("REDIS_URL")

	blacklist, err := services.NewTokenBlacklist(redisURL)
	if err != nil {
		log.Fatalf("Failed to initialize token blacklist: %v", err)
	}
	services.TokenBlacklist = blacklist

	sessionCache, err := services.NewSessionCache(redisURL)
	if err != nil {
		log.Printf("Warning: session cache unavailable, falling back to Mongo: %v", err)
	} else {
		services.GlobalSessionCache = sessionCache
	}

	statsCache, err := services.NewStatsCache(redisURL)
	if err != nil {
		log.Printf("Warning: stats cache unavailable, stats will be recomputed per request: %v", err)
	} else {
		services.GlobalStatsCache = statsCache
	}
}

func setupRouter() *gin.Engine {
	router := gin.New()
	router.Use(gin.Logger())
	router.Use(middleware.RecoveryMiddleware())
	router.Use(middleware.CORSMiddleware())
	router.Use(middleware.MetricsMiddleware())

	sessionRepo := repository.GetSessionRepo(utils.MongoClient)
	router.Use(middleware.SessionMiddleware(sessionRepo))

	logsService := &usecase.LogsService{
		LogsRepo:   repository.GetLogsRepo(utils.MongoClient),
		StatsCache: services.GlobalStatsCache,
	}
	goalsService := &usecase.GoalsService{
		GoalsRepo: repository.GetGoalsRepo(utils.MongoClient),
	}
	bucketService := &usecase.BucketService{
		Store: repository.GetBucketRepo(utils.MongoClient),
	}
	rememberedService := &usecase.RememberedService{
		RememberedRepo: repository.GetRememberedRepo(utils.MongoClient),
	}
	exportService := &usecase.ExportService{
		LogsRepo:  logsService.LogsRepo,
		GoalsRepo: goalsService.GoalsRepo,
		LogsSvc:   logsService,
	}

	mediaStore, err := services.NewMediaStore(utils.MongoDB)
	if err != nil {
		log.Fatalf("Failed to initialize media store: %v", err)
	}

	logsHandler := handler.NewLogsHandler(logsService)
	statsHandler := handler.NewStatsHandler(logsService)
	goalsHandler := handler.NewGoalsHandler(goalsService)
	bucketHandler := handler.NewBucketHandler(bucketService)
	rememberedHandler := handler.NewRememberedHandler(rememberedService)
	exportHandler := handler.NewExportHandler(exportService)
	mediaHandler := handler.NewMediaHandler(mediaStore, logsService)

	router.GET("/health", handler.HealthCheckHandler)
	router.GET("/metrics", gin.WrapH(promhttp.Handler()))

	public := router.Group("/api")
	{
		auth := public.Group("/auth")
		{
			auth.POST("/register", handler.RegistrationHandler)
			auth.POST("/login", func(c *gin.Context) {
				handler.LoginHandler(c, sessionRepo)
			})
			auth.POST("/refresh", handler.RefreshTokenHandler)
		}
	}

	protected := router.Group("/api")
	protected.Use(middleware.AuthMiddleware())
	{
		user := protected.Group("/user")
		{
			user.GET("/profile", handler.GetUserProfileHandler)
			user.POST("/change-password", handler.ChangePasswordHandler)
			user.POST("/logout", handler.LogoutHandler)
			user.DELETE("/delete", handler.DeleteUserHandler)
		}

		sessions := protected.Group("/sessions")
		{
			sessions.GET("/active", func(c *gin.Context) {
				handler.GetActiveSessions(c, sessionRepo)
			})
			sessions.POST("/logout-all", func(c *gin.Context) {
				handler.LogoutAllSessions(c, sessionRepo)
			})
			sessions.DELETE("/:id", func(c *gin.Context) {
				handler.LogoutSession(c, sessionRepo)
			})
		}

		logs := protected.Group("/logs")
		{
			logs.GET("", logsHandler.GetLogs)
			logs.GET("/search", logsHandler.SearchLogs)
			logs.GET("/:date", logsHandler.GetLog)
			logs.PUT("/:date", logsHandler.PutLog)
			logs.DELETE("/:date", logsHandler.DeleteLog)
			logs.POST("/:date/media", mediaHandler.UploadMedia)
		}

		protected.GET("/stats", statsHandler.GetUserStats)

		goals := protected.Group("/goals")
		{
			goals.GET("", goalsHandler.GetGoals)
			goals.GET("/nearing-deadline", goalsHandler.GetGoalsNearingDeadline)
			goals.POST("", goalsHandler.CreateGoal)
			goals.PUT("/:id", goalsHandler.UpdateGoal)
			goals.DELETE("/:id", goalsHandler.DeleteGoal)
		}

		bucket := protected.Group("/bucket")
		{
			bucket.GET("", bucketHandler.GetItems)
			bucket.POST("", bucketHandler.AddItem)
			bucket.POST("/:id/toggle", bucketHandler.ToggleComplete)
			bucket.DELETE("/:id", bucketHandler.DeleteItem)
		}

		remembered := protected.Group("/remembered")
		{
			remembered.GET("", rememberedHandler.GetItems)
			remembered.POST("", rememberedHandler.AddItem)
			remembered.PUT("/:id", rememberedHandler.UpdateItem)
			remembered.DELETE("/:id", rememberedHandler.DeleteItem)
		}

		protected.GET("/export", exportHandler.ExportData)
		protected.POST("/import", exportHandler.ImportData)

		// Blobs are immutable once stored, so clients may cache for a day.
		protected.GET("/media/:id", middleware.CacheControlMiddleware("86400"), mediaHandler.DownloadMedia)
		protected.DELETE("/media/:id", mediaHandler.DeleteMedia)
	}

	return router
}

func main() {
	initRedis()

	if err := repository.SetupIndexes(utils.MongoDB); err != nil {
		log.Fatalf("Failed to create indexes: %v", err)
	}

	router := setupRouter()

	serverAddr := fmt.Sprintf(":%s", utils.GetEnvAsString("PORT", "8080"))
	log.Printf("Server starting on %s", serverAddr)
	if err := router.Run(serverAddr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
