package main

import (
	"context"
	"log"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/savconnect/savconnect-api/adapters/event"
	httpAdapter "github.com/savconnect/savconnect-api/adapters/http"
	"github.com/savconnect/savconnect-api/adapters/media_storage"
	"github.com/savconnect/savconnect-api/adapters/persistence"
	authUC "github.com/savconnect/savconnect-api/internal/application/usecase/auth"
	notificationUC "github.com/savconnect/savconnect-api/internal/application/usecase/notification"
	postUC "github.com/savconnect/savconnect-api/internal/application/usecase/post"
	profileUC "github.com/savconnect/savconnect-api/internal/application/usecase/profile"
	userUC "github.com/savconnect/savconnect-api/internal/application/usecase/user"
	"github.com/savconnect/savconnect-api/internal/config"
	"github.com/savconnect/savconnect-api/pkg/auth"
	"github.com/savconnect/savconnect-api/pkg/logger"
	"github.com/savconnect/savconnect-api/pkg/tracing"
)

func main() {

	// Load configuration
	cfg, err := config.LoadConfig()
	if err != nil {
		log.Fatalf("FATAL: cannot load config: %v", err)
	}

	appLogger := logger.NewZapLogger(cfg.App.Env)
	appLogger.Info("Starting SavConnect API server...")

	// Tracing
	tp, err := tracing.NewTracerProvider(cfg, appLogger, "savconnect-api")
	if err != nil {
		appLogger.Fatal("cannot init tracer provider", err)
	}
	defer func() {
		if err := tp.Shutdown(context.Background()); err != nil {
			appLogger.Error("failed to shutdown tracer provider", err)
		}
	}()

	// Initialize dependencies
	dbPool, err := persistence.NewPostgresPool(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Postgres", err)
	}
	defer dbPool.Close()

	redisClient, err := persistence.NewRedisClient(cfg, appLogger)
	if err != nil {
		appLogger.Fatal("cannot connect Redis", err)
	}
	defer redisClient.Close()

	kafkaClient, err := event.NewKafkaProducerClient(cfg)
	if err != nil {
		appLogger.Fatal("cannot init Kafka", err)
	}
	defer kafkaClient.Close()

	// Repositories
	userRepo := persistence.NewPostgresUserRepo(dbPool)
	profileRepo := persistence.NewPostgresProfileRepo(dbPool, appLogger)
	postRepo := persistence.NewPostgresPostRepo(dbPool)
	notificationRepo := persistence.NewPostgresNotificationRepo(dbPool)
	feedCache := persistence.NewRedisFeedCache(redisClient, appLogger)

	// Services
	jwtSvc := auth.NewJWTService(cfg.Auth.JWTSecret, cfg.Auth.TokenLifespan)
	uploader, err := media_storage.NewCloudinaryAdapter(cfg)
	if err != nil {
		appLogger.Fatal("failed to initialize uploader", err)
	}

	// Use Cases
	registerUseCase := authUC.NewRegisterUseCase(userRepo, jwtSvc, appLogger)
	loginUseCase := authUC.NewLoginUseCase(userRepo, jwtSvc, appLogger)
	updateAvatarUseCase := userUC.NewUpdateAvatarUseCase(userRepo, uploader, appLogger)
	profileUseCase := profileUC.NewProfileUseCase(profileRepo, userRepo, appLogger)
	createPostUseCase := postUC.NewCreatePostUseCase(postRepo, userRepo, kafkaClient, feedCache, appLogger)
	listPostsUseCase := postUC.NewListPostsUseCase(postRepo, feedCache, appLogger)
	getPostUseCase := postUC.NewGetPostUseCase(postRepo)
	deletePostUseCase := postUC.NewDeletePostUseCase(postRepo, kafkaClient, feedCache, appLogger)
	likePostUseCase := postUC.NewLikePostUseCase(postRepo, kafkaClient, feedCache, appLogger)
	unlikePostUseCase := postUC.NewUnlikePostUseCase(postRepo, kafkaClient, feedCache, appLogger)
	addCommentUseCase := postUC.NewAddCommentUseCase(postRepo, userRepo, kafkaClient, feedCache, appLogger)
	removeCommentUseCase := postUC.NewRemoveCommentUseCase(postRepo, feedCache, appLogger)
	listNotificationsUseCase := notificationUC.NewListNotificationsUseCase(notificationRepo)
	markReadUseCase := notificationUC.NewMarkReadUseCase(notificationRepo)

	// HTTP Handlers
	authHandler := httpAdapter.NewAuthHandler(registerUseCase, loginUseCase)
	userHandler := httpAdapter.NewUserHandler(updateAvatarUseCase)
	profileHandler := httpAdapter.NewProfileHandler(profileUseCase)
	postHandler := httpAdapter.NewPostHandler(
		createPostUseCase,
		listPostsUseCase,
		getPostUseCase,
		deletePostUseCase,
		likePostUseCase,
		unlikePostUseCase,
		addCommentUseCase,
		removeCommentUseCase,
	)
	notificationHandler := httpAdapter.NewNotificationHandler(listNotificationsUseCase, markReadUseCase)

	// Middleware
	authMiddleware := httpAdapter.AuthMiddleware(jwtSvc)

	// Setup Gin router
	router := gin.Default()
	router.Use(httpAdapter.ErrorMiddleware(appLogger))

	api := router.Group("/api")
	{
		api.GET("/health", func(c *gin.Context) { c.JSON(http.StatusOK, gin.H{"status": "UP"}) })

		authGroup := api.Group("/auth")
		{
			authGroup.POST("/register", authHandler.Register)
			authGroup.POST("/login", authHandler.Login)
		}

		// Public reads
		api.GET("/profiles", profileHandler.ListProfiles)
		api.GET("/profiles/:user_id", profileHandler.GetProfileByUserID)
		api.GET("/posts", postHandler.ListPosts)
		api.GET("/posts/:id", postHandler.GetPost)

		private := api.Group("/")
		private.Use(authMiddleware)
		{
			private.POST("/users/avatar", userHandler.UpdateAvatar)

			profile := private.Group("/profile")
			{
				profile.GET("/me", profileHandler.GetMyProfile)
				profile.POST("", profileHandler.UpsertProfile)
				profile.DELETE("", profileHandler.DeleteProfile)
				profile.PUT("/experience", profileHandler.AddExperience)
				profile.DELETE("/experience/:exp_id", profileHandler.RemoveExperience)
				profile.PUT("/education", profileHandler.AddEducation)
				profile.DELETE("/education/:edu_id", profileHandler.RemoveEducation)
			}

			posts := private.Group("/posts")
			{
				posts.POST("", postHandler.CreatePost)
				posts.DELETE("/:id", postHandler.DeletePost)
				posts.PUT("/:id/like", postHandler.LikePost)
				posts.PUT("/:id/unlike", postHandler.UnlikePost)
				posts.POST("/:id/comments", postHandler.AddComment)
				posts.DELETE("/:id/comments/:comment_id", postHandler.RemoveComment)
			}

			notifications := private.Group("/notifications")
			{
				notifications.GET("", notificationHandler.ListNotifications)
				notifications.POST("/:id/read", notificationHandler.MarkRead)
			}
		}
	}

	appLogger.Info("Server running on port " + cfg.App.Port)
	if err := router.Run(":" + cfg.App.Port); err != nil {
		appLogger.Fatal("cannot run server", err)
	}
}
