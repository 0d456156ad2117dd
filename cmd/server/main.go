package main

import (
	"log"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/mizutani-dev/teamtrack-api/internal/config"
	"github.com/mizutani-dev/teamtrack-api/internal/constants"
	"github.com/mizutani-dev/teamtrack-api/internal/database"
	"github.com/mizutani-dev/teamtrack-api/internal/handlers"
	"github.com/mizutani-dev/teamtrack-api/internal/logging"
	"github.com/mizutani-dev/teamtrack-api/internal/middleware"
	"github.com/mizutani-dev/teamtrack-api/internal/repository"
	"github.com/mizutani-dev/teamtrack-api/internal/services"
)

func main() {
	cfg := config.Load()

	logger, err := logging.Init(cfg.GinMode)
	if err != nil {
		log.Fatalf("Failed to initialize logger: %v", err)
	}
	defer logging.Sync()

	gin.SetMode(cfg.GinMode)

	if err := database.Connect(cfg); err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := database.Migrate(); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(logger))

	// Session middleware backed by Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,
		"tcp",
		redisAddr,
		"",
		"",
		[]byte(cfg.SessionSecret),
	)
	if err != nil {
		log.Fatalf("Failed to create Redis store: %v", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // Lax
	})
	r.Use(sessions.Sessions(constants.SessionCookieName, store))

	db := database.GetDB()
	workerRepo := repository.NewWorkerRepository(db)
	projectRepo := repository.NewProjectRepository(db)
	taskRepo := repository.NewTaskRepository(db)
	messageRepo := repository.NewMessageRepository(db)
	lookupRepo := repository.NewLookupRepository(db)

	var suggestionService *services.SuggestionService
	if cfg.OpenAIAPIKey != "" {
		suggestionService = services.NewSuggestionService(cfg.OpenAIAPIKey)
	}

	authService := services.NewAuthService(workerRepo)
	projectService := services.NewProjectService(projectRepo)
	taskService := services.NewTaskService(taskRepo, projectRepo, projectService, suggestionService)
	messageService := services.NewMessageService(messageRepo, taskRepo, projectRepo, projectService)

	authHandler := handlers.NewAuthHandler(authService)
	projectHandler := handlers.NewProjectHandler(projectService)
	taskHandler := handlers.NewTaskHandler(taskService)
	messageHandler := handlers.NewMessageHandler(messageService)
	lookupHandler := handlers.NewLookupHandler(lookupRepo)

	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "TeamTrack API is running",
		})
	})

	api := r.Group("/api")
	{
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentWorker)
			auth.PATCH("/me", middleware.RequireAuth(), authHandler.UpdateProfile)
		}

		lookups := api.Group("", middleware.RequireAuth())
		{
			lookups.GET("/positions", lookupHandler.ListPositions)
			lookups.GET("/task-types", lookupHandler.ListTaskTypes)
			lookups.DELETE("/task-types/:id", lookupHandler.DeleteTaskType)
		}

		projects := api.Group("/projects")
		projects.Use(middleware.RequireAuth())
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.ListProjects)
			projects.POST("/join", projectHandler.JoinProject)

			scoped := projects.Group("/:id", middleware.RequireProjectAccess())
			{
				scoped.GET("", projectHandler.GetProject)
				scoped.PUT("", middleware.RequireProjectCreator(), projectHandler.UpdateProject)
				scoped.DELETE("", middleware.RequireProjectCreator(), projectHandler.DeleteProject)
				scoped.POST("/invitation", middleware.RequireProjectCreator(), projectHandler.GenerateInvitationCode)

				scoped.GET("/tasks", taskHandler.ListTasks)
				scoped.POST("/tasks", taskHandler.CreateTask)
				scoped.POST("/tasks/suggest", taskHandler.SuggestTasks)

				task := scoped.Group("/tasks/:task_id", middleware.RequireTaskInProject())
				{
					task.GET("", taskHandler.GetTask)
					task.PATCH("", taskHandler.UpdateTask)
					task.DELETE("", taskHandler.DeleteTask)
					task.GET("/comments", messageHandler.ListComments)
					task.POST("/comments", messageHandler.AddComment)
				}

				scoped.GET("/chat", messageHandler.ListChat)
				scoped.POST("/chat", messageHandler.SendChatMessage)
			}
		}
	}

	logger.Info("server starting on :8080")
	if err := r.Run(":8080"); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}
