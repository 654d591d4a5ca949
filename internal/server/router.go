package server

import (
	"fmt"

	"github.com/gin-contrib/sessions"
	redisStore "github.com/gin-contrib/sessions/redis"
	"github.com/gin-gonic/gin"
	"github.com/volunteerhub/volunteer-hub-api/internal/config"
	"github.com/volunteerhub/volunteer-hub-api/internal/database"
	"github.com/volunteerhub/volunteer-hub-api/internal/handlers"
	"github.com/volunteerhub/volunteer-hub-api/internal/middleware"
	"github.com/volunteerhub/volunteer-hub-api/internal/repository"
	"github.com/volunteerhub/volunteer-hub-api/internal/services"
)

// NewRouter builds the HTTP router. The database connection must already be
// established.
func NewRouter(cfg *config.Config) (*gin.Engine, error) {
	r := gin.Default()

	// Session middleware backed by Redis
	redisAddr := cfg.RedisHost + ":" + cfg.RedisPort
	store, err := redisStore.NewStore(
		10,        // Redis pool size
		"tcp",     // network type
		redisAddr, // Redis address from config
		"",        // username (empty for default user)
		"",        // password (empty = no password)
		[]byte(cfg.SessionSecret), // authentication key
	)
	if err != nil {
		return nil, fmt.Errorf("failed to create Redis store: %w", err)
	}
	isProduction := cfg.GinMode == "release"
	store.Options(sessions.Options{
		Path:     "/",
		MaxAge:   86400 * 7, // 7 days
		HttpOnly: true,
		Secure:   isProduction,
		SameSite: 2, // SameSite=Lax (1=Strict, 2=Lax, 3=None)
	})
	r.Use(sessions.Sessions("volunteer_session", store))

	db := database.GetDB()

	// Repositories
	taskRepo := repository.NewTaskRepository(db)
	userRepo := repository.NewUserRepository(db)
	skillRepo := repository.NewSkillRepository(db)
	availabilityRepo := repository.NewAvailabilityRepository(db)
	impactRepo := repository.NewImpactRepository(db)
	communityRepo := repository.NewCommunityRepository(db)

	// Services
	authService := services.NewAuthService(userRepo, skillRepo)
	taskService := services.NewTaskService(taskRepo, userRepo, skillRepo, cfg.DailyPostLimit)
	rateLimitService := services.NewRateLimitService(taskRepo, cfg.DailyPostLimit)
	impactService := services.NewImpactService(impactRepo, userRepo)
	var aiService *services.AIService
	if cfg.OpenAIAPIKey != "" {
		aiService = services.NewAIService(cfg.OpenAIAPIKey)
	}

	// Handlers
	authHandler := handlers.NewAuthHandler(authService)
	taskHandler := handlers.NewTaskHandler(taskService, rateLimitService)
	skillHandler := handlers.NewSkillHandler(skillRepo, aiService)
	volunteerHandler := handlers.NewVolunteerHandler(userRepo, skillRepo, availabilityRepo)
	impactHandler := handlers.NewImpactHandler(impactService)
	communityHandler := handlers.NewCommunityHandler(communityRepo)

	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"message": "Volunteer Hub API is running",
		})
	})

	// API routes
	api := r.Group("/api")
	{
		// Auth routes (public)
		auth := api.Group("/auth")
		{
			auth.POST("/signup", authHandler.Signup)
			auth.POST("/login", authHandler.Login)
			auth.POST("/logout", authHandler.Logout)
			auth.GET("/me", middleware.RequireAuth(), authHandler.GetCurrentUser)
		}

		// Task routes
		tasks := api.Group("/tasks")
		{
			// Listing is public; a session upgrades it to the ranked view
			tasks.GET("", middleware.OptionalAuth(), taskHandler.ListTasks)
			tasks.GET("/cities", taskHandler.Cities)

			tasks.POST("", middleware.RequireAuth(), taskHandler.CreateTask)
			tasks.GET("/active", middleware.RequireAuth(), taskHandler.ActiveTask)
			tasks.GET("/limit", middleware.RequireAuth(), taskHandler.Limit)
			tasks.GET("/matched", middleware.RequireAuth(), taskHandler.MatchedTasks)
			tasks.GET("/:id", middleware.RequireTask(), taskHandler.GetTask)
			tasks.POST("/:id/accept", middleware.RequireAuth(), middleware.RequireTask(), taskHandler.AcceptTask)
			tasks.POST("/:id/complete", middleware.RequireAuth(), middleware.RequireTask(), taskHandler.CompleteTask)
		}

		// Skill routes
		skillRoutes := api.Group("/skills")
		{
			skillRoutes.GET("", skillHandler.List)
			skillRoutes.POST("/suggest", skillHandler.Suggest)
			skillRoutes.POST("/suggest-ai", middleware.RequireAuth(), skillHandler.SuggestAI)
		}

		// Profiles and availability
		api.GET("/volunteers", volunteerHandler.ListVolunteers)
		api.GET("/users/:id", volunteerHandler.GetUser)
		api.GET("/users/:id/impact", impactHandler.UserImpact)
		api.POST("/availability", middleware.RequireAuth(), volunteerHandler.AddAvailability)
		api.GET("/availability", middleware.RequireAuth(), volunteerHandler.ListAvailability)
		api.GET("/schedule", middleware.RequireAuth(), taskHandler.Schedule)

		// Impact and community feed
		api.GET("/impact/community", impactHandler.CommunityImpact)
		community := api.Group("/community")
		{
			community.GET("", communityHandler.ListPosts)
			community.POST("", middleware.RequireAuth(), communityHandler.CreatePost)
			community.POST("/:id/like", middleware.RequireAuth(), communityHandler.LikePost)
		}
	}

	return r, nil
}

// Run connects to the database, migrates it and serves the API on addr.
func Run(cfg *config.Config, addr string) error {
	if err := database.Connect(cfg); err != nil {
		return fmt.Errorf("failed to connect to database: %w", err)
	}
	if err := database.Migrate(); err != nil {
		return fmt.Errorf("failed to run migrations: %w", err)
	}

	r, err := NewRouter(cfg)
	if err != nil {
		return err
	}
	return r.Run(addr)
}
