package routes

import (
	"wrist-ranking-backend/internal/api/handlers"
	"wrist-ranking-backend/internal/api/middleware"
	"wrist-ranking-backend/internal/auth"
	"wrist-ranking-backend/internal/authz"
	"wrist-ranking-backend/internal/config"
	"wrist-ranking-backend/internal/repository"
	"wrist-ranking-backend/internal/service"
	"wrist-ranking-backend/internal/storage"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"gorm.io/gorm"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) (*gin.Engine, error) {
	// Create router
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Initialize file storage
	store, err := storage.NewLocalStore(cfg.UploadDir, cfg.MaxUploadBytes())
	if err != nil {
		return nil, err
	}

	// Initialize repositories
	userRepo := repository.NewUserRepository(db)
	regionRepo := repository.NewRegionRepository(db)
	regionAdminRepo := repository.NewRegionAdminRepository(db)
	playerRepo := repository.NewPlayerRepository(db)
	memberRepo := repository.NewContributionMemberRepository(db)
	noteRepo := repository.NewContributionNoteRepository(db)

	// Initialize auth and authorization
	authService := auth.NewService(cfg.JWTSecret)
	authMiddleware := auth.NewMiddleware(authService)
	gate := authz.NewGate(regionAdminRepo, userRepo)

	// Initialize services
	userService := service.NewUserService(userRepo, authService, validator)
	regionService := service.NewRegionService(regionRepo, gate, store, validator)
	regionAdminService := service.NewRegionAdminService(regionAdminRepo, userRepo, gate, validator)
	playerService := service.NewPlayerService(playerRepo, gate, store, validator)
	contributionService := service.NewContributionService(memberRepo, gate, store, validator)
	noteService := service.NewNoteService(noteRepo, memberRepo, gate)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	authHandler := handlers.NewAuthHandler(userService)
	regionHandler := handlers.NewRegionHandler(regionService)
	regionAdminHandler := handlers.NewRegionAdminHandler(regionAdminService)
	playerHandler := handlers.NewPlayerHandler(playerService)
	contributionHandler := handlers.NewContributionHandler(contributionService)
	noteHandler := handlers.NewNoteHandler(noteService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/live", healthHandler.Live)

	// Uploaded avatars and covers are served directly
	router.Static("/uploads", cfg.UploadDir)

	api := router.Group("/api")
	{
		// Accounts and sessions
		api.POST("/register", authHandler.Register)
		api.POST("/login", authHandler.Login)
		api.GET("/verify", authMiddleware.RequireAuth(), authHandler.Verify)
		api.POST("/change-password", authMiddleware.RequireAuth(), authHandler.ChangePassword)

		// Region catalog
		api.GET("/provinces", regionHandler.ListProvinces)
		regions := api.Group("/regions")
		{
			regions.GET("", regionHandler.ListRegions)
			regions.GET("/:id", authMiddleware.OptionalAuth(), regionHandler.GetRegion)
			regions.POST("", authMiddleware.RequireAuth(), regionHandler.CreateRegion)
			regions.PUT("/:id", authMiddleware.RequireAuth(), regionHandler.UpdateRegion)
			regions.DELETE("/:id", authMiddleware.RequireAuth(), regionHandler.DeleteRegion)
			regions.POST("/:id/cover", authMiddleware.RequireAuth(), regionHandler.UploadCover)

			// Admin roster
			regions.GET("/:id/admins", regionAdminHandler.ListAdmins)
			regions.POST("/:id/admins", authMiddleware.RequireAuth(), regionAdminHandler.AddAdmin)
			regions.DELETE("/:id/admins/:userId", authMiddleware.RequireAuth(), regionAdminHandler.RemoveAdmin)

			// Ranked player boards
			regions.GET("/:id/players/:hand", playerHandler.ListPlayers)
			regions.POST("/:id/players", authMiddleware.RequireAuth(), playerHandler.CreatePlayer)
			regions.PUT("/:id/players/:playerId", authMiddleware.RequireAuth(), playerHandler.UpdatePlayer)
			regions.DELETE("/:id/players/:playerId", authMiddleware.RequireAuth(), playerHandler.DeletePlayer)
			regions.POST("/:id/players/reorder", authMiddleware.RequireAuth(), playerHandler.ReorderPlayers)
			regions.POST("/:id/players/:playerId/avatar", authMiddleware.RequireAuth(), playerHandler.UploadPlayerAvatar)

			// Contribution boards
			regions.GET("/:id/contribution/:type", contributionHandler.ListMembers)
			regions.POST("/:id/contribution", authMiddleware.RequireAuth(), contributionHandler.CreateMember)
			regions.PUT("/:id/contribution/:memberId", authMiddleware.RequireAuth(), contributionHandler.UpdateMember)
			regions.DELETE("/:id/contribution/:memberId", authMiddleware.RequireAuth(), contributionHandler.DeleteMember)
			regions.POST("/:id/contribution/reorder", authMiddleware.RequireAuth(), contributionHandler.ReorderMembers)
			regions.POST("/:id/contribution/:memberId/avatar", authMiddleware.RequireAuth(), contributionHandler.UploadMemberAvatar)
		}

		// Contribution note history, addressed by member
		contribution := api.Group("/contribution")
		{
			contribution.GET("/:memberId/notes", noteHandler.ListNotes)
			contribution.POST("/:memberId/notes", authMiddleware.RequireAuth(), noteHandler.AddNote)
			contribution.PUT("/notes/:noteId", authMiddleware.RequireAuth(), noteHandler.UpdateNote)
			contribution.DELETE("/notes/:noteId", authMiddleware.RequireAuth(), noteHandler.DeleteNote)
		}
	}

	return router, nil
}
