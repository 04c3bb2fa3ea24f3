package routes

import (
	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"

	"manager-os-backend/internal/api/handlers"
	"manager-os-backend/internal/api/middleware"
	"manager-os-backend/internal/auth"
	"manager-os-backend/internal/config"
	"manager-os-backend/internal/repository"
	"manager-os-backend/internal/revalidation"
	"manager-os-backend/internal/service"
)

// SetupRoutes configures all the routes for the application
func SetupRoutes(db *gorm.DB, cfg *config.Config) *gin.Engine {
	router := gin.New()

	// Add middleware
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())
	router.Use(middleware.RequestID())
	router.Use(middleware.CORS(cfg))

	// Initialize validator
	validator := validator.New()

	// Revalidator shared by all mutating services
	revalidator := revalidation.NewMemoryRevalidator()

	// Initialize repositories
	organizationRepo := repository.NewOrganizationRepository(db)
	userRepo := repository.NewUserRepository(db)
	personRepo := repository.NewPersonRepository(db)
	teamRepo := repository.NewTeamRepository(db)
	initiativeRepo := repository.NewInitiativeRepository(db)
	meetingRepo := repository.NewMeetingRepository(db)
	instanceRepo := repository.NewMeetingInstanceRepository(db)
	instanceParticipantRepo := repository.NewMeetingInstanceParticipantRepository(db)

	// Initialize services
	organizationService := service.NewOrganizationService(organizationRepo, validator)
	personService := service.NewPersonService(personRepo, teamRepo, validator)
	teamService := service.NewTeamService(teamRepo, validator)
	initiativeService := service.NewInitiativeService(initiativeRepo, personRepo, validator)
	meetingService := service.NewMeetingService(meetingRepo, teamRepo, initiativeRepo, personRepo, revalidator, validator)
	instanceService := service.NewMeetingInstanceService(instanceRepo, meetingRepo, instanceParticipantRepo, personRepo, revalidator, validator)
	icsImportService := service.NewICSImportService(personRepo)

	// Initialize auth
	authService := auth.NewAuthService(cfg.JWTSecret, cfg.JWTExpiryMinutes, userRepo)
	authHandler := auth.NewAuthHandler(authService)
	authMiddleware := auth.NewAuthMiddleware(authService)

	// Initialize handlers
	healthHandler := handlers.NewHealthHandler(db)
	organizationHandler := handlers.NewOrganizationHandler(organizationService)
	personHandler := handlers.NewPersonHandler(personService)
	teamHandler := handlers.NewTeamHandler(teamService)
	initiativeHandler := handlers.NewInitiativeHandler(initiativeService)
	meetingHandler := handlers.NewMeetingHandler(meetingService)
	instanceHandler := handlers.NewMeetingInstanceHandler(instanceService, icsImportService)

	// Health check routes
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	// Swagger documentation route
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	// Auth routes
	authGroup := router.Group("/api/auth")
	{
		authGroup.POST("/login", authHandler.Login)
		authGroup.GET("/me", authMiddleware.RequireAuth(), authHandler.Me)
	}

	// API v1 routes - All endpoints require authentication
	v1 := router.Group("/api/v1")
	v1.Use(authMiddleware.RequireAuth())
	{
		// Organization routes
		organizations := v1.Group("/organizations")
		{
			organizations.POST("", organizationHandler.CreateOrganization)
			organizations.GET("/:id", organizationHandler.GetOrganization)
		}

		// People routes
		people := v1.Group("/people")
		{
			people.GET("", personHandler.ListPeople)
			people.POST("", personHandler.CreatePerson)
			people.GET("/:id", personHandler.GetPerson)
		}

		// Team routes
		teams := v1.Group("/teams")
		{
			teams.GET("", teamHandler.ListTeams)
			teams.POST("", teamHandler.CreateTeam)
			teams.GET("/:id", teamHandler.GetTeam)
		}

		// Initiative routes
		initiatives := v1.Group("/initiatives")
		{
			initiatives.GET("", initiativeHandler.ListInitiatives)
			initiatives.POST("", initiativeHandler.CreateInitiative)
			initiatives.GET("/:id", initiativeHandler.GetInitiative)
			initiatives.PUT("/:id", initiativeHandler.UpdateInitiative)
		}

		// Meeting routes
		meetings := v1.Group("/meetings")
		{
			meetings.GET("", meetingHandler.ListMeetings)
			meetings.POST("", meetingHandler.CreateMeeting)
			meetings.GET("/:id", meetingHandler.GetMeeting)
			meetings.PATCH("/:id", meetingHandler.UpdateMeeting)
			meetings.DELETE("/:id", meetingHandler.DeleteMeeting)
			meetings.GET("/:id/instances", instanceHandler.GetInstancesByMeeting)
		}

		// Meeting instance routes
		instances := v1.Group("/meeting-instances")
		{
			instances.POST("", instanceHandler.CreateMeetingInstance)
			instances.POST("/import", instanceHandler.ImportMeetingInstance)
			instances.GET("/:id", instanceHandler.GetMeetingInstance)
			instances.PATCH("/:id", instanceHandler.UpdateMeetingInstance)
			instances.DELETE("/:id", instanceHandler.DeleteMeetingInstance)
			instances.POST("/:id/participants", instanceHandler.AddParticipant)
			instances.PATCH("/:id/participants/:personId", instanceHandler.UpdateParticipantStatus)
			instances.DELETE("/:id/participants/:personId", instanceHandler.RemoveParticipant)
		}
	}

	// Catch-all route for undefined endpoints
	router.NoRoute(func(c *gin.Context) {
		c.JSON(404, gin.H{
			"error":      "Endpoint not found",
			"path":       c.Request.URL.Path,
			"method":     c.Request.Method,
			"request_id": c.GetString("request_id"),
		})
	})

	return router
}

// SetupHealthRoutes sets up only health check routes (useful for testing)
func SetupHealthRoutes(db *gorm.DB) *gin.Engine {
	router := gin.New()
	router.Use(middleware.Logger())
	router.Use(middleware.Recovery())

	healthHandler := handlers.NewHealthHandler(db)
	router.GET("/health", healthHandler.Health)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)

	return router
}
