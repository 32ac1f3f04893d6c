package routes

import (
	"temple-outreach-backend/internal/api/handlers"
	"temple-outreach-backend/internal/api/middleware"
	"temple-outreach-backend/internal/auth"
	"temple-outreach-backend/internal/config"
	"temple-outreach-backend/internal/database/models"
	"temple-outreach-backend/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/sirupsen/logrus"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
	"gorm.io/gorm"
)

// Dependencies carries everything the router needs
type Dependencies struct {
	DB     *gorm.DB
	Config *config.Config
	Log    *logrus.Logger
	Auth   *auth.Service

	FollowUpService   service.FollowUpServiceInterface
	SessionService    service.SessionServiceInterface
	UserService       service.UserServiceInterface
	ProgramService    service.ProgramServiceInterface
	ContactService    service.ContactServiceInterface
	AttendanceService service.AttendanceServiceInterface
}

// NewValidator builds the request validator shared by all services
func NewValidator() *validator.Validate {
	return validator.New()
}

// SetupRoutes builds the gin engine with all middleware and routes
func SetupRoutes(deps *Dependencies) *gin.Engine {
	if deps.Config.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	router := gin.New()
	router.Use(middleware.RequestID())
	router.Use(middleware.Logger(deps.Log))
	router.Use(middleware.Recovery(deps.Log))
	router.Use(middleware.CORS(deps.Config.AllowedOrigins))

	healthHandler := handlers.NewHealthHandler(deps.DB)
	authHandler := handlers.NewAuthHandler(deps.Auth, deps.UserService)
	followUpHandler := handlers.NewFollowUpHandler(deps.FollowUpService)
	userHandler := handlers.NewUserHandler(deps.UserService)
	programHandler := handlers.NewProgramHandler(deps.ProgramService, deps.SessionService)
	contactHandler := handlers.NewContactHandler(deps.ContactService)
	attendanceHandler := handlers.NewAttendanceHandler(deps.AttendanceService)

	router.GET("/health", healthHandler.Check)
	router.GET("/health/ready", healthHandler.Ready)
	router.GET("/health/live", healthHandler.Live)
	router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))

	api := router.Group("/api")
	api.POST("/auth/login", authHandler.Login)

	v1 := api.Group("/v1")
	v1.Use(auth.RequireAuth(deps.Auth))
	{
		v1.GET("/auth/me", authHandler.Me)

		followups := v1.Group("/followups")
		{
			followups.POST("/assign", auth.RequireRole(models.RoleAdmin), followUpHandler.CreateList)
			followups.DELETE("/delete-for-date", auth.RequireRole(models.RoleVolunteer), followUpHandler.DeleteForDate)
			followups.GET("", auth.RequireRole(models.RoleVolunteer), followUpHandler.List)
			// Any authenticated caller may record an outcome; their identity
			// becomes called_by.
			followups.PATCH("/update", followUpHandler.RecordOutcome)
		}

		users := v1.Group("/users")
		{
			users.POST("", auth.RequireRole(models.RoleAdmin), userHandler.Create)
			users.GET("", auth.RequireRole(models.RoleVolunteer), userHandler.List)
			users.GET("/:id", userHandler.Get)
			users.PATCH("/:id", userHandler.Update)
			users.DELETE("/:id", auth.RequireRole(models.RoleAdmin), userHandler.Delete)
		}

		programs := v1.Group("/programs")
		{
			programs.POST("", auth.RequireRole(models.RoleAdmin), programHandler.Create)
			programs.GET("", programHandler.List)
			programs.GET("/:id", programHandler.Get)
			programs.POST("/:id/enrollments", auth.RequireRole(models.RoleAdmin), programHandler.Enroll)
			programs.GET("/:id/enrollments", auth.RequireRole(models.RoleVolunteer), programHandler.ListEnrollments)
			programs.GET("/:id/sessions", programHandler.ListSessions)
		}

		contacts := v1.Group("/contacts")
		contacts.Use(auth.RequireRole(models.RoleAdmin))
		{
			contacts.POST("", contactHandler.Create)
			contacts.GET("", contactHandler.List)
			contacts.DELETE("/:id", contactHandler.Delete)
		}

		sessions := v1.Group("/sessions")
		{
			sessions.POST("/:id/attendance", auth.RequireRole(models.RoleVolunteer), attendanceHandler.Mark)
			sessions.GET("/:id/attendance", auth.RequireRole(models.RoleVolunteer), attendanceHandler.List)
		}
	}

	return router
}
