package main

import (
	"os"

	"temple-outreach-backend/internal/api/routes"
	"temple-outreach-backend/internal/auth"
	"temple-outreach-backend/internal/config"
	"temple-outreach-backend/internal/database"
	"temple-outreach-backend/internal/repository"
	"temple-outreach-backend/internal/service"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

// @title Temple Outreach API
// @version 1.0
// @description Membership and outreach backend for temple youth programs: contact follow-up lists, call outcomes, sessions and attendance.
// @BasePath /api/v1
// @securityDefinitions.apikey BearerAuth
// @in header
// @name Authorization
func main() {
	// .env is optional; real deployments use environment variables
	_ = godotenv.Load()

	cfg, err := config.Load()
	if err != nil {
		logrus.WithError(err).Fatal("failed to load configuration")
	}

	log := setupLogging(cfg)

	db, err := database.Initialize(cfg.DatabaseURL, nil)
	if err != nil {
		log.WithError(err).Fatal("failed to initialize database")
	}

	authConfig, err := auth.LoadConfig(cfg.AuthConfigPath)
	if err != nil {
		log.WithError(err).Fatal("failed to load auth configuration")
	}

	validate := routes.NewValidator()

	userRepo := repository.NewUserRepository(db)
	contactRepo := repository.NewContactRepository(db)
	followUpRepo := repository.NewFollowUpRepository(db)
	sessionRepo := repository.NewSessionRepository(db)
	programRepo := repository.NewProgramRepository(db)
	attendanceRepo := repository.NewAttendanceRepository(db)

	authService := auth.NewService(authConfig, userRepo)

	deps := &routes.Dependencies{
		DB:                db,
		Config:            cfg,
		Log:               log,
		Auth:              authService,
		FollowUpService:   service.NewFollowUpService(db, followUpRepo, contactRepo, userRepo, sessionRepo, programRepo, validate),
		SessionService:    service.NewSessionService(db, sessionRepo, followUpRepo, programRepo),
		UserService:       service.NewUserService(userRepo, validate),
		ProgramService:    service.NewProgramService(programRepo, userRepo, validate),
		ContactService:    service.NewContactService(contactRepo, programRepo, validate),
		AttendanceService: service.NewAttendanceService(attendanceRepo, sessionRepo, userRepo, validate),
	}

	router := routes.SetupRoutes(deps)

	log.WithField("port", cfg.Port).Info("starting server")
	if err := router.Run(":" + cfg.Port); err != nil {
		log.WithError(err).Fatal("server exited")
	}
}

func setupLogging(cfg *config.Config) *logrus.Logger {
	log := logrus.StandardLogger()
	log.SetOutput(os.Stdout)
	log.SetFormatter(&logrus.JSONFormatter{})

	level, err := logrus.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = logrus.InfoLevel
	}
	log.SetLevel(level)
	return log
}
