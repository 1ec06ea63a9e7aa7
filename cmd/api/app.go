package main

import (
	"context"
	"errors"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"

	"github.com/mtendere/education-consult/internal/adapter/api/controller"
	"github.com/mtendere/education-consult/internal/adapter/api/route"
	"github.com/mtendere/education-consult/internal/adapter/repository"
	userdomain "github.com/mtendere/education-consult/internal/domain/user"
	"github.com/mtendere/education-consult/internal/infrastructure/database"
	"github.com/mtendere/education-consult/internal/service/advisor"
	"github.com/mtendere/education-consult/internal/service/mailer"
	"github.com/mtendere/education-consult/pkg/auth"
	"github.com/mtendere/education-consult/pkg/logger"
)

// App holds the application and its dependencies.
type App struct {
	router     *gin.Engine
	db         *pgxpool.Pool
	logger     logger.Logger
	jwtService *auth.JWTService

	chatController        *controller.ChatController
	authController        *controller.AuthController
	universityController  *controller.UniversityController
	programController     *controller.ProgramController
	scholarshipController *controller.ScholarshipController
	applicationController *controller.ApplicationController
	inquiryController     *controller.InquiryController
	dashboardController   *controller.DashboardController
}

// NewApp wires the repositories, services and controllers.
func NewApp() (*App, error) {
	log := logger.NewLogger()

	db, err := database.NewPostgresDB()
	if err != nil {
		return nil, err
	}

	jwtService, err := auth.NewJWTService()
	if err != nil {
		return nil, err
	}

	// Repositories
	chatRepo := repository.NewChatRepository(db)
	userRepo := repository.NewUserRepository(db)
	universityRepo := repository.NewUniversityRepository(db)
	programRepo := repository.NewProgramRepository(db)
	scholarshipRepo := repository.NewScholarshipRepository(db)
	applicationRepo := repository.NewApplicationRepository(db)
	inquiryRepo := repository.NewInquiryRepository(db)

	// Services
	responder := advisor.NewOpenAIResponder(log)
	policy := advisor.NewEscalationPolicy()
	adminMailer := mailer.NewSMTPMailer(log)

	// Controllers
	chatController := controller.NewChatController(chatRepo, responder, policy, log)
	authController := controller.NewAuthController(userRepo, jwtService, log)
	universityController := controller.NewUniversityController(universityRepo, log)
	programController := controller.NewProgramController(programRepo, log)
	scholarshipController := controller.NewScholarshipController(scholarshipRepo, log)
	applicationController := controller.NewApplicationController(applicationRepo, adminMailer, log)
	inquiryController := controller.NewInquiryController(inquiryRepo, adminMailer, log)
	dashboardController := controller.NewDashboardController(applicationRepo, userRepo, universityRepo, inquiryRepo, log)

	if err := ensureAdminUser(userRepo, log); err != nil {
		return nil, err
	}

	router := gin.Default()
	router.Use(gin.Recovery())

	corsConfig := cors.DefaultConfig()
	corsConfig.AllowAllOrigins = true
	corsConfig.AllowHeaders = append(corsConfig.AllowHeaders, "Authorization")
	router.Use(cors.New(corsConfig))

	return &App{
		router:                router,
		db:                    db,
		logger:                log,
		jwtService:            jwtService,
		chatController:        chatController,
		authController:        authController,
		universityController:  universityController,
		programController:     programController,
		scholarshipController: scholarshipController,
		applicationController: applicationController,
		inquiryController:     inquiryController,
		dashboardController:   dashboardController,
	}, nil
}

// SetupRoutes configures the application routes.
func (a *App) SetupRoutes(basePath string) {
	api := a.router.Group(basePath)

	api.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"version": "1.0.0",
		})
	})

	route.RegisterChatRoutes(api, a.chatController)
	route.RegisterAuthRoutes(api, a.authController, a.jwtService)
	route.RegisterUniversityRoutes(api, a.universityController, a.jwtService)
	route.RegisterProgramRoutes(api, a.programController, a.jwtService)
	route.RegisterScholarshipRoutes(api, a.scholarshipController, a.jwtService)
	route.RegisterApplicationRoutes(api, a.applicationController, a.jwtService)
	route.RegisterInquiryRoutes(api, a.inquiryController, a.jwtService)
	route.RegisterDashboardRoutes(api, a.dashboardController, a.jwtService)

	a.router.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
}

// Start runs the HTTP server until an interrupt signal arrives.
func (a *App) Start() error {
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	srv := &http.Server{
		Addr:    ":" + port,
		Handler: a.router,
	}

	errCh := make(chan error, 1)
	go func() {
		a.logger.Info("server listening", "port", port)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)

	select {
	case err := <-errCh:
		return err
	case sig := <-quit:
		a.logger.Info("shutting down", "signal", sig.String())
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	return srv.Shutdown(ctx)
}

// Close releases the application resources.
func (a *App) Close() {
	if a.db != nil {
		a.db.Close()
	}
}

// ensureAdminUser creates the back-office account on first boot when
// ADMIN_EMAIL and ADMIN_PASSWORD are set.
func ensureAdminUser(userRepo userdomain.Repository, log logger.Logger) error {
	email := os.Getenv("ADMIN_EMAIL")
	password := os.Getenv("ADMIN_PASSWORD")
	if email == "" || password == "" {
		return nil
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if _, err := userRepo.FindByEmail(ctx, email); err == nil {
		return nil
	} else if !errors.Is(err, repository.ErrUserNotFound) {
		return err
	}

	admin, err := userdomain.NewUser(email, "Admin", "User", password, userdomain.RoleAdmin)
	if err != nil {
		return err
	}
	if err := userRepo.Create(ctx, admin); err != nil {
		return err
	}

	log.Info("admin account created", "email", email)
	return nil
}
