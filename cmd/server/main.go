package main

import (
	"log"
	"os"
	"os/signal"
	"syscall"

	"hospital-admission-backend/internal/config"
	"hospital-admission-backend/internal/database"
	"hospital-admission-backend/internal/handler"
	"hospital-admission-backend/internal/jobs"
	"hospital-admission-backend/internal/middleware"
	"hospital-admission-backend/internal/repository"
	"hospital-admission-backend/internal/service"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

func main() {
	// 1. Load configuration
	cfg := config.LoadConfig()
	log.Println("Configuration loaded successfully")

	// 2. Initialize JWT utilities with config
	utils.InitJWT(
		cfg.JWT.AccessSecret,
		cfg.JWT.RefreshSecret,
		cfg.JWT.AccessTokenExpiry,
		cfg.JWT.RefreshTokenExpiry,
	)

	// 3. Initialize database connection and schema
	db := database.Connect(cfg)
	if err := database.Migrate(db); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}

	// 4. Initialize repositories
	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	referenceRepo := repository.NewReferenceRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)

	// 5. Initialize services
	authService := service.NewAuthService(userRepo, auditRepo, cfg.JWT.RememberMeExpiry)
	admissionService := service.NewAdmissionService(admissionRepo, patientRepo, referenceRepo, auditRepo)
	lookupService := service.NewLookupService(referenceRepo)
	dashboardService := service.NewDashboardService(admissionRepo, patientRepo, referenceRepo)

	// 6. Start background token purge scheduler
	scheduler := jobs.StartTokenPurge(userRepo)
	defer scheduler.Stop()

	// 7. Setup Gin mode
	gin.SetMode(cfg.Server.GinMode)

	// Validation errors report json field names
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		handler.RegisterTagNames(v)
	}

	// 8. Setup Gin router
	r := gin.Default()

	// Apply CORS middleware
	r.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.CORS.AllowedOrigins,
		AllowMethods:     []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Content-Type", "Authorization", "X-Requested-With"},
		AllowCredentials: true,
	}))

	// 9. Register handlers
	authHandler := handler.NewAuthHandler(authService)
	admissionHandler := handler.NewAdmissionHandler(admissionService, lookupService)
	lookupHandler := handler.NewLookupHandler(lookupService)
	dashboardHandler := handler.NewDashboardHandler(dashboardService)

	// 10. Define routes
	// Health check endpoint
	r.GET("/health", func(c *gin.Context) {
		utils.SuccessResponse(c, gin.H{
			"status":  "healthy",
			"service": "hospital-admission-backend",
		})
	})

	// Auth routes (public)
	auth := r.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/admin/login", authHandler.AdminLogin)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	// Lookup routes (authenticated) feed the admission form selectors
	lookups := r.Group("/lookups")
	lookups.Use(middleware.AuthMiddleware())
	{
		lookups.GET("/departments", lookupHandler.GetDepartments)
		lookups.GET("/departments/:id/doctors", lookupHandler.GetDoctorsByDepartment)
		lookups.GET("/departments/:id/rooms", lookupHandler.GetRoomsByDepartment)
		lookups.GET("/rooms/:id/beds", lookupHandler.GetBedsByRoom)
		lookups.GET("/insurance-providers", lookupHandler.GetInsuranceProviders)
		lookups.GET("/payment-methods", lookupHandler.GetPaymentMethods)
	}

	// Admission routes (admin guard)
	admissions := r.Group("/admissions")
	admissions.Use(middleware.AuthMiddleware(), middleware.RequireAdminGuard(service.GuardAdmin))
	{
		admissions.GET("/form", admissionHandler.GetForm)
		admissions.POST("", admissionHandler.Admit)
		admissions.GET("/availability/room", admissionHandler.RoomAvailability)
		admissions.GET("/availability/doctor", admissionHandler.DoctorAvailability)
	}

	// Dashboard and listings (admin guard)
	admin := r.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdminGuard(service.GuardAdmin))
	{
		admin.GET("/dashboard", dashboardHandler.GetDashboard)
		admin.GET("/patients", dashboardHandler.GetPatients)
	}

	// 11. Setup graceful shutdown
	go func() {
		log.Printf("Server starting on port %s", cfg.Server.Port)
		if err := r.Run(":" + cfg.Server.Port); err != nil {
			log.Fatalf("Failed to start server: %v", err)
		}
	}()

	// Wait for interrupt signal to gracefully shutdown the server
	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	log.Println("Shutting down server...")
	log.Println("Server exited")
}
