package handler

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"hospital-admission-backend/internal/database"
	"hospital-admission-backend/internal/middleware"
	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/internal/repository"
	"hospital-admission-backend/internal/service"
	"hospital-admission-backend/pkg/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

type testServer struct {
	router *gin.Engine
	db     *gorm.DB

	department models.Department
	doctor     models.Doctor
	payment    models.PaymentMethod
}

func newTestServer(t *testing.T) *testServer {
	t.Helper()

	gin.SetMode(gin.TestMode)
	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		RegisterTagNames(v)
	}

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent),
		TranslateError: true,
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))
	t.Cleanup(func() {
		sqlDB, err := db.DB()
		if err == nil {
			sqlDB.Close()
		}
	})

	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	referenceRepo := repository.NewReferenceRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)

	authService := service.NewAuthService(userRepo, auditRepo, 720*time.Hour)
	admissionService := service.NewAdmissionService(admissionRepo, patientRepo, referenceRepo, auditRepo)
	lookupService := service.NewLookupService(referenceRepo)
	dashboardService := service.NewDashboardService(admissionRepo, patientRepo, referenceRepo)

	authHandler := NewAuthHandler(authService)
	admissionHandler := NewAdmissionHandler(admissionService, lookupService)
	lookupHandler := NewLookupHandler(lookupService)
	dashboardHandler := NewDashboardHandler(dashboardService)

	router := gin.New()

	auth := router.Group("/auth")
	{
		auth.POST("/login", authHandler.Login)
		auth.POST("/admin/login", authHandler.AdminLogin)
		auth.POST("/refresh", authHandler.Refresh)
		auth.POST("/logout", authHandler.Logout)
	}

	lookups := router.Group("/lookups")
	lookups.Use(middleware.AuthMiddleware())
	{
		lookups.GET("/departments", lookupHandler.GetDepartments)
		lookups.GET("/departments/:id/doctors", lookupHandler.GetDoctorsByDepartment)
		lookups.GET("/departments/:id/rooms", lookupHandler.GetRoomsByDepartment)
		lookups.GET("/rooms/:id/beds", lookupHandler.GetBedsByRoom)
		lookups.GET("/insurance-providers", lookupHandler.GetInsuranceProviders)
		lookups.GET("/payment-methods", lookupHandler.GetPaymentMethods)
	}

	admissions := router.Group("/admissions")
	admissions.Use(middleware.AuthMiddleware(), middleware.RequireAdminGuard(service.GuardAdmin))
	{
		admissions.GET("/form", admissionHandler.GetForm)
		admissions.POST("", admissionHandler.Admit)
		admissions.GET("/availability/room", admissionHandler.RoomAvailability)
		admissions.GET("/availability/doctor", admissionHandler.DoctorAvailability)
	}

	admin := router.Group("")
	admin.Use(middleware.AuthMiddleware(), middleware.RequireAdminGuard(service.GuardAdmin))
	{
		admin.GET("/dashboard", dashboardHandler.GetDashboard)
		admin.GET("/patients", dashboardHandler.GetPatients)
	}

	ts := &testServer{router: router, db: db}

	ts.department = models.Department{Name: "Internal Medicine"}
	require.NoError(t, db.Create(&ts.department).Error)
	ts.doctor = models.Doctor{FirstName: "Alice", LastName: "Reyes", DepartmentID: ts.department.ID}
	require.NoError(t, db.Create(&ts.doctor).Error)
	ts.payment = models.PaymentMethod{Name: "Cash"}
	require.NoError(t, db.Create(&ts.payment).Error)

	// Seed accounts for both guards
	for _, account := range []struct {
		email string
		role  string
	}{
		{"admin@example.com", models.RoleAdmin},
		{"doctor@example.com", models.RoleDoctor},
	} {
		_, err := authService.Register("Test User", account.email, "secret123", account.role)
		require.NoError(t, err)
	}

	return ts
}

func (ts *testServer) request(t *testing.T, method, path, token string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Buffer
	if body != nil {
		encoded, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewBuffer(encoded)
	} else {
		reader = bytes.NewBuffer(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	w := httptest.NewRecorder()
	ts.router.ServeHTTP(w, req)
	return w
}

// adminToken logs in through the admin guard and returns the access token
func (ts *testServer) adminToken(t *testing.T) string {
	t.Helper()

	w := ts.request(t, http.MethodPost, "/auth/admin/login", "", gin.H{
		"email":    "admin@example.com",
		"password": "secret123",
	})
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var response struct {
		Data struct {
			AccessToken string `json:"access_token"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &response))
	require.NotEmpty(t, response.Data.AccessToken)
	return response.Data.AccessToken
}

func (ts *testServer) validAdmission() gin.H {
	return gin.H{
		"first_name":        "Jane",
		"last_name":         "Doe",
		"primary_reason":    "fever",
		"admission_date":    "2024-01-10",
		"admission_type":    "emergency",
		"admission_source":  "ER",
		"department_id":     ts.department.ID,
		"doctor_id":         ts.doctor.ID,
		"room_number":       "101",
		"bed_number":        "A",
		"payment_method_id": ts.payment.ID,
	}
}
