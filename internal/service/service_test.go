package service

import (
	"fmt"
	"testing"
	"time"

	"hospital-admission-backend/internal/database"
	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/internal/repository"
	"hospital-admission-backend/pkg/utils"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// newTestDB opens a per-test in-memory database with the full schema. The
// shared-cache DSN keeps every pooled connection on the same database.
func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

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

	return db
}

type testEnv struct {
	db        *gorm.DB
	admission *AdmissionService
	auth      *AuthService
	lookup    *LookupService
	dashboard *DashboardService

	department models.Department
	doctor     models.Doctor
	payment    models.PaymentMethod
	insurance  models.InsuranceProvider
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db := newTestDB(t)

	utils.InitJWT("test-access-secret", "test-refresh-secret", 15*time.Minute, 168*time.Hour)

	userRepo := repository.NewUserRepo(db)
	auditRepo := repository.NewAuditRepo(db)
	patientRepo := repository.NewPatientRepo(db)
	referenceRepo := repository.NewReferenceRepo(db)
	admissionRepo := repository.NewAdmissionRepo(db)

	env := &testEnv{
		db:        db,
		admission: NewAdmissionService(admissionRepo, patientRepo, referenceRepo, auditRepo),
		auth:      NewAuthService(userRepo, auditRepo, 720*time.Hour),
		lookup:    NewLookupService(referenceRepo),
		dashboard: NewDashboardService(admissionRepo, patientRepo, referenceRepo),
	}

	env.department = models.Department{Name: "Internal Medicine"}
	require.NoError(t, db.Create(&env.department).Error)

	env.doctor = models.Doctor{FirstName: "Alice", LastName: "Reyes", DepartmentID: env.department.ID}
	require.NoError(t, db.Create(&env.doctor).Error)

	env.payment = models.PaymentMethod{Name: "Cash"}
	require.NoError(t, db.Create(&env.payment).Error)

	env.insurance = models.InsuranceProvider{Name: "MediShield"}
	require.NoError(t, db.Create(&env.insurance).Error)

	return env
}

// validInput builds a minimal valid admission payload against the seeded
// reference rows
func (e *testEnv) validInput() AdmissionInput {
	return AdmissionInput{
		FirstName:       "Jane",
		LastName:        "Doe",
		PrimaryReason:   "fever",
		AdmissionDate:   "2024-01-10",
		AdmissionType:   "emergency",
		AdmissionSource: "ER",
		DepartmentID:    e.department.ID,
		DoctorID:        e.doctor.ID,
		RoomNumber:      "101",
		BedNumber:       "A",
		PaymentMethodID: e.payment.ID,
	}
}

func (e *testEnv) countRows(t *testing.T, model interface{}) int64 {
	t.Helper()
	var count int64
	require.NoError(t, e.db.Model(model).Count(&count).Error)
	return count
}
