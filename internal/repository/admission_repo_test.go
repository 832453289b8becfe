package repository

import (
	"fmt"
	"testing"
	"time"

	"hospital-admission-backend/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNextPatientNumberSequence(t *testing.T) {
	db := newTestDB(t)

	now := time.Date(2026, 8, 28, 12, 0, 0, 0, time.UTC)

	first, err := nextPatientNumber(db, now)
	require.NoError(t, err)
	assert.Equal(t, "20260001", first)

	require.NoError(t, db.Create(&models.Patient{
		PatientNumber: first, FirstName: "Jane", LastName: "Doe",
	}).Error)

	second, err := nextPatientNumber(db, now)
	require.NoError(t, err)
	assert.Equal(t, "20260002", second)
}

func TestNextPatientNumberRestartsEachYear(t *testing.T) {
	db := newTestDB(t)

	require.NoError(t, db.Create(&models.Patient{
		PatientNumber: "20250042", FirstName: "Jane", LastName: "Doe",
	}).Error)

	number, err := nextPatientNumber(db, time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC))
	require.NoError(t, err)
	assert.Equal(t, "20260001", number)
}

func TestCreateAdmissionLinksAllRecords(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdmissionRepo(db)

	patient := &models.Patient{FirstName: "Jane", LastName: "Doe"}
	medical := &models.MedicalDetail{PrimaryReason: "fever"}
	admission := &models.AdmissionDetail{
		AdmissionDate:   time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC),
		AdmissionType:   "emergency",
		AdmissionSource: "ER",
		DepartmentID:    1,
		DoctorID:        1,
		RoomNumber:      "101",
		BedNumber:       "A",
	}
	billing := &models.BillingInformation{PaymentMethodID: 1}

	require.NoError(t, repo.CreateAdmission(patient, medical, admission, billing))

	assert.NotZero(t, patient.ID)
	assert.NotEmpty(t, patient.PatientNumber)
	assert.Equal(t, patient.ID, medical.PatientID)
	assert.Equal(t, patient.ID, admission.PatientID)
	assert.Equal(t, patient.ID, billing.PatientID)
}

func TestCountAdmissionsByDoctorOnDate(t *testing.T) {
	db := newTestDB(t)
	repo := NewAdmissionRepo(db)

	date := time.Date(2024, 1, 10, 0, 0, 0, 0, time.UTC)

	for i := 0; i < 3; i++ {
		require.NoError(t, repo.CreateAdmission(
			&models.Patient{FirstName: "P", LastName: fmt.Sprintf("%d", i)},
			&models.MedicalDetail{PrimaryReason: "checkup"},
			&models.AdmissionDetail{
				AdmissionDate: date, AdmissionType: "elective", AdmissionSource: "referral",
				DepartmentID: 1, DoctorID: 7, RoomNumber: "101", BedNumber: "A",
			},
			&models.BillingInformation{PaymentMethodID: 1},
		))
	}

	// One admission for the same doctor on the next day must not count
	require.NoError(t, repo.CreateAdmission(
		&models.Patient{FirstName: "P", LastName: "next-day"},
		&models.MedicalDetail{PrimaryReason: "checkup"},
		&models.AdmissionDetail{
			AdmissionDate: date.AddDate(0, 0, 1), AdmissionType: "elective", AdmissionSource: "referral",
			DepartmentID: 1, DoctorID: 7, RoomNumber: "102", BedNumber: "A",
		},
		&models.BillingInformation{PaymentMethodID: 1},
	))

	count, err := repo.CountAdmissionsByDoctorOnDate(7, date)
	require.NoError(t, err)
	assert.EqualValues(t, 3, count)

	count, err = repo.CountAdmissionsByDoctorOnDate(99, date)
	require.NoError(t, err)
	assert.Zero(t, count)
}
