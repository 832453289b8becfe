package repository

import (
	"errors"
	"fmt"
	"strconv"
	"time"

	"hospital-admission-backend/internal/models"

	"gorm.io/gorm"
)

type AdmissionRepository struct {
	db *gorm.DB
}

func NewAdmissionRepo(db *gorm.DB) *AdmissionRepository {
	return &AdmissionRepository{db: db}
}

// CreateAdmission persists the four records of one admission inside a single
// transaction. The patient number is assigned here so the yearly sequence is
// read and advanced under the same transaction. Any error rolls everything
// back; either all four rows exist afterwards or none do.
func (r *AdmissionRepository) CreateAdmission(
	patient *models.Patient,
	medical *models.MedicalDetail,
	admission *models.AdmissionDetail,
	billing *models.BillingInformation,
) error {
	return r.db.Transaction(func(tx *gorm.DB) error {
		number, err := nextPatientNumber(tx, time.Now())
		if err != nil {
			return fmt.Errorf("failed to generate patient number: %w", err)
		}
		patient.PatientNumber = number

		if err := tx.Create(patient).Error; err != nil {
			return err
		}

		medical.PatientID = patient.ID
		if err := tx.Create(medical).Error; err != nil {
			return err
		}

		admission.PatientID = patient.ID
		if err := tx.Create(admission).Error; err != nil {
			return err
		}

		billing.PatientID = patient.ID
		return tx.Create(billing).Error
	})
}

// nextPatientNumber builds the next patient number for the current year:
// the four-digit year followed by a zero-padded sequence that restarts
// every January (e.g. 20260001, 20260002, ...)
func nextPatientNumber(tx *gorm.DB, now time.Time) (string, error) {
	prefix := now.Format("2006")

	var last models.Patient
	err := tx.Where("patient_number LIKE ?", prefix+"%").
		Order("patient_number DESC").
		First(&last).Error

	sequence := 1
	switch {
	case err == nil:
		n, convErr := strconv.Atoi(last.PatientNumber[len(prefix):])
		if convErr != nil {
			return "", fmt.Errorf("malformed patient number %q: %w", last.PatientNumber, convErr)
		}
		sequence = n + 1
	case errors.Is(err, gorm.ErrRecordNotFound):
		// first patient of the year
	default:
		return "", err
	}

	return fmt.Sprintf("%s%04d", prefix, sequence), nil
}

// CountAdmissionsByDoctorOnDate counts a doctor's admissions dated on the
// given calendar day
func (r *AdmissionRepository) CountAdmissionsByDoctorOnDate(doctorID uint, date time.Time) (int64, error) {
	start, end := dayBounds(date)
	var count int64
	err := r.db.Model(&models.AdmissionDetail{}).
		Where("doctor_id = ? AND admission_date >= ? AND admission_date < ?", doctorID, start, end).
		Count(&count).Error
	return count, err
}

// RoomOccupiedOnDate reports whether an admission without a discharge date
// exists for the room on the given calendar day
func (r *AdmissionRepository) RoomOccupiedOnDate(roomNumber string, date time.Time) (bool, error) {
	start, end := dayBounds(date)
	var count int64
	err := r.db.Model(&models.AdmissionDetail{}).
		Where("room_number = ? AND admission_date >= ? AND admission_date < ? AND discharge_date IS NULL",
			roomNumber, start, end).
		Count(&count).Error
	return count > 0, err
}

// GetRecentAdmissions retrieves the latest admissions with patient and
// doctor preloaded for the dashboard
func (r *AdmissionRepository) GetRecentAdmissions(limit int) ([]models.AdmissionDetail, error) {
	admissions := []models.AdmissionDetail{}
	err := r.db.
		Preload("Patient").
		Preload("Doctor").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&admissions).Error
	return admissions, err
}

// GetPendingBillings retrieves the latest billing records whose payment
// status has not been resolved yet
func (r *AdmissionRepository) GetPendingBillings(limit int) ([]models.BillingInformation, error) {
	billings := []models.BillingInformation{}
	err := r.db.
		Preload("Patient").
		Where("payment_status IS NULL").
		Order("created_at DESC, id DESC").
		Limit(limit).
		Find(&billings).Error
	return billings, err
}

func dayBounds(date time.Time) (time.Time, time.Time) {
	start := time.Date(date.Year(), date.Month(), date.Day(), 0, 0, 0, 0, date.Location())
	return start, start.AddDate(0, 0, 1)
}
