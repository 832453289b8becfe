package repository

import (
	"hospital-admission-backend/internal/models"

	"gorm.io/gorm"
)

type PatientRepository struct {
	db *gorm.DB
}

func NewPatientRepo(db *gorm.DB) *PatientRepository {
	return &PatientRepository{db: db}
}

// EmailExists reports whether a patient with the given email already exists
func (r *PatientRepository) EmailExists(email string) (bool, error) {
	var count int64
	err := r.db.Model(&models.Patient{}).Where("email = ?", email).Count(&count).Error
	return count > 0, err
}

// GetPatientByID retrieves a patient with all related admission records
func (r *PatientRepository) GetPatientByID(id uint) (*models.Patient, error) {
	var patient models.Patient
	err := r.db.
		Preload("MedicalDetails").
		Preload("AdmissionDetails").
		Preload("BillingInformation").
		First(&patient, id).Error
	if err != nil {
		return nil, err
	}
	return &patient, nil
}

// GetPatientsPage retrieves one page of patients, newest first, with their
// admission, medical and billing records preloaded
func (r *PatientRepository) GetPatientsPage(page, perPage int) ([]models.Patient, int64, error) {
	var total int64
	if err := r.db.Model(&models.Patient{}).Count(&total).Error; err != nil {
		return nil, 0, err
	}

	patients := []models.Patient{}
	err := r.db.
		Preload("MedicalDetails").
		Preload("AdmissionDetails").
		Preload("BillingInformation").
		Order("created_at DESC, id DESC").
		Limit(perPage).
		Offset((page - 1) * perPage).
		Find(&patients).Error
	return patients, total, err
}
