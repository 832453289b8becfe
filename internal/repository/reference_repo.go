package repository

import (
	"hospital-admission-backend/internal/models"

	"gorm.io/gorm"
)

// ReferenceRepository serves the read-only lookup entities that feed the
// admission form's cascading selectors
type ReferenceRepository struct {
	db *gorm.DB
}

func NewReferenceRepo(db *gorm.DB) *ReferenceRepository {
	return &ReferenceRepository{db: db}
}

// GetAllDepartments retrieves all departments
func (r *ReferenceRepository) GetAllDepartments() ([]models.Department, error) {
	departments := []models.Department{}
	err := r.db.Order("name ASC").Find(&departments).Error
	return departments, err
}

// DepartmentExists reports whether a department with the given ID exists
func (r *ReferenceRepository) DepartmentExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Department{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetAllDoctors retrieves all doctors
func (r *ReferenceRepository) GetAllDoctors() ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := r.db.Order("last_name ASC, first_name ASC").Find(&doctors).Error
	return doctors, err
}

// GetDoctorsByDepartmentID retrieves all doctors in a department
func (r *ReferenceRepository) GetDoctorsByDepartmentID(departmentID uint) ([]models.Doctor, error) {
	doctors := []models.Doctor{}
	err := r.db.Where("department_id = ?", departmentID).
		Order("last_name ASC, first_name ASC").
		Find(&doctors).Error
	return doctors, err
}

// DoctorExists reports whether a doctor with the given ID exists
func (r *ReferenceRepository) DoctorExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.Doctor{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetAvailableRoomsByDepartmentID retrieves available rooms in a department
func (r *ReferenceRepository) GetAvailableRoomsByDepartmentID(departmentID uint) ([]models.Room, error) {
	rooms := []models.Room{}
	err := r.db.Where("department_id = ? AND status = ?", departmentID, models.StatusAvailable).
		Order("room_number ASC").
		Find(&rooms).Error
	return rooms, err
}

// GetAvailableBedsByRoomID retrieves available beds in a room
func (r *ReferenceRepository) GetAvailableBedsByRoomID(roomID uint) ([]models.Bed, error) {
	beds := []models.Bed{}
	err := r.db.Where("room_id = ? AND status = ?", roomID, models.StatusAvailable).
		Order("bed_number ASC").
		Find(&beds).Error
	return beds, err
}

// CountAvailableBeds counts beds whose status is available
func (r *ReferenceRepository) CountAvailableBeds() (int64, error) {
	var count int64
	err := r.db.Model(&models.Bed{}).
		Where("status = ?", models.StatusAvailable).
		Count(&count).Error
	return count, err
}

// GetAllInsuranceProviders retrieves all insurance providers
func (r *ReferenceRepository) GetAllInsuranceProviders() ([]models.InsuranceProvider, error) {
	providers := []models.InsuranceProvider{}
	err := r.db.Order("name ASC").Find(&providers).Error
	return providers, err
}

// InsuranceProviderExists reports whether an insurance provider with the given ID exists
func (r *ReferenceRepository) InsuranceProviderExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.InsuranceProvider{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// GetAllPaymentMethods retrieves all payment methods
func (r *ReferenceRepository) GetAllPaymentMethods() ([]models.PaymentMethod, error) {
	methods := []models.PaymentMethod{}
	err := r.db.Order("name ASC").Find(&methods).Error
	return methods, err
}

// PaymentMethodExists reports whether a payment method with the given ID exists
func (r *ReferenceRepository) PaymentMethodExists(id uint) (bool, error) {
	var count int64
	err := r.db.Model(&models.PaymentMethod{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}
