package service

import (
	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/internal/repository"
)

// LookupService serves the read-only reference collections behind the
// admission form's cascading selectors. Every query returns an empty slice,
// never an error, when nothing matches.
type LookupService struct {
	referenceRepo *repository.ReferenceRepository
}

func NewLookupService(referenceRepo *repository.ReferenceRepository) *LookupService {
	return &LookupService{referenceRepo: referenceRepo}
}

// AdmissionFormReferences bundles every reference list the admission form
// needs to render its selectors
type AdmissionFormReferences struct {
	Departments        []models.Department        `json:"departments"`
	Doctors            []models.Doctor            `json:"doctors"`
	InsuranceProviders []models.InsuranceProvider `json:"insurance_providers"`
	PaymentMethods     []models.PaymentMethod     `json:"payment_methods"`
}

// GetAdmissionFormReferences loads the full reference bundle for the form
func (s *LookupService) GetAdmissionFormReferences() (*AdmissionFormReferences, error) {
	departments, err := s.referenceRepo.GetAllDepartments()
	if err != nil {
		return nil, err
	}
	doctors, err := s.referenceRepo.GetAllDoctors()
	if err != nil {
		return nil, err
	}
	providers, err := s.referenceRepo.GetAllInsuranceProviders()
	if err != nil {
		return nil, err
	}
	methods, err := s.referenceRepo.GetAllPaymentMethods()
	if err != nil {
		return nil, err
	}

	return &AdmissionFormReferences{
		Departments:        departments,
		Doctors:            doctors,
		InsuranceProviders: providers,
		PaymentMethods:     methods,
	}, nil
}

// GetDepartments lists all departments
func (s *LookupService) GetDepartments() ([]models.Department, error) {
	return s.referenceRepo.GetAllDepartments()
}

// GetDoctorsByDepartment lists the doctors of one department
func (s *LookupService) GetDoctorsByDepartment(departmentID uint) ([]models.Doctor, error) {
	return s.referenceRepo.GetDoctorsByDepartmentID(departmentID)
}

// GetAvailableRoomsByDepartment lists a department's rooms with available status
func (s *LookupService) GetAvailableRoomsByDepartment(departmentID uint) ([]models.Room, error) {
	return s.referenceRepo.GetAvailableRoomsByDepartmentID(departmentID)
}

// GetAvailableBedsByRoom lists a room's beds with available status
func (s *LookupService) GetAvailableBedsByRoom(roomID uint) ([]models.Bed, error) {
	return s.referenceRepo.GetAvailableBedsByRoomID(roomID)
}

// GetInsuranceProviders lists all insurance providers
func (s *LookupService) GetInsuranceProviders() ([]models.InsuranceProvider, error) {
	return s.referenceRepo.GetAllInsuranceProviders()
}

// GetPaymentMethods lists all payment methods
func (s *LookupService) GetPaymentMethods() ([]models.PaymentMethod, error) {
	return s.referenceRepo.GetAllPaymentMethods()
}
