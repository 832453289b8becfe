package service

import (
	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/internal/repository"
)

const (
	dashboardRecentLimit = 5
	patientsPerPage      = 10
)

type DashboardService struct {
	admissionRepo *repository.AdmissionRepository
	patientRepo   *repository.PatientRepository
	referenceRepo *repository.ReferenceRepository
}

func NewDashboardService(
	admissionRepo *repository.AdmissionRepository,
	patientRepo *repository.PatientRepository,
	referenceRepo *repository.ReferenceRepository,
) *DashboardService {
	return &DashboardService{
		admissionRepo: admissionRepo,
		patientRepo:   patientRepo,
		referenceRepo: referenceRepo,
	}
}

// DashboardSummary aggregates the landing-page reads: the latest
// admissions, unresolved billing records and free-bed headcount
type DashboardSummary struct {
	RecentAdmissions []models.AdmissionDetail    `json:"recent_admissions"`
	PendingBillings  []models.BillingInformation `json:"pending_billings"`
	AvailableBeds    int64                       `json:"available_beds"`
}

// GetSummary builds the dashboard aggregate
func (s *DashboardService) GetSummary() (*DashboardSummary, error) {
	admissions, err := s.admissionRepo.GetRecentAdmissions(dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	billings, err := s.admissionRepo.GetPendingBillings(dashboardRecentLimit)
	if err != nil {
		return nil, err
	}
	beds, err := s.referenceRepo.CountAvailableBeds()
	if err != nil {
		return nil, err
	}

	return &DashboardSummary{
		RecentAdmissions: admissions,
		PendingBillings:  billings,
		AvailableBeds:    beds,
	}, nil
}

// PatientPage is one page of the patient listing
type PatientPage struct {
	Patients   []models.Patient `json:"patients"`
	Page       int              `json:"page"`
	PerPage    int              `json:"per_page"`
	Total      int64            `json:"total"`
	TotalPages int              `json:"total_pages"`
}

// ListPatients returns one page of patients with their nested admission,
// medical and billing detail
func (s *DashboardService) ListPatients(page int) (*PatientPage, error) {
	if page < 1 {
		page = 1
	}

	patients, total, err := s.patientRepo.GetPatientsPage(page, patientsPerPage)
	if err != nil {
		return nil, err
	}

	totalPages := int((total + patientsPerPage - 1) / patientsPerPage)

	return &PatientPage{
		Patients:   patients,
		Page:       page,
		PerPage:    patientsPerPage,
		Total:      total,
		TotalPages: totalPages,
	}, nil
}
