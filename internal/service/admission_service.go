package service

import (
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"hospital-admission-backend/internal/models"
	"hospital-admission-backend/internal/repository"

	"gorm.io/datatypes"
	"gorm.io/gorm"
)

const (
	dateLayout = "2006-01-02"

	// A doctor is considered at capacity at this many admissions per day
	maxDoctorAdmissionsPerDay = 10
)

type AdmissionService struct {
	admissionRepo *repository.AdmissionRepository
	patientRepo   *repository.PatientRepository
	referenceRepo *repository.ReferenceRepository
	auditRepo     *repository.AuditRepository
}

func NewAdmissionService(
	admissionRepo *repository.AdmissionRepository,
	patientRepo *repository.PatientRepository,
	referenceRepo *repository.ReferenceRepository,
	auditRepo *repository.AuditRepository,
) *AdmissionService {
	return &AdmissionService{
		admissionRepo: admissionRepo,
		patientRepo:   patientRepo,
		referenceRepo: referenceRepo,
		auditRepo:     auditRepo,
	}
}

// AdmissionInput is the full admission form payload. Shape constraints are
// enforced by the binding tags; cross-record constraints (referenced ids
// must exist, email must be unused) are checked in AdmitPatient.
type AdmissionInput struct {
	// Patient identity
	FirstName   string `json:"first_name" binding:"required,max=100"`
	LastName    string `json:"last_name" binding:"required,max=100"`
	Birthday    string `json:"birthday" binding:"omitempty,datetime=2006-01-02"`
	CivilStatus string `json:"civil_status" binding:"omitempty"`
	Phone       string `json:"phone" binding:"omitempty,max=20"`
	Email       string `json:"email" binding:"omitempty,email"`
	Address     string `json:"address" binding:"omitempty"`
	City        string `json:"city" binding:"omitempty"`

	// Medical details
	PrimaryReason       string   `json:"primary_reason" binding:"required"`
	Temperature         *float64 `json:"temperature" binding:"omitempty"`
	BloodPressure       string   `json:"blood_pressure" binding:"omitempty"`
	Weight              *float64 `json:"weight" binding:"omitempty"`
	Height              *float64 `json:"height" binding:"omitempty"`
	HeartRate           *float64 `json:"heart_rate" binding:"omitempty"`
	MedicalHistory      []string `json:"medical_history" binding:"omitempty"`
	OtherMedicalHistory string   `json:"other_medical_history" binding:"omitempty"`
	Allergies           []string `json:"allergies" binding:"omitempty"`
	OtherAllergies      string   `json:"other_allergies" binding:"omitempty"`

	// Admission details
	AdmissionDate   string `json:"admission_date" binding:"required,datetime=2006-01-02"`
	AdmissionType   string `json:"admission_type" binding:"required"`
	AdmissionSource string `json:"admission_source" binding:"required"`
	DepartmentID    uint   `json:"department_id" binding:"required"`
	DoctorID        uint   `json:"doctor_id" binding:"required"`
	RoomNumber      string `json:"room_number" binding:"required"`
	BedNumber       string `json:"bed_number" binding:"required"`
	AdmissionNotes  string `json:"admission_notes" binding:"omitempty"`

	// Billing information
	PaymentMethodID     uint   `json:"payment_method_id" binding:"required"`
	InsuranceProviderID *uint  `json:"insurance_provider_id" binding:"omitempty"`
	PolicyNumber        string `json:"policy_number" binding:"omitempty"`
	GroupNumber         string `json:"group_number" binding:"omitempty"`
	BillingContactName  string `json:"billing_contact_name" binding:"omitempty"`
	BillingContactPhone string `json:"billing_contact_phone" binding:"omitempty"`
	BillingAddress      string `json:"billing_address" binding:"omitempty"`
	BillingCity         string `json:"billing_city" binding:"omitempty"`
	BillingState        string `json:"billing_state" binding:"omitempty"`
	BillingZip          string `json:"billing_zip" binding:"omitempty"`
	BillingNotes        string `json:"billing_notes" binding:"omitempty"`
}

// AdmissionConfirmation is returned after a successful admission
type AdmissionConfirmation struct {
	PatientID     uint   `json:"patient_id"`
	PatientNumber string `json:"patient_number"`
	Redirect      string `json:"redirect"`
	Message       string `json:"message"`
}

// AdmitPatient runs the admission workflow: validate every reference and
// constraint first, then write the patient, medical, admission and billing
// rows inside one transaction. No rows persist on any failure path.
func (s *AdmissionService) AdmitPatient(input AdmissionInput, actorID *uint) (*AdmissionConfirmation, error) {
	verr := NewValidationError()
	s.validateShape(input, verr)

	var admissionDate time.Time
	if input.AdmissionDate != "" {
		parsed, err := time.Parse(dateLayout, input.AdmissionDate)
		if err != nil {
			verr.Add("admission_date", "Must be a valid date in YYYY-MM-DD format")
		} else {
			admissionDate = parsed
		}
	}

	var birthday *time.Time
	if input.Birthday != "" {
		parsed, err := time.Parse(dateLayout, input.Birthday)
		if err != nil {
			verr.Add("birthday", "Must be a valid date in YYYY-MM-DD format")
		} else {
			birthday = &parsed
		}
	}

	s.validateReferences(input, verr)

	if input.Email != "" {
		exists, err := s.patientRepo.EmailExists(input.Email)
		if err != nil {
			return nil, fmt.Errorf("failed to check patient email: %w", err)
		}
		if exists {
			verr.Add("email", "A patient with this email already exists")
		}
	}

	if verr.HasErrors() {
		return nil, verr
	}

	patient := &models.Patient{
		FirstName:   input.FirstName,
		LastName:    input.LastName,
		Birthday:    birthday,
		CivilStatus: input.CivilStatus,
		Phone:       input.Phone,
		Address:     input.Address,
		City:        input.City,
	}
	if input.Email != "" {
		email := input.Email
		patient.Email = &email
	}

	history, err := encodeStringList(input.MedicalHistory)
	if err != nil {
		return nil, fmt.Errorf("failed to encode medical history: %w", err)
	}
	allergies, err := encodeStringList(input.Allergies)
	if err != nil {
		return nil, fmt.Errorf("failed to encode allergies: %w", err)
	}

	medical := &models.MedicalDetail{
		PrimaryReason:       input.PrimaryReason,
		Temperature:         input.Temperature,
		Weight:              input.Weight,
		Height:              input.Height,
		HeartRate:           input.HeartRate,
		MedicalHistory:      history,
		Allergies:           allergies,
		OtherMedicalHistory: input.OtherMedicalHistory,
		OtherAllergies:      input.OtherAllergies,
	}
	if input.BloodPressure != "" {
		bp := input.BloodPressure
		medical.BloodPressure = &bp
	}

	admission := &models.AdmissionDetail{
		AdmissionDate:   admissionDate,
		AdmissionType:   input.AdmissionType,
		AdmissionSource: input.AdmissionSource,
		DepartmentID:    input.DepartmentID,
		DoctorID:        input.DoctorID,
		RoomNumber:      input.RoomNumber,
		BedNumber:       input.BedNumber,
		AdmissionNotes:  input.AdmissionNotes,
	}

	billing := &models.BillingInformation{
		PaymentMethodID:     input.PaymentMethodID,
		InsuranceProviderID: input.InsuranceProviderID,
		PolicyNumber:        input.PolicyNumber,
		GroupNumber:         input.GroupNumber,
		BillingContactName:  input.BillingContactName,
		BillingContactPhone: input.BillingContactPhone,
		BillingAddress:      input.BillingAddress,
		BillingCity:         input.BillingCity,
		BillingState:        input.BillingState,
		BillingZip:          input.BillingZip,
		BillingNotes:        input.BillingNotes,
	}

	if err := s.admissionRepo.CreateAdmission(patient, medical, admission, billing); err != nil {
		// A concurrent admission may win the unique email index between the
		// pre-check and the commit
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			dup := NewValidationError()
			dup.Add("email", "A patient with this email already exists")
			return nil, dup
		}
		log.Printf("Error admitting patient: %v", err)
		return nil, fmt.Errorf("error admitting patient: %w", err)
	}

	_ = s.auditRepo.CreateAuditLog(actorID, "patient_admitted",
		fmt.Sprintf("Patient %s %s admitted with number %s", patient.FirstName, patient.LastName, patient.PatientNumber))

	return &AdmissionConfirmation{
		PatientID:     patient.ID,
		PatientNumber: patient.PatientNumber,
		Redirect:      "/admin/dashboard",
		Message:       "Patient admitted successfully",
	}, nil
}

// validateShape re-checks the constraints the binding tags express so the
// workflow holds its contract even when invoked outside the HTTP layer
func (s *AdmissionService) validateShape(input AdmissionInput, verr *ValidationError) {
	required := []struct {
		field string
		value string
	}{
		{"first_name", input.FirstName},
		{"last_name", input.LastName},
		{"primary_reason", input.PrimaryReason},
		{"admission_date", input.AdmissionDate},
		{"admission_type", input.AdmissionType},
		{"admission_source", input.AdmissionSource},
		{"room_number", input.RoomNumber},
		{"bed_number", input.BedNumber},
	}
	for _, f := range required {
		if f.value == "" {
			verr.Add(f.field, "This field is required")
		}
	}

	if len(input.FirstName) > 100 {
		verr.Add("first_name", "Must be at most 100 characters")
	}
	if len(input.LastName) > 100 {
		verr.Add("last_name", "Must be at most 100 characters")
	}
	if input.DepartmentID == 0 {
		verr.Add("department_id", "This field is required")
	}
	if input.DoctorID == 0 {
		verr.Add("doctor_id", "This field is required")
	}
	if input.PaymentMethodID == 0 {
		verr.Add("payment_method_id", "This field is required")
	}
}

// validateReferences checks that every referenced lookup id exists. Missing
// references surface as field-scoped validation failures, not as 404s.
func (s *AdmissionService) validateReferences(input AdmissionInput, verr *ValidationError) {
	if input.DepartmentID != 0 {
		exists, err := s.referenceRepo.DepartmentExists(input.DepartmentID)
		if err == nil && !exists {
			verr.Add("department_id", "The selected department does not exist")
		}
	}
	if input.DoctorID != 0 {
		exists, err := s.referenceRepo.DoctorExists(input.DoctorID)
		if err == nil && !exists {
			verr.Add("doctor_id", "The selected doctor does not exist")
		}
	}
	if input.PaymentMethodID != 0 {
		exists, err := s.referenceRepo.PaymentMethodExists(input.PaymentMethodID)
		if err == nil && !exists {
			verr.Add("payment_method_id", "The selected payment method does not exist")
		}
	}
	if input.InsuranceProviderID != nil {
		exists, err := s.referenceRepo.InsuranceProviderExists(*input.InsuranceProviderID)
		if err == nil && !exists {
			verr.Add("insurance_provider_id", "The selected insurance provider does not exist")
		}
	}
}

// IsRoomAvailable reports whether no undischarged admission holds the room
// on the given date. Advisory only; the write path does not consult it.
func (s *AdmissionService) IsRoomAvailable(roomNumber string, date time.Time) (bool, error) {
	occupied, err := s.admissionRepo.RoomOccupiedOnDate(roomNumber, date)
	if err != nil {
		return false, err
	}
	return !occupied, nil
}

// IsDoctorAvailable reports whether the doctor is under the daily admission
// capacity on the given date. Advisory only.
func (s *AdmissionService) IsDoctorAvailable(doctorID uint, date time.Time) (bool, error) {
	count, err := s.admissionRepo.CountAdmissionsByDoctorOnDate(doctorID, date)
	if err != nil {
		return false, err
	}
	return count < maxDoctorAdmissionsPerDay, nil
}

// encodeStringList serializes a list-valued form field for storage. A nil
// list is stored as an empty JSON array, never as NULL.
func encodeStringList(values []string) (datatypes.JSON, error) {
	if values == nil {
		values = []string{}
	}
	encoded, err := json.Marshal(values)
	if err != nil {
		return nil, err
	}
	return datatypes.JSON(encoded), nil
}
