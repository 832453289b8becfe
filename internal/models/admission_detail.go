package models

import "time"

// AdmissionDetail represents the admission_details table
// A null discharge date means the patient is currently admitted
type AdmissionDetail struct {
	ID              uint       `gorm:"primaryKey" json:"id"`
	PatientID       uint       `gorm:"not null;index" json:"patient_id"`
	AdmissionDate   time.Time  `gorm:"type:date;not null" json:"admission_date"`
	AdmissionType   string     `gorm:"size:50;not null" json:"admission_type"`
	AdmissionSource string     `gorm:"size:50;not null" json:"admission_source"`
	DepartmentID    uint       `gorm:"not null;index" json:"department_id"`
	DoctorID        uint       `gorm:"not null;index" json:"doctor_id"`
	RoomNumber      string     `gorm:"size:20;not null" json:"room_number"`
	BedNumber       string     `gorm:"size:20;not null" json:"bed_number"`
	AdmissionNotes  string     `gorm:"type:text" json:"admission_notes,omitempty"`
	DischargeDate   *time.Time `gorm:"type:date" json:"discharge_date"`
	CreatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt       time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Patient    Patient    `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
	Doctor     Doctor     `gorm:"foreignKey:DoctorID" json:"doctor,omitempty"`
}

// TableName specifies the table name for AdmissionDetail model
func (AdmissionDetail) TableName() string {
	return "admission_details"
}
