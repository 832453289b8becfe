package models

import "time"

// Patient represents the patients table
// One row is created per admission workflow invocation
type Patient struct {
	ID            uint       `gorm:"primaryKey" json:"id"`
	PatientNumber string     `gorm:"size:20;not null;uniqueIndex" json:"patient_number"`
	FirstName     string     `gorm:"size:100;not null" json:"first_name"`
	LastName      string     `gorm:"size:100;not null" json:"last_name"`
	Birthday      *time.Time `gorm:"type:date" json:"birthday"`
	CivilStatus   string     `gorm:"size:50" json:"civil_status,omitempty"`
	Phone         string     `gorm:"size:20" json:"phone,omitempty"`
	Email         *string    `gorm:"size:255;uniqueIndex" json:"email,omitempty"`
	Address       string     `gorm:"type:text" json:"address,omitempty"`
	City          string     `gorm:"size:100" json:"city,omitempty"`
	CreatedAt     time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time  `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	MedicalDetails     []MedicalDetail      `gorm:"foreignKey:PatientID" json:"medical_details,omitempty"`
	AdmissionDetails   []AdmissionDetail    `gorm:"foreignKey:PatientID" json:"admission_details,omitempty"`
	BillingInformation []BillingInformation `gorm:"foreignKey:PatientID" json:"billing_information,omitempty"`
}

// TableName specifies the table name for Patient model
func (Patient) TableName() string {
	return "patients"
}
