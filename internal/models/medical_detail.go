package models

import (
	"time"

	"gorm.io/datatypes"
)

// MedicalDetail represents the medical_details table
// Holds the vitals and history captured during admission; the list-valued
// fields are stored as JSON arrays and decoded only at this boundary
type MedicalDetail struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	PatientID     uint      `gorm:"not null;index" json:"patient_id"`
	PrimaryReason string    `gorm:"type:text;not null" json:"primary_reason"`
	Temperature   *float64  `json:"temperature"`
	BloodPressure *string   `gorm:"size:20" json:"blood_pressure"`
	Weight        *float64  `json:"weight"`
	Height        *float64  `json:"height"`
	HeartRate     *float64  `gorm:"column:heart_rate" json:"heart_rate"`
	CreatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt     time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Serialized list fields plus free-text overflow
	MedicalHistory      datatypes.JSON `json:"medical_history"`
	Allergies           datatypes.JSON `json:"allergies"`
	OtherMedicalHistory string         `gorm:"type:text" json:"other_medical_history,omitempty"`
	OtherAllergies      string         `gorm:"type:text" json:"other_allergies,omitempty"`

	// Relationships
	Patient Patient `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
}

// TableName specifies the table name for MedicalDetail model
func (MedicalDetail) TableName() string {
	return "medical_details"
}
