package models

import "time"

// BillingInformation represents the billing_information table
// A null payment status means the billing record is still pending
type BillingInformation struct {
	ID                  uint      `gorm:"primaryKey" json:"id"`
	PatientID           uint      `gorm:"not null;index" json:"patient_id"`
	PaymentMethodID     uint      `gorm:"not null;index" json:"payment_method_id"`
	InsuranceProviderID *uint     `gorm:"index" json:"insurance_provider_id"`
	PolicyNumber        string    `gorm:"size:100" json:"policy_number,omitempty"`
	GroupNumber         string    `gorm:"size:100" json:"group_number,omitempty"`
	BillingContactName  string    `gorm:"size:100" json:"billing_contact_name,omitempty"`
	BillingContactPhone string    `gorm:"size:20" json:"billing_contact_phone,omitempty"`
	BillingAddress      string    `gorm:"type:text" json:"billing_address,omitempty"`
	BillingCity         string    `gorm:"size:100" json:"billing_city,omitempty"`
	BillingState        string    `gorm:"size:100" json:"billing_state,omitempty"`
	BillingZip          string    `gorm:"size:20" json:"billing_zip,omitempty"`
	BillingNotes        string    `gorm:"type:text" json:"billing_notes,omitempty"`
	PaymentStatus       *string   `gorm:"size:50" json:"payment_status"`
	CreatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
	UpdatedAt           time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"updated_at"`

	// Relationships
	Patient           Patient            `gorm:"foreignKey:PatientID" json:"patient,omitempty"`
	PaymentMethod     PaymentMethod      `gorm:"foreignKey:PaymentMethodID" json:"payment_method,omitempty"`
	InsuranceProvider *InsuranceProvider `gorm:"foreignKey:InsuranceProviderID" json:"insurance_provider,omitempty"`
}

// TableName specifies the table name for BillingInformation model
func (BillingInformation) TableName() string {
	return "billing_information"
}
