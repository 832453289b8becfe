package models

import "time"

// InsuranceProvider represents the insurance_providers table
type InsuranceProvider struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for InsuranceProvider model
func (InsuranceProvider) TableName() string {
	return "insurance_providers"
}

// PaymentMethod represents the payment_methods table
type PaymentMethod struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	Name      string    `gorm:"size:100;not null" json:"name"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`
}

// TableName specifies the table name for PaymentMethod model
func (PaymentMethod) TableName() string {
	return "payment_methods"
}
