package models

import "time"

// Room/bed status values used by the lookup filters
const (
	StatusAvailable = "available"
	StatusOccupied  = "occupied"
)

// Room represents the rooms table
// Rooms belong to a department and carry an availability status
type Room struct {
	ID           uint      `gorm:"primaryKey" json:"id"`
	RoomNumber   string    `gorm:"size:20;not null" json:"room_number"`
	DepartmentID uint      `gorm:"not null;index" json:"department_id"`
	Status       string    `gorm:"size:20;default:'available'" json:"status"`
	CreatedAt    time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Department Department `gorm:"foreignKey:DepartmentID" json:"department,omitempty"`
}

// TableName specifies the table name for Room model
func (Room) TableName() string {
	return "rooms"
}

// Bed represents the beds table
type Bed struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	BedNumber string    `gorm:"size:20;not null" json:"bed_number"`
	RoomID    uint      `gorm:"not null;index" json:"room_id"`
	Status    string    `gorm:"size:20;default:'available'" json:"status"`
	CreatedAt time.Time `gorm:"default:CURRENT_TIMESTAMP" json:"created_at"`

	// Relationships
	Room Room `gorm:"foreignKey:RoomID" json:"room,omitempty"`
}

// TableName specifies the table name for Bed model
func (Bed) TableName() string {
	return "beds"
}
