package models

import "time"

const (
	RoomTypeStandard = "standard"
	RoomTypeSuite    = "suite"
	RoomTypeDeluxe   = "deluxe"
)

type Room struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	HotelID uint `json:"hotel_id" gorm:"not null;index"`
	// Number is floor + two digit sequence when auto generated ("101", "102").
	Number string `json:"number" gorm:"type:varchar(50);not null"`
	Floor  string `json:"floor" gorm:"type:varchar(20);not null"`
	// standard, suite, deluxe
	Type          string     `json:"type" gorm:"type:varchar(20);not null;default:'standard'"`
	QRGenerated   bool       `json:"qr_generated" gorm:"not null;default:false"`
	QRGeneratedAt *time.Time `json:"qr_generated_at,omitempty"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`
}
