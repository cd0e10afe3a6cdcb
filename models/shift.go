package models

import "time"

const (
	ShiftConfigDefault = "default"
	ShiftConfigCustom  = "custom"
)

// ShiftConfig is a hotel's shift schedule: the fixed default pair or an
// ordered list of custom shifts. One row per hotel.
type ShiftConfig struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotel_id" gorm:"not null;uniqueIndex"`
	Type      string    `json:"type" gorm:"type:varchar(10);not null;default:'default'"`
	Shifts    []Shift   `json:"shifts" gorm:"foreignKey:ConfigID;constraint:OnDelete:CASCADE"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// Shift is a named wall-clock window, same day, "HH:MM" bounds.
type Shift struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	ConfigID  uint   `json:"-" gorm:"not null;index"`
	Name      string `json:"name" gorm:"type:varchar(100);not null"`
	StartTime string `json:"start_time" gorm:"type:varchar(5);not null"`
	EndTime   string `json:"end_time" gorm:"type:varchar(5);not null"`
	IsActive  bool   `json:"is_active" gorm:"not null;default:true"`
	// Position keeps the configured ordering; overlap errors report the
	// first violating pair in this order.
	Position int `json:"-" gorm:"not null;default:0"`
}
