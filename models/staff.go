package models

import "time"

// Staff roles offered by the console.
const (
	RoleHousekeeper = "housekeeper"
	RoleConcierge   = "concierge"
	RoleBellhop     = "bellhop"
	RoleValet       = "valet"
	RoleRoomService = "room-service"
)

type Staff struct {
	ID      uint `json:"id" gorm:"primaryKey"`
	HotelID uint `json:"hotel_id" gorm:"not null;index;uniqueIndex:idx_hotel_staff_code"`
	// StaffCode is the human-facing id shown on badges (001, STAFF-001, ...).
	// Unique per hotel, not globally.
	StaffCode string    `json:"staff_code" gorm:"type:varchar(50);not null;uniqueIndex:idx_hotel_staff_code"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	Role      string    `json:"role" gorm:"type:varchar(50);not null"`
	Email     string    `json:"email" gorm:"type:varchar(255)"`
	Phone     string    `json:"phone" gorm:"type:varchar(50)"`
	Image     string    `json:"image,omitempty" gorm:"type:varchar(255)"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

func ValidStaffRole(role string) bool {
	switch role {
	case RoleHousekeeper, RoleConcierge, RoleBellhop, RoleValet, RoleRoomService:
		return true
	}
	return false
}
