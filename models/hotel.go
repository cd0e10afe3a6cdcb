package models

import "time"

const (
	HotelStatusPending     = "pending"
	HotelStatusActive      = "active"
	HotelStatusSuspended   = "suspended"
	HotelStatusDeactivated = "deactivated"
)

// ValidHotelStatus reports whether s is one of the known hotel statuses.
func ValidHotelStatus(s string) bool {
	switch s {
	case HotelStatusPending, HotelStatusActive, HotelStatusSuspended, HotelStatusDeactivated:
		return true
	}
	return false
}

// Hotel is one registered property (tenant). All staff, rooms,
// assignments and tips hang off a hotel.
type Hotel struct {
	ID        uint   `json:"id" gorm:"primaryKey"`
	OrgID     string `json:"org_id" gorm:"type:varchar(50);uniqueIndex;not null"`
	HotelName string `json:"hotel_name" gorm:"type:varchar(255);not null"`
	Email     string `json:"email" gorm:"type:varchar(255);not null"`
	Phone     string `json:"phone" gorm:"type:varchar(50)"`
	Address   string `json:"address" gorm:"type:varchar(255)"`
	City      string `json:"city" gorm:"type:varchar(100)"`
	State     string `json:"state" gorm:"type:varchar(100)"`
	ZipCode   string `json:"zip_code" gorm:"type:varchar(20)"`

	// pending, active, suspended, deactivated
	Status string `json:"status" gorm:"type:varchar(20);not null;default:'pending'"`

	BankName      string `json:"bank_name" gorm:"type:varchar(255)"`
	AccountHolder string `json:"account_holder" gorm:"type:varchar(255)"`
	AccountNumber string `json:"account_number" gorm:"type:varchar(50)"`
	RoutingNumber string `json:"routing_number" gorm:"type:varchar(50)"`

	BankAccountAdded   bool `json:"bank_account_added" gorm:"not null;default:false"`
	RoomsAdded         bool `json:"rooms_added" gorm:"not null;default:false"`
	StaffAdded         bool `json:"staff_added" gorm:"not null;default:false"`
	OnboardingComplete bool `json:"onboarding_complete" gorm:"not null;default:false"`

	ShiftConfig *ShiftConfig `json:"shift_config,omitempty" gorm:"foreignKey:HotelID"`

	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
