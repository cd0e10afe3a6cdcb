package models

import "time"

const (
	UserRoleAdmin      = "admin"
	UserRoleSuperAdmin = "superadmin"
)

// User is a console login. Hotel managers carry the id of their hotel;
// the super admin has none.
type User struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	Email     string    `json:"email" gorm:"type:varchar(255);unique;not null"`
	Password  string    `json:"-" gorm:"type:varchar(255);not null"`
	Role      string    `json:"role" gorm:"type:varchar(20);not null;default:'admin'"`
	HotelID   *uint     `json:"hotel_id,omitempty" gorm:"index"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
