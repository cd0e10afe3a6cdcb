package models

import "time"

const (
	AssignmentActive    = "active"
	AssignmentCompleted = "completed"
)

// Assignment binds one staff member to one room for one shift on a given
// day. Status is stored; the Upcoming/Active/Completed label shown on the
// daily board is derived from the clock, never persisted.
type Assignment struct {
	ID        uint      `json:"id" gorm:"primaryKey"`
	HotelID   uint      `json:"hotel_id" gorm:"not null;index"`
	StaffID   uint      `json:"staff_id" gorm:"not null;index"`
	Staff     Staff     `json:"staff" gorm:"foreignKey:StaffID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	RoomID    uint      `json:"room_id" gorm:"not null;index"`
	Room      Room      `json:"room" gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Shift     string    `json:"shift" gorm:"type:varchar(100);not null"`
	Status    string    `json:"status" gorm:"type:varchar(15);not null;default:'active'"`
	StartTime time.Time `json:"start_time"`
	EndTime   time.Time `json:"end_time"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
