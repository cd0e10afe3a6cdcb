package models

import "time"

const (
	TipStatusPending = "pending"
	TipStatusSuccess = "success"
	TipStatusFailed  = "failed"
)

// Tip is one guest tip paid through the per-room QR flow.
type Tip struct {
	ID       uint    `json:"id" gorm:"primaryKey"`
	HotelID  uint    `json:"hotel_id" gorm:"not null;index"`
	RoomID   uint    `json:"room_id" gorm:"not null;index"`
	Room     Room    `json:"room" gorm:"foreignKey:RoomID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	StaffID  uint    `json:"staff_id" gorm:"not null;index"`
	Staff    Staff   `json:"staff" gorm:"foreignKey:StaffID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:CASCADE"`
	Amount   float64 `json:"amount" gorm:"not null"`
	Rating   string  `json:"rating" gorm:"type:varchar(10)"`
	Feedback string  `json:"feedback" gorm:"type:text"`
	// pending, success, failed
	Status          string     `json:"status" gorm:"type:varchar(15);not null;default:'pending'"`
	ReferenceID     string     `json:"reference_id" gorm:"type:varchar(64);index"`
	PaymentIntentID string     `json:"payment_intent_id" gorm:"type:varchar(64);index"`
	PaymentTime     *time.Time `json:"payment_time,omitempty"`
	CreatedAt       time.Time  `json:"created_at"`
	UpdatedAt       time.Time  `json:"updated_at"`
}
