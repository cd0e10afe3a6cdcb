package models

import "time"

// Onboarding steps in order. "completed" is terminal.
const (
	StepRegistration = "registration"
	StepBank         = "bank"
	StepRooms        = "rooms"
	StepStaff        = "staff"
	StepQR           = "qr"
	StepCompleted    = "completed"
)

// OnboardingSteps is the setup order a new hotel walks through.
var OnboardingSteps = []string{StepRegistration, StepBank, StepRooms, StepStaff, StepQR}

// StepFlags tracks which setup steps a hotel has finished.
type StepFlags struct {
	Registration bool `json:"registration"`
	Bank         bool `json:"bank"`
	Rooms        bool `json:"rooms"`
	Staff        bool `json:"staff"`
	QR           bool `json:"qr"`
}

// OnboardingProgress is the per-hotel onboarding state machine record.
type OnboardingProgress struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	HotelID        uint      `json:"hotel_id" gorm:"not null;uniqueIndex"`
	Step           string    `json:"step" gorm:"type:varchar(20);not null;default:'registration'"`
	Completed      bool      `json:"completed" gorm:"not null;default:false"`
	Timestamp      time.Time `json:"timestamp"`
	CompletedSteps StepFlags `json:"completed_steps" gorm:"embedded;embeddedPrefix:step_"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

// StepDone reports whether a named step is flagged complete.
func (p *OnboardingProgress) StepDone(step string) bool {
	switch step {
	case StepRegistration:
		return p.CompletedSteps.Registration
	case StepBank:
		return p.CompletedSteps.Bank
	case StepRooms:
		return p.CompletedSteps.Rooms
	case StepStaff:
		return p.CompletedSteps.Staff
	case StepQR:
		return p.CompletedSteps.QR
	}
	return false
}

// MarkStep flags a named step complete. Unknown steps are ignored.
func (p *OnboardingProgress) MarkStep(step string) {
	switch step {
	case StepRegistration:
		p.CompletedSteps.Registration = true
	case StepBank:
		p.CompletedSteps.Bank = true
	case StepRooms:
		p.CompletedSteps.Rooms = true
	case StepStaff:
		p.CompletedSteps.Staff = true
	case StepQR:
		p.CompletedSteps.QR = true
	}
}

func ValidOnboardingStep(step string) bool {
	for _, s := range OnboardingSteps {
		if s == step {
			return true
		}
	}
	return false
}
