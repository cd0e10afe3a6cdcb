package services

import (
	"fmt"
	"time"

	"tipdesk/models"
	"tipdesk/store"
)

// OnboardingService advances the per-hotel setup state machine:
// registration -> bank -> rooms -> staff -> qr -> completed.
type OnboardingService struct {
	Store *store.Store
}

func NewOnboardingService(s *store.Store) *OnboardingService {
	return &OnboardingService{Store: s}
}

// hotelFlagForStep maps a step to the hotel record flag it mirrors.
// Registration and qr have no hotel flag.
func hotelFlagForStep(step string) string {
	switch step {
	case models.StepBank:
		return "bank_account_added"
	case models.StepRooms:
		return "rooms_added"
	case models.StepStaff:
		return "staff_added"
	}
	return ""
}

// Advance marks a step complete, sets it as the current step and stamps
// the time. For bank/rooms/staff it also flips the matching hotel flag.
// Calling it again for an already-complete step is a harmless re-write.
func (os *OnboardingService) Advance(hotelID uint, step string) (models.OnboardingProgress, error) {
	if !models.ValidOnboardingStep(step) {
		return models.OnboardingProgress{}, fmt.Errorf("Unknown onboarding step %q", step)
	}

	progress, err := os.Store.Onboarding.Get(hotelID)
	if err != nil {
		return progress, err
	}
	if progress.Completed {
		// completed is terminal
		return progress, nil
	}

	progress.MarkStep(step)
	progress.Step = step
	progress.Timestamp = time.Now()
	if err := os.Store.Onboarding.Save(&progress); err != nil {
		return progress, err
	}

	if flag := hotelFlagForStep(step); flag != "" {
		if err := os.Store.Hotels.Update(hotelID, map[string]interface{}{flag: true}); err != nil {
			return progress, err
		}
	}
	return progress, nil
}

// Complete moves the hotel to the terminal completed state: every step
// flagged, the overall boolean set, and the hotel marked done.
func (os *OnboardingService) Complete(hotelID uint) (models.OnboardingProgress, error) {
	progress, err := os.Store.Onboarding.Get(hotelID)
	if err != nil {
		return progress, err
	}

	progress.Step = models.StepCompleted
	progress.Completed = true
	progress.Timestamp = time.Now()
	progress.CompletedSteps = models.StepFlags{
		Registration: true,
		Bank:         true,
		Rooms:        true,
		Staff:        true,
		QR:           true,
	}
	if err := os.Store.Onboarding.Save(&progress); err != nil {
		return progress, err
	}

	err = os.Store.Hotels.Update(hotelID, map[string]interface{}{
		"onboarding_complete": true,
		"bank_account_added":  true,
		"rooms_added":         true,
		"staff_added":         true,
	})
	return progress, err
}

// IsStepComplete consults the progress record for the gate.
func (os *OnboardingService) IsStepComplete(hotelID uint, step string) (bool, error) {
	progress, err := os.Store.Onboarding.Get(hotelID)
	if err != nil {
		return false, err
	}
	return progress.StepDone(step), nil
}

// NextStep returns the first unfinished step, or "" when setup is done.
func (os *OnboardingService) NextStep(hotelID uint) (string, error) {
	progress, err := os.Store.Onboarding.Get(hotelID)
	if err != nil {
		return "", err
	}
	if progress.Completed {
		return "", nil
	}
	for _, step := range models.OnboardingSteps {
		if !progress.StepDone(step) {
			return step, nil
		}
	}
	return "", nil
}
