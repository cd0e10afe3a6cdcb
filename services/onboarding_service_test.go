package services

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipdesk/models"
)

func TestOnboardingStartsAtRegistration(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)

	progress, err := s.Onboarding.Get(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepRegistration, progress.Step)
	assert.False(t, progress.Completed)
}

func TestAdvanceMarksStepAndHotelFlag(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)
	svc := NewOnboardingService(s)

	progress, err := svc.Advance(hotel.ID, models.StepBank)
	require.NoError(t, err)
	assert.Equal(t, models.StepBank, progress.Step)
	assert.True(t, progress.StepDone(models.StepBank))
	assert.False(t, progress.StepDone(models.StepRooms))

	reloaded, err := s.Hotels.Get(hotel.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.BankAccountAdded)
	assert.False(t, reloaded.RoomsAdded)
}

func TestAdvanceRejectsUnknownStep(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)
	svc := NewOnboardingService(s)

	_, err := svc.Advance(hotel.ID, "billing")
	require.Error(t, err)
	assert.Equal(t, `Unknown onboarding step "billing"`, err.Error())
}

func TestAdvanceIsIdempotent(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)
	svc := NewOnboardingService(s)

	_, err := svc.Advance(hotel.ID, models.StepBank)
	require.NoError(t, err)
	progress, err := svc.Advance(hotel.ID, models.StepBank)
	require.NoError(t, err)
	assert.True(t, progress.StepDone(models.StepBank))
}

func TestCompleteIsTerminal(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)
	svc := NewOnboardingService(s)

	progress, err := svc.Complete(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepCompleted, progress.Step)
	assert.True(t, progress.Completed)

	// Every flag is set, on the record and on the hotel.
	for _, step := range models.OnboardingSteps {
		assert.True(t, progress.StepDone(step), step)
	}
	reloaded, err := s.Hotels.Get(hotel.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.OnboardingComplete)
	assert.True(t, reloaded.BankAccountAdded)
	assert.True(t, reloaded.RoomsAdded)
	assert.True(t, reloaded.StaffAdded)

	// Advancing a completed hotel changes nothing.
	after, err := svc.Advance(hotel.ID, models.StepBank)
	require.NoError(t, err)
	assert.Equal(t, models.StepCompleted, after.Step)
	assert.True(t, after.Completed)
}

func TestNextStepWalksTheSetupOrder(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)
	svc := NewOnboardingService(s)

	next, err := svc.NextStep(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepRegistration, next)

	_, err = svc.Advance(hotel.ID, models.StepRegistration)
	require.NoError(t, err)
	next, err = svc.NextStep(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepBank, next)

	// Skipping ahead leaves earlier gaps visible.
	_, err = svc.Advance(hotel.ID, models.StepStaff)
	require.NoError(t, err)
	next, err = svc.NextStep(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.StepBank, next)

	_, err = svc.Complete(hotel.ID)
	require.NoError(t, err)
	next, err = svc.NextStep(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "", next)
}

func TestStaffAndRoomAddsFlipOnboardingFlags(t *testing.T) {
	s := newTestStore(t)
	hotel := newTestHotel(t, s)

	// Registration seeds the progress record before any staff or room
	// writes happen.
	_, err := s.Onboarding.Get(hotel.ID)
	require.NoError(t, err)

	member := models.Staff{HotelID: hotel.ID, StaffCode: "001", Name: "Ana", Role: models.RoleHousekeeper}
	require.NoError(t, s.Staff.Add(&member))
	room := models.Room{HotelID: hotel.ID, Number: "101", Floor: "1"}
	require.NoError(t, s.Rooms.Add(&room))

	reloaded, err := s.Hotels.Get(hotel.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.StaffAdded)
	assert.True(t, reloaded.RoomsAdded)

	progress, err := s.Onboarding.Get(hotel.ID)
	require.NoError(t, err)
	assert.True(t, progress.StepDone(models.StepStaff))
	assert.True(t, progress.StepDone(models.StepRooms))
}
