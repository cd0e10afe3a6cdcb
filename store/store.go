package store

import (
	"errors"

	"gorm.io/gorm"

	"tipdesk/models"
)

// ErrNotFound is returned by Update/Remove when no record matches the
// given id within the hotel's collection.
var ErrNotFound = errors.New("record not found")

// ErrDuplicateStaffCode is returned when a staff code is already taken
// within the same hotel.
var ErrDuplicateStaffCode = errors.New("staff code already in use")

// Store bundles one per-collection store per domain entity. Every store
// is scoped by hotel id; cross-collection side effects (onboarding flags)
// happen inside a single transaction.
type Store struct {
	DB *gorm.DB

	Hotels      *HotelStore
	Users       *UserStore
	Staff       *StaffStore
	Rooms       *RoomStore
	Assignments *AssignmentStore
	Shifts      *ShiftConfigStore
	Onboarding  *OnboardingStore
	Tips        *TipStore
}

func New(db *gorm.DB) *Store {
	return &Store{
		DB:          db,
		Hotels:      &HotelStore{db: db},
		Users:       &UserStore{db: db},
		Staff:       &StaffStore{db: db},
		Rooms:       &RoomStore{db: db},
		Assignments: &AssignmentStore{db: db},
		Shifts:      &ShiftConfigStore{db: db},
		Onboarding:  &OnboardingStore{db: db},
		Tips:        &TipStore{db: db},
	}
}

// AutoMigrate creates or updates every table the console uses.
func AutoMigrate(db *gorm.DB) error {
	return db.AutoMigrate(
		&models.User{},
		&models.Hotel{},
		&models.Staff{},
		&models.Room{},
		&models.ShiftConfig{},
		&models.Shift{},
		&models.Assignment{},
		&models.OnboardingProgress{},
		&models.Tip{},
	)
}
