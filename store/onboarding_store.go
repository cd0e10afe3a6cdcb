package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tipdesk/models"
)

type OnboardingStore struct {
	db *gorm.DB
}

// Get returns the hotel's onboarding progress, creating the initial
// registration-step record when none exists yet.
func (os *OnboardingStore) Get(hotelID uint) (models.OnboardingProgress, error) {
	var progress models.OnboardingProgress
	err := os.db.Where("hotel_id = ?", hotelID).First(&progress).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		progress = models.OnboardingProgress{
			HotelID:   hotelID,
			Step:      models.StepRegistration,
			Timestamp: time.Now(),
		}
		if err := os.db.Create(&progress).Error; err != nil {
			return progress, err
		}
		return progress, nil
	}
	return progress, err
}

func (os *OnboardingStore) Save(progress *models.OnboardingProgress) error {
	return os.db.Save(progress).Error
}
