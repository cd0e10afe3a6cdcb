package store

import (
	"errors"

	"gorm.io/gorm"

	"tipdesk/models"
)

type HotelStore struct {
	db *gorm.DB
}

func (hs *HotelStore) Get(hotelID uint) (models.Hotel, error) {
	var hotel models.Hotel
	err := hs.db.Preload("ShiftConfig.Shifts", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Preload("ShiftConfig").First(&hotel, hotelID).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return hotel, ErrNotFound
	}
	return hotel, err
}

func (hs *HotelStore) GetAll() ([]models.Hotel, error) {
	var hotels []models.Hotel
	err := hs.db.Order("id ASC").Find(&hotels).Error
	return hotels, err
}

func (hs *HotelStore) Add(hotel *models.Hotel) error {
	return hs.db.Create(hotel).Error
}

// Update merges the given fields onto the hotel record.
func (hs *HotelStore) Update(hotelID uint, fields map[string]interface{}) error {
	res := hs.db.Model(&models.Hotel{}).Where("id = ?", hotelID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// Remove purges a hotel and everything it owns. Super-admin only path.
func (hs *HotelStore) Remove(hotelID uint) error {
	return hs.db.Transaction(func(tx *gorm.DB) error {
		var hotel models.Hotel
		if err := tx.First(&hotel, hotelID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrNotFound
			}
			return err
		}

		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Tip{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Assignment{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Staff{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.Room{}).Error; err != nil {
			return err
		}
		var cfg models.ShiftConfig
		if err := tx.Where("hotel_id = ?", hotelID).First(&cfg).Error; err == nil {
			if err := tx.Where("config_id = ?", cfg.ID).Delete(&models.Shift{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&cfg).Error; err != nil {
				return err
			}
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.OnboardingProgress{}).Error; err != nil {
			return err
		}
		if err := tx.Where("hotel_id = ?", hotelID).Delete(&models.User{}).Error; err != nil {
			return err
		}
		return tx.Delete(&hotel).Error
	})
}
