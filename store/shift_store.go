package store

import (
	"errors"

	"gorm.io/gorm"

	"tipdesk/models"
)

type ShiftConfigStore struct {
	db *gorm.DB
}

// Get loads the hotel's shift configuration with its shifts in
// configured order. ErrNotFound when the hotel never saved one.
func (scs *ShiftConfigStore) Get(hotelID uint) (models.ShiftConfig, error) {
	var cfg models.ShiftConfig
	res := scs.db.Preload("Shifts", func(db *gorm.DB) *gorm.DB {
		return db.Order("position ASC")
	}).Where("hotel_id = ?", hotelID).First(&cfg)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return cfg, ErrNotFound
	}
	return cfg, res.Error
}

// Save replaces the hotel's shift configuration wholesale. Single row
// per hotel; previous shifts are discarded.
func (scs *ShiftConfigStore) Save(hotelID uint, cfg *models.ShiftConfig) error {
	return scs.db.Transaction(func(tx *gorm.DB) error {
		var existing models.ShiftConfig
		err := tx.Where("hotel_id = ?", hotelID).First(&existing).Error
		if err == nil {
			if err := tx.Where("config_id = ?", existing.ID).Delete(&models.Shift{}).Error; err != nil {
				return err
			}
			if err := tx.Delete(&existing).Error; err != nil {
				return err
			}
		} else if !errors.Is(err, gorm.ErrRecordNotFound) {
			return err
		}

		cfg.ID = 0
		cfg.HotelID = hotelID
		for i := range cfg.Shifts {
			cfg.Shifts[i].ID = 0
			cfg.Shifts[i].Position = i
		}
		return tx.Create(cfg).Error
	})
}
