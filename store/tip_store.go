package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tipdesk/models"
)

type TipStore struct {
	db *gorm.DB
}

func (ts *TipStore) GetAll(hotelID uint) ([]models.Tip, error) {
	var tips []models.Tip
	err := ts.db.Preload("Staff").Preload("Room").
		Where("hotel_id = ?", hotelID).Order("id ASC").
		Find(&tips).Error
	return tips, err
}

// Between returns the hotel's tips created inside [from, to).
func (ts *TipStore) Between(hotelID uint, from, to time.Time) ([]models.Tip, error) {
	var tips []models.Tip
	err := ts.db.Preload("Staff").Preload("Room").
		Where("hotel_id = ? AND created_at >= ? AND created_at < ?", hotelID, from, to).
		Order("id ASC").Find(&tips).Error
	return tips, err
}

func (ts *TipStore) ForStaff(hotelID, staffID uint) ([]models.Tip, error) {
	var tips []models.Tip
	err := ts.db.Where("hotel_id = ? AND staff_id = ?", hotelID, staffID).
		Order("id ASC").Find(&tips).Error
	return tips, err
}

func (ts *TipStore) Add(tip *models.Tip) error {
	return ts.db.Create(tip).Error
}

func (ts *TipStore) ByReference(referenceID string) (models.Tip, error) {
	var tip models.Tip
	res := ts.db.Where("reference_id = ?", referenceID).First(&tip)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return tip, ErrNotFound
	}
	return tip, res.Error
}

func (ts *TipStore) Update(tipID uint, fields map[string]interface{}) error {
	res := ts.db.Model(&models.Tip{}).Where("id = ?", tipID).Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// SumAmount totals successful tips for a hotel. Zero hotelID totals the
// whole platform (super-admin stats).
func (ts *TipStore) SumAmount(hotelID uint) (float64, error) {
	var total float64
	q := ts.db.Model(&models.Tip{}).Where("status = ?", "success")
	if hotelID != 0 {
		q = q.Where("hotel_id = ?", hotelID)
	}
	err := q.Select("COALESCE(SUM(amount), 0)").Scan(&total).Error
	return total, err
}
