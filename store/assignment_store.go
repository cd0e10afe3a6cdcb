package store

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"tipdesk/models"
)

type AssignmentStore struct {
	db *gorm.DB
}

func (as *AssignmentStore) GetAll(hotelID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := as.db.Preload("Staff").Preload("Room").
		Where("hotel_id = ?", hotelID).Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

func (as *AssignmentStore) Get(hotelID, assignmentID uint) (models.Assignment, error) {
	var assignment models.Assignment
	res := as.db.Preload("Staff").Preload("Room").
		Where("hotel_id = ?", hotelID).First(&assignment, assignmentID)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return assignment, ErrNotFound
	}
	return assignment, res.Error
}

func (as *AssignmentStore) Add(assignment *models.Assignment) error {
	return as.db.Create(assignment).Error
}

func (as *AssignmentStore) Update(hotelID, assignmentID uint, fields map[string]interface{}) error {
	res := as.db.Model(&models.Assignment{}).
		Where("id = ? AND hotel_id = ?", assignmentID, hotelID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (as *AssignmentStore) Remove(hotelID, assignmentID uint) error {
	res := as.db.Where("hotel_id = ?", hotelID).Delete(&models.Assignment{}, assignmentID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// ForRoom returns every assignment for a room regardless of status.
func (as *AssignmentStore) ForRoom(hotelID, roomID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := as.db.Preload("Staff").Preload("Room").
		Where("hotel_id = ? AND room_id = ?", hotelID, roomID).Order("id ASC").
		Find(&assignments).Error
	return assignments, err
}

// ActiveExists reports whether an active assignment already covers the
// (staff, room, shift) triple.
func (as *AssignmentStore) ActiveExists(hotelID, staffID, roomID uint, shift string) (bool, error) {
	var count int64
	err := as.db.Model(&models.Assignment{}).
		Where("hotel_id = ? AND staff_id = ? AND room_id = ? AND shift = ? AND status = ?",
			hotelID, staffID, roomID, shift, models.AssignmentActive).
		Count(&count).Error
	return count > 0, err
}

// CurrentForRoom returns the first active assignment whose window
// contains now, or ErrNotFound when the clock falls in a gap.
func (as *AssignmentStore) CurrentForRoom(hotelID, roomID uint, now time.Time) (models.Assignment, error) {
	var assignment models.Assignment
	res := as.db.Preload("Staff").Preload("Room").
		Where("hotel_id = ? AND room_id = ? AND status = ? AND start_time <= ? AND end_time >= ?",
			hotelID, roomID, models.AssignmentActive, now, now).
		Order("id ASC").First(&assignment)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return assignment, ErrNotFound
	}
	return assignment, res.Error
}

// ActiveForRoom returns the active assignments for a room, used by the
// public tip page to list tippable staff.
func (as *AssignmentStore) ActiveForRoom(hotelID, roomID uint) ([]models.Assignment, error) {
	var assignments []models.Assignment
	err := as.db.Preload("Staff").
		Where("hotel_id = ? AND room_id = ? AND status = ?", hotelID, roomID, models.AssignmentActive).
		Order("id ASC").Find(&assignments).Error
	return assignments, err
}
