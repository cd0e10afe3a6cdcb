package store

import (
	"gorm.io/gorm"

	"tipdesk/models"
)

type RoomStore struct {
	db *gorm.DB
}

func (rs *RoomStore) GetAll(hotelID uint) ([]models.Room, error) {
	var rooms []models.Room
	err := rs.db.Where("hotel_id = ?", hotelID).Order("id ASC").Find(&rooms).Error
	return rooms, err
}

func (rs *RoomStore) Get(hotelID, roomID uint) (models.Room, error) {
	var room models.Room
	res := rs.db.Where("hotel_id = ?", hotelID).First(&room, roomID)
	if res.Error == gorm.ErrRecordNotFound {
		return room, ErrNotFound
	}
	return room, res.Error
}

func (rs *RoomStore) CountOnFloor(hotelID uint, floor string) (int64, error) {
	var count int64
	err := rs.db.Model(&models.Room{}).
		Where("hotel_id = ? AND floor = ?", hotelID, floor).
		Count(&count).Error
	return count, err
}

// Add creates the room and flips the hotel's roomsAdded flag plus the
// onboarding "rooms" step flag in the same transaction.
func (rs *RoomStore) Add(room *models.Room) error {
	return rs.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(room).Error; err != nil {
			return err
		}
		return recordStepAdded(tx, room.HotelID, models.StepRooms, "rooms_added")
	})
}

func (rs *RoomStore) Update(hotelID, roomID uint, fields map[string]interface{}) error {
	res := rs.db.Model(&models.Room{}).
		Where("id = ? AND hotel_id = ?", roomID, hotelID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (rs *RoomStore) Remove(hotelID, roomID uint) error {
	res := rs.db.Where("hotel_id = ?", hotelID).Delete(&models.Room{}, roomID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
