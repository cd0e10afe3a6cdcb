package store

import (
	"errors"

	"gorm.io/gorm"

	"tipdesk/models"
)

type UserStore struct {
	db *gorm.DB
}

func (us *UserStore) Add(user *models.User) error {
	return us.db.Create(user).Error
}

func (us *UserStore) ByEmail(email string) (models.User, error) {
	var user models.User
	res := us.db.Where("email = ?", email).First(&user)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, res.Error
}

func (us *UserStore) Get(userID uint) (models.User, error) {
	var user models.User
	res := us.db.First(&user, userID)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, res.Error
}

func (us *UserStore) ByHotel(hotelID uint) (models.User, error) {
	var user models.User
	res := us.db.Where("hotel_id = ?", hotelID).First(&user)
	if errors.Is(res.Error, gorm.ErrRecordNotFound) {
		return user, ErrNotFound
	}
	return user, res.Error
}

func (us *UserStore) UpdatePassword(userID uint, hashed string) error {
	res := us.db.Model(&models.User{}).Where("id = ?", userID).
		Update("password", hashed)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}
