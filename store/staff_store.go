package store

import (
	"gorm.io/gorm"

	"tipdesk/models"
)

type StaffStore struct {
	db *gorm.DB
}

func (ss *StaffStore) GetAll(hotelID uint) ([]models.Staff, error) {
	var staff []models.Staff
	err := ss.db.Where("hotel_id = ?", hotelID).Order("id ASC").Find(&staff).Error
	return staff, err
}

func (ss *StaffStore) Get(hotelID, staffID uint) (models.Staff, error) {
	var member models.Staff
	res := ss.db.Where("hotel_id = ?", hotelID).First(&member, staffID)
	if res.Error == gorm.ErrRecordNotFound {
		return member, ErrNotFound
	}
	return member, res.Error
}

func (ss *StaffStore) Count(hotelID uint) (int64, error) {
	var count int64
	err := ss.db.Model(&models.Staff{}).Where("hotel_id = ?", hotelID).Count(&count).Error
	return count, err
}

// Add creates the staff member and, in the same transaction, flips the
// hotel's staffAdded flag and the onboarding "staff" step flag. Staff
// codes are unique per hotel; a taken code fails the whole write.
func (ss *StaffStore) Add(member *models.Staff) error {
	return ss.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(&models.Staff{}).
			Where("hotel_id = ? AND staff_code = ?", member.HotelID, member.StaffCode).
			Count(&count).Error; err != nil {
			return err
		}
		if count > 0 {
			return ErrDuplicateStaffCode
		}

		if err := tx.Create(member).Error; err != nil {
			return err
		}
		return recordStepAdded(tx, member.HotelID, models.StepStaff, "staff_added")
	})
}

func (ss *StaffStore) Update(hotelID, staffID uint, fields map[string]interface{}) error {
	res := ss.db.Model(&models.Staff{}).
		Where("id = ? AND hotel_id = ?", staffID, hotelID).
		Updates(fields)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (ss *StaffStore) Remove(hotelID, staffID uint) error {
	res := ss.db.Where("hotel_id = ?", hotelID).Delete(&models.Staff{}, staffID)
	if res.Error != nil {
		return res.Error
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

// recordStepAdded flips the hotel flag and onboarding step flag that
// mirror a collection write. Runs inside the caller's transaction so the
// side effect can never drift from the write itself.
func recordStepAdded(tx *gorm.DB, hotelID uint, step, hotelFlag string) error {
	if err := tx.Model(&models.Hotel{}).Where("id = ?", hotelID).
		Update(hotelFlag, true).Error; err != nil {
		return err
	}

	var progress models.OnboardingProgress
	if err := tx.Where("hotel_id = ?", hotelID).First(&progress).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			// No progress record yet (hotel predates onboarding tracking);
			// nothing to flip.
			return nil
		}
		return err
	}
	progress.MarkStep(step)
	return tx.Save(&progress).Error
}
