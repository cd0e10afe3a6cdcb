package services

import (
	"errors"
	"fmt"
	"time"

	"tipdesk/models"
	"tipdesk/store"
)

// DefaultShifts is the fixed pair every hotel starts with.
func DefaultShifts() []models.Shift {
	return []models.Shift{
		{Name: "Morning", StartTime: "06:00", EndTime: "14:00", IsActive: true, Position: 0},
		{Name: "Evening", StartTime: "14:00", EndTime: "22:00", IsActive: true, Position: 1},
	}
}

// ShiftService validates and persists a hotel's shift schedule.
type ShiftService struct {
	Store *store.Store
}

func NewShiftService(s *store.Store) *ShiftService {
	return &ShiftService{Store: s}
}

func parseClock(value string) (time.Time, error) {
	return time.Parse("15:04", value)
}

// ValidateShiftTimes checks each shift for a positive duration and every
// pair for overlap, treating windows as half-open [start, end). The first
// violation in index order is returned; errors are not aggregated.
func ValidateShiftTimes(shifts []models.Shift) error {
	starts := make([]time.Time, len(shifts))
	ends := make([]time.Time, len(shifts))

	for i, shift := range shifts {
		start, err := parseClock(shift.StartTime)
		if err != nil {
			return fmt.Errorf("Invalid time format for shift %q", shift.Name)
		}
		end, err := parseClock(shift.EndTime)
		if err != nil {
			return fmt.Errorf("Invalid time format for shift %q", shift.Name)
		}
		if !start.Before(end) {
			return fmt.Errorf("Invalid time range for shift %q", shift.Name)
		}
		starts[i], ends[i] = start, end
	}

	for i := range shifts {
		for j := i + 1; j < len(shifts); j++ {
			if starts[i].Before(ends[j]) && starts[j].Before(ends[i]) {
				return fmt.Errorf("Shift %q overlaps with %q", shifts[i].Name, shifts[j].Name)
			}
		}
	}
	return nil
}

// Validate checks a whole configuration. Default configs always pass;
// custom configs need at least one fully specified shift and clean times.
func (ss *ShiftService) Validate(cfg *models.ShiftConfig) error {
	if cfg.Type != models.ShiftConfigCustom {
		return nil
	}
	if len(cfg.Shifts) == 0 {
		return errors.New("Please add at least one shift")
	}
	for _, shift := range cfg.Shifts {
		if shift.Name == "" || shift.StartTime == "" || shift.EndTime == "" {
			return errors.New("All shift details are required")
		}
	}
	return ValidateShiftTimes(cfg.Shifts)
}

// Load returns the hotel's shift configuration, falling back to the
// default pair when nothing was ever saved.
func (ss *ShiftService) Load(hotelID uint) (models.ShiftConfig, error) {
	cfg, err := ss.Store.Shifts.Get(hotelID)
	if err == nil {
		if cfg.Type == models.ShiftConfigDefault {
			// A default config always means exactly the fixed pair,
			// whatever happens to be stored next to it.
			cfg.Shifts = DefaultShifts()
		}
		return cfg, nil
	}
	if errors.Is(err, store.ErrNotFound) {
		return models.ShiftConfig{
			HotelID: hotelID,
			Type:    models.ShiftConfigDefault,
			Shifts:  DefaultShifts(),
		}, nil
	}
	return cfg, err
}

// Save validates and persists the configuration. Saving type=default
// discards any supplied shifts and stores the fixed pair.
func (ss *ShiftService) Save(hotelID uint, cfg *models.ShiftConfig) error {
	if cfg.Type == models.ShiftConfigDefault {
		cfg.Shifts = DefaultShifts()
	} else if err := ss.Validate(cfg); err != nil {
		return err
	}
	return ss.Store.Shifts.Save(hotelID, cfg)
}

// FindShift looks a shift up by name in a configuration.
func FindShift(cfg models.ShiftConfig, name string) (models.Shift, bool) {
	for _, shift := range cfg.Shifts {
		if shift.Name == name {
			return shift, true
		}
	}
	return models.Shift{}, false
}

// ShiftBounds merges a shift's wall-clock window onto the given day.
func ShiftBounds(shift models.Shift, day time.Time) (time.Time, time.Time, error) {
	start, err := parseClock(shift.StartTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}
	end, err := parseClock(shift.EndTime)
	if err != nil {
		return time.Time{}, time.Time{}, err
	}

	base := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	startAt := base.Add(time.Duration(start.Hour())*time.Hour + time.Duration(start.Minute())*time.Minute)
	endAt := base.Add(time.Duration(end.Hour())*time.Hour + time.Duration(end.Minute())*time.Minute)
	return startAt, endAt, nil
}
