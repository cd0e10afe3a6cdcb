package services

import (
	"errors"
	"fmt"
	"time"

	"tipdesk/models"
	"tipdesk/store"
	"tipdesk/utils"
)

// ErrDuplicateAssignment is returned when an active assignment already
// covers the (staff, room, shift) triple.
var ErrDuplicateAssignment = errors.New("Staff member is already assigned to this room for this shift")

// Display statuses derived from the clock, never stored.
const (
	StatusUpcoming  = "Upcoming"
	StatusActive    = "Active"
	StatusCompleted = "Completed"
	StatusUnknown   = "Unknown"
)

// AssignmentService is the assignment engine: duplicate-rejecting create,
// merge updates, deletes and the derived per-room views.
type AssignmentService struct {
	Store  *store.Store
	Shifts *ShiftService
}

func NewAssignmentService(s *store.Store) *AssignmentService {
	return &AssignmentService{Store: s, Shifts: NewShiftService(s)}
}

// Create makes a new active assignment for today. The named shift's
// wall-clock bounds come from the hotel's active shift configuration;
// custom shift names resolve the same way the default pair does.
func (as *AssignmentService) Create(hotelID, staffID, roomID uint, shiftName string) (models.Assignment, error) {
	exists, err := as.Store.Assignments.ActiveExists(hotelID, staffID, roomID, shiftName)
	if err != nil {
		return models.Assignment{}, err
	}
	if exists {
		return models.Assignment{}, ErrDuplicateAssignment
	}

	cfg, err := as.Shifts.Load(hotelID)
	if err != nil {
		return models.Assignment{}, err
	}
	shift, ok := FindShift(cfg, shiftName)
	if !ok {
		return models.Assignment{}, fmt.Errorf("Unknown shift %q", shiftName)
	}

	startAt, endAt, err := ShiftBounds(shift, time.Now())
	if err != nil {
		return models.Assignment{}, fmt.Errorf("Invalid time range for shift %q", shiftName)
	}

	assignment := models.Assignment{
		HotelID:   hotelID,
		StaffID:   staffID,
		RoomID:    roomID,
		Shift:     shiftName,
		Status:    models.AssignmentActive,
		StartTime: startAt,
		EndTime:   endAt,
	}
	if err := as.Store.Assignments.Add(&assignment); err != nil {
		return models.Assignment{}, err
	}
	return assignment, nil
}

// Update merges fields onto an existing assignment. No duplicate check
// is re-applied here; edits follow the original engine's contract.
func (as *AssignmentService) Update(hotelID, assignmentID uint, fields map[string]interface{}) (models.Assignment, error) {
	if err := as.Store.Assignments.Update(hotelID, assignmentID, fields); err != nil {
		return models.Assignment{}, err
	}
	return as.Store.Assignments.Get(hotelID, assignmentID)
}

func (as *AssignmentService) Delete(hotelID, assignmentID uint) error {
	return as.Store.Assignments.Remove(hotelID, assignmentID)
}

func (as *AssignmentService) ForRoom(hotelID, roomID uint) ([]models.Assignment, error) {
	return as.Store.Assignments.ForRoom(hotelID, roomID)
}

func (as *AssignmentService) CurrentForRoom(hotelID, roomID uint, now time.Time) (models.Assignment, error) {
	return as.Store.Assignments.CurrentForRoom(hotelID, roomID, now)
}

// DisplayStatus classifies an assignment against the clock. Unknown when
// either bound is missing.
func DisplayStatus(a models.Assignment, now time.Time) string {
	if a.StartTime.IsZero() || a.EndTime.IsZero() {
		return StatusUnknown
	}
	if now.Before(a.StartTime) {
		return StatusUpcoming
	}
	if now.After(a.EndTime) {
		return StatusCompleted
	}
	return StatusActive
}

// BulkOutcome is the per-room result of a bulk assign.
type BulkOutcome struct {
	RoomID  uint   `json:"room_id"`
	StaffID uint   `json:"staff_id"`
	Success bool   `json:"success"`
	Message string `json:"message"`
}

// BulkAssign creates one assignment per (staff, room) pair. Each pair
// succeeds or fails on its own; a duplicate on one pair never aborts the
// remaining pairs.
func (as *AssignmentService) BulkAssign(hotelID uint, staffIDs, roomIDs []uint, shiftName string) []BulkOutcome {
	outcomes := make([]BulkOutcome, 0, len(staffIDs)*len(roomIDs))
	for _, staffID := range staffIDs {
		for _, roomID := range roomIDs {
			outcome := BulkOutcome{RoomID: roomID, StaffID: staffID}
			if _, err := as.Create(hotelID, staffID, roomID, shiftName); err != nil {
				outcome.Message = err.Error()
				utils.ErrorLogger.Printf("Assignment failed for staff %d room %d: %v", staffID, roomID, err)
			} else {
				outcome.Success = true
				outcome.Message = "Staff assigned successfully"
			}
			outcomes = append(outcomes, outcome)
		}
	}
	return outcomes
}
