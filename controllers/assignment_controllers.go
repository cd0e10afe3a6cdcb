package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"tipdesk/events"
	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
	"tipdesk/utils"
)

type AssignmentController struct {
	Store       *store.Store
	Assignments *services.AssignmentService
}

func NewAssignmentController(s *store.Store, assignments *services.AssignmentService) *AssignmentController {
	return &AssignmentController{Store: s, Assignments: assignments}
}

// assignmentView decorates the stored row with the status the console
// shows: Upcoming, Active or Completed relative to now.
type assignmentView struct {
	models.Assignment
	DisplayStatus string `json:"display_status"`
}

func viewOf(a models.Assignment, now time.Time) assignmentView {
	return assignmentView{Assignment: a, DisplayStatus: services.DisplayStatus(a, now)}
}

type createAssignmentInput struct {
	StaffID uint   `json:"staff_id" binding:"required"`
	RoomID  uint   `json:"room_id" binding:"required"`
	Shift   string `json:"shift" binding:"required"`
}

func (ac *AssignmentController) CreateAssignment(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input createAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
		return
	}

	assignment, err := ac.Assignments.Create(hotelID, input.StaffID, input.RoomID, input.Shift)
	if err != nil {
		if err == services.ErrDuplicateAssignment {
			utils.RespondError(c, http.StatusConflict, err.Error())
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	events.BroadcastAssignment(events.EventAssignmentCreate, assignment)
	utils.RespondJSON(c, http.StatusCreated, "Staff assigned successfully", viewOf(assignment, time.Now()))
}

type bulkAssignInput struct {
	StaffIDs []uint `json:"staff_ids" binding:"required"`
	RoomIDs  []uint `json:"room_ids" binding:"required"`
	Shift    string `json:"shift" binding:"required"`
}

// BulkAssign assigns every staff/room pair independently and reports
// one outcome per pair.
func (ac *AssignmentController) BulkAssign(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input bulkAssignInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
		return
	}
	if len(input.StaffIDs) == 0 || len(input.RoomIDs) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Select at least one staff member and one room")
		return
	}

	outcomes := ac.Assignments.BulkAssign(hotelID, input.StaffIDs, input.RoomIDs, input.Shift)

	succeeded := 0
	for _, o := range outcomes {
		if o.Success {
			succeeded++
		}
	}
	utils.RespondJSON(c, http.StatusOK, "Bulk assignment processed", gin.H{
		"succeeded": succeeded,
		"failed":    len(outcomes) - succeeded,
		"results":   outcomes,
	})
}

func (ac *AssignmentController) GetAllAssignments(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	assignments, err := ac.Store.Assignments.GetAll(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list assignments for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve assignments")
		return
	}

	now := time.Now()
	views := make([]assignmentView, 0, len(assignments))
	for _, a := range assignments {
		views = append(views, viewOf(a, now))
	}
	utils.RespondJSON(c, http.StatusOK, "Assignments retrieved", views)
}

func (ac *AssignmentController) GetAssignmentsForRoom(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	assignments, err := ac.Assignments.ForRoom(hotelID, roomID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list assignments for room %d: %v", roomID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve assignments")
		return
	}

	now := time.Now()
	views := make([]assignmentView, 0, len(assignments))
	for _, a := range assignments {
		views = append(views, viewOf(a, now))
	}
	utils.RespondJSON(c, http.StatusOK, "Assignments retrieved", views)
}

// GetCurrentAssignmentForRoom answers "who is on duty for this room
// right now". Outside every shift window it is a 404.
func (ac *AssignmentController) GetCurrentAssignmentForRoom(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	assignment, err := ac.Assignments.CurrentForRoom(hotelID, roomID, time.Now())
	if err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "No staff is currently assigned to this room")
			return
		}
		utils.ErrorLogger.Printf("Failed to resolve current assignment for room %d: %v", roomID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve assignment")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Assignment retrieved", viewOf(assignment, time.Now()))
}

type updateAssignmentInput struct {
	StaffID *uint   `json:"staff_id"`
	RoomID  *uint   `json:"room_id"`
	Shift   *string `json:"shift"`
	Status  *string `json:"status"`
}

func (ac *AssignmentController) UpdateAssignment(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	assignmentID, err := parseIDParam(c, "assignment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	var input updateAssignmentInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid assignment data: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if input.StaffID != nil {
		fields["staff_id"] = *input.StaffID
	}
	if input.RoomID != nil {
		fields["room_id"] = *input.RoomID
	}
	if input.Shift != nil {
		fields["shift"] = *input.Shift
	}
	if input.Status != nil {
		if *input.Status != models.AssignmentActive && *input.Status != models.AssignmentCompleted {
			utils.RespondError(c, http.StatusBadRequest, "Unknown assignment status")
			return
		}
		fields["status"] = *input.Status
	}
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	assignment, err := ac.Assignments.Update(hotelID, assignmentID, fields)
	if err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	events.BroadcastAssignment(events.EventAssignmentUpdate, assignment)
	utils.RespondJSON(c, http.StatusOK, "Assignment updated", viewOf(assignment, time.Now()))
}

func (ac *AssignmentController) DeleteAssignment(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	assignmentID, err := parseIDParam(c, "assignment_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid assignment ID")
		return
	}

	if err := ac.Assignments.Delete(hotelID, assignmentID); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Assignment not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to delete assignment %d: %v", assignmentID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete assignment")
		return
	}

	events.BroadcastMessage(hotelID, events.Message{Event: events.EventAssignmentDelete, Data: gin.H{"id": assignmentID}})
	utils.RespondJSON(c, http.StatusOK, "Assignment deleted", nil)
}
