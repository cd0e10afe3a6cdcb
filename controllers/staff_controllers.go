package controllers

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"

	"tipdesk/events"
	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/store"
	"tipdesk/utils"
)

type StaffController struct {
	Store *store.Store
}

func NewStaffController(s *store.Store) *StaffController {
	return &StaffController{Store: s}
}

type createStaffInput struct {
	Name  string `json:"name" binding:"required"`
	Role  string `json:"role" binding:"required"`
	Email string `json:"email"`
	Phone string `json:"phone"`
	Image string `json:"image"`

	// auto        -> next sequential number: 001, 002, ...
	// prefix      -> PREFIX-001, PREFIX-002, ... for the given prefix
	// manual      -> the caller supplies the code verbatim
	CodeType string `json:"code_type"`
	Prefix   string `json:"prefix"`
	Code     string `json:"code"`
}

// nextStaffCode computes the next free sequential code for the hotel.
// With an empty prefix codes look like "001"; with prefix "STAFF" they
// look like "STAFF-001". Codes that do not match the scheme are skipped.
func (sc *StaffController) nextStaffCode(hotelID uint, prefix string) (string, error) {
	members, err := sc.Store.Staff.GetAll(hotelID)
	if err != nil {
		return "", err
	}

	max := 0
	for _, m := range members {
		code := m.StaffCode
		if prefix != "" {
			rest, ok := strings.CutPrefix(code, prefix+"-")
			if !ok {
				continue
			}
			code = rest
		} else if strings.Contains(code, "-") {
			continue
		}
		n, err := strconv.Atoi(code)
		if err != nil {
			continue
		}
		if n > max {
			max = n
		}
	}

	if prefix != "" {
		return fmt.Sprintf("%s-%03d", prefix, max+1), nil
	}
	return fmt.Sprintf("%03d", max+1), nil
}

func (sc *StaffController) CreateStaff(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input createStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid staff data: "+err.Error())
		return
	}
	if !models.ValidStaffRole(input.Role) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown staff role %q", input.Role))
		return
	}

	var code string
	var err error
	switch input.CodeType {
	case "", "auto":
		code, err = sc.nextStaffCode(hotelID, "")
	case "prefix":
		prefix := strings.ToUpper(strings.TrimSpace(input.Prefix))
		if prefix == "" {
			utils.RespondError(c, http.StatusBadRequest, "A prefix is required for prefixed staff IDs")
			return
		}
		code, err = sc.nextStaffCode(hotelID, prefix)
	case "manual":
		code = strings.TrimSpace(input.Code)
		if code == "" {
			utils.RespondError(c, http.StatusBadRequest, "A staff ID is required")
			return
		}
	default:
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown staff ID type %q", input.CodeType))
		return
	}
	if err != nil {
		utils.ErrorLogger.Printf("Failed to generate staff code for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	member := models.Staff{
		HotelID:   hotelID,
		StaffCode: code,
		Name:      input.Name,
		Role:      input.Role,
		Email:     input.Email,
		Phone:     input.Phone,
		Image:     input.Image,
	}
	if err := sc.Store.Staff.Add(&member); err != nil {
		if err == store.ErrDuplicateStaffCode {
			utils.RespondError(c, http.StatusConflict, fmt.Sprintf("Staff ID %q is already in use", code))
			return
		}
		utils.ErrorLogger.Printf("Failed to create staff member: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create staff member")
		return
	}

	events.BroadcastMessage(hotelID, events.Message{Event: events.EventStaffCreate, Data: member})
	utils.RespondJSON(c, http.StatusCreated, "Staff member created", member)
}

func (sc *StaffController) GetAllStaff(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	members, err := sc.Store.Staff.GetAll(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list staff for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve staff")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff retrieved", members)
}

func (sc *StaffController) GetStaffByID(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	staffID, err := parseIDParam(c, "staff_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	member, err := sc.Store.Staff.Get(hotelID, staffID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Staff member not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Staff member retrieved", member)
}

type updateStaffInput struct {
	Name  *string `json:"name"`
	Role  *string `json:"role"`
	Email *string `json:"email"`
	Phone *string `json:"phone"`
	Image *string `json:"image"`
}

func (sc *StaffController) UpdateStaff(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	staffID, err := parseIDParam(c, "staff_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	var input updateStaffInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid staff data: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if input.Name != nil {
		fields["name"] = *input.Name
	}
	if input.Role != nil {
		if !models.ValidStaffRole(*input.Role) {
			utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown staff role %q", *input.Role))
			return
		}
		fields["role"] = *input.Role
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Image != nil {
		fields["image"] = *input.Image
	}
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := sc.Store.Staff.Update(hotelID, staffID, fields); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to update staff %d: %v", staffID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update staff member")
		return
	}

	member, _ := sc.Store.Staff.Get(hotelID, staffID)
	events.BroadcastMessage(hotelID, events.Message{Event: events.EventStaffUpdate, Data: member})
	utils.RespondJSON(c, http.StatusOK, "Staff member updated", member)
}

func (sc *StaffController) DeleteStaff(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	staffID, err := parseIDParam(c, "staff_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	if err := sc.Store.Staff.Remove(hotelID, staffID); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Staff member not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to delete staff %d: %v", staffID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete staff member")
		return
	}

	events.BroadcastMessage(hotelID, events.Message{Event: events.EventStaffDelete, Data: gin.H{"id": staffID}})
	utils.RespondJSON(c, http.StatusOK, "Staff member deleted", nil)
}

func parseIDParam(c *gin.Context, name string) (uint, error) {
	id, err := strconv.ParseUint(c.Param(name), 10, 32)
	return uint(id), err
}
