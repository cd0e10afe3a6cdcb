package controllers

import (
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/gin-gonic/gin"

	"tipdesk/events"
	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
	"tipdesk/utils"
)

type RoomController struct {
	Store   *store.Store
	Shifts  *services.ShiftService
	BaseURL string
	QRSize  int
}

func NewRoomController(s *store.Store, shifts *services.ShiftService, baseURL string) *RoomController {
	return &RoomController{
		Store:   s,
		Shifts:  shifts,
		BaseURL: baseURL,
		QRSize:  512,
	}
}

type createRoomInput struct {
	Number string `json:"number"`
	Floor  string `json:"floor" binding:"required"`
	Type   string `json:"type"`
}

// nextRoomNumber builds floor-sequential numbers: floor 3 with two
// existing rooms yields "303".
func (rc *RoomController) nextRoomNumber(hotelID uint, floor string) (string, error) {
	count, err := rc.Store.Rooms.CountOnFloor(hotelID, floor)
	if err != nil {
		return "", err
	}
	return fmt.Sprintf("%s%02d", floor, count+1), nil
}

func (rc *RoomController) buildRoom(hotelID uint, input createRoomInput) (models.Room, error) {
	number := strings.TrimSpace(input.Number)
	if number == "" {
		var err error
		number, err = rc.nextRoomNumber(hotelID, input.Floor)
		if err != nil {
			return models.Room{}, err
		}
	}
	roomType := input.Type
	if roomType == "" {
		roomType = models.RoomTypeStandard
	}
	return models.Room{
		HotelID: hotelID,
		Number:  number,
		Floor:   input.Floor,
		Type:    roomType,
	}, nil
}

func (rc *RoomController) CreateRoom(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input createRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room data: "+err.Error())
		return
	}

	room, err := rc.buildRoom(hotelID, input)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to number room for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}
	if err := rc.Store.Rooms.Add(&room); err != nil {
		utils.ErrorLogger.Printf("Failed to create room: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to create room")
		return
	}

	events.BroadcastRoom(events.EventRoomCreate, room)
	utils.RespondJSON(c, http.StatusCreated, "Room created", room)
}

type setupRoomsInput struct {
	Rooms       []createRoomInput   `json:"rooms" binding:"required"`
	ShiftConfig *models.ShiftConfig `json:"shift_config"`
}

type roomOutcome struct {
	Number  string `json:"number"`
	Success bool   `json:"success"`
	Message string `json:"message"`
	RoomID  uint   `json:"room_id,omitempty"`
}

// SetupRooms is the onboarding batch: create the initial room list,
// save the shift configuration and advance the rooms step. Each room
// succeeds or fails on its own.
func (rc *RoomController) SetupRooms(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input setupRoomsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room setup data: "+err.Error())
		return
	}
	if len(input.Rooms) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "Please add at least one room")
		return
	}

	if input.ShiftConfig != nil {
		if err := rc.Shifts.Save(hotelID, input.ShiftConfig); err != nil {
			utils.RespondError(c, http.StatusBadRequest, err.Error())
			return
		}
	}

	outcomes := make([]roomOutcome, 0, len(input.Rooms))
	created := 0
	for _, in := range input.Rooms {
		if strings.TrimSpace(in.Floor) == "" {
			outcomes = append(outcomes, roomOutcome{Number: in.Number, Success: false, Message: "Floor is required"})
			continue
		}
		room, err := rc.buildRoom(hotelID, in)
		if err == nil {
			err = rc.Store.Rooms.Add(&room)
		}
		if err != nil {
			utils.ErrorLogger.Printf("Failed to create room %q: %v", in.Number, err)
			outcomes = append(outcomes, roomOutcome{Number: in.Number, Success: false, Message: "Failed to create room"})
			continue
		}
		created++
		outcomes = append(outcomes, roomOutcome{Number: room.Number, Success: true, Message: "Room created", RoomID: room.ID})
	}

	if created == 0 {
		utils.RespondJSON(c, http.StatusOK, "No rooms were created", gin.H{"results": outcomes})
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Rooms set up", gin.H{"results": outcomes})
}

func (rc *RoomController) GetAllRooms(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	rooms, err := rc.Store.Rooms.GetAll(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list rooms for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve rooms")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Rooms retrieved", rooms)
}

func (rc *RoomController) GetRoomByID(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := rc.Store.Rooms.Get(hotelID, roomID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Room not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Room retrieved", room)
}

type updateRoomInput struct {
	Number *string `json:"number"`
	Floor  *string `json:"floor"`
	Type   *string `json:"type"`
}

func (rc *RoomController) UpdateRoom(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var input updateRoomInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room data: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if input.Number != nil {
		fields["number"] = *input.Number
	}
	if input.Floor != nil {
		fields["floor"] = *input.Floor
	}
	if input.Type != nil {
		fields["type"] = *input.Type
	}
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := rc.Store.Rooms.Update(hotelID, roomID, fields); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to update room %d: %v", roomID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update room")
		return
	}

	room, _ := rc.Store.Rooms.Get(hotelID, roomID)
	events.BroadcastRoom(events.EventRoomUpdate, room)
	utils.RespondJSON(c, http.StatusOK, "Room updated", room)
}

func (rc *RoomController) DeleteRoom(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	if err := rc.Store.Rooms.Remove(hotelID, roomID); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Room not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to delete room %d: %v", roomID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete room")
		return
	}

	events.BroadcastMessage(hotelID, events.Message{Event: events.EventRoomDelete, Data: gin.H{"id": roomID}})
	utils.RespondJSON(c, http.StatusOK, "Room deleted", nil)
}

// DownloadRoomQR streams the room's tip QR code as a PNG attachment and
// marks the room as having its code generated.
func (rc *RoomController) DownloadRoomQR(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	room, err := rc.Store.Rooms.Get(hotelID, roomID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Room not found")
		return
	}

	png, err := services.GenerateRoomQR(rc.BaseURL, room.ID, rc.QRSize)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to generate QR for room %d: %v", room.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to generate QR code")
		return
	}

	now := time.Now()
	if err := rc.Store.Rooms.Update(hotelID, room.ID, map[string]interface{}{
		"qr_generated":    true,
		"qr_generated_at": &now,
	}); err != nil {
		utils.ErrorLogger.Printf("Failed to flag QR for room %d: %v", room.ID, err)
	}

	filename := fmt.Sprintf("room-%s-qr.png", room.Number)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	c.Data(http.StatusOK, "image/png", png)
}
