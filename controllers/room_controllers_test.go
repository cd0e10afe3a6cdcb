package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
)

func roomRouter(s *store.Store, hotelID uint) *gin.Engine {
	shifts := services.NewShiftService(s)
	ctrl := NewRoomController(s, shifts, "https://tips.example.com")
	r := gin.New()
	g := r.Group("/", asHotel(hotelID))
	g.POST("/rooms", ctrl.CreateRoom)
	g.POST("/rooms/setup", ctrl.SetupRooms)
	g.GET("/rooms/:room_id/qr", ctrl.DownloadRoomQR)
	return r
}

func TestCreateRoomAutoNumbersPerFloor(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := roomRouter(s, hotel.ID)

	for _, want := range []string{"301", "302"} {
		w := doJSON(t, r, "POST", "/rooms", gin.H{"floor": "3"})
		require.Equal(t, http.StatusCreated, w.Code)

		rooms, err := s.Rooms.GetAll(hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, want, rooms[len(rooms)-1].Number)
	}

	// A different floor starts its own sequence.
	w := doJSON(t, r, "POST", "/rooms", gin.H{"floor": "5"})
	require.Equal(t, http.StatusCreated, w.Code)
	rooms, err := s.Rooms.GetAll(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "501", rooms[len(rooms)-1].Number)

	// An explicit number is taken verbatim.
	w = doJSON(t, r, "POST", "/rooms", gin.H{"floor": "7", "number": "PH-1"})
	require.Equal(t, http.StatusCreated, w.Code)
	rooms, err = s.Rooms.GetAll(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "PH-1", rooms[len(rooms)-1].Number)
}

func TestSetupRoomsBatch(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := roomRouter(s, hotel.ID)

	w := doJSON(t, r, "POST", "/rooms/setup", gin.H{
		"rooms": []gin.H{
			{"floor": "1"},
			{"floor": "1"},
			{"floor": "2", "type": models.RoomTypeSuite},
			{"number": "X"}, // missing floor fails alone
		},
		"shift_config": gin.H{
			"type": models.ShiftConfigCustom,
			"shifts": []gin.H{
				{"name": "Day", "start_time": "08:00", "end_time": "20:00"},
			},
		},
	})
	require.Equal(t, http.StatusCreated, w.Code)

	rooms, err := s.Rooms.GetAll(hotel.ID)
	require.NoError(t, err)
	require.Len(t, rooms, 3)
	assert.Equal(t, "101", rooms[0].Number)
	assert.Equal(t, "102", rooms[1].Number)
	assert.Equal(t, "201", rooms[2].Number)
	assert.Equal(t, models.RoomTypeSuite, rooms[2].Type)

	cfg, err := s.Shifts.Get(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.ShiftConfigCustom, cfg.Type)
	require.Len(t, cfg.Shifts, 1)
	assert.Equal(t, "Day", cfg.Shifts[0].Name)

	reloaded, err := s.Hotels.Get(hotel.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.RoomsAdded)
}

func TestSetupRoomsRejectsBadShiftConfig(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := roomRouter(s, hotel.ID)

	w := doJSON(t, r, "POST", "/rooms/setup", gin.H{
		"rooms": []gin.H{{"floor": "1"}},
		"shift_config": gin.H{
			"type": models.ShiftConfigCustom,
			"shifts": []gin.H{
				{"name": "Bad", "start_time": "20:00", "end_time": "08:00"},
			},
		},
	})
	require.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, `Invalid time range for shift "Bad"`, resp.Message)

	// Nothing was created when the config is rejected up front.
	rooms, err := s.Rooms.GetAll(hotel.ID)
	require.NoError(t, err)
	assert.Empty(t, rooms)
}

func TestDownloadRoomQR(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := roomRouter(s, hotel.ID)

	room := models.Room{HotelID: hotel.ID, Number: "101", Floor: "1"}
	require.NoError(t, s.Rooms.Add(&room))

	w := doJSON(t, r, "GET", "/rooms/1/qr", nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Equal(t, "image/png", w.Header().Get("Content-Type"))
	assert.Contains(t, w.Header().Get("Content-Disposition"), "room-101-qr.png")
	assert.True(t, len(w.Body.Bytes()) > 0)

	reloaded, err := s.Rooms.Get(hotel.ID, room.ID)
	require.NoError(t, err)
	assert.True(t, reloaded.QRGenerated)
	assert.NotNil(t, reloaded.QRGeneratedAt)

	w = doJSON(t, r, "GET", "/rooms/999/qr", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
