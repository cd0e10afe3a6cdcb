package controllers

import (
	"encoding/json"
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"

	"tipdesk/models"
	"tipdesk/store"
)

func superAdminRouter(s *store.Store) *gin.Engine {
	ctrl := NewSuperAdminController(s)
	r := gin.New()
	g := r.Group("/superadmin")
	g.GET("/hotels", ctrl.ListHotels)
	g.GET("/stats", ctrl.GetPlatformStats)
	g.PATCH("/hotels/:hotel_id/status", ctrl.UpdateHotelStatus)
	g.POST("/hotels/:hotel_id/reset-password", ctrl.ResetHotelPassword)
	g.DELETE("/hotels/:hotel_id", ctrl.DeleteHotel)
	return r
}

func TestListHotelsWithCounts(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	member := models.Staff{HotelID: hotel.ID, StaffCode: "001", Name: "Ana", Role: models.RoleHousekeeper}
	require.NoError(t, s.Staff.Add(&member))
	room := models.Room{HotelID: hotel.ID, Number: "101", Floor: "1"}
	require.NoError(t, s.Rooms.Add(&room))
	tip := models.Tip{HotelID: hotel.ID, RoomID: room.ID, StaffID: member.ID,
		Amount: 25, Status: models.TipStatusSuccess}
	require.NoError(t, s.Tips.Add(&tip))

	r := superAdminRouter(s)
	w := doJSON(t, r, "GET", "/superadmin/hotels", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data []struct {
			HotelName  string  `json:"hotel_name"`
			TotalStaff int64   `json:"total_staff"`
			TotalRooms int64   `json:"total_rooms"`
			TotalTips  float64 `json:"total_tips"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.Len(t, resp.Data, 1)
	assert.Equal(t, int64(1), resp.Data[0].TotalStaff)
	assert.Equal(t, int64(1), resp.Data[0].TotalRooms)
	assert.Equal(t, 25.0, resp.Data[0].TotalTips)
}

func TestUpdateHotelStatus(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := superAdminRouter(s)

	w := doJSON(t, r, "PATCH", "/superadmin/hotels/1/status", gin.H{"status": models.HotelStatusSuspended})
	require.Equal(t, http.StatusOK, w.Code)
	reloaded, err := s.Hotels.Get(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, models.HotelStatusSuspended, reloaded.Status)

	w = doJSON(t, r, "PATCH", "/superadmin/hotels/1/status", gin.H{"status": "closed"})
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = doJSON(t, r, "PATCH", "/superadmin/hotels/999/status", gin.H{"status": models.HotelStatusActive})
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestResetHotelPassword(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	hashed, err := bcrypt.GenerateFromPassword([]byte("old-pass"), bcrypt.DefaultCost)
	require.NoError(t, err)
	user := models.User{Email: "admin@test.hotel", Password: string(hashed),
		Role: models.UserRoleAdmin, HotelID: &hotel.ID}
	require.NoError(t, s.Users.Add(&user))

	r := superAdminRouter(s)
	w := doJSON(t, r, "POST", "/superadmin/hotels/1/reset-password", nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Password string `json:"password"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp.Data.Password)

	updated, err := s.Users.Get(user.ID)
	require.NoError(t, err)
	assert.NoError(t, bcrypt.CompareHashAndPassword(
		[]byte(updated.Password), []byte(resp.Data.Password)))
	assert.Error(t, bcrypt.CompareHashAndPassword(
		[]byte(updated.Password), []byte("old-pass")))
}

func TestDeleteHotel(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := superAdminRouter(s)

	w := doJSON(t, r, "DELETE", "/superadmin/hotels/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err := s.Hotels.Get(hotel.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	w = doJSON(t, r, "DELETE", "/superadmin/hotels/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
