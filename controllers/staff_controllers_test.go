package controllers

import (
	"net/http"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipdesk/models"
	"tipdesk/store"
)

func staffRouter(s *store.Store, hotelID uint) *gin.Engine {
	ctrl := NewStaffController(s)
	r := gin.New()
	g := r.Group("/", asHotel(hotelID))
	g.POST("/staff", ctrl.CreateStaff)
	g.GET("/staff", ctrl.GetAllStaff)
	g.PATCH("/staff/:staff_id", ctrl.UpdateStaff)
	g.DELETE("/staff/:staff_id", ctrl.DeleteStaff)
	return r
}

func TestCreateStaffAutoCodes(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := staffRouter(s, hotel.ID)

	for i, want := range []string{"001", "002", "003"} {
		w := doJSON(t, r, "POST", "/staff", gin.H{
			"name": "Worker", "role": models.RoleHousekeeper,
		})
		require.Equal(t, http.StatusCreated, w.Code, "request %d", i)

		members, err := s.Staff.GetAll(hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, want, members[len(members)-1].StaffCode)
	}
}

func TestCreateStaffPrefixedCodes(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := staffRouter(s, hotel.ID)

	for _, want := range []string{"STAFF-001", "STAFF-002"} {
		w := doJSON(t, r, "POST", "/staff", gin.H{
			"name": "Worker", "role": models.RoleValet,
			"code_type": "prefix", "prefix": "staff",
		})
		require.Equal(t, http.StatusCreated, w.Code)

		members, err := s.Staff.GetAll(hotel.ID)
		require.NoError(t, err)
		assert.Equal(t, want, members[len(members)-1].StaffCode)
	}

	// Prefixed and plain sequences are independent.
	w := doJSON(t, r, "POST", "/staff", gin.H{
		"name": "Worker", "role": models.RoleValet,
	})
	require.Equal(t, http.StatusCreated, w.Code)
	members, err := s.Staff.GetAll(hotel.ID)
	require.NoError(t, err)
	assert.Equal(t, "001", members[len(members)-1].StaffCode)
}

func TestCreateStaffManualCodeConflict(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := staffRouter(s, hotel.ID)

	w := doJSON(t, r, "POST", "/staff", gin.H{
		"name": "Ana", "role": models.RoleConcierge,
		"code_type": "manual", "code": "FRONT-7",
	})
	require.Equal(t, http.StatusCreated, w.Code)

	w = doJSON(t, r, "POST", "/staff", gin.H{
		"name": "Ben", "role": models.RoleConcierge,
		"code_type": "manual", "code": "FRONT-7",
	})
	assert.Equal(t, http.StatusConflict, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, `Staff ID "FRONT-7" is already in use`, resp.Message)
}

func TestCreateStaffRejectsUnknownRole(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := staffRouter(s, hotel.ID)

	w := doJSON(t, r, "POST", "/staff", gin.H{"name": "Ana", "role": "astronaut"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	resp := decodeResponse(t, w)
	assert.Equal(t, `Unknown staff role "astronaut"`, resp.Message)
}

func TestUpdateAndDeleteStaff(t *testing.T) {
	s := newTestStore(t)
	hotel := seedHotel(t, s)
	r := staffRouter(s, hotel.ID)

	member := models.Staff{HotelID: hotel.ID, StaffCode: "001", Name: "Ana", Role: models.RoleHousekeeper}
	require.NoError(t, s.Staff.Add(&member))

	w := doJSON(t, r, "PATCH", "/staff/1", gin.H{"name": "Ana Maria"})
	require.Equal(t, http.StatusOK, w.Code)
	updated, err := s.Staff.Get(hotel.ID, member.ID)
	require.NoError(t, err)
	assert.Equal(t, "Ana Maria", updated.Name)
	assert.Equal(t, "001", updated.StaffCode, "code is immutable through updates")

	w = doJSON(t, r, "PATCH", "/staff/999", gin.H{"name": "Nobody"})
	assert.Equal(t, http.StatusNotFound, w.Code)

	w = doJSON(t, r, "DELETE", "/staff/1", nil)
	require.Equal(t, http.StatusOK, w.Code)
	_, err = s.Staff.Get(hotel.ID, member.ID)
	assert.ErrorIs(t, err, store.ErrNotFound)

	w = doJSON(t, r, "DELETE", "/staff/1", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}
