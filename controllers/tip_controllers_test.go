package controllers

import (
	"bytes"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tipdesk/config"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
)

const testWebhookSecret = "whsec_ctrl_test"

func tipRouter(t *testing.T, s *store.Store) *gin.Engine {
	t.Helper()
	stripe := services.GetStripeService(config.StripeConfig{
		SecretKey:      "sk_test",
		PublishableKey: "pk_test",
		WebhookSecret:  testWebhookSecret,
	})

	ctrl := NewTipController(s, stripe)
	r := gin.New()
	r.GET("/tip/:room_id", ctrl.GetTipPage)
	r.POST("/webhooks/stripe", ctrl.StripeWebhook)
	g := r.Group("/admin", asHotel(1))
	g.GET("/tips", ctrl.GetTips)
	g.GET("/staff/:staff_id/tips", ctrl.GetStaffTipStats)
	return r
}

func seedTipFixtures(t *testing.T, s *store.Store) (models.Hotel, models.Staff, models.Room) {
	t.Helper()
	hotel := seedHotel(t, s)
	member := models.Staff{HotelID: hotel.ID, StaffCode: "001", Name: "Ana", Role: models.RoleHousekeeper}
	require.NoError(t, s.Staff.Add(&member))
	room := models.Room{HotelID: hotel.ID, Number: "101", Floor: "1"}
	require.NoError(t, s.Rooms.Add(&room))
	return hotel, member, room
}

func TestGetTipPage(t *testing.T) {
	s := newTestStore(t)
	hotel, member, room := seedTipFixtures(t, s)
	r := tipRouter(t, s)

	// Staff on an all-day shift shows up on the page.
	cfg := models.ShiftConfig{
		Type:   models.ShiftConfigCustom,
		Shifts: []models.Shift{{Name: "All Day", StartTime: "00:00", EndTime: "23:59"}},
	}
	svc := services.NewAssignmentService(s)
	require.NoError(t, svc.Shifts.Save(hotel.ID, &cfg))
	_, err := svc.Create(hotel.ID, member.ID, room.ID, "All Day")
	require.NoError(t, err)

	w := doJSON(t, r, "GET", fmt.Sprintf("/tip/%d", room.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			HotelName string         `json:"hotel_name"`
			Staff     []models.Staff `json:"staff"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, hotel.HotelName, resp.Data.HotelName)
	require.Len(t, resp.Data.Staff, 1)
	assert.Equal(t, member.Name, resp.Data.Staff[0].Name)

	w = doJSON(t, r, "GET", "/tip/999", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestGetTipPageSuspendedHotel(t *testing.T) {
	s := newTestStore(t)
	hotel, _, room := seedTipFixtures(t, s)
	r := tipRouter(t, s)

	require.NoError(t, s.Hotels.Update(hotel.ID, map[string]interface{}{
		"status": models.HotelStatusSuspended,
	}))

	w := doJSON(t, r, "GET", fmt.Sprintf("/tip/%d", room.ID), nil)
	assert.Equal(t, http.StatusForbidden, w.Code)
}

func signTestPayload(timestamp string, payload []byte) string {
	mac := hmac.New(sha256.New, []byte(testWebhookSecret))
	mac.Write([]byte(timestamp))
	mac.Write([]byte("."))
	mac.Write(payload)
	return fmt.Sprintf("t=%s,v1=%s", timestamp, hex.EncodeToString(mac.Sum(nil)))
}

func TestStripeWebhookSettlesTip(t *testing.T) {
	s := newTestStore(t)
	hotel, member, room := seedTipFixtures(t, s)
	r := tipRouter(t, s)

	tip := models.Tip{
		HotelID: hotel.ID, RoomID: room.ID, StaffID: member.ID,
		Amount: 20, Status: models.TipStatusPending,
		ReferenceID: "TIP-hook", PaymentIntentID: "pi_hook",
	}
	require.NoError(t, s.Tips.Add(&tip))

	payload := []byte(`{
		"type": "payment_intent.succeeded",
		"data": {"object": {"id": "pi_hook", "status": "succeeded",
			"metadata": {"reference_id": "TIP-hook"}}}
	}`)

	req := httptest.NewRequest("POST", "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", signTestPayload("1712345678", payload))
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	require.Equal(t, http.StatusOK, w.Code)

	settled, err := s.Tips.ByReference("TIP-hook")
	require.NoError(t, err)
	assert.Equal(t, models.TipStatusSuccess, settled.Status)
	assert.NotNil(t, settled.PaymentTime)
}

func TestStripeWebhookRejectsBadSignature(t *testing.T) {
	s := newTestStore(t)
	seedTipFixtures(t, s)
	r := tipRouter(t, s)

	payload := []byte(`{"type":"payment_intent.succeeded"}`)
	req := httptest.NewRequest("POST", "/webhooks/stripe", bytes.NewReader(payload))
	req.Header.Set("Stripe-Signature", "t=1,v1=deadbeef")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	assert.Equal(t, http.StatusUnauthorized, w.Code)
}

func TestStaffTipStats(t *testing.T) {
	s := newTestStore(t)
	hotel, member, room := seedTipFixtures(t, s)
	r := tipRouter(t, s)
	require.Equal(t, uint(1), hotel.ID, "stats route is scoped to hotel 1")

	for _, tip := range []models.Tip{
		{HotelID: hotel.ID, RoomID: room.ID, StaffID: member.ID, Amount: 10, Status: models.TipStatusSuccess},
		{HotelID: hotel.ID, RoomID: room.ID, StaffID: member.ID, Amount: 20, Status: models.TipStatusSuccess},
		{HotelID: hotel.ID, RoomID: room.ID, StaffID: member.ID, Amount: 99, Status: models.TipStatusPending},
	} {
		tip := tip
		require.NoError(t, s.Tips.Add(&tip))
	}

	w := doJSON(t, r, "GET", fmt.Sprintf("/admin/staff/%d/tips", member.ID), nil)
	require.Equal(t, http.StatusOK, w.Code)

	var resp struct {
		Data struct {
			Total   float64 `json:"total"`
			Count   int     `json:"count"`
			Average float64 `json:"average"`
		} `json:"data"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 30.0, resp.Data.Total)
	assert.Equal(t, 2, resp.Data.Count)
	assert.Equal(t, 15.0, resp.Data.Average)
}
