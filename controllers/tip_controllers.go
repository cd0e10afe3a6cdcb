package controllers

import (
	"encoding/json"
	"io"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"tipdesk/events"
	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
	"tipdesk/utils"
)

type TipController struct {
	Store  *store.Store
	Stripe *services.StripeService
}

func NewTipController(s *store.Store, stripe *services.StripeService) *TipController {
	return &TipController{Store: s, Stripe: stripe}
}

// GetTipPage serves the public QR landing data for one room: hotel name,
// room info and the staff currently on duty there. No auth; guests hit
// this straight from the code on the door.
func (tc *TipController) GetTipPage(c *gin.Context) {
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var room models.Room
	if err := tc.Store.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Room not found")
		return
	}

	hotel, err := tc.Store.Hotels.Get(room.HotelID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	if hotel.Status == models.HotelStatusSuspended || hotel.Status == models.HotelStatusDeactivated {
		utils.RespondError(c, http.StatusForbidden, "This hotel is not accepting tips right now")
		return
	}

	assignments, err := tc.Store.Assignments.ActiveForRoom(room.HotelID, room.ID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list staff for tip page, room %d: %v", room.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to load tip page")
		return
	}

	now := time.Now()
	staff := make([]models.Staff, 0, len(assignments))
	seen := map[uint]bool{}
	for _, a := range assignments {
		if services.DisplayStatus(a, now) != services.StatusActive {
			continue
		}
		if seen[a.StaffID] {
			continue
		}
		seen[a.StaffID] = true
		staff = append(staff, a.Staff)
	}

	utils.RespondJSON(c, http.StatusOK, "Tip page retrieved", gin.H{
		"hotel_name":      hotel.HotelName,
		"room":            room,
		"staff":           staff,
		"publishable_key": tc.Stripe.PublishableKey(),
	})
}

type createTipInput struct {
	StaffID  uint    `json:"staff_id" binding:"required"`
	Amount   float64 `json:"amount" binding:"required"`
	Rating   string  `json:"rating"`
	Feedback string  `json:"feedback"`
}

// CreateTip records a pending tip and opens a payment intent for it.
// The guest's client confirms the intent; the webhook settles the tip.
func (tc *TipController) CreateTip(c *gin.Context) {
	roomID, err := parseIDParam(c, "room_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid room ID")
		return
	}

	var input createTipInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid tip data: "+err.Error())
		return
	}
	if input.Amount <= 0 {
		utils.RespondError(c, http.StatusBadRequest, "Tip amount must be greater than zero")
		return
	}

	var room models.Room
	if err := tc.Store.DB.First(&room, roomID).Error; err != nil {
		utils.RespondError(c, http.StatusNotFound, "Room not found")
		return
	}
	if _, err := tc.Store.Staff.Get(room.HotelID, input.StaffID); err != nil {
		utils.RespondError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	if err := tc.Stripe.ValidateConfig(); err != nil {
		utils.ErrorLogger.Printf("Payment processor misconfigured: %v", err)
		utils.RespondError(c, http.StatusServiceUnavailable, "Payments are not available right now")
		return
	}

	tip := models.Tip{
		HotelID:     room.HotelID,
		RoomID:      room.ID,
		StaffID:     input.StaffID,
		Amount:      input.Amount,
		Rating:      input.Rating,
		Feedback:    input.Feedback,
		Status:      models.TipStatusPending,
		ReferenceID: "TIP-" + uuid.NewString(),
	}

	intent, err := tc.Stripe.CreateTipIntent(tip)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to create payment intent: %v", err)
		utils.RespondError(c, http.StatusBadGateway, "Failed to start payment")
		return
	}
	tip.PaymentIntentID = intent.ID

	if err := tc.Store.Tips.Add(&tip); err != nil {
		utils.ErrorLogger.Printf("Failed to store tip: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to record tip")
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Tip created", gin.H{
		"tip":             tip,
		"client_secret":   intent.ClientSecret,
		"publishable_key": tc.Stripe.PublishableKey(),
	})
}

// webhookEvent is the slice of a Stripe event the webhook needs.
type webhookEvent struct {
	Type string `json:"type"`
	Data struct {
		Object struct {
			ID       string `json:"id"`
			Status   string `json:"status"`
			Metadata struct {
				ReferenceID string `json:"reference_id"`
			} `json:"metadata"`
		} `json:"object"`
	} `json:"data"`
}

// StripeWebhook settles tips on payment_intent events. The signature is
// verified before anything is trusted.
func (tc *TipController) StripeWebhook(c *gin.Context) {
	payload, err := io.ReadAll(c.Request.Body)
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Failed to read webhook payload")
		return
	}
	if !tc.Stripe.VerifyWebhookSignature(payload, c.GetHeader("Stripe-Signature")) {
		utils.RespondError(c, http.StatusUnauthorized, "Invalid webhook signature")
		return
	}

	var event webhookEvent
	if err := json.Unmarshal(payload, &event); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid webhook payload")
		return
	}

	switch event.Type {
	case "payment_intent.succeeded", "payment_intent.payment_failed", "payment_intent.canceled":
	default:
		// Not a payment intent event we act on.
		utils.RespondJSON(c, http.StatusOK, "Event ignored", nil)
		return
	}

	tip, err := tc.Store.Tips.ByReference(event.Data.Object.Metadata.ReferenceID)
	if err != nil {
		utils.ErrorLogger.Printf("Webhook for unknown tip reference %q", event.Data.Object.Metadata.ReferenceID)
		utils.RespondError(c, http.StatusNotFound, "Tip not found")
		return
	}

	status := services.MapIntentStatus(event.Data.Object.Status)
	if event.Type == "payment_intent.payment_failed" {
		status = models.TipStatusFailed
	}

	fields := map[string]interface{}{"status": status}
	if status == models.TipStatusSuccess {
		now := time.Now()
		fields["payment_time"] = &now
	}
	if err := tc.Store.Tips.Update(tip.ID, fields); err != nil {
		utils.ErrorLogger.Printf("Failed to settle tip %d: %v", tip.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update tip")
		return
	}

	if status == models.TipStatusSuccess {
		tip.Status = status
		events.BroadcastTipReceived(tip)
		utils.InfoLogger.Printf("Tip %s settled for hotel %d", tip.ReferenceID, tip.HotelID)
	}

	utils.RespondJSON(c, http.StatusOK, "Webhook processed", nil)
}

// GetTips lists a hotel's tips, optionally bounded by from/to query
// dates (YYYY-MM-DD).
func (tc *TipController) GetTips(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	fromStr := c.Query("from")
	toStr := c.Query("to")
	if fromStr == "" && toStr == "" {
		tips, err := tc.Store.Tips.GetAll(hotelID)
		if err != nil {
			utils.ErrorLogger.Printf("Failed to list tips for hotel %d: %v", hotelID, err)
			utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve tips")
			return
		}
		utils.RespondJSON(c, http.StatusOK, "Tips retrieved", tips)
		return
	}

	from := time.Time{}
	to := time.Now()
	var err error
	if fromStr != "" {
		from, err = time.Parse("2006-01-02", fromStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid from date, expected YYYY-MM-DD")
			return
		}
	}
	if toStr != "" {
		to, err = time.Parse("2006-01-02", toStr)
		if err != nil {
			utils.RespondError(c, http.StatusBadRequest, "Invalid to date, expected YYYY-MM-DD")
			return
		}
		to = to.AddDate(0, 0, 1) // inclusive end date
	}

	tips, err := tc.Store.Tips.Between(hotelID, from, to)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list tips for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve tips")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Tips retrieved", tips)
}

// GetStaffTipStats aggregates one staff member's settled tips.
func (tc *TipController) GetStaffTipStats(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	staffID, err := parseIDParam(c, "staff_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid staff ID")
		return
	}

	if _, err := tc.Store.Staff.Get(hotelID, staffID); err != nil {
		utils.RespondError(c, http.StatusNotFound, "Staff member not found")
		return
	}

	tips, err := tc.Store.Tips.ForStaff(hotelID, staffID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to load tips for staff %d: %v", staffID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve tip stats")
		return
	}

	var total float64
	count := 0
	for _, t := range tips {
		if t.Status != models.TipStatusSuccess {
			continue
		}
		total += t.Amount
		count++
	}
	average := 0.0
	if count > 0 {
		average = total / float64(count)
	}

	utils.RespondJSON(c, http.StatusOK, "Tip stats retrieved", gin.H{
		"staff_id": staffID,
		"total":    total,
		"count":    count,
		"average":  average,
	})
}
