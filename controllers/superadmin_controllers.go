package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"tipdesk/models"
	"tipdesk/store"
	"tipdesk/utils"
)

// SuperAdminController is the platform operator surface: every hotel,
// cross-hotel stats, status changes and password resets.
type SuperAdminController struct {
	Store *store.Store
}

func NewSuperAdminController(s *store.Store) *SuperAdminController {
	return &SuperAdminController{Store: s}
}

type hotelOverview struct {
	models.Hotel
	TotalStaff int64   `json:"total_staff"`
	TotalRooms int64   `json:"total_rooms"`
	TotalTips  float64 `json:"total_tips"`
}

func (sac *SuperAdminController) ListHotels(c *gin.Context) {
	hotels, err := sac.Store.Hotels.GetAll()
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list hotels: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve hotels")
		return
	}

	overviews := make([]hotelOverview, 0, len(hotels))
	for _, h := range hotels {
		o := hotelOverview{Hotel: h}
		o.TotalStaff, _ = sac.Store.Staff.Count(h.ID)
		sac.Store.DB.Model(&models.Room{}).Where("hotel_id = ?", h.ID).Count(&o.TotalRooms)
		o.TotalTips, _ = sac.Store.Tips.SumAmount(h.ID)
		overviews = append(overviews, o)
	}

	utils.RespondJSON(c, http.StatusOK, "Hotels retrieved", overviews)
}

func (sac *SuperAdminController) GetHotel(c *gin.Context) {
	hotelID, err := parseIDParam(c, "hotel_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	hotel, err := sac.Store.Hotels.Get(hotelID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Hotel retrieved", hotel)
}

// GetPlatformStats aggregates across every hotel.
func (sac *SuperAdminController) GetPlatformStats(c *gin.Context) {
	var totalHotels, activeHotels, totalStaff, totalRooms, totalTips int64
	var tipVolume float64

	db := sac.Store.DB
	db.Model(&models.Hotel{}).Count(&totalHotels)
	db.Model(&models.Hotel{}).Where("status = ?", models.HotelStatusActive).Count(&activeHotels)
	db.Model(&models.Staff{}).Count(&totalStaff)
	db.Model(&models.Room{}).Count(&totalRooms)
	db.Model(&models.Tip{}).Where("status = ?", models.TipStatusSuccess).Count(&totalTips)
	db.Model(&models.Tip{}).Where("status = ?", models.TipStatusSuccess).
		Select("COALESCE(SUM(amount), 0)").Scan(&tipVolume)

	utils.RespondJSON(c, http.StatusOK, "Platform stats retrieved", gin.H{
		"total_hotels":  totalHotels,
		"active_hotels": activeHotels,
		"total_staff":   totalStaff,
		"total_rooms":   totalRooms,
		"total_tips":    totalTips,
		"tip_volume":    tipVolume,
	})
}

type updateStatusInput struct {
	Status string `json:"status" binding:"required"`
}

func (sac *SuperAdminController) UpdateHotelStatus(c *gin.Context) {
	hotelID, err := parseIDParam(c, "hotel_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	var input updateStatusInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "A status is required")
		return
	}
	if !models.ValidHotelStatus(input.Status) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown hotel status %q", input.Status))
		return
	}

	if err := sac.Store.Hotels.Update(hotelID, map[string]interface{}{"status": input.Status}); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to change status for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update hotel status")
		return
	}

	utils.InfoLogger.Printf("Hotel %d status changed to %s", hotelID, input.Status)
	hotel, _ := sac.Store.Hotels.Get(hotelID)
	utils.RespondJSON(c, http.StatusOK, "Hotel status updated", hotel)
}

// ResetHotelPassword issues a fresh random password for a hotel's admin
// and returns it once in the response.
func (sac *SuperAdminController) ResetHotelPassword(c *gin.Context) {
	hotelID, err := parseIDParam(c, "hotel_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	user, err := sac.Store.Users.ByHotel(hotelID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Hotel admin not found")
		return
	}

	password := strings.ReplaceAll(uuid.NewString(), "-", "")[:16]
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to hash password: %v", err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}
	if err := sac.Store.Users.UpdatePassword(user.ID, string(hashed)); err != nil {
		utils.ErrorLogger.Printf("Failed to reset password for user %d: %v", user.ID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to reset password")
		return
	}

	utils.InfoLogger.Printf("Password reset for hotel %d admin", hotelID)
	utils.RespondJSON(c, http.StatusOK, "Password reset", gin.H{
		"email":    user.Email,
		"password": password,
	})
}

// DeleteHotel removes a hotel and everything that hangs off it.
func (sac *SuperAdminController) DeleteHotel(c *gin.Context) {
	hotelID, err := parseIDParam(c, "hotel_id")
	if err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel ID")
		return
	}

	if err := sac.Store.Hotels.Remove(hotelID); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to delete hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to delete hotel")
		return
	}

	utils.InfoLogger.Printf("Hotel %d deleted", hotelID)
	utils.RespondJSON(c, http.StatusOK, "Hotel deleted", nil)
}
