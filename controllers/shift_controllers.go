package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/utils"
)

type ShiftController struct {
	Shifts *services.ShiftService
}

func NewShiftController(shifts *services.ShiftService) *ShiftController {
	return &ShiftController{Shifts: shifts}
}

// GetShiftConfig returns the hotel's configuration. Hotels that never
// saved one get the default Morning/Evening pair.
func (sc *ShiftController) GetShiftConfig(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	cfg, err := sc.Shifts.Load(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to load shift config for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve shift configuration")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Shift configuration retrieved", cfg)
}

// SaveShiftConfig validates and replaces the hotel's configuration.
// Validation failures surface verbatim so the console can show them.
func (sc *ShiftController) SaveShiftConfig(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var cfg models.ShiftConfig
	if err := c.ShouldBindJSON(&cfg); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid shift configuration: "+err.Error())
		return
	}

	if err := sc.Shifts.Save(hotelID, &cfg); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	saved, err := sc.Shifts.Load(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to reload shift config for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve shift configuration")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Shift configuration saved", saved)
}
