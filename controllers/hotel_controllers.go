package controllers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
	"tipdesk/utils"
)

type HotelController struct {
	Store      *store.Store
	Onboarding *services.OnboardingService
}

func NewHotelController(s *store.Store, onboarding *services.OnboardingService) *HotelController {
	return &HotelController{Store: s, Onboarding: onboarding}
}

func (hc *HotelController) GetHotel(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	hotel, err := hc.Store.Hotels.Get(hotelID)
	if err != nil {
		utils.RespondError(c, http.StatusNotFound, "Hotel not found")
		return
	}
	utils.RespondJSON(c, http.StatusOK, "Hotel retrieved", hotel)
}

type updateHotelInput struct {
	HotelName *string `json:"hotel_name"`
	Email     *string `json:"email"`
	Phone     *string `json:"phone"`
	Address   *string `json:"address"`
	City      *string `json:"city"`
	State     *string `json:"state"`
	ZipCode   *string `json:"zip_code"`
}

func (hc *HotelController) UpdateHotel(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input updateHotelInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid hotel data: "+err.Error())
		return
	}

	fields := map[string]interface{}{}
	if input.HotelName != nil {
		fields["hotel_name"] = *input.HotelName
	}
	if input.Email != nil {
		fields["email"] = *input.Email
	}
	if input.Phone != nil {
		fields["phone"] = *input.Phone
	}
	if input.Address != nil {
		fields["address"] = *input.Address
	}
	if input.City != nil {
		fields["city"] = *input.City
	}
	if input.State != nil {
		fields["state"] = *input.State
	}
	if input.ZipCode != nil {
		fields["zip_code"] = *input.ZipCode
	}
	if len(fields) == 0 {
		utils.RespondError(c, http.StatusBadRequest, "No fields to update")
		return
	}

	if err := hc.Store.Hotels.Update(hotelID, fields); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to update hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update hotel")
		return
	}

	hotel, _ := hc.Store.Hotels.Get(hotelID)
	utils.RespondJSON(c, http.StatusOK, "Hotel updated", hotel)
}

type bankDetailsInput struct {
	BankName      string `json:"bank_name" binding:"required"`
	AccountHolder string `json:"account_holder" binding:"required"`
	AccountNumber string `json:"account_number" binding:"required"`
	RoutingNumber string `json:"routing_number" binding:"required"`
}

// AddBankDetails stores the payout account and marks the bank onboarding
// step as completed.
func (hc *HotelController) AddBankDetails(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var input bankDetailsInput
	if err := c.ShouldBindJSON(&input); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "All bank details are required")
		return
	}

	fields := map[string]interface{}{
		"bank_name":      input.BankName,
		"account_holder": input.AccountHolder,
		"account_number": input.AccountNumber,
		"routing_number": input.RoutingNumber,
	}
	if err := hc.Store.Hotels.Update(hotelID, fields); err != nil {
		if err == store.ErrNotFound {
			utils.RespondError(c, http.StatusNotFound, "Hotel not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to save bank details for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to save bank details")
		return
	}

	progress, err := hc.Onboarding.Advance(hotelID, models.StepBank)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to advance onboarding for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update onboarding")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Bank details saved", gin.H{
		"onboarding": progress,
	})
}
