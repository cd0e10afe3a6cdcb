package controllers

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"

	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/services"
	"tipdesk/store"
	"tipdesk/utils"
)

type OnboardingController struct {
	Store      *store.Store
	Onboarding *services.OnboardingService
}

func NewOnboardingController(s *store.Store, onboarding *services.OnboardingService) *OnboardingController {
	return &OnboardingController{Store: s, Onboarding: onboarding}
}

func (oc *OnboardingController) GetProgress(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	progress, err := oc.Store.Onboarding.Get(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to load onboarding for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve onboarding progress")
		return
	}

	next, err := oc.Onboarding.NextStep(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to resolve next step for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve onboarding progress")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Onboarding progress retrieved", gin.H{
		"progress":  progress,
		"next_step": next,
	})
}

// AdvanceStep marks the step in the path parameter complete and moves
// the hotel forward. Completed hotels are terminal.
func (oc *OnboardingController) AdvanceStep(c *gin.Context) {
	hotelID := middlewares.HotelID(c)
	step := c.Param("step")

	if !models.ValidOnboardingStep(step) {
		utils.RespondError(c, http.StatusBadRequest, fmt.Sprintf("Unknown onboarding step %q", step))
		return
	}

	progress, err := oc.Onboarding.Advance(hotelID, step)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to advance onboarding for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to update onboarding")
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Onboarding step completed", progress)
}

// CompleteOnboarding finishes setup: every step flag is set, the record
// moves to the terminal completed state and the hotel is activated.
func (oc *OnboardingController) CompleteOnboarding(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	progress, err := oc.Onboarding.Complete(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to complete onboarding for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to complete onboarding")
		return
	}

	// A hotel that finished setup is live.
	if err := oc.Store.Hotels.Update(hotelID, map[string]interface{}{"status": models.HotelStatusActive}); err != nil {
		utils.ErrorLogger.Printf("Failed to activate hotel %d: %v", hotelID, err)
	}

	utils.RespondJSON(c, http.StatusOK, "Onboarding completed", progress)
}
