package middlewares

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"tipdesk/services"
	"tipdesk/store"
	"tipdesk/utils"
)

// OnboardingStepGate blocks re-entry into a setup step the hotel already
// finished: the client is redirected to the dashboard instead. The step
// comes from the :step route parameter.
func OnboardingStepGate(s *store.Store) gin.HandlerFunc {
	onboarding := services.NewOnboardingService(s)
	return func(c *gin.Context) {
		step := c.Param("step")
		done, err := onboarding.IsStepComplete(HotelID(c), step)
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err.Error())
			c.Abort()
			return
		}
		if done {
			c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
			c.Abort()
			return
		}
		c.Next()
	}
}

// RequireOnboardingComplete gates the main console: hotels that have not
// finished setup are sent to their next open step.
func RequireOnboardingComplete(s *store.Store) gin.HandlerFunc {
	onboarding := services.NewOnboardingService(s)
	return func(c *gin.Context) {
		next, err := onboarding.NextStep(HotelID(c))
		if err != nil {
			utils.RespondError(c, http.StatusInternalServerError, err.Error())
			c.Abort()
			return
		}
		if next != "" {
			c.Redirect(http.StatusTemporaryRedirect, "/onboarding/"+next)
			c.Abort()
			return
		}
		c.Next()
	}
}
