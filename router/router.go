package router

import (
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"tipdesk/config"
	"tipdesk/controllers"
	"tipdesk/middlewares"
	"tipdesk/services"
	"tipdesk/store"
)

// SetupRouter wires every route group: the public tip flow, the admin
// console behind auth, the onboarding walk and the platform surface.
func SetupRouter(db *gorm.DB, cfg *config.Config) *gin.Engine {
	if cfg.App.IsProduction() {
		gin.SetMode(gin.ReleaseMode)
	}

	s := store.New(db)
	shifts := services.NewShiftService(s)
	onboarding := services.NewOnboardingService(s)
	assignments := services.NewAssignmentService(s)
	stripe := services.GetStripeService(cfg.Stripe)
	jwtTTL := time.Duration(cfg.JWT.TTLHours) * time.Hour

	userCtrl := controllers.NewUserController(s, jwtTTL)
	hotelCtrl := controllers.NewHotelController(s, onboarding)
	staffCtrl := controllers.NewStaffController(s)
	roomCtrl := controllers.NewRoomController(s, shifts, cfg.App.BaseURL)
	shiftCtrl := controllers.NewShiftController(shifts)
	assignmentCtrl := controllers.NewAssignmentController(s, assignments)
	onboardingCtrl := controllers.NewOnboardingController(s, onboarding)
	tipCtrl := controllers.NewTipController(s, stripe)
	superAdminCtrl := controllers.NewSuperAdminController(s)
	dashboardCtrl := controllers.NewDashboardController(s)

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middlewares.LoggerMiddleware())
	r.Use(middlewares.CORSMiddleware())
	r.Use(middlewares.SecurityHeaders())
	r.Use(middlewares.NewRateLimiter(100, 60).RateLimit())

	// Public surface. Registration and login sit behind the strict
	// limiter to slow down credential stuffing.
	auth := r.Group("/auth")
	auth.Use(middlewares.NewStrictRateLimiter())
	{
		auth.POST("/register", userCtrl.Register)
		auth.POST("/login", userCtrl.Login)
	}

	// The guest tip flow reached from a room's QR code.
	tip := r.Group("/tip")
	{
		tip.GET("/:room_id", tipCtrl.GetTipPage)
		tip.POST("/:room_id", tipCtrl.CreateTip)
	}
	r.POST("/webhooks/stripe", tipCtrl.StripeWebhook)

	// Everything below needs a valid token.
	authed := r.Group("/", middlewares.AuthMiddleware())
	{
		authed.POST("/auth/logout", userCtrl.Logout)
		authed.GET("/profile", userCtrl.GetProfile)
		authed.GET("/ws", dashboardCtrl.Socket)
	}

	// Onboarding walk. Finished steps redirect back to the dashboard.
	ob := authed.Group("/onboarding", middlewares.HotelAdminOnly())
	{
		ob.GET("", onboardingCtrl.GetProgress)
		ob.POST("/complete", onboardingCtrl.CompleteOnboarding)

		step := ob.Group("/:step", middlewares.OnboardingStepGate(s))
		{
			step.POST("", onboardingCtrl.AdvanceStep)
		}
	}

	// Hotel admin console. Gated until onboarding is complete.
	admin := authed.Group("/admin", middlewares.HotelAdminOnly())
	{
		// Setup endpoints stay reachable during onboarding.
		admin.POST("/bank-details", hotelCtrl.AddBankDetails)
		admin.POST("/rooms/setup", roomCtrl.SetupRooms)
		admin.POST("/staff", staffCtrl.CreateStaff)
		admin.GET("/rooms/:room_id/qr", roomCtrl.DownloadRoomQR)

		console := admin.Group("", middlewares.RequireOnboardingComplete(s))
		{
			console.GET("/dashboard", dashboardCtrl.GetStats)

			console.GET("/hotel", hotelCtrl.GetHotel)
			console.PATCH("/hotel", hotelCtrl.UpdateHotel)

			console.GET("/staff", staffCtrl.GetAllStaff)
			console.GET("/staff/:staff_id", staffCtrl.GetStaffByID)
			console.PATCH("/staff/:staff_id", staffCtrl.UpdateStaff)
			console.DELETE("/staff/:staff_id", staffCtrl.DeleteStaff)
			console.GET("/staff/:staff_id/tips", tipCtrl.GetStaffTipStats)

			console.GET("/rooms", roomCtrl.GetAllRooms)
			console.POST("/rooms", roomCtrl.CreateRoom)
			console.GET("/rooms/:room_id", roomCtrl.GetRoomByID)
			console.PATCH("/rooms/:room_id", roomCtrl.UpdateRoom)
			console.DELETE("/rooms/:room_id", roomCtrl.DeleteRoom)
			console.GET("/rooms/:room_id/assignments", assignmentCtrl.GetAssignmentsForRoom)
			console.GET("/rooms/:room_id/assignments/current", assignmentCtrl.GetCurrentAssignmentForRoom)

			console.GET("/shifts", shiftCtrl.GetShiftConfig)
			console.PUT("/shifts", shiftCtrl.SaveShiftConfig)

			console.GET("/assignments", assignmentCtrl.GetAllAssignments)
			console.POST("/assignments", assignmentCtrl.CreateAssignment)
			console.POST("/assignments/bulk", assignmentCtrl.BulkAssign)
			console.PATCH("/assignments/:assignment_id", assignmentCtrl.UpdateAssignment)
			console.DELETE("/assignments/:assignment_id", assignmentCtrl.DeleteAssignment)

			console.GET("/tips", tipCtrl.GetTips)
		}
	}

	// Platform operator surface.
	super := authed.Group("/superadmin", middlewares.SuperAdminOnly())
	{
		super.GET("/hotels", superAdminCtrl.ListHotels)
		super.GET("/hotels/:hotel_id", superAdminCtrl.GetHotel)
		super.PATCH("/hotels/:hotel_id/status", superAdminCtrl.UpdateHotelStatus)
		super.POST("/hotels/:hotel_id/reset-password", superAdminCtrl.ResetHotelPassword)
		super.DELETE("/hotels/:hotel_id", superAdminCtrl.DeleteHotel)
		super.GET("/stats", superAdminCtrl.GetPlatformStats)
	}

	return r
}
