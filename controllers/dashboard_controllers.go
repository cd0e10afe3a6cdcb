package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/gorilla/websocket"

	"tipdesk/events"
	"tipdesk/middlewares"
	"tipdesk/models"
	"tipdesk/store"
	"tipdesk/utils"
)

type DashboardController struct {
	Store *store.Store
}

func NewDashboardController(s *store.Store) *DashboardController {
	return &DashboardController{Store: s}
}

// GetStats returns the admin dashboard headline numbers.
func (dc *DashboardController) GetStats(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	var totalRooms, totalStaff, activeAssignments, tipCount int64
	db := dc.Store.DB
	db.Model(&models.Room{}).Where("hotel_id = ?", hotelID).Count(&totalRooms)
	db.Model(&models.Staff{}).Where("hotel_id = ?", hotelID).Count(&totalStaff)

	now := time.Now()
	db.Model(&models.Assignment{}).
		Where("hotel_id = ? AND status = ? AND start_time <= ? AND end_time >= ?",
			hotelID, models.AssignmentActive, now, now).
		Count(&activeAssignments)

	db.Model(&models.Tip{}).
		Where("hotel_id = ? AND status = ?", hotelID, models.TipStatusSuccess).
		Count(&tipCount)
	tipTotal, err := dc.Store.Tips.SumAmount(hotelID)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to sum tips for hotel %d: %v", hotelID, err)
		utils.RespondError(c, http.StatusInternalServerError, "Failed to retrieve dashboard stats")
		return
	}

	startOfDay := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	var tipsToday float64
	db.Model(&models.Tip{}).
		Where("hotel_id = ? AND status = ? AND created_at >= ?", hotelID, models.TipStatusSuccess, startOfDay).
		Select("COALESCE(SUM(amount), 0)").Scan(&tipsToday)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats retrieved", gin.H{
		"total_rooms":        totalRooms,
		"total_staff":        totalStaff,
		"active_assignments": activeAssignments,
		"tip_count":          tipCount,
		"tip_total":          tipTotal,
		"tips_today":         tipsToday,
	})
}

var dashboardUpgrader = websocket.Upgrader{
	ReadBufferSize:  1024,
	WriteBufferSize: 1024,
	// Auth happens in the middleware before the upgrade.
	CheckOrigin: func(r *http.Request) bool { return true },
}

// Socket upgrades the connection and subscribes the dashboard to its
// hotel's live events.
func (dc *DashboardController) Socket(c *gin.Context) {
	hotelID := middlewares.HotelID(c)

	conn, err := dashboardUpgrader.Upgrade(c.Writer, c.Request, nil)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to upgrade dashboard socket: %v", err)
		return
	}
	events.RegisterClient(conn, hotelID)

	go func() {
		defer events.UnregisterClient(conn)
		for {
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()
}
