package controllers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/models"
	"github.com/mahesadev/billiard-hall-app/utils"
)

type AdminController struct {
	DB *gorm.DB
}

func NewAdminController(db *gorm.DB) *AdminController {
	return &AdminController{DB: db}
}

// GetDashboardStats -> table occupancy counts, active bookings and
// today's revenue for the admin dashboard.
func (ac *AdminController) GetDashboardStats(c *gin.Context) {
	role, _ := c.Get("role")
	if role != "admin" {
		utils.RespondError(c, http.StatusForbidden, errNoPermission.Error())
		return
	}

	var availableCount, occupiedCount, activeBookings int64
	ac.DB.Model(&models.BilliardTable{}).Where("status = ?", models.TableAvailable).Count(&availableCount)
	ac.DB.Model(&models.BilliardTable{}).Where("status = ?", models.TableOccupied).Count(&occupiedCount)
	ac.DB.Model(&models.Booking{}).
		Where("status IN ?", []models.BookingStatus{models.BookingReserved, models.BookingInProgress}).
		Count(&activeBookings)

	var todayRevenue float64
	startOfDay := time.Now().Truncate(24 * time.Hour)
	ac.DB.Model(&models.Booking{}).
		Where("created_at >= ? AND status <> ?", startOfDay, models.BookingCancelled).
		Select("COALESCE(SUM(total_price), 0)").
		Scan(&todayRevenue)

	utils.RespondJSON(c, http.StatusOK, "Dashboard stats", gin.H{
		"tables": gin.H{
			"available": availableCount,
			"occupied":  occupiedCount,
			"total":     availableCount + occupiedCount,
		},
		"active_bookings": activeBookings,
		"today_revenue":   utils.FormatRupiah(todayRevenue),
	})
}
