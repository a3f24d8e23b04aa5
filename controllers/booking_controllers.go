package controllers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/models"
	"github.com/mahesadev/billiard-hall-app/services"
	"github.com/mahesadev/billiard-hall-app/utils"
)

type BookingController struct {
	DB      *gorm.DB
	Service *services.BookingService
}

func NewBookingController(db *gorm.DB) *BookingController {
	return &BookingController{
		DB:      db,
		Service: services.NewBookingService(db),
	}
}

// bookingView overrides the price fields with display strings; the raw
// numbers stay in the persisted record only.
type bookingView struct {
	models.Booking
	HourlyRate string `json:"hourly_rate"`
	TotalPrice string `json:"total_price"`
}

func newBookingView(b *models.Booking) bookingView {
	return bookingView{
		Booking:    *b,
		HourlyRate: utils.FormatRupiah(b.HourlyRate),
		TotalPrice: utils.FormatRupiah(b.TotalPrice),
	}
}

// respondBookingError maps the service error taxonomy onto HTTP statuses.
// Overlap conflicts get a 409 with the conflicting bookings attached; an
// unavailable table keeps the original API's 400.
func respondBookingError(c *gin.Context, err error) {
	var validationErr *services.ValidationError
	var notFoundErr *services.NotFoundError
	var conflictErr *services.ConflictError

	switch {
	case errors.As(err, &validationErr):
		utils.RespondError(c, http.StatusBadRequest, validationErr.Message)
	case errors.As(err, &notFoundErr):
		utils.RespondError(c, http.StatusNotFound, notFoundErr.Message)
	case errors.As(err, &conflictErr):
		if len(conflictErr.Conflicts) > 0 {
			c.JSON(http.StatusConflict, gin.H{
				"error":               conflictErr.Message,
				"conflictingBookings": conflictErr.Conflicts,
			})
			return
		}
		utils.RespondError(c, http.StatusBadRequest, conflictErr.Message)
	default:
		utils.RespondInternalError(c, err)
	}
}

// GetAllBookings -> list bookings, newest first.
func (bc *BookingController) GetAllBookings(c *gin.Context) {
	var bookings []models.Booking
	if err := bc.DB.Order("created_at DESC").Find(&bookings).Error; err != nil {
		utils.RespondInternalError(c, err)
		return
	}
	utils.RespondJSON(c, http.StatusOK, "List of bookings", bookings)
}

// CreateBooking -> reserve a table for a time window.
func (bc *BookingController) CreateBooking(c *gin.Context) {
	var req struct {
		CustomerName  string  `json:"customer_name"`
		TableID       uint    `json:"tableId"`
		StartTime     string  `json:"startTime"`
		DurationHours float64 `json:"durationHours"`
		Notes         string  `json:"notes"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Service.CreateBooking(services.CreateBookingInput{
		CustomerName:  req.CustomerName,
		TableID:       req.TableID,
		StartTime:     req.StartTime,
		DurationHours: req.DurationHours,
		Notes:         req.Notes,
	})
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusCreated, "Booking created successfully", newBookingView(booking))
}

// ExtendBooking -> add hours to an existing booking.
func (bc *BookingController) ExtendBooking(c *gin.Context) {
	var req struct {
		BookingID       uint    `json:"bookingId"`
		AdditionalHours float64 `json:"additionalHours"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Service.ExtendBooking(req.BookingID, req.AdditionalHours)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking extended successfully", newBookingView(booking))
}

// UpdateBookingStatus -> move a booking through its state machine.
func (bc *BookingController) UpdateBookingStatus(c *gin.Context) {
	var req struct {
		BookingID uint                 `json:"bookingId"`
		Status    models.BookingStatus `json:"status"`
	}

	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondError(c, http.StatusBadRequest, err.Error())
		return
	}

	booking, err := bc.Service.UpdateBookingStatus(req.BookingID, req.Status)
	if err != nil {
		respondBookingError(c, err)
		return
	}

	utils.RespondJSON(c, http.StatusOK, "Booking status updated", newBookingView(booking))
}
