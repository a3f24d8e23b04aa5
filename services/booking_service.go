package services

import (
	"errors"
	"fmt"
	"time"

	"gorm.io/gorm"

	"github.com/mahesadev/billiard-hall-app/models"
	"github.com/mahesadev/billiard-hall-app/utils"
)

// BookingService owns the booking lifecycle: availability and overlap
// checks, price calculation, persistence, and the paired table status
// update.
type BookingService struct {
	DB    *gorm.DB
	locks tableLockRegistry
}

func NewBookingService(db *gorm.DB) *BookingService {
	return &BookingService{DB: db}
}

type CreateBookingInput struct {
	CustomerName  string
	TableID       uint
	StartTime     string
	DurationHours float64
	Notes         string
}

// activeStatuses are the booking states that keep a table claimed.
var activeStatuses = []models.BookingStatus{
	models.BookingReserved,
	models.BookingInProgress,
}

// FindConflicts returns every active booking on the table whose half-open
// interval [start, end) intersects the proposed one. Touching intervals
// (existing end == proposed start) do not conflict.
func (s *BookingService) FindConflicts(tableID uint, start, end time.Time) ([]models.Booking, error) {
	var bookings []models.Booking
	err := s.DB.
		Where("table_id = ? AND status IN ? AND start_time < ? AND end_time > ?",
			tableID, activeStatuses, end, start).
		Order("start_time").
		Find(&bookings).Error
	return bookings, err
}

// CreateBooking validates the request, checks table availability and
// schedule overlap, snapshots the table's hourly rate and writes the
// Reserved booking together with the Occupied table status in one
// transaction. A per-table lock spans the whole check-then-write
// sequence so two concurrent requests cannot both pass the overlap
// check.
func (s *BookingService) CreateBooking(in CreateBookingInput) (*models.Booking, error) {
	if in.CustomerName == "" || in.TableID == 0 || in.StartTime == "" || in.DurationHours == 0 {
		return nil, &ValidationError{
			Message: "Missing required fields: customer_name, tableId, startTime, durationHours",
		}
	}

	unlock := s.locks.acquire(in.TableID)
	defer unlock()

	var table models.BilliardTable
	if err := s.DB.First(&table, in.TableID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Table not found"}
		}
		return nil, err
	}

	if table.Status != models.TableAvailable {
		return nil, &ConflictError{Message: "Table is not available for booking"}
	}

	start, err := time.Parse(time.RFC3339, in.StartTime)
	if err != nil {
		return nil, &ValidationError{Message: "Invalid start time format"}
	}
	end := start.Add(HoursToDuration(in.DurationHours))

	conflicting, err := s.FindConflicts(in.TableID, start, end)
	if err != nil {
		return nil, err
	}
	if len(conflicting) > 0 {
		return nil, &ConflictError{
			Message:   "Table already booked for the selected time period",
			Conflicts: toBookingConflicts(conflicting),
		}
	}

	booking := models.Booking{
		TableID:       table.ID,
		CustomerName:  in.CustomerName,
		StartTime:     start,
		EndTime:       end,
		DurationHours: in.DurationHours,
		HourlyRate:    table.HourlyRate,
		TotalPrice:    ComputePrice(table.HourlyRate, in.DurationHours),
		Status:        models.BookingReserved,
		Notes:         in.Notes,
	}

	err = s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(&booking).Error; err != nil {
			return err
		}
		return tx.Model(&table).Updates(map[string]interface{}{
			"status":     models.TableOccupied,
			"start_time": start,
			"end_time":   end,
		}).Error
	})
	if err != nil {
		return nil, err
	}

	table.Status = models.TableOccupied
	table.StartTime = &start
	table.EndTime = &end
	booking.Table = table

	utils.InfoLogger.Printf("Booking %d created for table %d (%s, %.2fh)",
		booking.ID, table.ID, booking.CustomerName, booking.DurationHours)
	return &booking, nil
}

// ExtendBooking pushes the end time out by additionalHours and adds the
// matching charge at the booking's snapshotted hourly rate. Other
// bookings on the table are not re-checked, so an extension can run into
// a later reservation; see TestExtendBookingIgnoresLaterBooking.
func (s *BookingService) ExtendBooking(bookingID uint, additionalHours float64) (*models.Booking, error) {
	if bookingID == 0 || additionalHours == 0 {
		return nil, &ValidationError{
			Message: "Missing required fields: bookingId, additionalHours",
		}
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Booking not found"}
		}
		return nil, err
	}

	booking.EndTime = booking.EndTime.Add(HoursToDuration(additionalHours))
	booking.DurationHours += additionalHours
	booking.TotalPrice += ComputePrice(booking.HourlyRate, additionalHours)

	if err := s.DB.Save(&booking).Error; err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Booking %d extended by %.2fh (new end %s)",
		booking.ID, additionalHours, booking.EndTime.Format(time.RFC3339))
	return &booking, nil
}

// UpdateBookingStatus moves a booking through its state machine and
// releases the table when the booking leaves the active set.
func (s *BookingService) UpdateBookingStatus(bookingID uint, next models.BookingStatus) (*models.Booking, error) {
	if bookingID == 0 || next == "" {
		return nil, &ValidationError{Message: "Missing required fields: bookingId, status"}
	}
	if !next.IsValid() {
		return nil, &ValidationError{Message: fmt.Sprintf("Unknown booking status: %s", next)}
	}

	var booking models.Booking
	if err := s.DB.First(&booking, bookingID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, &NotFoundError{Message: "Booking not found"}
		}
		return nil, err
	}

	if !booking.Status.CanTransitionTo(next) {
		return nil, &ConflictError{
			Message: fmt.Sprintf("Cannot change booking status from %s to %s", booking.Status, next),
		}
	}

	wasActive := booking.Status.IsActive()
	booking.Status = next

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Save(&booking).Error; err != nil {
			return err
		}
		if wasActive && !next.IsActive() {
			return tx.Model(&models.BilliardTable{}).
				Where("id = ?", booking.TableID).
				Updates(map[string]interface{}{
					"status":     models.TableAvailable,
					"start_time": nil,
					"end_time":   nil,
				}).Error
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	utils.InfoLogger.Printf("Booking %d status changed to %s", booking.ID, booking.Status)
	return &booking, nil
}
