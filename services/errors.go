package services

import (
	"time"

	"github.com/mahesadev/billiard-hall-app/models"
)

// ValidationError covers missing or malformed request input (HTTP 400).
type ValidationError struct {
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

// NotFoundError means a referenced entity does not exist (HTTP 404).
type NotFoundError struct {
	Message string
}

func (e *NotFoundError) Error() string { return e.Message }

// ConflictError is a business-rule conflict. When Conflicts is non-empty
// the booking window overlaps existing bookings (HTTP 409); otherwise the
// table itself is unavailable (HTTP 400, matching the original API).
type ConflictError struct {
	Message   string
	Conflicts []BookingConflict
}

func (e *ConflictError) Error() string { return e.Message }

// BookingConflict is the wire shape of one conflicting booking in a 409
// response.
type BookingConflict struct {
	ID        uint                 `json:"id"`
	StartTime time.Time            `json:"startTime"`
	EndTime   time.Time            `json:"endTime"`
	Status    models.BookingStatus `json:"status"`
}

func toBookingConflicts(bookings []models.Booking) []BookingConflict {
	conflicts := make([]BookingConflict, 0, len(bookings))
	for _, b := range bookings {
		conflicts = append(conflicts, BookingConflict{
			ID:        b.ID,
			StartTime: b.StartTime,
			EndTime:   b.EndTime,
			Status:    b.Status,
		})
	}
	return conflicts
}
