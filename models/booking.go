package models

import "time"

type BookingStatus string

const (
	BookingReserved   BookingStatus = "Reserved"
	BookingInProgress BookingStatus = "InProgress"
	BookingCompleted  BookingStatus = "Completed"
	BookingCancelled  BookingStatus = "Cancelled"
)

func (s BookingStatus) IsValid() bool {
	switch s {
	case BookingReserved, BookingInProgress, BookingCompleted, BookingCancelled:
		return true
	}
	return false
}

// IsActive reports whether the booking still holds its table. Only active
// bookings participate in overlap checks.
func (s BookingStatus) IsActive() bool {
	return s == BookingReserved || s == BookingInProgress
}

// CanTransitionTo guards the booking state machine:
// Reserved -> InProgress -> Completed, with Cancelled reachable
// from Reserved or InProgress.
func (s BookingStatus) CanTransitionTo(next BookingStatus) bool {
	switch s {
	case BookingReserved:
		return next == BookingInProgress || next == BookingCancelled
	case BookingInProgress:
		return next == BookingCompleted || next == BookingCancelled
	}
	return false
}

type Booking struct {
	ID            uint          `gorm:"primaryKey" json:"id"`
	TableID       uint          `gorm:"not null;index" json:"table_id"`
	Table         BilliardTable `gorm:"foreignKey:TableID;references:ID;constraint:OnUpdate:CASCADE,OnDelete:RESTRICT" json:"table,omitempty"`
	CustomerName  string        `gorm:"type:varchar(100);not null" json:"customer_name"`
	StartTime     time.Time     `gorm:"not null" json:"start_time"`
	EndTime       time.Time     `gorm:"not null" json:"end_time"`
	DurationHours float64       `gorm:"not null" json:"duration_hours"`
	HourlyRate    float64       `gorm:"type:decimal(10,2);not null" json:"hourly_rate"`
	TotalPrice    float64       `gorm:"type:decimal(10,2);not null" json:"total_price"`
	Status        BookingStatus `gorm:"type:varchar(20);not null;default:'Reserved'" json:"status"`
	Notes         string        `gorm:"type:varchar(255)" json:"notes"`
	CreatedAt     time.Time     `gorm:"not null" json:"created_at"`
	UpdatedAt     time.Time     `gorm:"not null" json:"updated_at"`
}
