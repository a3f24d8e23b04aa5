package models

import "time"

// TableStatus is the occupancy state of a billiard table.
type TableStatus string

const (
	TableAvailable TableStatus = "Available"
	TableOccupied  TableStatus = "Occupied"
)

func (s TableStatus) IsValid() bool {
	switch s {
	case TableAvailable, TableOccupied:
		return true
	}
	return false
}

// LightStatus is the state of the table lamp driven by the ESP relay.
type LightStatus string

const (
	LightOn  LightStatus = "ON"
	LightOff LightStatus = "OFF"
)

func (s LightStatus) IsValid() bool {
	return s == LightOn || s == LightOff
}

type BilliardTable struct {
	ID          uint        `gorm:"primaryKey" json:"id"`
	Name        string      `gorm:"type:varchar(50);not null" json:"name"`
	Status      TableStatus `gorm:"type:varchar(20);not null;default:'Available'" json:"status"`
	LightStatus LightStatus `gorm:"type:varchar(10);not null;default:'OFF'" json:"light_status"`
	EspPin      string      `gorm:"type:varchar(20)" json:"esp_pin"`
	HourlyRate  float64     `gorm:"type:decimal(10,2);not null;default:0.00" json:"hourly_rate"`
	StartTime   *time.Time  `json:"start_time,omitempty"`
	EndTime     *time.Time  `json:"end_time,omitempty"`
	CreatedAt   time.Time   `gorm:"not null" json:"created_at"`
	UpdatedAt   time.Time   `gorm:"not null" json:"updated_at"`
	Bookings    []Booking   `gorm:"foreignKey:TableID" json:"bookings,omitempty"`
}
