package services

import "time"

// ComputePrice is the whole pricing rule: hourly rate times duration.
// No currency rounding here; display formatting happens at the response
// boundary (utils.FormatRupiah).
func ComputePrice(hourlyRate, durationHours float64) float64 {
	return hourlyRate * durationHours
}

// HoursToDuration converts a possibly fractional hour count to a
// time.Duration.
func HoursToDuration(hours float64) time.Duration {
	return time.Duration(hours * float64(time.Hour))
}
