package domain

import "time"

// RentalStatus is derived from the rental dates relative to "now" on every
// read. It is never persisted.
type RentalStatus string

const (
	RentalStatusUpcoming RentalStatus = "Upcoming"
	RentalStatusOngoing  RentalStatus = "Ongoing"
	RentalStatusReturned RentalStatus = "Returned"
)

type Rental struct {
	ID         int32     `json:"id"`
	Customer   Customer  `json:"customer"`
	Car        Car       `json:"car"`
	RentalDate time.Time `json:"rentalDate"`
	ReturnDate time.Time `json:"returnDate"`
	// DailyRate is a snapshot of the car's rate at rental time and may
	// differ from the car's current rate.
	DailyRate float64 `json:"dailyRate"`

	// Display-only fields computed per read, never stored.
	Duration   string       `json:"duration,omitempty"`
	TotalPrice string       `json:"totalPrice,omitempty"`
	Status     RentalStatus `json:"status,omitempty"`
}
