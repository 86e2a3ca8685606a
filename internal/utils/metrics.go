package utils

import (
	"fmt"
	"math"
	"time"

	"rentacar-backend/internal/domain"
)

// RentalDuration renders the span between two dates as a human-readable
// bucket: days under a week, then weeks, then months.
//
// The weeks branch carries a weeks%7 test, so durations of 4 weeks and up
// always fall through to the month bucket (floor of days/30).
func RentalDuration(rentalDate, returnDate time.Time) string {
	diff := returnDate.Sub(rentalDate)
	if diff < 0 {
		diff = -diff
	}
	days := int(math.Ceil(diff.Hours() / 24))
	weeks := days / 7
	months := days / 30

	if days < 7 {
		return fmt.Sprintf("%d %s", days, pluralize("day", days))
	} else if weeks < 4 && weeks%7 != 0 {
		return fmt.Sprintf("%d %s", weeks, pluralize("week", weeks))
	}
	return fmt.Sprintf("%d %s", months, pluralize("month", months))
}

// TotalPrice is the daily rate times the span in days, rendered with a
// currency prefix.
func TotalPrice(startDate, endDate time.Time, dailyRate float64) string {
	days := endDate.Sub(startDate).Hours() / 24
	return fmt.Sprintf("$%.2f", dailyRate*days)
}

// RentalStatusAt classifies a rental relative to the given instant. Both
// boundary instants count as Ongoing.
func RentalStatusAt(now, rentalDate, returnDate time.Time) domain.RentalStatus {
	if now.Before(rentalDate) {
		return domain.RentalStatusUpcoming
	}
	if now.After(returnDate) {
		return domain.RentalStatusReturned
	}
	return domain.RentalStatusOngoing
}

// RentalStatus classifies a rental against the wall clock. The result is
// recomputed on every read and never persisted.
func RentalStatus(rentalDate, returnDate time.Time) domain.RentalStatus {
	return RentalStatusAt(time.Now(), rentalDate, returnDate)
}

func pluralize(unit string, n int) string {
	if n == 1 {
		return unit
	}
	return unit + "s"
}
