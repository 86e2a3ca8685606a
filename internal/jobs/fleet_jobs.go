package jobs

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/utils"
)

// FleetReport logs a read-only snapshot of the fleet: entity counts and the
// rental status breakdown. Statuses are derived against the wall clock at
// run time, nothing is written.
func (jr *JobRunner) FleetReport() {
	jr.runWithRecovery("FleetReport", func() {
		ctx := context.Background()

		companies, err := jr.store.CompanyRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list companies", "error", err)
			return
		}
		cars, err := jr.store.CarRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list cars", "error", err)
			return
		}
		customers, err := jr.store.CustomerRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list customers", "error", err)
			return
		}
		rentals, err := jr.store.RentalRepository.List(ctx)
		if err != nil {
			logger.Error("Failed to list rentals", "error", err)
			return
		}

		now := time.Now()
		var upcoming, ongoing, returned int
		for _, rt := range rentals {
			switch utils.RentalStatusAt(now, rt.RentalDate, rt.ReturnDate) {
			case domain.RentalStatusUpcoming:
				upcoming++
			case domain.RentalStatusOngoing:
				ongoing++
			default:
				returned++
			}
		}

		logger.Info("Fleet report",
			"companies", len(companies),
			"cars", len(cars),
			"customers", len(customers),
			"rentals", len(rentals),
			"upcoming", upcoming,
			"ongoing", ongoing,
			"returned", returned,
		)
	})
}
