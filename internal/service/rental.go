package service

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/generator"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
	"rentacar-backend/internal/utils"
)

type rentalService struct {
	rentalRepo   repository.RentalRepository
	customerRepo repository.CustomerRepository
	carRepo      repository.CarRepository
	gen          *generator.Generator
}

func NewRentalService(
	rentalRepo repository.RentalRepository,
	customerRepo repository.CustomerRepository,
	carRepo repository.CarRepository,
	gen *generator.Generator,
) RentalService {
	return &rentalService{
		rentalRepo:   rentalRepo,
		customerRepo: customerRepo,
		carRepo:      carRepo,
		gen:          gen,
	}
}

func (s *rentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	rentals, err := s.rentalRepo.List(ctx)
	if err != nil {
		return nil, err
	}
	for i := range rentals {
		decorate(&rentals[i])
	}
	return rentals, nil
}

func (s *rentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	rental, err := s.rentalRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "rental", id)
	}
	decorate(rental)
	return rental, nil
}

// decorate fills the display-only fields. Status depends on "now", so it is
// computed on every read.
func decorate(rt *domain.Rental) {
	rt.Duration = utils.RentalDuration(rt.RentalDate, rt.ReturnDate)
	rt.TotalPrice = utils.TotalPrice(rt.RentalDate, rt.ReturnDate, rt.DailyRate)
	rt.Status = utils.RentalStatus(rt.RentalDate, rt.ReturnDate)
}

func (s *rentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	if rental.ReturnDate.Before(rental.RentalDate) {
		return invalidf("return date must not be before rental date")
	}
	if rental.DailyRate < 0 {
		return invalidf("daily rate must not be negative")
	}

	customer, err := s.customerRepo.GetByID(ctx, rental.Customer.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invalidf("customer %d does not exist", rental.Customer.ID)
		}
		return err
	}
	car, err := s.carRepo.GetByID(ctx, rental.Car.ID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invalidf("car %d does not exist", rental.Car.ID)
		}
		return err
	}

	rental.Customer = *customer
	rental.Car = *car
	if rental.DailyRate == 0 {
		// No explicit rate: snapshot the car's current one.
		rental.DailyRate = car.DailyRate
	}

	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return err
	}
	decorate(rental)
	return nil
}

func (s *rentalService) GenerateRentals(ctx context.Context, amount int32) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	now := time.Now()
	batch := make([]domain.Rental, 0, amount)
	for i := int32(0); i < amount; i++ {
		customerID, err := s.customerRepo.RandomID(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invalidf("cannot generate rentals: no customers exist")
			}
			return err
		}
		carID, err := s.carRepo.RandomID(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invalidf("cannot generate rentals: no cars exist")
			}
			return err
		}

		rentalDate, returnDate := s.gen.RentalDates(now)
		batch = append(batch, domain.Rental{
			Customer:   domain.Customer{ID: customerID},
			Car:        domain.Car{ID: carID},
			RentalDate: rentalDate,
			ReturnDate: returnDate,
			DailyRate:  s.gen.DailyRate(),
		})
	}

	logger.Debug("Generated rental batch", "amount", amount)
	return s.rentalRepo.CreateBatch(ctx, batch)
}
