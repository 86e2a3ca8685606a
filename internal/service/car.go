package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"regexp"
	"strings"
	"time"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/generator"
	"rentacar-backend/internal/logger"
	"rentacar-backend/internal/repository"
)

var hexColorPattern = regexp.MustCompile(`^[0-9a-fA-F]{6}$`)

type carService struct {
	carRepo      repository.CarRepository
	companyRepo  repository.CompanyRepository
	customerRepo repository.CustomerRepository
	rentalRepo   repository.RentalRepository
	emailSvc     EmailService
	gen          *generator.Generator
}

func NewCarService(
	carRepo repository.CarRepository,
	companyRepo repository.CompanyRepository,
	customerRepo repository.CustomerRepository,
	rentalRepo repository.RentalRepository,
	emailSvc EmailService,
	gen *generator.Generator,
) CarService {
	return &carService{
		carRepo:      carRepo,
		companyRepo:  companyRepo,
		customerRepo: customerRepo,
		rentalRepo:   rentalRepo,
		emailSvc:     emailSvc,
		gen:          gen,
	}
}

func (s *carService) ListCars(ctx context.Context) ([]domain.Car, error) {
	return s.carRepo.List(ctx)
}

func (s *carService) SearchCars(ctx context.Context, keyword, carType string, maxDailyPrice *float64) ([]domain.Car, error) {
	keyword = strings.TrimSpace(keyword)
	carType = normalizeTypeFilter(carType)

	if carType != "" {
		// Client-supplied type values are not validated against the live
		// vocabulary before they reach us. An unknown type degrades to "all"
		// instead of returning an empty set.
		types, err := s.carRepo.Types(ctx)
		if err != nil {
			return nil, err
		}
		known := false
		for _, t := range types {
			if strings.EqualFold(t, carType) {
				known = true
				break
			}
		}
		if !known {
			logger.Warn("Unrecognized car type filter, ignoring", "type", carType)
			carType = ""
		}
	}

	// Unfiltered search is the same code path as "get all".
	if keyword == "" && carType == "" && maxDailyPrice == nil {
		return s.carRepo.List(ctx)
	}
	return s.carRepo.Search(ctx, keyword, carType, maxDailyPrice)
}

// normalizeTypeFilter maps the "all" sentinel (and absence) to no restriction.
func normalizeTypeFilter(carType string) string {
	carType = strings.TrimSpace(carType)
	if strings.EqualFold(carType, "all") {
		return ""
	}
	return carType
}

func (s *carService) ListCarTypes(ctx context.Context) ([]string, error) {
	return s.carRepo.Types(ctx)
}

func (s *carService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	car, err := s.carRepo.GetByID(ctx, id)
	if err != nil {
		return nil, notFound(err, "car", id)
	}
	return car, nil
}

func (s *carService) CreateCar(ctx context.Context, car *domain.Car) error {
	if err := s.validate(ctx, car); err != nil {
		return err
	}
	return s.carRepo.Create(ctx, car)
}

func (s *carService) UpdateCar(ctx context.Context, car *domain.Car) error {
	if err := s.validate(ctx, car); err != nil {
		return err
	}
	if err := s.carRepo.Update(ctx, car); err != nil {
		return notFound(err, "car", car.ID)
	}
	return nil
}

func (s *carService) validate(ctx context.Context, car *domain.Car) error {
	car.Name = strings.TrimSpace(car.Name)
	car.Type = strings.TrimSpace(car.Type)
	if car.Name == "" {
		return invalidf("car name is required")
	}
	if car.Type == "" {
		return invalidf("car type is required")
	}
	if car.Year < 1000 || car.Year > 9999 {
		return invalidf("year must be a 4-digit calendar year")
	}
	if !hexColorPattern.MatchString(car.Color) {
		return invalidf("color must be a 6-hex-digit string without '#'")
	}
	if car.DailyRate < 0 {
		return invalidf("daily rate must not be negative")
	}
	if _, err := s.companyRepo.GetByID(ctx, car.Company.ID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return invalidf("company %d does not exist", car.Company.ID)
		}
		return err
	}
	return nil
}

func (s *carService) DeleteCar(ctx context.Context, id int32) error {
	count, err := s.rentalRepo.CountByCar(ctx, id)
	if err != nil {
		return err
	}
	if count > 0 {
		return fmt.Errorf("car %d is %w: %d rentals", id, ErrInUse, count)
	}
	if err := s.carRepo.Delete(ctx, id); err != nil {
		return notFound(err, "car", id)
	}
	return nil
}

// DeleteAllCars resets the fleet. Rentals go with it, in one transaction.
func (s *carService) DeleteAllCars(ctx context.Context) error {
	return s.carRepo.DeleteAll(ctx)
}

func (s *carService) GenerateCars(ctx context.Context, amount int32) error {
	if err := validateAmount(amount); err != nil {
		return err
	}

	batch := make([]domain.Car, 0, amount)
	for i := int32(0); i < amount; i++ {
		companyID, err := s.companyRepo.RandomID(ctx)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				return invalidf("cannot generate cars: no companies exist")
			}
			return err
		}
		batch = append(batch, s.gen.Car(companyID))
	}

	logger.Debug("Generated car batch", "amount", amount)
	return s.carRepo.CreateBatch(ctx, batch)
}

func (s *carService) RentCar(ctx context.Context, carID int32, startDate, endDate time.Time) (*domain.Rental, error) {
	if endDate.Before(startDate) {
		return nil, invalidf("end date must not be before start date")
	}

	car, err := s.carRepo.GetByID(ctx, carID)
	if err != nil {
		return nil, notFound(err, "car", carID)
	}

	customerID, err := s.customerRepo.RandomID(ctx)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, invalidf("cannot rent car: no customers exist")
		}
		return nil, err
	}
	customer, err := s.customerRepo.GetByID(ctx, customerID)
	if err != nil {
		return nil, err
	}

	rental := &domain.Rental{
		Customer:   *customer,
		Car:        *car,
		RentalDate: startDate,
		ReturnDate: endDate,
		// Snapshot of the car's rate at booking time.
		DailyRate: car.DailyRate,
	}
	if err := s.rentalRepo.Create(ctx, rental); err != nil {
		return nil, err
	}

	// Confirmation email is best effort; the booking stands either way.
	if err := s.emailSvc.SendBookingConfirmation(ctx, customer.Email, customer.Name, car.Name, rental); err != nil {
		logger.Warn("Failed to send booking confirmation", "error", err, "rental_id", rental.ID)
	}

	return rental, nil
}
