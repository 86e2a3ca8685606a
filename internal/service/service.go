package service

import (
	"context"
	"time"

	"rentacar-backend/internal/domain"
)

type CompanyService interface {
	ListCompanies(ctx context.Context) ([]domain.Company, error)
	SearchCompanies(ctx context.Context, query string) ([]domain.Company, error)
	GetCompany(ctx context.Context, id int32) (*domain.Company, error)
	CreateCompany(ctx context.Context, company *domain.Company) error
	UpdateCompany(ctx context.Context, company *domain.Company) error
	DeleteCompany(ctx context.Context, id int32) error
	GenerateCompanies(ctx context.Context, amount int32) error
}

type CarService interface {
	ListCars(ctx context.Context) ([]domain.Car, error)
	// SearchCars applies the keyword, type filter and price ceiling. The type
	// sentinel "all" (and any value not in the live type vocabulary) means no
	// type restriction; with no filters at all the result is identical to
	// ListCars.
	SearchCars(ctx context.Context, keyword, carType string, maxDailyPrice *float64) ([]domain.Car, error)
	ListCarTypes(ctx context.Context) ([]string, error)
	GetCar(ctx context.Context, id int32) (*domain.Car, error)
	CreateCar(ctx context.Context, car *domain.Car) error
	UpdateCar(ctx context.Context, car *domain.Car) error
	DeleteCar(ctx context.Context, id int32) error
	DeleteAllCars(ctx context.Context) error
	GenerateCars(ctx context.Context, amount int32) error
	// RentCar books the car for a randomly chosen customer over the given
	// date range, snapshotting the car's current daily rate.
	RentCar(ctx context.Context, carID int32, startDate, endDate time.Time) (*domain.Rental, error)
}

type CustomerService interface {
	ListCustomers(ctx context.Context) ([]domain.Customer, error)
	SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error)
	GetCustomer(ctx context.Context, id int32) (*domain.Customer, error)
	CreateCustomer(ctx context.Context, customer *domain.Customer) error
	UpdateCustomer(ctx context.Context, customer *domain.Customer) error
	DeleteCustomer(ctx context.Context, id int32) error
	GenerateCustomers(ctx context.Context, amount int32) error
}

type RentalService interface {
	ListRentals(ctx context.Context) ([]domain.Rental, error)
	GetRental(ctx context.Context, id int32) (*domain.Rental, error)
	CreateRental(ctx context.Context, rental *domain.Rental) error
	GenerateRentals(ctx context.Context, amount int32) error
}

type EmailService interface {
	SendBookingConfirmation(ctx context.Context, email, customerName, carName string, rental *domain.Rental) error
}
