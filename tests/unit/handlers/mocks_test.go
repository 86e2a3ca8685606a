package handlers

import (
	"context"
	"time"

	"rentacar-backend/internal/api/http"
	"rentacar-backend/internal/domain"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/mock"
)

// MockCompanyService
type MockCompanyService struct {
	mock.Mock
}

func (m *MockCompanyService) ListCompanies(ctx context.Context) ([]domain.Company, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) SearchCompanies(ctx context.Context, query string) ([]domain.Company, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Company), args.Error(1)
}
func (m *MockCompanyService) GetCompany(ctx context.Context, id int32) (*domain.Company, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Company), args.Error(1)
}
func (m *MockCompanyService) CreateCompany(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyService) UpdateCompany(ctx context.Context, company *domain.Company) error {
	args := m.Called(ctx, company)
	return args.Error(0)
}
func (m *MockCompanyService) DeleteCompany(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCompanyService) GenerateCompanies(ctx context.Context, amount int32) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// MockCarService
type MockCarService struct {
	mock.Mock
}

func (m *MockCarService) ListCars(ctx context.Context) ([]domain.Car, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarService) SearchCars(ctx context.Context, keyword, carType string, maxDailyPrice *float64) ([]domain.Car, error) {
	args := m.Called(ctx, keyword, carType, maxDailyPrice)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Car), args.Error(1)
}
func (m *MockCarService) ListCarTypes(ctx context.Context) ([]string, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]string), args.Error(1)
}
func (m *MockCarService) GetCar(ctx context.Context, id int32) (*domain.Car, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Car), args.Error(1)
}
func (m *MockCarService) CreateCar(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarService) UpdateCar(ctx context.Context, car *domain.Car) error {
	args := m.Called(ctx, car)
	return args.Error(0)
}
func (m *MockCarService) DeleteCar(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCarService) DeleteAllCars(ctx context.Context) error {
	args := m.Called(ctx)
	return args.Error(0)
}
func (m *MockCarService) GenerateCars(ctx context.Context, amount int32) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}
func (m *MockCarService) RentCar(ctx context.Context, carID int32, startDate, endDate time.Time) (*domain.Rental, error) {
	args := m.Called(ctx, carID, startDate, endDate)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}

// MockCustomerService
type MockCustomerService struct {
	mock.Mock
}

func (m *MockCustomerService) ListCustomers(ctx context.Context) ([]domain.Customer, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) SearchCustomers(ctx context.Context, query string) ([]domain.Customer, error) {
	args := m.Called(ctx, query)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Customer), args.Error(1)
}
func (m *MockCustomerService) GetCustomer(ctx context.Context, id int32) (*domain.Customer, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Customer), args.Error(1)
}
func (m *MockCustomerService) CreateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerService) UpdateCustomer(ctx context.Context, customer *domain.Customer) error {
	args := m.Called(ctx, customer)
	return args.Error(0)
}
func (m *MockCustomerService) DeleteCustomer(ctx context.Context, id int32) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}
func (m *MockCustomerService) GenerateCustomers(ctx context.Context, amount int32) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

// MockRentalService
type MockRentalService struct {
	mock.Mock
}

func (m *MockRentalService) ListRentals(ctx context.Context) ([]domain.Rental, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]domain.Rental), args.Error(1)
}
func (m *MockRentalService) GetRental(ctx context.Context, id int32) (*domain.Rental, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(*domain.Rental), args.Error(1)
}
func (m *MockRentalService) CreateRental(ctx context.Context, rental *domain.Rental) error {
	args := m.Called(ctx, rental)
	return args.Error(0)
}
func (m *MockRentalService) GenerateRentals(ctx context.Context, amount int32) error {
	args := m.Called(ctx, amount)
	return args.Error(0)
}

type serviceMocks struct {
	company  *MockCompanyService
	car      *MockCarService
	customer *MockCustomerService
	rental   *MockRentalService
}

// newTestRouter wires the full router around fresh service mocks so tests
// exercise real route matching and middleware.
func newTestRouter() (*mux.Router, serviceMocks) {
	m := serviceMocks{
		company:  new(MockCompanyService),
		car:      new(MockCarService),
		customer: new(MockCustomerService),
		rental:   new(MockRentalService),
	}
	router := http.NewRouter(
		http.NewCompanyHandler(m.company),
		http.NewCarHandler(m.car),
		http.NewCustomerHandler(m.customer),
		http.NewRentalHandler(m.rental),
		"*",
	)
	return router, m
}
