package repository

import (
	"context"

	"rentacar-backend/internal/domain"
)

type CompanyRepository interface {
	Create(ctx context.Context, company *domain.Company) error
	CreateBatch(ctx context.Context, companies []domain.Company) error
	GetByID(ctx context.Context, id int32) (*domain.Company, error)
	List(ctx context.Context) ([]domain.Company, error)
	Search(ctx context.Context, name string) ([]domain.Company, error)
	Update(ctx context.Context, company *domain.Company) error
	Delete(ctx context.Context, id int32) error
	ExistsByName(ctx context.Context, name string, excludeID int32) (bool, error)
	RandomID(ctx context.Context) (int32, error)
}

type CarRepository interface {
	Create(ctx context.Context, car *domain.Car) error
	CreateBatch(ctx context.Context, cars []domain.Car) error
	GetByID(ctx context.Context, id int32) (*domain.Car, error)
	List(ctx context.Context) ([]domain.Car, error)
	// Search matches the keyword against car name, company name and
	// year-as-string. Empty carType means no type restriction; a nil
	// maxDailyPrice means no price ceiling.
	Search(ctx context.Context, keyword, carType string, maxDailyPrice *float64) ([]domain.Car, error)
	Types(ctx context.Context) ([]string, error)
	Update(ctx context.Context, car *domain.Car) error
	Delete(ctx context.Context, id int32) error
	DeleteAll(ctx context.Context) error
	CountByCompany(ctx context.Context, companyID int32) (int32, error)
	RandomID(ctx context.Context) (int32, error)
}

type CustomerRepository interface {
	Create(ctx context.Context, customer *domain.Customer) error
	CreateBatch(ctx context.Context, customers []domain.Customer) error
	GetByID(ctx context.Context, id int32) (*domain.Customer, error)
	List(ctx context.Context) ([]domain.Customer, error)
	Search(ctx context.Context, query string) ([]domain.Customer, error)
	Update(ctx context.Context, customer *domain.Customer) error
	Delete(ctx context.Context, id int32) error
	ExistsByEmail(ctx context.Context, email string, excludeID int32) (bool, error)
	RandomID(ctx context.Context) (int32, error)
}

type RentalRepository interface {
	Create(ctx context.Context, rental *domain.Rental) error
	CreateBatch(ctx context.Context, rentals []domain.Rental) error
	GetByID(ctx context.Context, id int32) (*domain.Rental, error)
	List(ctx context.Context) ([]domain.Rental, error)
	CountByCustomer(ctx context.Context, customerID int32) (int32, error)
	CountByCar(ctx context.Context, carID int32) (int32, error)
}
