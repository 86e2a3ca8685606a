package postgres

import (
	"database/sql"

	"rentacar-backend/internal/repository"

	_ "github.com/lib/pq"
)

type Store struct {
	db *sql.DB
	repository.CompanyRepository
	repository.CarRepository
	repository.CustomerRepository
	repository.RentalRepository
}

func NewStore(db *sql.DB) *Store {
	return &Store{
		db:                 db,
		CompanyRepository:  NewCompanyRepository(db),
		CarRepository:      NewCarRepository(db),
		CustomerRepository: NewCustomerRepository(db),
		RentalRepository:   NewRentalRepository(db),
	}
}
