package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type rentalRepository struct {
	db *sql.DB
}

func NewRentalRepository(db *sql.DB) repository.RentalRepository {
	return &rentalRepository{db: db}
}

const rentalSelect = `SELECT rentals.id, rentals.rental_date, rentals.return_date, rentals.daily_rate,
	customers.id, customers.name, customers.date_birth, customers.email,
	cars.id, cars.name, cars.type, cars.year, cars.color, cars.daily_rate, cars.company_id, companies.name
	FROM rentals
	LEFT JOIN customers ON rentals.customer_id = customers.id
	LEFT JOIN cars ON rentals.car_id = cars.id
	LEFT JOIN companies ON cars.company_id = companies.id`

func (r *rentalRepository) Create(ctx context.Context, rt *domain.Rental) error {
	query := `INSERT INTO rentals (customer_id, car_id, daily_rate, rental_date, return_date) VALUES ($1, $2, $3, $4, $5) RETURNING id`
	return r.db.QueryRowContext(ctx, query, rt.Customer.ID, rt.Car.ID, rt.DailyRate, rt.RentalDate, rt.ReturnDate).Scan(&rt.ID)
}

func (r *rentalRepository) CreateBatch(ctx context.Context, rentals []domain.Rental) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO rentals (customer_id, car_id, daily_rate, rental_date, return_date) VALUES ($1, $2, $3, $4, $5)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, rt := range rentals {
		if _, err := stmt.ExecContext(ctx, rt.Customer.ID, rt.Car.ID, rt.DailyRate, rt.RentalDate, rt.ReturnDate); err != nil {
			return fmt.Errorf("failed to insert rental for customer %d: %w", rt.Customer.ID, err)
		}
	}
	return tx.Commit()
}

func (r *rentalRepository) GetByID(ctx context.Context, id int32) (*domain.Rental, error) {
	rt := &domain.Rental{}
	query := rentalSelect + ` WHERE rentals.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&rt.ID, &rt.RentalDate, &rt.ReturnDate, &rt.DailyRate,
		&rt.Customer.ID, &rt.Customer.Name, &rt.Customer.DateBirth, &rt.Customer.Email,
		&rt.Car.ID, &rt.Car.Name, &rt.Car.Type, &rt.Car.Year, &rt.Car.Color, &rt.Car.DailyRate, &rt.Car.Company.ID, &rt.Car.Company.Name,
	)
	if err != nil {
		return nil, err
	}
	return rt, nil
}

func (r *rentalRepository) List(ctx context.Context) ([]domain.Rental, error) {
	rows, err := r.db.QueryContext(ctx, rentalSelect+` ORDER BY rentals.id DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var rentals []domain.Rental
	for rows.Next() {
		var rt domain.Rental
		if err := rows.Scan(
			&rt.ID, &rt.RentalDate, &rt.ReturnDate, &rt.DailyRate,
			&rt.Customer.ID, &rt.Customer.Name, &rt.Customer.DateBirth, &rt.Customer.Email,
			&rt.Car.ID, &rt.Car.Name, &rt.Car.Type, &rt.Car.Year, &rt.Car.Color, &rt.Car.DailyRate, &rt.Car.Company.ID, &rt.Car.Company.Name,
		); err != nil {
			return nil, err
		}
		rentals = append(rentals, rt)
	}
	return rentals, rows.Err()
}

func (r *rentalRepository) CountByCustomer(ctx context.Context, customerID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE customer_id = $1`, customerID).Scan(&count)
	return count, err
}

func (r *rentalRepository) CountByCar(ctx context.Context, carID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM rentals WHERE car_id = $1`, carID).Scan(&count)
	return count, err
}
