package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carSelect = `SELECT cars.id, cars.name, cars.type, cars.year, cars.color, cars.daily_rate, cars.company_id, companies.name
	FROM cars LEFT JOIN companies ON cars.company_id = companies.id`

func (r *carRepository) Create(ctx context.Context, c *domain.Car) error {
	query := `INSERT INTO cars (name, type, year, color, daily_rate, company_id) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.Type, c.Year, c.Color, c.DailyRate, c.Company.ID).Scan(&c.ID)
}

func (r *carRepository) CreateBatch(ctx context.Context, cars []domain.Car) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO cars (name, type, year, color, daily_rate, company_id) VALUES ($1, $2, $3, $4, $5, $6)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range cars {
		if _, err := stmt.ExecContext(ctx, c.Name, c.Type, c.Year, c.Color, c.DailyRate, c.Company.ID); err != nil {
			return fmt.Errorf("failed to insert car %q: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

func (r *carRepository) GetByID(ctx context.Context, id int32) (*domain.Car, error) {
	c := &domain.Car{}
	query := carSelect + ` WHERE cars.id = $1`
	err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.Type, &c.Year, &c.Color, &c.DailyRate, &c.Company.ID, &c.Company.Name)
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	return r.queryCars(ctx, carSelect+` ORDER BY cars.id DESC`)
}

func (r *carRepository) Search(ctx context.Context, keyword, carType string, maxDailyPrice *float64) ([]domain.Car, error) {
	query := carSelect + ` WHERE 1=1`
	args := []interface{}{}
	argIdx := 1

	if carType != "" {
		query += fmt.Sprintf(" AND LOWER(cars.type) = LOWER($%d)", argIdx)
		args = append(args, carType)
		argIdx++
	}
	if keyword != "" {
		query += fmt.Sprintf(` AND (LOWER(cars.name) LIKE '%%' || LOWER($%d) || '%%'
			OR LOWER(companies.name) LIKE '%%' || LOWER($%d) || '%%'
			OR CAST(cars.year AS TEXT) LIKE '%%' || $%d || '%%')`, argIdx, argIdx, argIdx)
		args = append(args, keyword)
		argIdx++
	}
	if maxDailyPrice != nil {
		query += fmt.Sprintf(" AND cars.daily_rate <= $%d", argIdx)
		args = append(args, *maxDailyPrice)
		argIdx++
	}
	query += " ORDER BY cars.id DESC"

	return r.queryCars(ctx, query, args...)
}

func (r *carRepository) queryCars(ctx context.Context, query string, args ...interface{}) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		var c domain.Car
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.Year, &c.Color, &c.DailyRate, &c.Company.ID, &c.Company.Name); err != nil {
			return nil, err
		}
		cars = append(cars, c)
	}
	return cars, rows.Err()
}

func (r *carRepository) Types(ctx context.Context) ([]string, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT DISTINCT type FROM cars ORDER BY type`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var types []string
	for rows.Next() {
		var t string
		if err := rows.Scan(&t); err != nil {
			return nil, err
		}
		types = append(types, t)
	}
	return types, rows.Err()
}

func (r *carRepository) Update(ctx context.Context, c *domain.Car) error {
	query := `UPDATE cars SET name = $1, type = $2, year = $3, color = $4, daily_rate = $5, company_id = $6 WHERE id = $7`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.Type, c.Year, c.Color, c.DailyRate, c.Company.ID, c.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *carRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

// DeleteAll is a demo-reset operation. Rentals reference cars, so the reset
// clears both tables in one transaction.
func (r *carRepository) DeleteAll(ctx context.Context) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `DELETE FROM rentals`); err != nil {
		return err
	}
	if _, err := tx.ExecContext(ctx, `DELETE FROM cars`); err != nil {
		return err
	}
	return tx.Commit()
}

func (r *carRepository) CountByCompany(ctx context.Context, companyID int32) (int32, error) {
	var count int32
	err := r.db.QueryRowContext(ctx, `SELECT count(*) FROM cars WHERE company_id = $1`, companyID).Scan(&count)
	return count, err
}

func (r *carRepository) RandomID(ctx context.Context) (int32, error) {
	var id int32
	err := r.db.QueryRowContext(ctx, `SELECT id FROM cars ORDER BY RANDOM() LIMIT 1`).Scan(&id)
	return id, err
}
