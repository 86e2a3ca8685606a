package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	query := `INSERT INTO customers (name, date_birth, email) VALUES ($1, $2, $3) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name, c.DateBirth, c.Email).Scan(&c.ID)
}

func (r *customerRepository) CreateBatch(ctx context.Context, customers []domain.Customer) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO customers (name, date_birth, email) VALUES ($1, $2, $3)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range customers {
		if _, err := stmt.ExecContext(ctx, c.Name, c.DateBirth, c.Email); err != nil {
			return fmt.Errorf("failed to insert customer %q: %w", c.Email, err)
		}
	}
	return tx.Commit()
}

func (r *customerRepository) GetByID(ctx context.Context, id int32) (*domain.Customer, error) {
	c := &domain.Customer{}
	query := `SELECT id, name, date_birth, email FROM customers WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name, &c.DateBirth, &c.Email); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	query := `SELECT id, name, date_birth, email FROM customers ORDER BY id DESC`
	return r.queryCustomers(ctx, query)
}

func (r *customerRepository) Search(ctx context.Context, q string) ([]domain.Customer, error) {
	query := `SELECT id, name, date_birth, email FROM customers
		WHERE LOWER(name) LIKE '%' || LOWER($1) || '%' OR LOWER(email) LIKE '%' || LOWER($1) || '%'
		ORDER BY id DESC`
	return r.queryCustomers(ctx, query, q)
}

func (r *customerRepository) queryCustomers(ctx context.Context, query string, args ...interface{}) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		var c domain.Customer
		if err := rows.Scan(&c.ID, &c.Name, &c.DateBirth, &c.Email); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	query := `UPDATE customers SET name = $1, date_birth = $2, email = $3 WHERE id = $4`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.DateBirth, c.Email, c.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *customerRepository) Delete(ctx context.Context, id int32) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *customerRepository) ExistsByEmail(ctx context.Context, email string, excludeID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM customers WHERE LOWER(email) = LOWER($1) AND id <> $2)`
	err := r.db.QueryRowContext(ctx, query, email, excludeID).Scan(&exists)
	return exists, err
}

func (r *customerRepository) RandomID(ctx context.Context) (int32, error) {
	var id int32
	err := r.db.QueryRowContext(ctx, `SELECT id FROM customers ORDER BY RANDOM() LIMIT 1`).Scan(&id)
	return id, err
}
