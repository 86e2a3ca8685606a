package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"rentacar-backend/internal/domain"
	"rentacar-backend/internal/repository"
)

type companyRepository struct {
	db *sql.DB
}

func NewCompanyRepository(db *sql.DB) repository.CompanyRepository {
	return &companyRepository{db: db}
}

func (r *companyRepository) Create(ctx context.Context, c *domain.Company) error {
	query := `INSERT INTO companies (name) VALUES ($1) RETURNING id`
	return r.db.QueryRowContext(ctx, query, c.Name).Scan(&c.ID)
}

func (r *companyRepository) CreateBatch(ctx context.Context, companies []domain.Company) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return err
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT INTO companies (name) VALUES ($1)`)
	if err != nil {
		return err
	}
	defer stmt.Close()

	for _, c := range companies {
		if _, err := stmt.ExecContext(ctx, c.Name); err != nil {
			return fmt.Errorf("failed to insert company %q: %w", c.Name, err)
		}
	}
	return tx.Commit()
}

func (r *companyRepository) GetByID(ctx context.Context, id int32) (*domain.Company, error) {
	c := &domain.Company{}
	query := `SELECT id, name FROM companies WHERE id = $1`
	if err := r.db.QueryRowContext(ctx, query, id).Scan(&c.ID, &c.Name); err != nil {
		return nil, err
	}
	return c, nil
}

func (r *companyRepository) List(ctx context.Context) ([]domain.Company, error) {
	query := `SELECT id, name FROM companies ORDER BY id DESC`
	return r.queryCompanies(ctx, query)
}

func (r *companyRepository) Search(ctx context.Context, name string) ([]domain.Company, error) {
	query := `SELECT id, name FROM companies WHERE LOWER(name) LIKE '%' || LOWER($1) || '%' ORDER BY id DESC`
	return r.queryCompanies(ctx, query, name)
}

func (r *companyRepository) queryCompanies(ctx context.Context, query string, args ...interface{}) ([]domain.Company, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var companies []domain.Company
	for rows.Next() {
		var c domain.Company
		if err := rows.Scan(&c.ID, &c.Name); err != nil {
			return nil, err
		}
		companies = append(companies, c)
	}
	return companies, rows.Err()
}

func (r *companyRepository) Update(ctx context.Context, c *domain.Company) error {
	query := `UPDATE companies SET name = $1 WHERE id = $2`
	res, err := r.db.ExecContext(ctx, query, c.Name, c.ID)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *companyRepository) Delete(ctx context.Context, id int32) error {
	query := `DELETE FROM companies WHERE id = $1`
	res, err := r.db.ExecContext(ctx, query, id)
	if err != nil {
		return err
	}
	return requireRowsAffected(res)
}

func (r *companyRepository) ExistsByName(ctx context.Context, name string, excludeID int32) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM companies WHERE LOWER(name) = LOWER($1) AND id <> $2)`
	err := r.db.QueryRowContext(ctx, query, name, excludeID).Scan(&exists)
	return exists, err
}

func (r *companyRepository) RandomID(ctx context.Context) (int32, error) {
	var id int32
	query := `SELECT id FROM companies ORDER BY RANDOM() LIMIT 1`
	err := r.db.QueryRowContext(ctx, query).Scan(&id)
	return id, err
}

// requireRowsAffected turns a zero-row update/delete into sql.ErrNoRows so the
// service layer can report an unknown id.
func requireRowsAffected(res sql.Result) error {
	n, err := res.RowsAffected()
	if err != nil {
		return err
	}
	if n == 0 {
		return sql.ErrNoRows
	}
	return nil
}
