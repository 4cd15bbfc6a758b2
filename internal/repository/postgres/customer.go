package postgres

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"

	"github.com/google/uuid"
)

type customerRepository struct {
	db *sql.DB
}

func NewCustomerRepository(db *sql.DB) repository.CustomerRepository {
	return &customerRepository{db: db}
}

const customerColumns = `id, name, phone_number, address, license_number, license_image, id_proof_image, created_on, updated_on`

func (r *customerRepository) Create(ctx context.Context, c *domain.Customer) error {
	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	c.CreatedOn = now
	c.UpdatedOn = now

	query := `INSERT INTO customers (` + customerColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9)`
	_, err := r.db.ExecContext(ctx, query,
		c.ID, c.Name, c.PhoneNumber, c.Address, c.LicenseNumber, c.LicenseImage, c.IDProofImage, c.CreatedOn, c.UpdatedOn)
	return err
}

func (r *customerRepository) GetByID(ctx context.Context, id string) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE id = $1`, id)
	return scanCustomerRow(row)
}

func (r *customerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Customer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+customerColumns+` FROM customers WHERE phone_number = $1`, phone)
	return scanCustomerRow(row)
}

func scanCustomerRow(row rowScanner) (*domain.Customer, error) {
	c := &domain.Customer{}
	err := row.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Address, &c.LicenseNumber,
		&c.LicenseImage, &c.IDProofImage, &c.CreatedOn, &c.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return c, nil
}

func (r *customerRepository) Update(ctx context.Context, c *domain.Customer) error {
	c.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE customers SET name=$1, phone_number=$2, address=$3, license_number=$4,
	          license_image=$5, id_proof_image=$6, updated_on=$7 WHERE id=$8`
	res, err := r.db.ExecContext(ctx, query,
		c.Name, c.PhoneNumber, c.Address, c.LicenseNumber, c.LicenseImage, c.IDProofImage, c.UpdatedOn, c.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *customerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM customers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *customerRepository) List(ctx context.Context) ([]domain.Customer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+customerColumns+` FROM customers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var customers []domain.Customer
	for rows.Next() {
		c := domain.Customer{}
		if err := rows.Scan(&c.ID, &c.Name, &c.PhoneNumber, &c.Address, &c.LicenseNumber,
			&c.LicenseImage, &c.IDProofImage, &c.CreatedOn, &c.UpdatedOn); err != nil {
			return nil, err
		}
		customers = append(customers, c)
	}
	return customers, rows.Err()
}
