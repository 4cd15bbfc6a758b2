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

type dealerRepository struct {
	db *sql.DB
}

func NewDealerRepository(db *sql.DB) repository.DealerRepository {
	return &dealerRepository{db: db}
}

const dealerColumns = `id, name, phone_number, address, id_proof_image, created_on, updated_on`

func (r *dealerRepository) Create(ctx context.Context, d *domain.Dealer) error {
	if d.ID == "" {
		d.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	d.CreatedOn = now
	d.UpdatedOn = now

	query := `INSERT INTO dealers (` + dealerColumns + `) VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.ExecContext(ctx, query,
		d.ID, d.Name, d.PhoneNumber, d.Address, d.IDProofImage, d.CreatedOn, d.UpdatedOn)
	return err
}

func (r *dealerRepository) GetByID(ctx context.Context, id string) (*domain.Dealer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dealerColumns+` FROM dealers WHERE id = $1`, id)
	return scanDealerRow(row)
}

func (r *dealerRepository) GetByPhone(ctx context.Context, phone string) (*domain.Dealer, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+dealerColumns+` FROM dealers WHERE phone_number = $1`, phone)
	return scanDealerRow(row)
}

func scanDealerRow(row rowScanner) (*domain.Dealer, error) {
	d := &domain.Dealer{}
	err := row.Scan(&d.ID, &d.Name, &d.PhoneNumber, &d.Address, &d.IDProofImage, &d.CreatedOn, &d.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return d, nil
}

func (r *dealerRepository) Update(ctx context.Context, d *domain.Dealer) error {
	d.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE dealers SET name=$1, phone_number=$2, address=$3, id_proof_image=$4, updated_on=$5 WHERE id=$6`
	res, err := r.db.ExecContext(ctx, query, d.Name, d.PhoneNumber, d.Address, d.IDProofImage, d.UpdatedOn, d.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *dealerRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM dealers WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *dealerRepository) List(ctx context.Context) ([]domain.Dealer, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+dealerColumns+` FROM dealers ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var dealers []domain.Dealer
	for rows.Next() {
		d := domain.Dealer{}
		if err := rows.Scan(&d.ID, &d.Name, &d.PhoneNumber, &d.Address, &d.IDProofImage, &d.CreatedOn, &d.UpdatedOn); err != nil {
			return nil, err
		}
		dealers = append(dealers, d)
	}
	return dealers, rows.Err()
}
