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

type staffUserRepository struct {
	db *sql.DB
}

func NewStaffUserRepository(db *sql.DB) repository.StaffUserRepository {
	return &staffUserRepository{db: db}
}

const staffUserColumns = `id, username, password_hash, name, email, created_on`

func (r *staffUserRepository) Create(ctx context.Context, u *domain.StaffUser) error {
	if u.ID == "" {
		u.ID = uuid.NewString()
	}
	u.CreatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `INSERT INTO staff_users (` + staffUserColumns + `) VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.ExecContext(ctx, query, u.ID, u.Username, u.PasswordHash, u.Name, u.Email, u.CreatedOn)
	return err
}

func (r *staffUserRepository) GetByID(ctx context.Context, id string) (*domain.StaffUser, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+staffUserColumns+` FROM staff_users WHERE id = $1`, id)
	return scanStaffUser(row)
}

func (r *staffUserRepository) GetByUsername(ctx context.Context, username string) (*domain.StaffUser, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+staffUserColumns+` FROM staff_users WHERE username = $1`, username)
	return scanStaffUser(row)
}

func scanStaffUser(row rowScanner) (*domain.StaffUser, error) {
	u := &domain.StaffUser{}
	err := row.Scan(&u.ID, &u.Username, &u.PasswordHash, &u.Name, &u.Email, &u.CreatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return u, nil
}
