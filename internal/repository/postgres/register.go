package postgres

import (
	"context"
	"database/sql"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"

	"github.com/google/uuid"
)

type registerRepository struct {
	db *sql.DB
}

func NewRegisterRepository(db *sql.DB) repository.RegisterRepository {
	return &registerRepository{db: db}
}

const registerColumns = `id, car_id, name, type, timestamp, notes`

// Create appends one register entry. The register is append-only: there is
// no update or delete path.
func (r *registerRepository) Create(ctx context.Context, entry *domain.RegisterEntry) error {
	if entry.ID == "" {
		entry.ID = uuid.NewString()
	}
	if entry.Timestamp == "" {
		entry.Timestamp = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO register_entries (` + registerColumns + `) VALUES ($1,$2,$3,$4,$5,$6)`
	_, err := r.db.ExecContext(ctx, query,
		entry.ID, entry.CarID, entry.Name, entry.Type, entry.Timestamp, entry.Notes)
	return err
}

func (r *registerRepository) List(ctx context.Context) ([]domain.RegisterEntry, error) {
	return r.list(ctx, `SELECT `+registerColumns+` FROM register_entries ORDER BY timestamp DESC`)
}

func (r *registerRepository) ListByCar(ctx context.Context, carID string) ([]domain.RegisterEntry, error) {
	return r.list(ctx, `SELECT `+registerColumns+` FROM register_entries WHERE car_id = $1 ORDER BY timestamp DESC`, carID)
}

func (r *registerRepository) list(ctx context.Context, query string, args ...any) ([]domain.RegisterEntry, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var entries []domain.RegisterEntry
	for rows.Next() {
		var e domain.RegisterEntry
		if err := rows.Scan(&e.ID, &e.CarID, &e.Name, &e.Type, &e.Timestamp, &e.Notes); err != nil {
			return nil, err
		}
		entries = append(entries, e)
	}
	return entries, rows.Err()
}
