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

type maintenanceRepository struct {
	db *sql.DB
}

func NewMaintenanceRepository(db *sql.DB) repository.MaintenanceRepository {
	return &maintenanceRepository{db: db}
}

const maintenanceColumns = `id, car_id, workshop_name, workshop_details, phone_number, date, return_date,
	amount, amount_paid, payment_status, description, image, created_on, updated_on`

func (r *maintenanceRepository) Create(ctx context.Context, rec *domain.MaintenanceRecord) error {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	rec.CreatedOn = now
	rec.UpdatedOn = now
	if rec.PaymentStatus == "" {
		rec.PaymentStatus = domain.PaymentStatusPending
	}

	query := `INSERT INTO maintenance_records (` + maintenanceColumns + `)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14)`
	_, err := r.db.ExecContext(ctx, query,
		rec.ID, rec.CarID, rec.WorkshopName, rec.WorkshopDetails, rec.PhoneNumber,
		rec.Date, rec.ReturnDate, rec.Amount, rec.AmountPaid, rec.PaymentStatus,
		rec.Description, rec.Image, rec.CreatedOn, rec.UpdatedOn)
	return err
}

func (r *maintenanceRepository) GetByID(ctx context.Context, id string) (*domain.MaintenanceRecord, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_records WHERE id = $1`, id)
	rec := &domain.MaintenanceRecord{}
	err := scanMaintenance(row, rec)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return rec, nil
}

func (r *maintenanceRepository) Update(ctx context.Context, rec *domain.MaintenanceRecord) error {
	rec.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE maintenance_records SET car_id=$1, workshop_name=$2, workshop_details=$3, phone_number=$4,
	          date=$5, return_date=$6, amount=$7, amount_paid=$8, payment_status=$9,
	          description=$10, image=$11, updated_on=$12 WHERE id=$13`
	res, err := r.db.ExecContext(ctx, query,
		rec.CarID, rec.WorkshopName, rec.WorkshopDetails, rec.PhoneNumber,
		rec.Date, rec.ReturnDate, rec.Amount, rec.AmountPaid, rec.PaymentStatus,
		rec.Description, rec.Image, rec.UpdatedOn, rec.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM maintenance_records WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *maintenanceRepository) List(ctx context.Context) ([]domain.MaintenanceRecord, error) {
	return r.list(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_records ORDER BY date DESC`)
}

func (r *maintenanceRepository) ListByCar(ctx context.Context, carID string) ([]domain.MaintenanceRecord, error) {
	return r.list(ctx, `SELECT `+maintenanceColumns+` FROM maintenance_records WHERE car_id = $1 ORDER BY date DESC`, carID)
}

func (r *maintenanceRepository) list(ctx context.Context, query string, args ...any) ([]domain.MaintenanceRecord, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var records []domain.MaintenanceRecord
	for rows.Next() {
		var rec domain.MaintenanceRecord
		if err := scanMaintenance(rows, &rec); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	return records, rows.Err()
}

func scanMaintenance(row rowScanner, rec *domain.MaintenanceRecord) error {
	return row.Scan(&rec.ID, &rec.CarID, &rec.WorkshopName, &rec.WorkshopDetails, &rec.PhoneNumber,
		&rec.Date, &rec.ReturnDate, &rec.Amount, &rec.AmountPaid, &rec.PaymentStatus,
		&rec.Description, &rec.Image, &rec.CreatedOn, &rec.UpdatedOn)
}
