package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"time"

	"fleetrental-backend/internal/domain"
	"fleetrental-backend/internal/repository"

	"github.com/google/uuid"
)

type transactionRepository struct {
	db *sql.DB
}

func NewTransactionRepository(db *sql.DB) repository.TransactionRepository {
	return &transactionRepository{db: db}
}

const transactionColumns = `id, car_id, customer_id, dealer_id, start_date, end_date, total, status,
	payment_status, amount_paid, breakdown, daily_rate, start_mileage, notes, created_on, updated_on`

func (r *transactionRepository) Create(ctx context.Context, tx *domain.Transaction) error {
	if tx.ID == "" {
		tx.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	tx.CreatedOn = now
	tx.UpdatedOn = now
	if tx.Status == "" {
		tx.Status = domain.TransactionStatusActive
	}

	breakdown, err := json.Marshal(tx.Breakdown)
	if err != nil {
		return err
	}

	query := `INSERT INTO transactions (` + transactionColumns + `)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16)`
	if _, err := r.db.ExecContext(ctx, query,
		tx.ID, tx.CarID, tx.CustomerID, tx.DealerID, tx.StartDate, tx.EndDate,
		tx.Total, tx.Status, tx.PaymentStatus, tx.AmountPaid, breakdown,
		tx.DailyRate, tx.StartMileage, tx.Notes, tx.CreatedOn, tx.UpdatedOn); err != nil {
		return err
	}

	for i := range tx.Payments {
		if err := r.AddPayment(ctx, tx.ID, &tx.Payments[i]); err != nil {
			return err
		}
	}
	return nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	tx, err := scanTransaction(row)
	if err != nil {
		return nil, err
	}
	if err := r.loadPayments(ctx, tx); err != nil {
		return nil, err
	}
	return tx, nil
}

func (r *transactionRepository) Update(ctx context.Context, tx *domain.Transaction) error {
	tx.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	breakdown, err := json.Marshal(tx.Breakdown)
	if err != nil {
		return err
	}

	query := `UPDATE transactions SET car_id=$1, customer_id=$2, dealer_id=$3, start_date=$4, end_date=$5,
	          total=$6, status=$7, payment_status=$8, amount_paid=$9, breakdown=$10,
	          daily_rate=$11, start_mileage=$12, notes=$13, updated_on=$14 WHERE id=$15`
	res, err := r.db.ExecContext(ctx, query,
		tx.CarID, tx.CustomerID, tx.DealerID, tx.StartDate, tx.EndDate,
		tx.Total, tx.Status, tx.PaymentStatus, tx.AmountPaid, breakdown,
		tx.DailyRate, tx.StartMileage, tx.Notes, tx.UpdatedOn, tx.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) Delete(ctx context.Context, id string) error {
	if _, err := r.db.ExecContext(ctx, `DELETE FROM payments WHERE transaction_id = $1`, id); err != nil {
		return err
	}
	res, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) List(ctx context.Context) ([]domain.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions ORDER BY created_on DESC`)
}

func (r *transactionRepository) ListByCar(ctx context.Context, carID string) ([]domain.Transaction, error) {
	return r.list(ctx, `SELECT `+transactionColumns+` FROM transactions WHERE car_id = $1 ORDER BY created_on DESC`, carID)
}

func (r *transactionRepository) list(ctx context.Context, query string, args ...any) ([]domain.Transaction, error) {
	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var transactions []domain.Transaction
	for rows.Next() {
		tx, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, *tx)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range transactions {
		if err := r.loadPayments(ctx, &transactions[i]); err != nil {
			return nil, err
		}
	}
	return transactions, nil
}

func (r *transactionRepository) AddPayment(ctx context.Context, transactionID string, p *domain.Payment) error {
	if p.ID == "" {
		p.ID = uuid.NewString()
	}
	if p.Date == "" {
		p.Date = time.Now().UTC().Format(time.RFC3339)
	}
	query := `INSERT INTO payments (id, transaction_id, date, amount, type, medium, notes)
	          VALUES ($1,$2,$3,$4,$5,$6,$7)`
	_, err := r.db.ExecContext(ctx, query, p.ID, transactionID, p.Date, p.Amount, p.Type, p.Medium, p.Notes)
	return err
}

func (r *transactionRepository) DeletePayment(ctx context.Context, transactionID, paymentID string) error {
	res, err := r.db.ExecContext(ctx,
		`DELETE FROM payments WHERE id = $1 AND transaction_id = $2`, paymentID, transactionID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *transactionRepository) loadPayments(ctx context.Context, tx *domain.Transaction) error {
	rows, err := r.db.QueryContext(ctx,
		`SELECT id, date, amount, type, medium, notes FROM payments WHERE transaction_id = $1 ORDER BY date`, tx.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	for rows.Next() {
		var p domain.Payment
		if err := rows.Scan(&p.ID, &p.Date, &p.Amount, &p.Type, &p.Medium, &p.Notes); err != nil {
			return err
		}
		tx.Payments = append(tx.Payments, p)
	}
	return rows.Err()
}

func scanTransaction(row rowScanner) (*domain.Transaction, error) {
	tx := &domain.Transaction{}
	var breakdown []byte
	err := row.Scan(&tx.ID, &tx.CarID, &tx.CustomerID, &tx.DealerID, &tx.StartDate, &tx.EndDate,
		&tx.Total, &tx.Status, &tx.PaymentStatus, &tx.AmountPaid, &breakdown,
		&tx.DailyRate, &tx.StartMileage, &tx.Notes, &tx.CreatedOn, &tx.UpdatedOn)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	if len(breakdown) > 0 {
		if err := json.Unmarshal(breakdown, &tx.Breakdown); err != nil {
			return nil, err
		}
	}
	return tx, nil
}
