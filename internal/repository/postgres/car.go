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

type carRepository struct {
	db *sql.DB
}

func NewCarRepository(db *sql.DB) repository.CarRepository {
	return &carRepository{db: db}
}

const carColumns = `id, make, model, year, plate_number, status, price, ten_day_price, monthly_price,
	mileage, fuel_type, fitness_valid_to, tax_valid_to, insurance_valid_to,
	rc_image, insurance_image, created_on, updated_on`

func (r *carRepository) Create(ctx context.Context, car *domain.Car) error {
	if car.ID == "" {
		car.ID = uuid.NewString()
	}
	now := time.Now().UTC().Format(time.RFC3339)
	car.CreatedOn = now
	car.UpdatedOn = now
	if car.Status == "" {
		car.Status = domain.CarStatusAvailable
	}

	query := `INSERT INTO cars (` + carColumns + `)
	          VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15,$16,$17,$18)`
	_, err := r.db.ExecContext(ctx, query,
		car.ID, car.Make, car.Model, car.Year, car.PlateNumber, car.Status,
		car.Price, car.TenDayPrice, car.MonthlyPrice, car.Mileage, car.FuelType,
		car.FitnessValidTo, car.TaxValidTo, car.InsuranceValidTo,
		car.RCImage, car.InsuranceImage, car.CreatedOn, car.UpdatedOn)
	return err
}

func (r *carRepository) GetByID(ctx context.Context, id string) (*domain.Car, error) {
	row := r.db.QueryRowContext(ctx, `SELECT `+carColumns+` FROM cars WHERE id = $1`, id)
	car, err := scanCar(row)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, repository.ErrNotFound
	}
	return car, err
}

func (r *carRepository) Update(ctx context.Context, car *domain.Car) error {
	car.UpdatedOn = time.Now().UTC().Format(time.RFC3339)
	query := `UPDATE cars SET make=$1, model=$2, year=$3, plate_number=$4, status=$5, price=$6,
	          ten_day_price=$7, monthly_price=$8, mileage=$9, fuel_type=$10,
	          fitness_valid_to=$11, tax_valid_to=$12, insurance_valid_to=$13,
	          rc_image=$14, insurance_image=$15, updated_on=$16 WHERE id=$17`
	res, err := r.db.ExecContext(ctx, query,
		car.Make, car.Model, car.Year, car.PlateNumber, car.Status, car.Price,
		car.TenDayPrice, car.MonthlyPrice, car.Mileage, car.FuelType,
		car.FitnessValidTo, car.TaxValidTo, car.InsuranceValidTo,
		car.RCImage, car.InsuranceImage, car.UpdatedOn, car.ID)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *carRepository) Delete(ctx context.Context, id string) error {
	res, err := r.db.ExecContext(ctx, `DELETE FROM cars WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return repository.ErrNotFound
	}
	return nil
}

func (r *carRepository) List(ctx context.Context) ([]domain.Car, error) {
	rows, err := r.db.QueryContext(ctx, `SELECT `+carColumns+` FROM cars ORDER BY created_on DESC`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var cars []domain.Car
	for rows.Next() {
		car, err := scanCar(rows)
		if err != nil {
			return nil, err
		}
		cars = append(cars, *car)
	}
	return cars, rows.Err()
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanCar(row rowScanner) (*domain.Car, error) {
	car := &domain.Car{}
	err := row.Scan(&car.ID, &car.Make, &car.Model, &car.Year, &car.PlateNumber, &car.Status,
		&car.Price, &car.TenDayPrice, &car.MonthlyPrice, &car.Mileage, &car.FuelType,
		&car.FitnessValidTo, &car.TaxValidTo, &car.InsuranceValidTo,
		&car.RCImage, &car.InsuranceImage, &car.CreatedOn, &car.UpdatedOn)
	if err != nil {
		return nil, err
	}
	return car, nil
}
