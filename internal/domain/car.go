package domain

type CarStatus string

const (
	CarStatusAvailable     CarStatus = "Available"
	CarStatusOnRent        CarStatus = "On Rent"
	CarStatusOnMaintenance CarStatus = "On Maintenance"

	// Legacy stored values still present in older records. They are accepted
	// on input and normalized to Available by the status resolver.
	CarStatusLegacyRented      CarStatus = "Rented"
	CarStatusLegacyMaintenance CarStatus = "Maintenance"
)

type FuelType string

const (
	FuelTypePetrol   FuelType = "Petrol"
	FuelTypeDiesel   FuelType = "Diesel"
	FuelTypeCNG      FuelType = "CNG"
	FuelTypeElectric FuelType = "Electric"
)

type Car struct {
	ID          string    `json:"id"`
	Make        string    `json:"make"`
	Model       string    `json:"model"`
	Year        int       `json:"year"`
	PlateNumber string    `json:"plate_number"`
	Status      CarStatus `json:"status"` // stored hint; display status is resolved, never read verbatim
	// Rate table. Price is the daily rate and is required; the ten-day and
	// monthly rates are optional, 0 means unset.
	Price        float64 `json:"price"`
	TenDayPrice  float64 `json:"ten_day_price,omitempty"`
	MonthlyPrice float64 `json:"monthly_price,omitempty"`
	Mileage      int32   `json:"mileage"`
	FuelType     FuelType `json:"fuel_type"`
	// Document validity dates, date-only yyyy-mm-dd. Empty means unknown.
	FitnessValidTo   string `json:"fitness_valid_to,omitempty"`
	TaxValidTo       string `json:"tax_valid_to,omitempty"`
	InsuranceValidTo string `json:"insurance_valid_to,omitempty"`
	// Opaque references to uploaded document images.
	RCImage        string `json:"rc_image,omitempty"`
	InsuranceImage string `json:"insurance_image,omitempty"`
	CreatedOn      string `json:"created_on"`
	UpdatedOn      string `json:"updated_on"`
}

// CarView is a display-ready car: the stored record plus the status
// resolved from the current time and active rental/maintenance records.
type CarView struct {
	Car
	ResolvedStatus CarStatus `json:"resolved_status"`
}
