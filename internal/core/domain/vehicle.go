package domain

// MinVehicleYear is the oldest model year the registry accepts.
const MinVehicleYear = 1950

// Vehicle is the primary managed resource.
type Vehicle struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Brand string `json:"brand"`
	Year  int    `json:"year"`
}

// VehicleInput holds the writable vehicle fields for create and update.
type VehicleInput struct {
	Name  string `validate:"required"`
	Brand string `validate:"required"`
	Year  int    `validate:"gte=1950"`
}
