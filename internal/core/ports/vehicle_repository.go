package ports

import (
	"context"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// VehicleFilter carries the query parameters for listing vehicles.
type VehicleFilter struct {
	Page domain.Page
	Name string // optional: case-insensitive substring match on name
	// Brand is accepted from callers but not applied to the query.
	Brand string
}

// VehicleRepository defines persistence operations for vehicles.
type VehicleRepository interface {
	FindByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
	// Create inserts v and sets v.ID.
	Create(ctx context.Context, v *domain.Vehicle) error
	// Update overwrites name, brand and year of the row with v.ID.
	Update(ctx context.Context, v *domain.Vehicle) error
	Delete(ctx context.Context, id int64) error
}
