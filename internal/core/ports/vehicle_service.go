package ports

import (
	"context"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// VehicleService defines use-case operations for vehicles.
type VehicleService interface {
	Create(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error)
	GetByID(ctx context.Context, id int64) (*domain.Vehicle, error)
	List(ctx context.Context, filter VehicleFilter) ([]domain.Vehicle, error)
	Update(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error)
	Delete(ctx context.Context, id int64) error
}
