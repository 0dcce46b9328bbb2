package ports

import (
	"context"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// AdministratorRepository defines persistence operations for administrators.
type AdministratorRepository interface {
	// FindByID returns domain.ErrAdministratorNotFound when no row matches.
	FindByID(ctx context.Context, id int64) (*domain.Administrator, error)
	// FindByEmail returns the first administrator with the given email.
	FindByEmail(ctx context.Context, email string) (*domain.Administrator, error)
	List(ctx context.Context, page domain.Page) ([]domain.Administrator, error)
	// Create inserts a and sets a.ID.
	Create(ctx context.Context, a *domain.Administrator) error
}
