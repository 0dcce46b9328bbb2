package ports

import (
	"context"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// AdministratorService covers administrator lookup, registration and login.
type AdministratorService interface {
	Login(ctx context.Context, email, password string) (*domain.Administrator, error)
	Create(ctx context.Context, email, password, role string) (*domain.Administrator, error)
	GetByID(ctx context.Context, id int64) (*domain.Administrator, error)
	List(ctx context.Context, page domain.Page) ([]domain.Administrator, error)
}
