package sqldb

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"

	"github.com/99minutos/vehicles-api/internal/core/domain"
)

// AdministratorRepository implements ports.AdministratorRepository with GORM.
type AdministratorRepository struct {
	db *gorm.DB
}

func NewAdministratorRepository(db *gorm.DB) *AdministratorRepository {
	return &AdministratorRepository{db: db}
}

func (r *AdministratorRepository) FindByID(ctx context.Context, id int64) (*domain.Administrator, error) {
	return r.findOne(ctx, "id = ?", id)
}

func (r *AdministratorRepository) FindByEmail(ctx context.Context, email string) (*domain.Administrator, error) {
	return r.findOne(ctx, "email = ?", email)
}

func (r *AdministratorRepository) findOne(ctx context.Context, query string, arg any) (*domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row administratorRow
	if err := r.db.WithContext(ctx).Where(query, arg).Order("id").First(&row).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrAdministratorNotFound
		}
		return nil, fmt.Errorf("find administrator: %w", err)
	}
	a := row.toDomain()
	return &a, nil
}

func (r *AdministratorRepository) List(ctx context.Context, page domain.Page) ([]domain.Administrator, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var rows []administratorRow
	q := paginate(r.db.WithContext(ctx).Order("id"), page)
	if err := q.Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list administrators: %w", err)
	}

	out := make([]domain.Administrator, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *AdministratorRepository) Create(ctx context.Context, a *domain.Administrator) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := administratorRow{Email: a.Email, Password: a.PasswordHash, Role: a.Role}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert administrator: %w", err)
	}
	a.ID = row.ID
	return nil
}
