package sqldb

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"gorm.io/gorm"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

// likeEscaper makes user input match literally under ESCAPE '!'.
var likeEscaper = strings.NewReplacer(`!`, `!!`, `%`, `!%`, `_`, `!_`)

// VehicleRepository implements ports.VehicleRepository with GORM.
type VehicleRepository struct {
	db *gorm.DB
}

func NewVehicleRepository(db *gorm.DB) *VehicleRepository {
	return &VehicleRepository{db: db}
}

func (r *VehicleRepository) FindByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	var row vehicleRow
	if err := r.db.WithContext(ctx).First(&row, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, domain.ErrVehicleNotFound
		}
		return nil, fmt.Errorf("find vehicle: %w", err)
	}
	v := row.toDomain()
	return &v, nil
}

// List applies the optional name filter and pagination. filter.Brand is not
// part of the query.
func (r *VehicleRepository) List(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	q := r.db.WithContext(ctx).Model(&vehicleRow{})
	if filter.Name != "" {
		// Folded in SQL on both sides; SQLite's LOWER folds ASCII letters only.
		pattern := "%" + likeEscaper.Replace(filter.Name) + "%"
		q = q.Where("LOWER(name) LIKE LOWER(?) ESCAPE '!'", pattern)
	}

	var rows []vehicleRow
	if err := paginate(q.Order("id"), filter.Page).Find(&rows).Error; err != nil {
		return nil, fmt.Errorf("list vehicles: %w", err)
	}

	out := make([]domain.Vehicle, len(rows))
	for i, row := range rows {
		out[i] = row.toDomain()
	}
	return out, nil
}

func (r *VehicleRepository) Create(ctx context.Context, v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	row := vehicleRow{Name: v.Name, Brand: v.Brand, Year: v.Year}
	if err := r.db.WithContext(ctx).Create(&row).Error; err != nil {
		return fmt.Errorf("insert vehicle: %w", err)
	}
	v.ID = row.ID
	return nil
}

func (r *VehicleRepository) Update(ctx context.Context, v *domain.Vehicle) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Model(&vehicleRow{}).Where("id = ?", v.ID).
		Updates(map[string]any{"name": v.Name, "brand": v.Brand, "year": v.Year})
	if res.Error != nil {
		return fmt.Errorf("update vehicle: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return r.existsOrNotFound(ctx, v.ID)
	}
	return nil
}

func (r *VehicleRepository) Delete(ctx context.Context, id int64) error {
	ctx, cancel := context.WithTimeout(ctx, defaultTimeout)
	defer cancel()

	res := r.db.WithContext(ctx).Delete(&vehicleRow{}, id)
	if res.Error != nil {
		return fmt.Errorf("delete vehicle: %w", res.Error)
	}
	if res.RowsAffected == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}

// existsOrNotFound disambiguates a zero-row update: MySQL reports 0 affected
// rows when the new values equal the old ones.
func (r *VehicleRepository) existsOrNotFound(ctx context.Context, id int64) error {
	var n int64
	if err := r.db.WithContext(ctx).Model(&vehicleRow{}).Where("id = ?", id).Count(&n).Error; err != nil {
		return fmt.Errorf("update vehicle: %w", err)
	}
	if n == 0 {
		return domain.ErrVehicleNotFound
	}
	return nil
}
