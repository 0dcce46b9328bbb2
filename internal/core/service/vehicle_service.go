package service

import (
	"context"
	"sync"

	"github.com/rs/zerolog"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

// VehicleCache abstracts the read-through cache for single-vehicle lookups (Redis).
// Get returns (nil, nil) on a miss.
type VehicleCache interface {
	Get(ctx context.Context, id int64) (*domain.Vehicle, error)
	Set(ctx context.Context, v *domain.Vehicle) error
	Invalidate(ctx context.Context, id int64) error
}

// StructValidator validates a tagged struct and returns a *domain.ValidationError.
type StructValidator interface {
	Struct(i any) error
}

type noopCache struct{}

func (noopCache) Get(context.Context, int64) (*domain.Vehicle, error) { return nil, nil }
func (noopCache) Set(context.Context, *domain.Vehicle) error          { return nil }
func (noopCache) Invalidate(context.Context, int64) error             { return nil }

type VehicleService struct {
	repo     ports.VehicleRepository
	cache    VehicleCache
	validate StructValidator
	logger   zerolog.Logger

	// fillMu orders cache fills against invalidations. writes counts completed
	// updates and deletes; a fill is dropped when it changed during the read.
	fillMu sync.Mutex
	writes uint64
}

// NewVehicleService wires the service. A nil cache disables caching.
func NewVehicleService(repo ports.VehicleRepository, cache VehicleCache, validate StructValidator, logger zerolog.Logger) *VehicleService {
	if cache == nil {
		cache = noopCache{}
	}
	return &VehicleService{repo: repo, cache: cache, validate: validate, logger: logger}
}

// Create validates the input and persists a new vehicle. No row is written
// when validation fails.
func (s *VehicleService) Create(ctx context.Context, in domain.VehicleInput) (*domain.Vehicle, error) {
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	v := &domain.Vehicle{Name: in.Name, Brand: in.Brand, Year: in.Year}
	if err := s.repo.Create(ctx, v); err != nil {
		s.logger.Error().Err(err).Msg("failed to create vehicle")
		return nil, err
	}

	s.logger.Info().Int64("vehicle_id", v.ID).Str("brand", v.Brand).Msg("vehicle created")
	return v, nil
}

func (s *VehicleService) GetByID(ctx context.Context, id int64) (*domain.Vehicle, error) {
	cached, err := s.cache.Get(ctx, id)
	if err != nil {
		s.logger.Warn().Err(err).Int64("vehicle_id", id).Msg("vehicle cache read failed")
	} else if cached != nil {
		return cached, nil
	}

	s.fillMu.Lock()
	seen := s.writes
	s.fillMu.Unlock()

	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	s.fill(ctx, v, seen)
	return v, nil
}

// List pages through vehicles, optionally filtered by name. filter.Brand is
// passed through untouched and not applied.
func (s *VehicleService) List(ctx context.Context, filter ports.VehicleFilter) ([]domain.Vehicle, error) {
	return s.repo.List(ctx, filter)
}

// Update replaces name, brand and year of an existing vehicle.
func (s *VehicleService) Update(ctx context.Context, id int64, in domain.VehicleInput) (*domain.Vehicle, error) {
	v, err := s.repo.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if err := s.validate.Struct(in); err != nil {
		return nil, err
	}

	v.Name, v.Brand, v.Year = in.Name, in.Brand, in.Year
	if err := s.repo.Update(ctx, v); err != nil {
		return nil, err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("vehicle_id", id).Msg("vehicle updated")
	return v, nil
}

func (s *VehicleService) Delete(ctx context.Context, id int64) error {
	if _, err := s.repo.FindByID(ctx, id); err != nil {
		return err
	}
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.invalidate(ctx, id)

	s.logger.Info().Int64("vehicle_id", id).Msg("vehicle deleted")
	return nil
}

// fill caches v unless a write completed after seen was taken.
func (s *VehicleService) fill(ctx context.Context, v *domain.Vehicle, seen uint64) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()

	if s.writes != seen {
		return
	}
	if err := s.cache.Set(ctx, v); err != nil {
		s.logger.Warn().Err(err).Int64("vehicle_id", v.ID).Msg("vehicle cache write failed")
	}
}

// invalidate must run after the store write it follows.
func (s *VehicleService) invalidate(ctx context.Context, id int64) {
	s.fillMu.Lock()
	defer s.fillMu.Unlock()

	s.writes++
	if err := s.cache.Invalidate(ctx, id); err != nil {
		s.logger.Warn().Err(err).Int64("vehicle_id", id).Msg("vehicle cache invalidation failed")
	}
}
