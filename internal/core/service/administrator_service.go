package service

import (
	"context"
	"errors"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/99minutos/vehicles-api/internal/core/domain"
	"github.com/99minutos/vehicles-api/internal/core/ports"
)

// dummyHash is compared against when the email is unknown so a miss costs
// the same as a wrong password.
var dummyHash, _ = bcrypt.GenerateFromPassword([]byte("vehicles-api-dummy"), bcrypt.DefaultCost)

// AdministratorService implements administrator registration, lookup and login.
type AdministratorService struct {
	repo   ports.AdministratorRepository
	logger zerolog.Logger
	cost   int
}

func NewAdministratorService(repo ports.AdministratorRepository, logger zerolog.Logger) *AdministratorService {
	return &AdministratorService{repo: repo, logger: logger, cost: bcrypt.DefaultCost}
}

// Login returns the administrator whose email and password both match.
// Unknown email and wrong password are indistinguishable to the caller.
func (s *AdministratorService) Login(ctx context.Context, email, password string) (*domain.Administrator, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	admin, err := s.repo.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrAdministratorNotFound) {
			_ = bcrypt.CompareHashAndPassword(dummyHash, []byte(password))
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if bcrypt.CompareHashAndPassword([]byte(admin.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	s.logger.Info().Int64("administrator_id", admin.ID).Str("role", admin.Role).Msg("administrator logged in")
	return admin, nil
}

// Create registers an administrator. An empty role defaults to Editor.
// Email uniqueness is not enforced here.
func (s *AdministratorService) Create(ctx context.Context, email, password, role string) (*domain.Administrator, error) {
	if role == "" {
		role = domain.RoleEditor
	}

	var msgs []string
	if email == "" {
		msgs = append(msgs, "email is required")
	}
	if password == "" {
		msgs = append(msgs, "password is required")
	}
	if !domain.ValidRole(role) {
		msgs = append(msgs, "role must be one of: "+domain.RoleAdm+" "+domain.RoleEditor)
	}
	if len(msgs) > 0 {
		return nil, domain.NewValidationError(msgs...)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), s.cost)
	if err != nil {
		return nil, err
	}

	admin := &domain.Administrator{
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
	}
	if err := s.repo.Create(ctx, admin); err != nil {
		s.logger.Error().Err(err).Msg("failed to create administrator")
		return nil, err
	}

	s.logger.Info().Int64("administrator_id", admin.ID).Str("role", role).Msg("administrator created")
	return admin, nil
}

func (s *AdministratorService) GetByID(ctx context.Context, id int64) (*domain.Administrator, error) {
	return s.repo.FindByID(ctx, id)
}

func (s *AdministratorService) List(ctx context.Context, page domain.Page) ([]domain.Administrator, error) {
	return s.repo.List(ctx, page)
}

// EnsureSeed creates the bootstrap administrator unless one with that email
// already exists. It reports whether a new row was written.
func (s *AdministratorService) EnsureSeed(ctx context.Context, email, password, role string) (bool, error) {
	_, err := s.repo.FindByEmail(ctx, email)
	if err == nil {
		return false, nil
	}
	if !errors.Is(err, domain.ErrAdministratorNotFound) {
		return false, err
	}
	if _, err := s.Create(ctx, email, password, role); err != nil {
		return false, err
	}
	return true, nil
}
