package service

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/inc-inventory/inventory-system/internal/core/domain"
	"github.com/inc-inventory/inventory-system/internal/core/ports"
)

const userListLimit = 100

type userService struct {
	repo ports.UserRepository
	log  zerolog.Logger
	now  func() time.Time
}

// NewUserService returns a UserService implementation.
func NewUserService(repo ports.UserRepository, log zerolog.Logger) ports.UserService {
	return &userService{repo: repo, log: log, now: time.Now}
}

func (s *userService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx, userListLimit)
}

func (s *userService) Create(ctx context.Context, in ports.SignupInput) (*domain.User, error) {
	user, err := createUser(ctx, s.repo, in, s.now().UTC())
	if err != nil {
		return nil, err
	}
	s.log.Info().Str("user_id", user.ID).Str("role", user.Role.String()).Msg("user created")
	return user, nil
}

func (s *userService) UpdateRole(ctx context.Context, id string, role domain.Role) (*domain.User, error) {
	if !role.Valid() {
		return nil, domain.ErrInvalidRole
	}
	user, err := s.repo.Update(ctx, id, domain.UserPatch{Role: &role})
	if err != nil {
		return nil, fmt.Errorf("update role: %w", err)
	}
	s.log.Info().Str("user_id", id).Str("role", role.String()).Msg("user role changed")
	return user, nil
}

func (s *userService) SetActive(ctx context.Context, id string, active bool) (*domain.User, error) {
	user, err := s.repo.Update(ctx, id, domain.UserPatch{IsActive: &active})
	if err != nil {
		return nil, fmt.Errorf("set active: %w", err)
	}
	s.log.Info().Str("user_id", id).Bool("active", active).Msg("user activation changed")
	return user, nil
}

func (s *userService) UpdateSelf(ctx context.Context, id string, in ports.SelfUpdateInput) (*domain.User, error) {
	var patch domain.UserPatch
	if in.Username != nil {
		name := strings.TrimSpace(*in.Username)
		if name == "" {
			return nil, domain.ErrInvalidCredentials
		}
		patch.Username = &name
	}
	if in.Password != nil {
		if *in.Password == "" {
			return nil, domain.ErrInvalidCredentials
		}
		hash, err := bcrypt.GenerateFromPassword([]byte(*in.Password), bcrypt.DefaultCost)
		if err != nil {
			return nil, err
		}
		h := string(hash)
		patch.PasswordHash = &h
	}
	if patch.Empty() {
		return nil, domain.ErrNoUpdateFields
	}
	return s.repo.Update(ctx, id, patch)
}

func (s *userService) SetProfilePicture(ctx context.Context, id, path string) (*domain.User, error) {
	return s.repo.Update(ctx, id, domain.UserPatch{ProfilePicture: &path})
}
