package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports"
)

type UserService struct {
	repo ports.UserRepo
}

func NewUserService(repo ports.UserRepo) *UserService {
	return &UserService{repo: repo}
}

func (s *UserService) Create(ctx context.Context, input domain.CreateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be organizer or attendee", domain.ErrValidation)
	}

	user := &domain.User{
		ID:        uuid.New().String(),
		Name:      input.Name,
		Email:     input.Email,
		Role:      input.Role,
		CreatedAt: time.Now().UTC(),
	}

	if err := s.repo.Create(ctx, user); err != nil {
		return nil, fmt.Errorf("create user: %w", err)
	}

	return user, nil
}

func (s *UserService) Update(ctx context.Context, id string, input domain.UpdateUserInput) (*domain.User, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: name is required", domain.ErrValidation)
	}
	if input.Email == "" {
		return nil, fmt.Errorf("%w: email is required", domain.ErrValidation)
	}
	if !input.Role.Valid() {
		return nil, fmt.Errorf("%w: role must be organizer or attendee", domain.ErrValidation)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get user: %w", err)
	}

	updated := &domain.User{
		ID:             current.ID,
		Name:           input.Name,
		Email:          input.Email,
		Role:           input.Role,
		ProfilePicture: input.ProfilePicture,
		CreatedAt:      current.CreatedAt,
	}

	if err = s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update user: %w", err)
	}

	return updated, nil
}

func (s *UserService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete user: %w", err)
	}
	return nil
}

func (s *UserService) GetByID(ctx context.Context, id string) (*domain.User, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *UserService) List(ctx context.Context) ([]*domain.User, error) {
	return s.repo.List(ctx)
}
