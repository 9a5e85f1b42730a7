package service

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports"
)

type LocationService struct {
	repo ports.LocationRepo
}

func NewLocationService(repo ports.LocationRepo) *LocationService {
	return &LocationService{repo: repo}
}

func (s *LocationService) Create(ctx context.Context, input domain.CreateLocationInput) (*domain.Location, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: location_name is required", domain.ErrValidation)
	}
	if input.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	location := &domain.Location{
		ID:       uuid.New().String(),
		Name:     input.Name,
		Address:  input.Address,
		Capacity: input.Capacity,
	}

	if err := s.repo.Create(ctx, location); err != nil {
		return nil, fmt.Errorf("create location: %w", err)
	}

	return location, nil
}

func (s *LocationService) Update(ctx context.Context, id string, input domain.UpdateLocationInput) (*domain.Location, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: location_name is required", domain.ErrValidation)
	}
	if input.Address == "" {
		return nil, fmt.Errorf("%w: address is required", domain.ErrValidation)
	}
	if input.Capacity <= 0 {
		return nil, fmt.Errorf("%w: capacity must be positive", domain.ErrValidation)
	}

	location := &domain.Location{
		ID:       id,
		Name:     input.Name,
		Address:  input.Address,
		Capacity: input.Capacity,
	}

	if err := s.repo.Update(ctx, location); err != nil {
		return nil, fmt.Errorf("update location: %w", err)
	}

	return location, nil
}

func (s *LocationService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete location: %w", err)
	}
	return nil
}

func (s *LocationService) GetByID(ctx context.Context, id string) (*domain.Location, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *LocationService) List(ctx context.Context) ([]*domain.Location, error) {
	return s.repo.List(ctx)
}
