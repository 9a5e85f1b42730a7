package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports"
)

type EventService struct {
	repo         ports.EventRepo
	locationRepo ports.LocationRepo
}

func NewEventService(repo ports.EventRepo, locationRepo ports.LocationRepo) *EventService {
	return &EventService{
		repo:         repo,
		locationRepo: locationRepo,
	}
}

func (s *EventService) Create(ctx context.Context, input domain.CreateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: event_name is required", domain.ErrValidation)
	}
	if input.OrganizerID == "" {
		return nil, fmt.Errorf("%w: organizer_id is required", domain.ErrValidation)
	}

	if err := s.validateSchedule(ctx, validateScheduleInput{
		Duration:       input.Duration,
		AvailableSlots: input.AvailableSlots,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationID:     input.LocationID,
	}); err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	event := &domain.Event{
		ID:             uuid.New().String(),
		OrganizerID:    input.OrganizerID,
		Name:           input.Name,
		Description:    input.Description,
		Duration:       input.Duration,
		AvailableSlots: input.AvailableSlots,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationID:     input.LocationID,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	if err := s.repo.Create(ctx, event); err != nil {
		return nil, fmt.Errorf("create event: %w", err)
	}

	return event, nil
}

func (s *EventService) Update(ctx context.Context, id string, input domain.UpdateEventInput) (*domain.Event, error) {
	if input.Name == "" {
		return nil, fmt.Errorf("%w: event_name is required", domain.ErrValidation)
	}

	current, err := s.repo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get event: %w", err)
	}

	if err = s.validateSchedule(ctx, validateScheduleInput{
		Duration:       input.Duration,
		AvailableSlots: input.AvailableSlots,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationID:     input.LocationID,
		ExcludeEventID: current.ID,
	}); err != nil {
		return nil, err
	}

	updated := &domain.Event{
		ID:             current.ID,
		OrganizerID:    current.OrganizerID,
		Name:           input.Name,
		Description:    input.Description,
		Duration:       input.Duration,
		AvailableSlots: input.AvailableSlots,
		StartDate:      input.StartDate,
		EndDate:        input.EndDate,
		LocationID:     input.LocationID,
		CreatedAt:      current.CreatedAt,
		UpdatedAt:      time.Now().UTC(),
	}

	if err = s.repo.Update(ctx, updated); err != nil {
		return nil, fmt.Errorf("update event: %w", err)
	}

	return updated, nil
}

func (s *EventService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete event: %w", err)
	}
	return nil
}

func (s *EventService) GetByID(ctx context.Context, id string) (*domain.Event, error) {
	return s.repo.GetByID(ctx, id)
}

func (s *EventService) List(ctx context.Context) ([]*domain.Event, error) {
	return s.repo.List(ctx)
}

type validateScheduleInput struct {
	Duration       int
	AvailableSlots int
	StartDate      time.Time
	EndDate        time.Time
	LocationID     string
	ExcludeEventID string
}

// validateSchedule enforces the event-level rules: duration bounds, date
// ordering, capacity ceiling of the venue and no double-booked venue.
func (s *EventService) validateSchedule(ctx context.Context, in validateScheduleInput) error {
	if !domain.DurationInBounds(in.Duration) {
		return fmt.Errorf("%w: duration must be between %d and %d hours",
			domain.ErrValidation, domain.MinEventDuration, domain.MaxEventDuration)
	}
	if !domain.DateRangeValid(in.StartDate, in.EndDate) {
		return fmt.Errorf("%w: start_date must not be after end_date", domain.ErrValidation)
	}
	if in.LocationID == "" {
		return fmt.Errorf("%w: location_id is required", domain.ErrValidation)
	}

	location, err := s.locationRepo.GetByID(ctx, in.LocationID)
	if err != nil {
		return fmt.Errorf("check location: %w", err)
	}

	if !domain.CapacityRespected(in.AvailableSlots, location.Capacity) {
		return fmt.Errorf("%w: available_slots exceeds location capacity of %d",
			domain.ErrValidation, location.Capacity)
	}

	others, err := s.repo.ListByLocation(ctx, in.LocationID)
	if err != nil {
		return fmt.Errorf("list events at location: %w", err)
	}
	for _, other := range others {
		if other.ID == in.ExcludeEventID {
			continue
		}
		if domain.RangesOverlap(in.StartDate, in.EndDate, other.StartDate, other.EndDate) {
			return fmt.Errorf("%w: location is already booked for an overlapping period", domain.ErrValidation)
		}
	}

	return nil
}
