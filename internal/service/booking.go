package service

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/wb-go/wbf/logger"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
	"github.com/MB-Montecillo/EMS-Webdev2/internal/service/ports"
)

type BookingService struct {
	bookingRepo ports.BookingRepo
	eventRepo   ports.EventRepo
	userRepo    ports.UserRepo
	notifier    ports.BookingNotifier
	logger      logger.Logger
}

func NewBookingService(
	bookingRepo ports.BookingRepo,
	eventRepo ports.EventRepo,
	userRepo ports.UserRepo,
	notifier ports.BookingNotifier,
	logger logger.Logger,
) *BookingService {
	return &BookingService{
		bookingRepo: bookingRepo,
		eventRepo:   eventRepo,
		userRepo:    userRepo,
		notifier:    notifier,
		logger:      logger,
	}
}

func (s *BookingService) Create(ctx context.Context, input domain.CreateBookingInput) (*domain.Booking, error) {
	if input.SlotsReserved < 1 {
		return nil, fmt.Errorf("%w: slots_reserved must be at least 1", domain.ErrValidation)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !domain.DateWithinRange(input.BookingDate, event.StartDate, event.EndDate) {
		return nil, fmt.Errorf("%w: booking_date is outside the event window", domain.ErrValidation)
	}

	// Early rejection only; the repository re-checks sufficiency at
	// write time, which is what actually holds under concurrency.
	if event.AvailableSlots < input.SlotsReserved {
		return nil, domain.ErrInsufficientSlots
	}

	now := time.Now().UTC()
	booking := &domain.Booking{
		ID:            uuid.New().String(),
		UserID:        input.UserID,
		EventID:       input.EventID,
		BookingDate:   input.BookingDate,
		SlotsReserved: input.SlotsReserved,
		CreatedAt:     now,
		UpdatedAt:     now,
	}
	if err = s.bookingRepo.Create(ctx, booking); err != nil {
		return nil, fmt.Errorf("create booking: %w", err)
	}

	s.logger.Info("booking created",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.String("user_id", booking.UserID),
		logger.Int("slots_reserved", booking.SlotsReserved),
	)

	go s.notifier.NotifyBookingCreated(context.WithoutCancel(ctx), user, event, booking)

	return booking, nil
}

func (s *BookingService) Update(ctx context.Context, id string, input domain.UpdateBookingInput) (*domain.Booking, error) {
	if input.SlotsReserved < 1 {
		return nil, fmt.Errorf("%w: slots_reserved must be at least 1", domain.ErrValidation)
	}

	current, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("get booking: %w", err)
	}

	event, err := s.eventRepo.GetByID(ctx, input.EventID)
	if err != nil {
		return nil, fmt.Errorf("check event: %w", err)
	}

	user, err := s.userRepo.GetByID(ctx, input.UserID)
	if err != nil {
		return nil, fmt.Errorf("check user: %w", err)
	}

	if !domain.DateWithinRange(input.BookingDate, event.StartDate, event.EndDate) {
		return nil, fmt.Errorf("%w: booking_date is outside the event window", domain.ErrValidation)
	}

	if event.ID == current.EventID {
		if delta := input.SlotsReserved - current.SlotsReserved; delta > 0 && event.AvailableSlots < delta {
			return nil, domain.ErrInsufficientSlots
		}
	} else if event.AvailableSlots < input.SlotsReserved {
		return nil, domain.ErrInsufficientSlots
	}

	updated := &domain.Booking{
		ID:            current.ID,
		UserID:        input.UserID,
		EventID:       input.EventID,
		BookingDate:   input.BookingDate,
		SlotsReserved: input.SlotsReserved,
		CreatedAt:     current.CreatedAt,
		UpdatedAt:     time.Now().UTC(),
	}
	if err = s.bookingRepo.Update(ctx, updated, current.EventID, current.SlotsReserved); err != nil {
		return nil, fmt.Errorf("update booking: %w", err)
	}

	s.logger.Info("booking updated",
		logger.String("booking_id", updated.ID),
		logger.String("event_id", updated.EventID),
		logger.Int("slots_reserved", updated.SlotsReserved),
	)

	go s.notifier.NotifyBookingUpdated(context.WithoutCancel(ctx), user, event, updated)

	return updated, nil
}

func (s *BookingService) Delete(ctx context.Context, id string) error {
	booking, err := s.bookingRepo.GetByID(ctx, id)
	if err != nil {
		return fmt.Errorf("get booking: %w", err)
	}

	if err = s.bookingRepo.Delete(ctx, id); err != nil {
		return fmt.Errorf("delete booking: %w", err)
	}

	s.logger.Info("booking cancelled",
		logger.String("booking_id", booking.ID),
		logger.String("event_id", booking.EventID),
		logger.Int("slots_released", booking.SlotsReserved),
	)

	// notify best-effort; the cancellation itself already committed
	user, err := s.userRepo.GetByID(ctx, booking.UserID)
	if err != nil {
		s.logger.Error("failed to get user for notification",
			logger.String("user_id", booking.UserID),
			logger.String("error", err.Error()),
		)
		return nil
	}
	event, err := s.eventRepo.GetByID(ctx, booking.EventID)
	if err != nil {
		s.logger.Error("failed to get event for notification",
			logger.String("event_id", booking.EventID),
			logger.String("error", err.Error()),
		)
		return nil
	}

	go s.notifier.NotifyBookingCancelled(context.WithoutCancel(ctx), user, event, booking)

	return nil
}

func (s *BookingService) GetByID(ctx context.Context, id string) (*domain.Booking, error) {
	return s.bookingRepo.GetByID(ctx, id)
}

func (s *BookingService) List(ctx context.Context) ([]*domain.Booking, error) {
	return s.bookingRepo.List(ctx)
}

func (s *BookingService) ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error) {
	return s.bookingRepo.ListByUser(ctx, userID)
}
