package ports

import (
	"context"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

type BookingRepo interface {
	// Create inserts the booking and reserves its slots on the owning
	// event in one transaction.
	Create(ctx context.Context, b *domain.Booking) error
	GetByID(ctx context.Context, id string) (*domain.Booking, error)
	List(ctx context.Context) ([]*domain.Booking, error)
	ListByUser(ctx context.Context, userID string) ([]*domain.Booking, error)
	// Update rewrites the booking and settles the slot difference with
	// the previous state: releases prevSlots back to prevEventID when the
	// booking moved, otherwise applies the delta.
	Update(ctx context.Context, b *domain.Booking, prevEventID string, prevSlots int) error
	// Delete removes the booking and releases its slots back to the event.
	Delete(ctx context.Context, id string) error
}
