package ports

import (
	"context"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

type BookingNotifier interface {
	NotifyBookingCreated(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingUpdated(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
	NotifyBookingCancelled(ctx context.Context, user *domain.User, event *domain.Event, booking *domain.Booking)
}
