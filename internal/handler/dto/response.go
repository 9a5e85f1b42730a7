package dto

import (
	"time"

	"github.com/MB-Montecillo/EMS-Webdev2/internal/domain"
)

type EventResponse struct {
	ID             string `json:"id"`
	OrganizerID    string `json:"organizer_id"`
	EventName      string `json:"event_name"`
	Description    string `json:"description"`
	Duration       int    `json:"duration"`
	AvailableSlots int    `json:"available_slots"`
	StartDate      string `json:"start_date"`
	EndDate        string `json:"end_date"`
	LocationID     string `json:"location_id"`
	CreatedAt      string `json:"created_at"`
	UpdatedAt      string `json:"updated_at"`
}

type BookingResponse struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	EventID       string `json:"event_id"`
	BookingDate   string `json:"booking_date"`
	SlotsReserved int    `json:"slots_reserved"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

type LocationResponse struct {
	ID           string `json:"id"`
	LocationName string `json:"location_name"`
	Address      string `json:"address"`
	Capacity     int    `json:"capacity"`
}

type UserResponse struct {
	ID             string  `json:"id"`
	Name           string  `json:"name"`
	Email          string  `json:"email"`
	Role           string  `json:"role"`
	ProfilePicture *string `json:"profile_picture,omitempty"`
	CreatedAt      string  `json:"created_at"`
}

type ErrorResponse struct {
	Error string `json:"error"`
}

func ToEventResponse(e *domain.Event) EventResponse {
	return EventResponse{
		ID:             e.ID,
		OrganizerID:    e.OrganizerID,
		EventName:      e.Name,
		Description:    e.Description,
		Duration:       e.Duration,
		AvailableSlots: e.AvailableSlots,
		StartDate:      e.StartDate.Format(time.RFC3339),
		EndDate:        e.EndDate.Format(time.RFC3339),
		LocationID:     e.LocationID,
		CreatedAt:      e.CreatedAt.Format(time.RFC3339),
		UpdatedAt:      e.UpdatedAt.Format(time.RFC3339),
	}
}

func ToBookingResponse(b *domain.Booking) BookingResponse {
	return BookingResponse{
		ID:            b.ID,
		UserID:        b.UserID,
		EventID:       b.EventID,
		BookingDate:   b.BookingDate.Format(time.RFC3339),
		SlotsReserved: b.SlotsReserved,
		CreatedAt:     b.CreatedAt.Format(time.RFC3339),
		UpdatedAt:     b.UpdatedAt.Format(time.RFC3339),
	}
}

func ToLocationResponse(l *domain.Location) LocationResponse {
	return LocationResponse{
		ID:           l.ID,
		LocationName: l.Name,
		Address:      l.Address,
		Capacity:     l.Capacity,
	}
}

func ToUserResponse(u *domain.User) UserResponse {
	return UserResponse{
		ID:             u.ID,
		Name:           u.Name,
		Email:          u.Email,
		Role:           string(u.Role),
		ProfilePicture: u.ProfilePicture,
		CreatedAt:      u.CreatedAt.Format(time.RFC3339),
	}
}
