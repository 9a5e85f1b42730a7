package domain

import "time"

type Booking struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	EventID       string    `json:"event_id"`
	BookingDate   time.Time `json:"booking_date"`
	SlotsReserved int       `json:"slots_reserved"`
	CreatedAt     time.Time `json:"created_at"`
	UpdatedAt     time.Time `json:"updated_at"`
}

type CreateBookingInput struct {
	UserID        string
	EventID       string
	BookingDate   time.Time
	SlotsReserved int
}

type UpdateBookingInput struct {
	UserID        string
	EventID       string
	BookingDate   time.Time
	SlotsReserved int
}
