package domain

import "time"

type Event struct {
	ID             string    `json:"id"`
	OrganizerID    string    `json:"organizer_id"`
	Name           string    `json:"event_name"`
	Description    string    `json:"description"`
	Duration       int       `json:"duration"`
	AvailableSlots int       `json:"available_slots"`
	StartDate      time.Time `json:"start_date"`
	EndDate        time.Time `json:"end_date"`
	LocationID     string    `json:"location_id"`
	CreatedAt      time.Time `json:"created_at"`
	UpdatedAt      time.Time `json:"updated_at"`
}

type CreateEventInput struct {
	OrganizerID    string
	Name           string
	Description    string
	Duration       int
	AvailableSlots int
	StartDate      time.Time
	EndDate        time.Time
	LocationID     string
}

type UpdateEventInput struct {
	Name           string
	Description    string
	Duration       int
	AvailableSlots int
	StartDate      time.Time
	EndDate        time.Time
	LocationID     string
}
