package dto

type CreateEventRequest struct {
	OrganizerID    string `json:"organizer_id" binding:"required,uuid"`
	EventName      string `json:"event_name" binding:"required"`
	Description    string `json:"description"`
	Duration       int    `json:"duration" binding:"required"`
	AvailableSlots int    `json:"available_slots" binding:"required,gt=0"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
	LocationID     string `json:"location_id" binding:"required,uuid"`
}

type UpdateEventRequest struct {
	EventName      string `json:"event_name" binding:"required"`
	Description    string `json:"description"`
	Duration       int    `json:"duration" binding:"required"`
	AvailableSlots int    `json:"available_slots" binding:"gte=0"`
	StartDate      string `json:"start_date" binding:"required"`
	EndDate        string `json:"end_date" binding:"required"`
	LocationID     string `json:"location_id" binding:"required,uuid"`
}

type CreateBookingRequest struct {
	UserID        string `json:"user_id" binding:"required,uuid"`
	EventID       string `json:"event_id" binding:"required,uuid"`
	BookingDate   string `json:"booking_date" binding:"required"`
	SlotsReserved int    `json:"slots_reserved" binding:"required,gt=0"`
}

type UpdateBookingRequest struct {
	UserID        string `json:"user_id" binding:"required,uuid"`
	EventID       string `json:"event_id" binding:"required,uuid"`
	BookingDate   string `json:"booking_date" binding:"required"`
	SlotsReserved int    `json:"slots_reserved" binding:"required,gt=0"`
}

type CreateLocationRequest struct {
	LocationName string `json:"location_name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
}

type UpdateLocationRequest struct {
	LocationName string `json:"location_name" binding:"required"`
	Address      string `json:"address" binding:"required"`
	Capacity     int    `json:"capacity" binding:"required,gt=0"`
}

type CreateUserRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Role  string `json:"role" binding:"required,oneof=organizer attendee"`
}

type UpdateUserRequest struct {
	Name           string  `json:"name" binding:"required"`
	Email          string  `json:"email" binding:"required,email"`
	Role           string  `json:"role" binding:"required,oneof=organizer attendee"`
	ProfilePicture *string `json:"profile_picture"`
}
