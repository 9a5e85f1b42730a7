package domain

import "time"

type Role string

const (
	RoleOrganizer Role = "organizer"
	RoleAttendee  Role = "attendee"
)

// Valid reports whether the role is one of the known roles.
func (r Role) Valid() bool {
	return r == RoleOrganizer || r == RoleAttendee
}

type User struct {
	ID             string    `json:"id"`
	Name           string    `json:"name"`
	Email          string    `json:"email"`
	Role           Role      `json:"role"`
	ProfilePicture *string   `json:"profile_picture"`
	CreatedAt      time.Time `json:"created_at"`
}

type CreateUserInput struct {
	Name  string
	Email string
	Role  Role
}

type UpdateUserInput struct {
	Name           string
	Email          string
	Role           Role
	ProfilePicture *string
}
