package domain

import "time"

// Module is a sub-activity within an event (e.g. a workshop slot) that can
// carry its own registration requirement and contact routing.
type Module struct {
	ModuleID             string    `json:"id"`
	EventID              string    `json:"eventId"`
	Title                string    `json:"title"`
	Description          string    `json:"description"`
	RequiresRegistration bool      `json:"requiresRegistration"`
	RegistrationEmail    string    `json:"registrationEmail"`
	RegistrationEmailAlt string    `json:"registrationEmailAlt"` // organizer contact, notified of module registrations
	CreatedAt            time.Time `json:"created"`
	UpdatedAt            time.Time `json:"updated"`
}

type ModuleInput struct {
	EventID              string `json:"eventId" validate:"required"`
	Title                string `json:"title" validate:"required"`
	Description          string `json:"description"`
	RequiresRegistration bool   `json:"requiresRegistration"`
	RegistrationEmail    string `json:"registrationEmail" validate:"omitempty,basicemail"`
	RegistrationEmailAlt string `json:"registrationEmailAlt" validate:"omitempty,basicemail"`
}
