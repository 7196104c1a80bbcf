package domain

import "time"

// Event is a single tour stop shown on the public site.
type Event struct {
	EventID     string    `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description"`
	BeginDate   string    `json:"beginDate"` // YYYY-MM-DD
	EndDate     string    `json:"endDate"`   // YYYY-MM-DD
	City        string    `json:"city"`
	Country     string    `json:"country"`
	Venue       string    `json:"venue"`
	ImageURL    string    `json:"imageUrl"`
	Visible     bool      `json:"visible"`
	CreatedAt   time.Time `json:"created"`
	UpdatedAt   time.Time `json:"updated"`
}

type EventInput struct {
	Title       string `json:"title" validate:"required"`
	Description string `json:"description"`
	BeginDate   string `json:"beginDate"`
	EndDate     string `json:"endDate"`
	City        string `json:"city"`
	Country     string `json:"country"`
	Venue       string `json:"venue"`
	ImageURL    string `json:"imageUrl"`
	Visible     *bool  `json:"visible"`
}
