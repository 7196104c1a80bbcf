package domain

import "time"

// Partner is a cooperating organization (dive center, magazine, association).
type Partner struct {
	PartnerID  string    `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logoUrl"`
	WebsiteURL string    `json:"websiteUrl"`
	CreatedAt  time.Time `json:"created"`
	UpdatedAt  time.Time `json:"updated"`
}

type PartnerInput struct {
	Name       string `json:"name" validate:"required"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl"`
}
