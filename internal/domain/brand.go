package domain

import "time"

// Brand is a dive-equipment brand presented on the site.
type Brand struct {
	BrandID    string    `json:"id"`
	Name       string    `json:"name"`
	LogoURL    string    `json:"logoUrl"`
	WebsiteURL string    `json:"websiteUrl"`
	CreatedAt  time.Time `json:"created"`
	UpdatedAt  time.Time `json:"updated"`
}

type BrandInput struct {
	Name       string `json:"name" validate:"required"`
	LogoURL    string `json:"logoUrl"`
	WebsiteURL string `json:"websiteUrl"`
}
