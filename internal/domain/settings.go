package domain

import "time"

// HomepageSettings is the singleton document behind the landing page.
type HomepageSettings struct {
	HeroTitle    string    `json:"heroTitle"`
	HeroSubtitle string    `json:"heroSubtitle"`
	HeroImageURL string    `json:"heroImageUrl"`
	IntroText    string    `json:"introText"`
	ContactEmail string    `json:"contactEmail"`
	UpdatedAt    time.Time `json:"updated"`
}

// DefaultHomepageSettings is returned when nothing has been stored yet.
func DefaultHomepageSettings() *HomepageSettings {
	return &HomepageSettings{
		HeroTitle:    "Dive Demo Tour",
		HeroSubtitle: "Test the latest dive gear in open water",
	}
}

type HomepageSettingsInput struct {
	HeroTitle    string `json:"heroTitle"`
	HeroSubtitle string `json:"heroSubtitle"`
	HeroImageURL string `json:"heroImageUrl"`
	IntroText    string `json:"introText"`
	ContactEmail string `json:"contactEmail" validate:"omitempty,basicemail"`
}
