package settings

import (
	"context"
	"fmt"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
)

type Service interface {
	GetHomepage(ctx context.Context) (*domain.HomepageSettings, error)
	UpdateHomepage(ctx context.Context, input domain.HomepageSettingsInput) (*domain.HomepageSettings, error)
}

type settingsStore interface {
	GetHomepage(ctx context.Context) (*domain.HomepageSettings, error)
	PutHomepage(ctx context.Context, s *domain.HomepageSettings) error
}

type service struct {
	repo settingsStore
}

func NewService(repo settingsStore) Service {
	return &service{repo: repo}
}

func (s *service) GetHomepage(ctx context.Context) (*domain.HomepageSettings, error) {
	return s.repo.GetHomepage(ctx)
}

func (s *service) UpdateHomepage(ctx context.Context, input domain.HomepageSettingsInput) (*domain.HomepageSettings, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	settings := &domain.HomepageSettings{
		HeroTitle:    input.HeroTitle,
		HeroSubtitle: input.HeroSubtitle,
		HeroImageURL: input.HeroImageURL,
		IntroText:    input.IntroText,
		ContactEmail: input.ContactEmail,
		UpdatedAt:    time.Now().UTC(),
	}
	if err := s.repo.PutHomepage(ctx, settings); err != nil {
		return nil, err
	}
	return settings, nil
}
