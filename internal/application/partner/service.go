package partner

import (
	"context"
	"fmt"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/id"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Partner, error)
	Get(ctx context.Context, partnerID string) (*domain.Partner, error)
	Create(ctx context.Context, input domain.PartnerInput) (*domain.Partner, error)
	Update(ctx context.Context, partnerID string, input domain.PartnerInput) (*domain.Partner, error)
	Delete(ctx context.Context, partnerID string) error
}

type partnerStore interface {
	Put(ctx context.Context, p *domain.Partner) error
	Get(ctx context.Context, partnerID string) (*domain.Partner, error)
	List(ctx context.Context) ([]domain.Partner, error)
	Delete(ctx context.Context, partnerID string) error
}

type service struct {
	repo partnerStore
}

func NewService(repo partnerStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Partner, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, partnerID string) (*domain.Partner, error) {
	return s.repo.Get(ctx, partnerID)
}

func (s *service) Create(ctx context.Context, input domain.PartnerInput) (*domain.Partner, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	p := &domain.Partner{
		PartnerID:  id.New(),
		Name:       input.Name,
		LogoURL:    input.LogoURL,
		WebsiteURL: input.WebsiteURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Update(ctx context.Context, partnerID string, input domain.PartnerInput) (*domain.Partner, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	p, err := s.repo.Get(ctx, partnerID)
	if err != nil {
		return nil, err
	}
	p.Name = input.Name
	p.LogoURL = input.LogoURL
	p.WebsiteURL = input.WebsiteURL
	p.UpdatedAt = time.Now().UTC()
	if err := s.repo.Put(ctx, p); err != nil {
		return nil, err
	}
	return p, nil
}

func (s *service) Delete(ctx context.Context, partnerID string) error {
	return s.repo.Delete(ctx, partnerID)
}
