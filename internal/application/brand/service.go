package brand

import (
	"context"
	"fmt"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/id"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Brand, error)
	Get(ctx context.Context, brandID string) (*domain.Brand, error)
	Create(ctx context.Context, input domain.BrandInput) (*domain.Brand, error)
	Update(ctx context.Context, brandID string, input domain.BrandInput) (*domain.Brand, error)
	Delete(ctx context.Context, brandID string) error
}

type brandStore interface {
	Put(ctx context.Context, b *domain.Brand) error
	Get(ctx context.Context, brandID string) (*domain.Brand, error)
	List(ctx context.Context) ([]domain.Brand, error)
	Delete(ctx context.Context, brandID string) error
}

type service struct {
	repo brandStore
}

func NewService(repo brandStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Brand, error) {
	return s.repo.List(ctx)
}

func (s *service) Get(ctx context.Context, brandID string) (*domain.Brand, error) {
	return s.repo.Get(ctx, brandID)
}

func (s *service) Create(ctx context.Context, input domain.BrandInput) (*domain.Brand, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	b := &domain.Brand{
		BrandID:    id.New(),
		Name:       input.Name,
		LogoURL:    input.LogoURL,
		WebsiteURL: input.WebsiteURL,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
	if err := s.repo.Put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Update(ctx context.Context, brandID string, input domain.BrandInput) (*domain.Brand, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	b, err := s.repo.Get(ctx, brandID)
	if err != nil {
		return nil, err
	}
	b.Name = input.Name
	b.LogoURL = input.LogoURL
	b.WebsiteURL = input.WebsiteURL
	b.UpdatedAt = time.Now().UTC()
	if err := s.repo.Put(ctx, b); err != nil {
		return nil, err
	}
	return b, nil
}

func (s *service) Delete(ctx context.Context, brandID string) error {
	return s.repo.Delete(ctx, brandID)
}
