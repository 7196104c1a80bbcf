package module

import (
	"context"
	"fmt"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/id"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
)

type Service interface {
	ListByEvent(ctx context.Context, eventID string) ([]domain.Module, error)
	Get(ctx context.Context, moduleID string) (*domain.Module, error)
	Create(ctx context.Context, input domain.ModuleInput) (*domain.Module, error)
	Update(ctx context.Context, moduleID string, input domain.ModuleInput) (*domain.Module, error)
	Delete(ctx context.Context, moduleID string) error
}

type moduleStore interface {
	Put(ctx context.Context, m *domain.Module) error
	Get(ctx context.Context, moduleID string) (*domain.Module, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Module, error)
	Delete(ctx context.Context, moduleID string) error
}

type service struct {
	repo moduleStore
}

func NewService(repo moduleStore) Service {
	return &service{repo: repo}
}

func (s *service) ListByEvent(ctx context.Context, eventID string) ([]domain.Module, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *service) Get(ctx context.Context, moduleID string) (*domain.Module, error) {
	return s.repo.Get(ctx, moduleID)
}

func (s *service) Create(ctx context.Context, input domain.ModuleInput) (*domain.Module, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	m := &domain.Module{
		ModuleID:             id.New(),
		EventID:              input.EventID,
		Title:                input.Title,
		Description:          input.Description,
		RequiresRegistration: input.RequiresRegistration,
		RegistrationEmail:    input.RegistrationEmail,
		RegistrationEmailAlt: input.RegistrationEmailAlt,
		CreatedAt:            now,
		UpdatedAt:            now,
	}
	if err := s.repo.Put(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Update(ctx context.Context, moduleID string, input domain.ModuleInput) (*domain.Module, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	m, err := s.repo.Get(ctx, moduleID)
	if err != nil {
		return nil, err
	}
	m.EventID = input.EventID
	m.Title = input.Title
	m.Description = input.Description
	m.RequiresRegistration = input.RequiresRegistration
	m.RegistrationEmail = input.RegistrationEmail
	m.RegistrationEmailAlt = input.RegistrationEmailAlt
	m.UpdatedAt = time.Now().UTC()
	if err := s.repo.Put(ctx, m); err != nil {
		return nil, err
	}
	return m, nil
}

func (s *service) Delete(ctx context.Context, moduleID string) error {
	return s.repo.Delete(ctx, moduleID)
}
