package event

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/id"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
)

type Service interface {
	List(ctx context.Context) ([]domain.Event, error)
	ListVisible(ctx context.Context) ([]domain.Event, error)
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	Create(ctx context.Context, input domain.EventInput) (*domain.Event, error)
	Update(ctx context.Context, eventID string, input domain.EventInput) (*domain.Event, error)
	Delete(ctx context.Context, eventID string) error
}

type eventStore interface {
	Put(ctx context.Context, e *domain.Event) error
	Get(ctx context.Context, eventID string) (*domain.Event, error)
	List(ctx context.Context) ([]domain.Event, error)
	Delete(ctx context.Context, eventID string) error
	DeleteRegistrations(ctx context.Context, eventID string) error
}

type service struct {
	repo eventStore
}

func NewService(repo eventStore) Service {
	return &service{repo: repo}
}

func (s *service) List(ctx context.Context) ([]domain.Event, error) {
	return s.repo.List(ctx)
}

func (s *service) ListVisible(ctx context.Context) ([]domain.Event, error) {
	all, err := s.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	visible := make([]domain.Event, 0, len(all))
	for _, e := range all {
		if e.Visible {
			visible = append(visible, e)
		}
	}
	return visible, nil
}

func (s *service) Get(ctx context.Context, eventID string) (*domain.Event, error) {
	return s.repo.Get(ctx, eventID)
}

func (s *service) Create(ctx context.Context, input domain.EventInput) (*domain.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	now := time.Now().UTC()
	e := &domain.Event{
		EventID:     id.New(),
		Title:       input.Title,
		Description: input.Description,
		BeginDate:   input.BeginDate,
		EndDate:     input.EndDate,
		City:        input.City,
		Country:     input.Country,
		Venue:       input.Venue,
		ImageURL:    input.ImageURL,
		Visible:     input.Visible == nil || *input.Visible,
		CreatedAt:   now,
		UpdatedAt:   now,
	}
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

func (s *service) Update(ctx context.Context, eventID string, input domain.EventInput) (*domain.Event, error) {
	if err := validate.Struct(input); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}
	e, err := s.repo.Get(ctx, eventID)
	if err != nil {
		return nil, err
	}
	e.Title = input.Title
	e.Description = input.Description
	e.BeginDate = input.BeginDate
	e.EndDate = input.EndDate
	e.City = input.City
	e.Country = input.Country
	e.Venue = input.Venue
	e.ImageURL = input.ImageURL
	if input.Visible != nil {
		e.Visible = *input.Visible
	}
	e.UpdatedAt = time.Now().UTC()
	if err := s.repo.Put(ctx, e); err != nil {
		return nil, err
	}
	return e, nil
}

// Delete removes the event and everything registered under it. A failure to
// clear registrations is logged but does not block the event delete.
func (s *service) Delete(ctx context.Context, eventID string) error {
	if err := s.repo.DeleteRegistrations(ctx, eventID); err != nil {
		slog.Warn("could not delete event registrations", "eventId", eventID, "err", err)
	}
	return s.repo.Delete(ctx, eventID)
}
