package registration

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/pkg/id"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
)

// notifyTimeout bounds one detached notification sequence. Each provider call
// already has its own client timeout; this is the upper bound for the whole
// sequence so a hung provider cannot leak the goroutine.
const notifyTimeout = 2 * time.Minute

type Service interface {
	// Create validates, persists and returns the registration. The
	// notification sequence is detached: the returned registration is durable
	// before any email is attempted, and email failures never surface here.
	Create(ctx context.Context, req domain.CreateRegistrationRequest) (*domain.Registration, error)
	ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	Delete(ctx context.Context, eventID, registrationID string) error // idempotent
}

type registrationStore interface {
	Put(ctx context.Context, reg *domain.Registration) error
	ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error)
	ListAll(ctx context.Context) ([]domain.Registration, error)
	Delete(ctx context.Context, eventID, registrationID string) error
}

// Notifier runs the email sequence for one registration.
type Notifier interface {
	Run(ctx context.Context, reg *domain.Registration)
}

type service struct {
	repo     registrationStore
	notifier Notifier
}

func NewService(repo registrationStore, notifier Notifier) Service {
	return &service{repo: repo, notifier: notifier}
}

func (s *service) Create(ctx context.Context, req domain.CreateRegistrationRequest) (*domain.Registration, error) {
	if err := validate.Struct(req); err != nil {
		return nil, fmt.Errorf("%v: %w", err, domain.ErrBadRequest)
	}

	reg := domain.NewRegistration(
		id.NewRegistrationID(),
		time.Now().UTC().Format(time.RFC3339),
		req,
	)
	if err := s.repo.Put(ctx, reg); err != nil {
		return nil, err
	}

	go s.dispatchNotifications(reg)

	return reg, nil
}

// dispatchNotifications is the root of the detached notification task. It
// carries its own context (the request's is gone by the time it runs) and a
// recover guard so a panic in the sequence cannot take down the server.
func (s *service) dispatchNotifications(reg *domain.Registration) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("notification sequence panicked",
				"eventId", reg.EventID, "registrationId", reg.RegistrationID, "panic", r)
		}
	}()
	ctx, cancel := context.WithTimeout(context.Background(), notifyTimeout)
	defer cancel()
	s.notifier.Run(ctx, reg)
}

func (s *service) ListByEvent(ctx context.Context, eventID string) ([]domain.Registration, error) {
	return s.repo.ListByEvent(ctx, eventID)
}

func (s *service) ListAll(ctx context.Context) ([]domain.Registration, error) {
	return s.repo.ListAll(ctx)
}

func (s *service) Delete(ctx context.Context, eventID, registrationID string) error {
	return s.repo.Delete(ctx, eventID, registrationID)
}
