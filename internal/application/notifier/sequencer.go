// Package notifier orchestrates the emails triggered by one registration.
//
// Up to four messages go out per registration, always in the fixed order
// participant confirmation → admin notification → module confirmation →
// organizer notification, filtered by the registration kind. Sends are
// strictly sequential and paced by a shared token bucket so the provider's
// global rate limit (~2 req/s) is never hit, even across concurrent
// registrations. A failed send is logged and never aborts the rest of the
// sequence; nothing is retried or persisted.
package notifier

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/email"
	"github.com/dive-demo-tour/api/internal/pkg/validate"
	"golang.org/x/time/rate"
)

// Mailer dispatches one rendered message to the provider.
type Mailer interface {
	Send(ctx context.Context, msg email.Message) error
}

// Sequencer runs the notification sequence for registrations.
type Sequencer struct {
	mailer     Mailer
	adminEmail string
	limiter    *rate.Limiter
}

// NewSequencer creates a sequencer pacing provider calls at one per spacing.
// The limiter is shared by all sequences run through this instance.
func NewSequencer(mailer Mailer, adminEmail string, spacing time.Duration) *Sequencer {
	if spacing <= 0 {
		spacing = 600 * time.Millisecond
	}
	return &Sequencer{
		mailer:     mailer,
		adminEmail: adminEmail,
		limiter:    rate.NewLimiter(rate.Every(spacing), 1),
	}
}

// Run sends every email the registration is eligible for. It never returns
// an error: per-send failures are logged and the sequence continues.
func (s *Sequencer) Run(ctx context.Context, reg *domain.Registration) {
	if reg.Kind != domain.KindModule {
		s.send(ctx, "participant confirmation", email.ParticipantConfirmation(reg))
	}

	if validate.Email(s.adminEmail) {
		s.send(ctx, "admin notification", email.AdminNotification(s.adminEmail, reg))
	} else {
		slog.Warn("admin notification skipped",
			"registrationId", reg.RegistrationID, "adminEmail", s.adminEmail,
			"reason", "admin address missing or not a valid email")
	}

	if reg.Kind == domain.KindModule {
		s.send(ctx, "module confirmation", email.ModuleConfirmation(reg))
		if reg.RegistrationEmailAlt != "" {
			s.send(ctx, "organizer notification", email.OrganizerNotification(reg))
		}
	}
}

func (s *Sequencer) send(ctx context.Context, kind string, msg email.Message) {
	if err := s.limiter.Wait(ctx); err != nil {
		slog.Warn("notification send not attempted", "kind", kind, "to", msg.To, "err", err)
		return
	}
	if err := s.mailer.Send(ctx, msg); err != nil {
		if errors.Is(err, domain.ErrNotConfigured) {
			slog.Warn("notification skipped, email provider not configured", "kind", kind, "err", err)
		} else {
			slog.Warn("notification send failed", "kind", kind, "to", msg.To, "err", err)
		}
	}
}
