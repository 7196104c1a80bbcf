package notifier

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/dive-demo-tour/api/internal/email"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// recordingMailer captures every send in order; sends fail when their index
// is in failAt.
type recordingMailer struct {
	sent   []email.Message
	failAt map[int]bool
}

func (m *recordingMailer) Send(_ context.Context, msg email.Message) error {
	idx := len(m.sent)
	m.sent = append(m.sent, msg)
	if m.failAt[idx] {
		return errors.New("provider unavailable")
	}
	return nil
}

const testSpacing = time.Millisecond

func eventReg() *domain.Registration {
	return domain.NewRegistration("1716000000000-a1b2c3d", "2026-05-01T10:00:00Z", domain.CreateRegistrationRequest{
		FirstName:  "Max",
		LastName:   "Mustermann",
		Email:      "max@example.com",
		EventID:    "e1",
		EventTitle: "Testtauch-Event",
	})
}

func moduleReg(altEmail string) *domain.Registration {
	return domain.NewRegistration("1716000000001-z9y8x7w", "2026-05-01T10:00:00Z", domain.CreateRegistrationRequest{
		FirstName:            "Max",
		LastName:             "Mustermann",
		Email:                "max@example.com",
		EventID:              "e1",
		EventTitle:           "Testtauch-Event",
		ModuleID:             "m1",
		ModuleTitle:          "Trockentauchen",
		RegistrationEmailAlt: altEmail,
	})
}

func TestRun_EventRegistration_ParticipantThenAdmin(t *testing.T) {
	m := &recordingMailer{}
	s := NewSequencer(m, "admin@example.com", testSpacing)

	s.Run(context.Background(), eventReg())

	require.Len(t, m.sent, 2)
	assert.Equal(t, "max@example.com", m.sent[0].To)
	assert.Contains(t, m.sent[0].Subject, "Anmeldebestätigung")
	assert.Equal(t, "admin@example.com", m.sent[1].To)
	assert.Contains(t, m.sent[1].Subject, "Neue Anmeldung")
}

func TestRun_ModuleRegistrationWithOrganizer_AdminModuleOrganizer(t *testing.T) {
	m := &recordingMailer{}
	s := NewSequencer(m, "admin@example.com", testSpacing)

	s.Run(context.Background(), moduleReg("organizer@example.com"))

	require.Len(t, m.sent, 3)
	assert.Equal(t, "admin@example.com", m.sent[0].To)
	assert.Contains(t, m.sent[1].Subject, "Modul-Anmeldung")
	assert.Equal(t, "max@example.com", m.sent[1].To)
	assert.Equal(t, "organizer@example.com", m.sent[2].To)
	for _, msg := range m.sent {
		assert.NotContains(t, msg.Subject, "Anmeldebestätigung", "no participant confirmation for module registrations")
	}
}

func TestRun_ModuleRegistrationWithoutOrganizer_TwoSends(t *testing.T) {
	m := &recordingMailer{}
	s := NewSequencer(m, "admin@example.com", testSpacing)

	s.Run(context.Background(), moduleReg(""))

	require.Len(t, m.sent, 2)
	assert.Equal(t, "admin@example.com", m.sent[0].To)
	assert.Equal(t, "max@example.com", m.sent[1].To)
}

func TestRun_AdminAddressInvalid_AdminSendSkipped(t *testing.T) {
	for _, addr := range []string{"", "not-an-email", "a@b"} {
		m := &recordingMailer{}
		s := NewSequencer(m, addr, testSpacing)

		s.Run(context.Background(), eventReg())

		require.Len(t, m.sent, 1, addr)
		assert.Equal(t, "max@example.com", m.sent[0].To, addr)
	}
}

func TestRun_FirstSendFails_RestStillAttempted(t *testing.T) {
	m := &recordingMailer{failAt: map[int]bool{0: true}}
	s := NewSequencer(m, "admin@example.com", testSpacing)

	s.Run(context.Background(), moduleReg("organizer@example.com"))

	require.Len(t, m.sent, 3, "later sends must run even when the first fails")
}

func TestRun_AllSendsFail_SequenceCompletes(t *testing.T) {
	m := &recordingMailer{failAt: map[int]bool{0: true, 1: true}}
	s := NewSequencer(m, "admin@example.com", testSpacing)

	s.Run(context.Background(), eventReg())

	require.Len(t, m.sent, 2)
}

func TestRun_PacesConsecutiveSends(t *testing.T) {
	m := &recordingMailer{}
	spacing := 30 * time.Millisecond
	s := NewSequencer(m, "admin@example.com", spacing)

	start := time.Now()
	s.Run(context.Background(), eventReg())
	elapsed := time.Since(start)

	require.Len(t, m.sent, 2)
	// One gap between two sends; the first send is not delayed.
	assert.GreaterOrEqual(t, elapsed, spacing)
}

func TestRun_CancelledContext_StopsQuietly(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	m := &recordingMailer{}
	s := NewSequencer(m, "admin@example.com", 200*time.Millisecond)

	s.Run(ctx, eventReg())

	assert.Empty(t, m.sent, "no sends once the context is done")
}
