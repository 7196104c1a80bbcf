package email

import (
	"strings"
	"testing"

	"github.com/dive-demo-tour/api/internal/domain"
	"github.com/stretchr/testify/assert"
)

func moduleReg() *domain.Registration {
	return domain.NewRegistration("1716000000000-a1b2c3d", "2026-05-01T10:00:00Z", domain.CreateRegistrationRequest{
		FirstName:            "Max",
		LastName:             "Mustermann",
		Email:                "max@example.com",
		Phone:                "+49 170 1234567",
		EventID:              "e1",
		EventTitle:           "Testtauch-Event",
		EventBeginDate:       "2026-05-14",
		EventEndDate:         "2026-05-16",
		EventCity:            "Hemmoor",
		EventCountry:         "Deutschland",
		ModuleID:             "m1",
		ModuleTitle:          "Trockentauchen",
		RegistrationEmailAlt: "organizer@example.com",
		Message:              "Ich bringe eigenes Blei mit.",
	})
}

func eventReg() *domain.Registration {
	r := moduleReg()
	r.Kind = domain.KindEvent
	r.ModuleID, r.ModuleTitle, r.RegistrationEmailAlt = "", "", ""
	return r
}

func TestParticipantConfirmation_ContainsEventIdentity(t *testing.T) {
	msg := ParticipantConfirmation(eventReg())

	assert.Equal(t, "max@example.com", msg.To)
	assert.Contains(t, msg.Subject, "Testtauch-Event")
	assert.Contains(t, msg.HTML, "14.05.2026")
	assert.Contains(t, msg.HTML, "Hemmoor, Deutschland")
	assert.Contains(t, msg.HTML, "1716000000000-a1b2c3d")
	assert.Contains(t, msg.HTML, accentEvent)
	assert.Contains(t, msg.Text, "Event: Testtauch-Event")
}

func TestAdminNotification_IncludesContactAndMessage(t *testing.T) {
	msg := AdminNotification("admin@example.com", moduleReg())

	assert.Equal(t, "admin@example.com", msg.To)
	assert.Contains(t, msg.HTML, "+49 170 1234567")
	assert.Contains(t, msg.HTML, "Ich bringe eigenes Blei mit.")
	assert.Contains(t, msg.HTML, "Trockentauchen")
}

func TestAdminNotification_OmitsEmptyMessageBlock(t *testing.T) {
	reg := eventReg()
	reg.Message = ""
	msg := AdminNotification("admin@example.com", reg)

	assert.NotContains(t, msg.HTML, "border-left")
}

func TestModuleConfirmation_UsesModuleAccent(t *testing.T) {
	msg := ModuleConfirmation(moduleReg())

	assert.Contains(t, msg.HTML, accentModule)
	assert.NotContains(t, msg.HTML, accentEvent)
	assert.Contains(t, msg.Subject, "Trockentauchen")
}

func TestOrganizerNotification_AddressedToOrganizerWithParticipantContact(t *testing.T) {
	msg := OrganizerNotification(moduleReg())

	assert.Equal(t, "organizer@example.com", msg.To)
	assert.Contains(t, msg.HTML, "max@example.com")
	assert.Contains(t, msg.HTML, "+49 170 1234567")
	assert.Contains(t, msg.HTML, "Ich bringe eigenes Blei mit.")
}

func TestRender_EscapesHTMLInUserInput(t *testing.T) {
	reg := eventReg()
	reg.FirstName = `<script>alert(1)</script>`
	msg := ParticipantConfirmation(reg)

	assert.False(t, strings.Contains(msg.HTML, "<script>"))
}
