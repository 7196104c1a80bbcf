// Package email renders the notification messages the registration pipeline
// sends: participant and module confirmations for the submitter, and admin
// and organizer alerts for the people running the tour.
package email

import (
	"bytes"
	"fmt"
	"html/template"
	"strings"

	"github.com/dive-demo-tour/api/internal/domain"
)

// Message is one renderable email: subject plus HTML body and text fallback.
type Message struct {
	To      string
	Subject string
	HTML    string
	Text    string
}

// Accent colors per template theme. Module emails use a distinct accent so
// module confirmations are visually separable from event confirmations.
const (
	accentEvent  = "#0b5fa5"
	accentModule = "#e07a1f"
)

var bodyTmpl = template.Must(template.New("body").Parse(`<!DOCTYPE html>
<html>
<body style="margin:0;padding:0;background:#f4f6f8;font-family:Helvetica,Arial,sans-serif;">
<div style="max-width:560px;margin:24px auto;background:#ffffff;border-radius:6px;overflow:hidden;">
  <div style="background:{{.Accent}};color:#ffffff;padding:20px 28px;">
    <h1 style="margin:0;font-size:20px;">{{.Title}}</h1>
  </div>
  <div style="padding:24px 28px;color:#22303c;font-size:14px;line-height:1.5;">
    <p style="margin-top:0;">{{.Intro}}</p>
    <table style="border-collapse:collapse;width:100%;">
    {{- range .Rows}}
      <tr>
        <td style="padding:4px 12px 4px 0;color:#5f6b76;white-space:nowrap;vertical-align:top;">{{.Label}}</td>
        <td style="padding:4px 0;">{{.Value}}</td>
      </tr>
    {{- end}}
    </table>
    {{- if .Message}}
    <div style="margin-top:16px;padding:12px;background:#f4f6f8;border-left:3px solid {{.Accent}};white-space:pre-wrap;">{{.Message}}</div>
    {{- end}}
    <p style="color:#8a949d;font-size:12px;margin-bottom:0;">Dive Demo Tour</p>
  </div>
</div>
</body>
</html>`))

type row struct {
	Label string
	Value string
}

type bodyData struct {
	Accent  string
	Title   string
	Intro   string
	Rows    []row
	Message string
}

// ParticipantConfirmation is the event-level confirmation sent to the submitter.
func ParticipantConfirmation(reg *domain.Registration) Message {
	rows := eventRows(reg)
	rows = append(rows, row{"Anmeldenummer", reg.RegistrationID})
	rows = append(rows, preferenceRows(reg)...)
	return render(bodyData{
		Accent: accentEvent,
		Title:  "Anmeldung bestätigt",
		Intro: fmt.Sprintf("Hallo %s %s, vielen Dank für deine Anmeldung zum Event %q. Wir sehen uns am Wasser!",
			reg.FirstName, reg.LastName, reg.EventTitle),
		Rows: rows,
	}, reg.Email, fmt.Sprintf("Anmeldebestätigung – %s", reg.EventTitle))
}

// AdminNotification alerts the site admin about any new registration. It adds
// the contact details the confirmation omits; the free-text message block is
// left out entirely when empty.
func AdminNotification(adminEmail string, reg *domain.Registration) Message {
	rows := []row{
		{"Name", reg.FirstName + " " + reg.LastName},
		{"E-Mail", reg.Email},
	}
	if reg.Phone != "" {
		rows = append(rows, row{"Telefon", reg.Phone})
	}
	if reg.Organization != "" {
		rows = append(rows, row{"Organisation", reg.Organization})
	}
	rows = append(rows, eventRows(reg)...)
	if reg.Kind == domain.KindModule {
		rows = append(rows, row{"Modul", reg.ModuleTitle})
	}
	rows = append(rows, preferenceRows(reg)...)
	rows = append(rows, row{"Anmeldenummer", reg.RegistrationID})
	return render(bodyData{
		Accent:  accentEvent,
		Title:   "Neue Anmeldung",
		Intro:   fmt.Sprintf("Neue Anmeldung für %q eingegangen.", reg.EventTitle),
		Rows:    rows,
		Message: reg.Message,
	}, adminEmail, fmt.Sprintf("Neue Anmeldung – %s", reg.EventTitle))
}

// ModuleConfirmation is the module-level confirmation sent to the submitter,
// rendered with the module accent theme.
func ModuleConfirmation(reg *domain.Registration) Message {
	rows := []row{{"Modul", reg.ModuleTitle}}
	rows = append(rows, eventRows(reg)...)
	rows = append(rows, row{"Anmeldenummer", reg.RegistrationID})
	rows = append(rows, preferenceRows(reg)...)
	return render(bodyData{
		Accent: accentModule,
		Title:  "Modul-Anmeldung bestätigt",
		Intro: fmt.Sprintf("Hallo %s %s, deine Anmeldung zum Modul %q beim Event %q ist eingegangen.",
			reg.FirstName, reg.LastName, reg.ModuleTitle, reg.EventTitle),
		Rows: rows,
	}, reg.Email, fmt.Sprintf("Modul-Anmeldung – %s", reg.ModuleTitle))
}

// OrganizerNotification mirrors the module confirmation but is addressed to
// the module's organizer, who is a third party and needs the participant's
// contact details to reach them.
func OrganizerNotification(reg *domain.Registration) Message {
	rows := []row{
		{"Modul", reg.ModuleTitle},
		{"Teilnehmer", reg.FirstName + " " + reg.LastName},
		{"E-Mail", reg.Email},
	}
	if reg.Phone != "" {
		rows = append(rows, row{"Telefon", reg.Phone})
	}
	if reg.Organization != "" {
		rows = append(rows, row{"Organisation", reg.Organization})
	}
	rows = append(rows, eventRows(reg)...)
	rows = append(rows, preferenceRows(reg)...)
	rows = append(rows, row{"Anmeldenummer", reg.RegistrationID})
	return render(bodyData{
		Accent:  accentModule,
		Title:   "Neue Modul-Anmeldung",
		Intro:   fmt.Sprintf("Neue Anmeldung für dein Modul %q beim Event %q.", reg.ModuleTitle, reg.EventTitle),
		Rows:    rows,
		Message: reg.Message,
	}, reg.RegistrationEmailAlt, fmt.Sprintf("Neue Modul-Anmeldung – %s", reg.ModuleTitle))
}

func eventRows(reg *domain.Registration) []row {
	rows := []row{{"Event", reg.EventTitle}}
	if r := FormatDateRange(reg.EventBeginDate, reg.EventEndDate); r != "" {
		rows = append(rows, row{"Datum", r})
	}
	if loc := joinNonEmpty(reg.EventCity, reg.EventCountry); loc != "" {
		rows = append(rows, row{"Ort", loc})
	}
	return rows
}

func preferenceRows(reg *domain.Registration) []row {
	var rows []row
	if reg.PreferredDate != "" {
		rows = append(rows, row{"Wunschtermin", FormatDate(reg.PreferredDate)})
	}
	if reg.PreferredTime != "" {
		rows = append(rows, row{"Wunschzeit", reg.PreferredTime})
	}
	return rows
}

func joinNonEmpty(parts ...string) string {
	var kept []string
	for _, p := range parts {
		if p != "" {
			kept = append(kept, p)
		}
	}
	return strings.Join(kept, ", ")
}

func render(data bodyData, to, subject string) Message {
	var buf bytes.Buffer
	// Executing a parsed template over plain strings cannot fail; the error is
	// checked anyway so a template edit that breaks it surfaces in tests.
	if err := bodyTmpl.Execute(&buf, data); err != nil {
		buf.Reset()
		buf.WriteString(data.Intro)
	}
	return Message{
		To:      to,
		Subject: subject,
		HTML:    buf.String(),
		Text:    renderText(data),
	}
}

func renderText(data bodyData) string {
	var b strings.Builder
	b.WriteString(data.Title + "\n\n" + data.Intro + "\n\n")
	for _, r := range data.Rows {
		b.WriteString(r.Label + ": " + r.Value + "\n")
	}
	if data.Message != "" {
		b.WriteString("\n" + data.Message + "\n")
	}
	return b.String()
}
