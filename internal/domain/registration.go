package domain

// RegistrationKind discriminates the two registration variants. It is decided
// once in NewRegistration and never re-derived from field presence afterwards.
type RegistrationKind string

const (
	// KindEvent is a registration for the event as a whole.
	KindEvent RegistrationKind = "event"
	// KindModule is a registration for a single module within an event.
	KindModule RegistrationKind = "module"
)

// Registration is a submitted intent to attend an event or one of its modules.
// Records are immutable after creation: they are only ever created and deleted.
type Registration struct {
	RegistrationID string           `json:"registrationId"`
	Kind           RegistrationKind `json:"kind"`

	FirstName    string `json:"firstName"`
	LastName     string `json:"lastName"`
	Email        string `json:"email"`
	Phone        string `json:"phone"`
	Organization string `json:"organization"`
	Message      string `json:"message"`

	EventID        string `json:"eventId"`
	EventTitle     string `json:"eventTitle"`
	EventBeginDate string `json:"eventBeginDate"`
	EventEndDate   string `json:"eventEndDate"`
	EventCity      string `json:"eventCity"`
	EventCountry   string `json:"eventCountry"`

	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`

	ModuleID             string `json:"moduleId"`
	ModuleTitle          string `json:"moduleTitle"`
	RegistrationEmail    string `json:"registrationEmail"`
	RegistrationEmailAlt string `json:"registrationEmailAlt"`

	RegisteredAt string `json:"registeredAt"` // RFC 3339 UTC, set once
}

// CreateRegistrationRequest is the incoming payload for POST /registrations.
// Optional fields default to empty strings in the stored record.
type CreateRegistrationRequest struct {
	FirstName string `json:"firstName" validate:"required"`
	LastName  string `json:"lastName" validate:"required"`
	Email     string `json:"email" validate:"required,basicemail"`
	EventID   string `json:"eventId" validate:"required"`

	EventTitle     string `json:"eventTitle"`
	EventBeginDate string `json:"eventBeginDate"`
	EventEndDate   string `json:"eventEndDate"`
	EventCity      string `json:"eventCity"`
	EventCountry   string `json:"eventCountry"`

	Phone         string `json:"phone"`
	Organization  string `json:"organization"`
	Message       string `json:"message"`
	PreferredDate string `json:"preferredDate"`
	PreferredTime string `json:"preferredTime"`

	ModuleID             string `json:"moduleId"`
	ModuleTitle          string `json:"moduleTitle"`
	RegistrationEmail    string `json:"registrationEmail"`
	RegistrationEmailAlt string `json:"registrationEmailAlt"`
}

// NewRegistration builds the canonical record from a validated request.
// The kind is a module registration only when both module fields are present;
// an inconsistent pair (one of the two missing) classifies as a plain event
// registration.
func NewRegistration(id, registeredAt string, req CreateRegistrationRequest) *Registration {
	kind := KindEvent
	if req.ModuleID != "" && req.ModuleTitle != "" {
		kind = KindModule
	}
	return &Registration{
		RegistrationID:       id,
		Kind:                 kind,
		FirstName:            req.FirstName,
		LastName:             req.LastName,
		Email:                req.Email,
		Phone:                req.Phone,
		Organization:         req.Organization,
		Message:              req.Message,
		EventID:              req.EventID,
		EventTitle:           req.EventTitle,
		EventBeginDate:       req.EventBeginDate,
		EventEndDate:         req.EventEndDate,
		EventCity:            req.EventCity,
		EventCountry:         req.EventCountry,
		PreferredDate:        req.PreferredDate,
		PreferredTime:        req.PreferredTime,
		ModuleID:             req.ModuleID,
		ModuleTitle:          req.ModuleTitle,
		RegistrationEmail:    req.RegistrationEmail,
		RegistrationEmailAlt: req.RegistrationEmailAlt,
		RegisteredAt:         registeredAt,
	}
}
