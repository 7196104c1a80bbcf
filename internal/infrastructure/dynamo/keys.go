package dynamo

// Key layout of the KV table. Every entity lives under its own literal prefix
// so prefix scans stay entity-scoped.
const (
	prefixRegistration = "registration:"
	prefixEvent        = "event:"
	prefixBrand        = "brand:"
	prefixPartner      = "partner:"
	prefixModule       = "module:"

	keyHomepageSettings = "settings:homepage"
)

// registrationKey is the composite key "registration:{eventId}:{registrationId}".
func registrationKey(eventID, registrationID string) string {
	return prefixRegistration + eventID + ":" + registrationID
}

// registrationEventPrefix scopes a scan to one event's registrations.
func registrationEventPrefix(eventID string) string {
	return prefixRegistration + eventID + ":"
}

func eventKey(eventID string) string     { return prefixEvent + eventID }
func brandKey(brandID string) string     { return prefixBrand + brandID }
func partnerKey(partnerID string) string { return prefixPartner + partnerID }
func moduleKey(moduleID string) string   { return prefixModule + moduleID }
