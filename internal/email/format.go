package email

import "time"

// dateLayouts are the input formats FormatDate understands.
var dateLayouts = []string{"2006-01-02", time.RFC3339, "02.01.2006"}

// FormatDate normalizes a date string to DD.MM.YYYY. Unparseable input passes
// through unchanged — a malformed date must never break an email.
func FormatDate(s string) string {
	for _, layout := range dateLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format("02.01.2006")
		}
	}
	return s
}

// FormatDateRange renders "begin – end", collapsing to a single date when the
// two match or one is missing.
func FormatDateRange(begin, end string) string {
	b, e := FormatDate(begin), FormatDate(end)
	switch {
	case b == "" && e == "":
		return ""
	case b == "" || b == e:
		return e
	case e == "":
		return b
	default:
		return b + " – " + e
	}
}
