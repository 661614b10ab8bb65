package league

import "strings"

// UnknownName is the placeholder for players with an empty or missing name.
const UnknownName = "Unknown"

// FormatName converts the API's "Last, First" form into "First Last".
// Values without a comma pass through unchanged: team and defense entries
// arrive already in natural form, and malformed entries get the same
// fallback. Empty input yields UnknownName.
func FormatName(raw string) string {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return UnknownName
	}

	last, first, found := strings.Cut(raw, ",")
	if !found {
		return raw
	}
	return strings.TrimSpace(strings.TrimSpace(first) + " " + strings.TrimSpace(last))
}
