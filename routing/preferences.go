package routing

import "strings"

// Preferences is the parsed global-preferences portion of a search string:
// an optional sub-path and an optional shared-label payload. Constructed
// fresh on every parse, never mutated.
type Preferences struct {
	// Path is the preferences sub-path, empty when absent
	Path string `json:"path,omitempty"`

	// Params holds at most one entry, keyed by LabelsMarker, carrying the
	// shared-label payload
	Params map[string]string `json:"params,omitempty"`
}

// ParsePreferences extracts the global preferences sub-path and the
// shared-label payload from a search string.
func ParsePreferences(search string) Preferences {
	rest := ""
	if i := strings.Index(search, PreferencesMarker); i >= 0 {
		rest = search[i+len(PreferencesMarker):]
	}

	path := rest
	params := make(map[string]string)
	if j := strings.Index(rest, LabelsMarker); j >= 0 {
		path = rest[:j]
		params[LabelsMarker] = rest[j+len(LabelsMarker):]
	}

	return Preferences{Path: path, Params: params}
}
