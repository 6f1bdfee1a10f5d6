// Package routing converts dashboard URLs to and from structured locators.
//
// A locator describes which application mode a navigation addresses
// (onboarding landing, setup wizard, or organization dashboard) and the
// parameters needed to render it. Parsing is purely syntactic and always
// succeeds; the worst case is a locator with degraded optional fields.
package routing

// Wire-format constants of the dashboard's own URLs.
const (
	// AragonSuffix is the default name-service domain appended to bare
	// organization labels ("mydao" resolves as "mydao.aragonid.eth")
	AragonSuffix = "aragonid.eth"

	// DefaultInstanceID is the sentinel application instance shown when a
	// path names an organization without an app
	DefaultInstanceID = "home"

	// ParamsMarker introduces the percent-encoded app parameter blob
	ParamsMarker = "?p="

	// PreferencesMarker introduces the global preferences sub-path
	PreferencesMarker = "?preferences=/"

	// LabelsMarker introduces the shared-label payload inside the
	// preferences remainder, and doubles as its key in Preferences.Params
	LabelsMarker = "&labels="
)

// Mode identifies which top-level UI a locator addresses.
type Mode string

const (
	// ModeStart is the onboarding landing page
	ModeStart Mode = "start"
	// ModeSetup is the onboarding setup wizard
	ModeSetup Mode = "setup"
	// ModeOrg is the organization dashboard
	ModeOrg Mode = "org"
)

// Locator is the parsed result of a navigation path. Exactly one of the
// mode-specific detail pointers is non-nil, matching Mode. A locator is an
// immutable value constructed once per navigation event.
type Locator struct {
	// Path is the original combined pathname+search, retained for diagnostics
	Path string `json:"path"`

	Mode Mode `json:"mode"`

	Start *StartDetails `json:"start,omitempty"`
	Setup *SetupDetails `json:"setup,omitempty"`
	Org   *OrgDetails   `json:"org,omitempty"`

	// Redirect, when non-nil, instructs the caller to rewrite the current
	// URL to a canonical short form. The locator itself is still fully
	// populated for the original input, so rendering never blocks on the
	// replacement. Re-parsing the redirect target yields no further
	// redirect, so applying it is idempotent.
	Redirect *Redirect `json:"redirect,omitempty"`
}

// StartDetails carries the onboarding landing sub-action.
type StartDetails struct {
	// Action is "open", "create", or empty for the bare landing page
	Action string `json:"action,omitempty"`
}

// SetupDetails carries the onboarding wizard position.
type SetupDetails struct {
	// Step is the current wizard step, empty for the first step
	Step string `json:"step,omitempty"`

	// Parts are the remaining path segments after the step
	Parts []string `json:"parts,omitempty"`
}

// OrgDetails carries everything needed to render an organization dashboard.
type OrgDetails struct {
	// DAO is the organization identifier: an account address or a
	// fully-qualified name-service domain
	DAO string `json:"dao"`

	// InstanceID identifies the application instance to display
	InstanceID string `json:"instance_id"`

	// Params is the decoded opaque app parameter blob, nil if absent
	// or undecodable
	Params *string `json:"params,omitempty"`

	// Parts are the remaining path segments after the instance id
	Parts []string `json:"parts,omitempty"`

	Preferences Preferences `json:"preferences"`
}

// Redirect asks the integration layer to replace the current URL without
// triggering a fresh navigation cycle.
type Redirect struct {
	Pathname string `json:"pathname"`
	Search   string `json:"search,omitempty"`
}

// Navigator abstracts browser-history style URL replacement for callers
// that want the fire-and-forget behavior.
type Navigator interface {
	Replace(pathname, search string) error
}

// ApplyRedirect sends the locator's redirect instruction, if any, to nav.
// It is a no-op when the locator carries no redirect.
func (l *Locator) ApplyRedirect(nav Navigator) error {
	if l.Redirect == nil {
		return nil
	}
	return nav.Replace(l.Redirect.Pathname, l.Redirect.Search)
}
