package routing

import (
	"net/url"
	"strings"

	"github.com/Bitcoinera/aragon/ens"
	"github.com/Bitcoinera/aragon/eth"
	"github.com/Bitcoinera/aragon/logger"
)

// Parser classifies navigation paths into locators. The zero value uses the
// default syntactic validators and the default suffix domain; fields exist
// so tests and alternate deployments can inject their own.
type Parser struct {
	// IsAddress reports whether a segment is a valid account address
	IsAddress func(string) bool

	// IsValidName reports whether a segment is a valid name-service domain
	IsValidName func(string) bool

	// Suffix is the domain appended to bare organization labels
	Suffix string
}

// NewParser returns a parser wired to the eth and ens validators and the
// aragonid.eth suffix.
func NewParser() *Parser {
	return &Parser{
		IsAddress:   eth.IsAddress,
		IsValidName: ens.IsValidName,
		Suffix:      AragonSuffix,
	}
}

// DefaultParser backs the package-level Parse.
var DefaultParser = NewParser()

// Parse classifies pathname+search with the default parser.
func Parse(pathname, search string) *Locator {
	return DefaultParser.Parse(pathname, search)
}

// Parse converts a pathname and search string into a locator.
//
// Classification order is fixed: start-like segments first, then "setup",
// then fallback to organization. A path literally named /setup is never
// treated as an organization called "setup".
func (p *Parser) Parse(pathname, search string) *Locator {
	path := pathname + search
	parts := strings.Split(strings.TrimPrefix(pathname, "/"), "/")

	switch parts[0] {
	case "", "open", "create":
		return &Locator{
			Path:  path,
			Mode:  ModeStart,
			Start: &StartDetails{Action: parts[0]},
		}

	case "setup":
		setup := &SetupDetails{}
		if len(parts) > 1 {
			setup.Step = parts[1]
		}
		if len(parts) > 2 {
			setup.Parts = parts[2:]
		}
		return &Locator{
			Path:  path,
			Mode:  ModeSetup,
			Setup: setup,
		}
	}

	dao, redirect := p.normalizeDAO(parts[0], pathname, search)

	org := &OrgDetails{
		DAO:         dao,
		InstanceID:  DefaultInstanceID,
		Params:      decodeParams(search),
		Preferences: ParsePreferences(search),
	}
	if len(parts) > 1 && parts[1] != "" {
		org.InstanceID = parts[1]
	}
	if len(parts) > 2 {
		org.Parts = parts[2:]
	}

	return &Locator{
		Path:     path,
		Mode:     ModeOrg,
		Org:      org,
		Redirect: redirect,
	}
}

// normalizeDAO resolves a candidate organization segment to its full
// identifier. Bare labels get the suffix domain appended; legacy suffixed
// domains keep their full form but request a redirect to the short form.
// Validity checks are purely syntactic.
func (p *Parser) normalizeDAO(dao, pathname, search string) (string, *Redirect) {
	validAddress := p.isAddress(dao)
	validDomain := p.isValidName(dao)

	switch {
	case !validAddress && !validDomain:
		return dao + "." + p.suffix(), nil

	case validDomain && strings.HasSuffix(dao, "."+p.suffix()):
		// Legacy fully-suffixed URL: the short form is canonical
		return dao, &Redirect{
			Pathname: strings.Replace(pathname, "."+p.suffix(), "", 1),
			Search:   search,
		}
	}

	return dao, nil
}

// decodeParams extracts and percent-decodes the opaque app parameter blob
// after the first ?p= marker. Decode failure degrades to nil with a logged
// warning, never a hard failure.
func decodeParams(search string) *string {
	i := strings.Index(search, ParamsMarker)
	if i < 0 {
		return nil
	}

	raw := search[i+len(ParamsMarker):]
	decoded, err := url.QueryUnescape(raw)
	if err != nil {
		logger.Warnw("The app parameters could not be decoded",
			"params", raw,
			"error", err)
		return nil
	}
	return &decoded
}

func (p *Parser) isAddress(s string) bool {
	if p.IsAddress != nil {
		return p.IsAddress(s)
	}
	return eth.IsAddress(s)
}

func (p *Parser) isValidName(s string) bool {
	if p.IsValidName != nil {
		return p.IsValidName(s)
	}
	return ens.IsValidName(s)
}

func (p *Parser) suffix() string {
	if p.Suffix != "" {
		return p.Suffix
	}
	return AragonSuffix
}
