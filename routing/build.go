package routing

import (
	"net/url"
	"strings"

	"github.com/Bitcoinera/aragon/apps"
)

// OrgFields are the inputs to BuildPath: the organization-mode fields a
// caller knows when constructing a link.
type OrgFields struct {
	DAO        string
	InstanceID string
	Params     *string
}

// Builder constructs canonical paths from organization-mode fields,
// consulting an injected application registry for canonical route segments.
type Builder struct {
	Registry *apps.Registry
}

// NewBuilder returns a builder over the given registry. A nil registry is
// treated as empty: every instance id appends literally.
func NewBuilder(registry *apps.Registry) *Builder {
	return &Builder{Registry: registry}
}

// DefaultBuilder backs the package-level BuildPath, using the builtin
// system application registry.
var DefaultBuilder = NewBuilder(apps.Builtin())

// BuildPath builds the canonical path with the default builder.
func BuildPath(fields OrgFields) string {
	return DefaultBuilder.BuildPath(fields)
}

// BuildPath produces the canonical path for an organization-mode locator.
// The short organization form is canonical output: a dao carrying the
// suffix domain is stripped to its bare label. The parser accepts and
// normalizes both forms, so the asymmetry is deliberate.
func (b *Builder) BuildPath(fields OrgFields) string {
	dao := fields.DAO
	if i := strings.Index(dao, AragonSuffix); i > 0 {
		// Drop the suffix and its preceding separator
		dao = dao[:i-1]
	}

	instanceID := fields.InstanceID
	if instanceID == "" {
		instanceID = DefaultInstanceID
	}

	search := ""
	if fields.Params != nil {
		search = ParamsMarker + url.QueryEscape(*fields.Params)
	}

	if desc, ok := b.Registry.Get(instanceID); ok {
		return "/" + dao + desc.Route + search
	}
	return "/" + dao + "/" + instanceID + search
}
