package apps

// builtins are the dashboard's system applications. Organization-installed
// apps (voting, finance, ...) are addressed by their instance id directly
// and need no registry entry.
var builtins = []Descriptor{
	{ID: "home", Name: "Home", Route: "/"},
	{ID: "permissions", Name: "Permissions", Route: "/permissions"},
	{ID: "apps", Name: "App Center", Route: "/apps"},
	{ID: "organization", Name: "Organization Settings", Route: "/organization"},
	{ID: "console", Name: "Console", Route: "/console"},
}

// Builtin returns a registry holding only the system applications.
func Builtin() *Registry {
	r, err := New(builtins...)
	if err != nil {
		// builtins are compile-time constants and always valid
		panic(err)
	}
	return r
}
