package apps

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeRegistryFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "apps.toml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoadFileMergesOverBuiltins(t *testing.T) {
	path := writeRegistryFile(t, `
[[app]]
id = "voting"
name = "Voting"
route = "/voting"

[[app]]
id = "finance"
name = "Finance"
route = "/finance"
`)

	r, err := LoadFile(path)
	require.NoError(t, err)

	// File entries present
	assert.True(t, r.Has("voting"))
	assert.True(t, r.Has("finance"))

	// Builtins survive the merge
	assert.True(t, r.Has("home"))
	assert.True(t, r.Has("permissions"))
}

func TestLoadFileOverridesBuiltin(t *testing.T) {
	path := writeRegistryFile(t, `
[[app]]
id = "home"
name = "Custom Home"
route = "/dashboard"
`)

	r, err := LoadFile(path)
	require.NoError(t, err)

	home, ok := r.Get("home")
	require.True(t, ok)
	assert.Equal(t, "Custom Home", home.Name)
	assert.Equal(t, "/dashboard", home.Route)
}

func TestLoadFileErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		_, err := LoadFile(filepath.Join(t.TempDir(), "absent.toml"))
		require.Error(t, err)
	})

	t.Run("malformed toml", func(t *testing.T) {
		path := writeRegistryFile(t, `[[app]`)
		_, err := LoadFile(path)
		require.Error(t, err)
	})

	t.Run("invalid descriptor", func(t *testing.T) {
		path := writeRegistryFile(t, `
[[app]]
id = "broken"
`)
		_, err := LoadFile(path)
		require.Error(t, err)
	})
}
