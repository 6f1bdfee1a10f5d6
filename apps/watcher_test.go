package apps

import (
	"os"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestWatcherReloadsOnWrite(t *testing.T) {
	path := writeRegistryFile(t, `
[[app]]
id = "voting"
name = "Voting"
route = "/voting"
`)

	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Stop()

	reloaded := make(chan *Registry, 1)
	w.OnReload(func(r *Registry) error {
		select {
		case reloaded <- r:
		default:
		}
		return nil
	})
	w.Start()

	content := `
[[app]]
id = "finance"
name = "Finance"
route = "/finance"
`
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	select {
	case r := <-reloaded:
		assert.True(t, r.Has("finance"))
		assert.False(t, r.Has("voting"))
		// Builtins always survive the merge
		assert.True(t, r.Has("home"))
	case <-time.After(5 * time.Second):
		t.Fatal("registry reload callback never fired")
	}
}

func TestNewWatcherMissingFile(t *testing.T) {
	_, err := NewWatcher("/nonexistent/apps.toml")
	require.Error(t, err)
}
