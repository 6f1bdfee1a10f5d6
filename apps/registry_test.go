package apps

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/Bitcoinera/aragon/errors"
)

func TestNewRejectsInvalidDescriptors(t *testing.T) {
	tests := []struct {
		name  string
		descs []Descriptor
	}{
		{"empty id", []Descriptor{{ID: "", Route: "/x"}}},
		{"empty route", []Descriptor{{ID: "x", Route: ""}}},
		{"duplicate id", []Descriptor{
			{ID: "voting", Route: "/voting"},
			{ID: "voting", Route: "/voting2"},
		}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.descs...)
			require.Error(t, err)
			assert.True(t, errors.Is(err, errors.ErrInvalidRegistry))
		})
	}
}

func TestRegistryLookup(t *testing.T) {
	r, err := New(
		Descriptor{ID: "voting", Name: "Voting", Route: "/voting"},
		Descriptor{ID: "finance", Name: "Finance", Route: "/finance"},
	)
	require.NoError(t, err)

	assert.True(t, r.Has("voting"))
	assert.False(t, r.Has("tokens"))

	d, ok := r.Get("finance")
	require.True(t, ok)
	assert.Equal(t, "/finance", d.Route)

	assert.Equal(t, []string{"finance", "voting"}, r.IDs())
	assert.Equal(t, 2, r.Len())
}

func TestNilRegistryIsEmpty(t *testing.T) {
	var r *Registry
	assert.False(t, r.Has("home"))
	_, ok := r.Get("home")
	assert.False(t, ok)
	assert.Nil(t, r.IDs())
	assert.Equal(t, 0, r.Len())
}

func TestBuiltin(t *testing.T) {
	r := Builtin()

	home, ok := r.Get("home")
	require.True(t, ok)
	assert.Equal(t, "/", home.Route)

	for _, id := range []string{"permissions", "apps", "organization", "console"} {
		assert.True(t, r.Has(id), "builtin %s missing", id)
	}
}
