package apps

import (
	"os"

	"github.com/BurntSushi/toml"

	"github.com/Bitcoinera/aragon/errors"
)

// registryFile is the on-disk TOML shape:
//
//	[[app]]
//	id = "voting"
//	name = "Voting"
//	route = "/voting"
type registryFile struct {
	Apps []Descriptor `toml:"app"`
}

// LoadFile reads application descriptors from a TOML file and merges them
// over the builtin system apps. File entries may override builtins by
// reusing an id.
func LoadFile(path string) (*Registry, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to read registry file %s", path)
	}

	var file registryFile
	if err := toml.Unmarshal(data, &file); err != nil {
		return nil, errors.Wrapf(err, "failed to parse registry file %s", path)
	}

	merged := make([]Descriptor, 0, len(builtins)+len(file.Apps))
	overridden := make(map[string]bool, len(file.Apps))
	for _, d := range file.Apps {
		overridden[d.ID] = true
	}
	for _, d := range builtins {
		if !overridden[d.ID] {
			merged = append(merged, d)
		}
	}
	merged = append(merged, file.Apps...)

	registry, err := New(merged...)
	if err != nil {
		return nil, errors.Wrapf(err, "registry file %s", path)
	}
	return registry, nil
}
