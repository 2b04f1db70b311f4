package manifest

import (
	"encoding/json"
	"os"

	"github.com/mhuels/depscout/pkg/errors"
)

// DefaultManifestName is the manifest filename depscout looks for.
const DefaultManifestName = "package.json"

// Manifest holds the declared dependencies of a package.json file.
// Both dependencies and devDependencies participate in update checking;
// the manifest itself is never mutated.
type Manifest struct {
	Name            string            `json:"name"`
	Version         string            `json:"version"`
	Dependencies    map[string]string `json:"dependencies"`
	DevDependencies map[string]string `json:"devDependencies"`
}

// LoadManifest reads and parses the package.json at path.
// A missing or unreadable manifest is the one fatal condition of a run, so
// the returned errors carry codes the CLI maps to a non-zero exit.
func LoadManifest(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, errors.Wrap(errors.ErrCodeFileNotFound, err, "manifest not found: %s", path)
		}
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot read manifest: %s", path)
	}

	var m Manifest
	if err := json.Unmarshal(data, &m); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidManifest, err, "cannot parse manifest: %s", path)
	}
	return &m, nil
}

// Declared merges dependencies and devDependencies into one name -> range
// map. Names are unique within a manifest; if a package appears in both
// sections, the dependencies entry wins.
func (m *Manifest) Declared() map[string]string {
	merged := make(map[string]string, len(m.Dependencies)+len(m.DevDependencies))
	for name, rng := range m.DevDependencies {
		merged[name] = rng
	}
	for name, rng := range m.Dependencies {
		merged[name] = rng
	}
	return merged
}
