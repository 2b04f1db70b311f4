package manifest

import (
	"encoding/json"
	stderrors "errors"
	"maps"
	"os"
	"slices"
	"strings"

	"github.com/mhuels/depscout/pkg/errors"
)

// DefaultLockName is the lockfile filename depscout looks for.
const DefaultLockName = "package-lock.json"

// ErrLockUnavailable signals that no usable lockfile exists: the file is
// missing or cannot be parsed as structured content. This is distinct from
// a lockfile that parsed but contains no entries. Callers fall back to
// manifest-only resolution for the whole run. Check with errors.Is: the
// malformed case wraps the sentinel in a coded error.
var ErrLockUnavailable = stderrors.New("lockfile unavailable")

// Lockfile maps lock entries to their concretely resolved versions.
// Entries are keyed by compound "name@range" identifiers; path-style
// "node_modules/name" keys and the bare names of v1 lockfiles are
// tolerated as well.
type Lockfile struct {
	entries map[string]lockEntry
}

type lockEntry struct {
	Version string `json:"version"`
}

// lockFile matches the layouts in the wild: a top-level "packages" object
// (lockfileVersion 2+), a top-level "dependencies" object (lockfileVersion
// 1), or the entry map as the document root.
type lockFile struct {
	Packages     map[string]lockEntry `json:"packages"`
	Dependencies map[string]lockEntry `json:"dependencies"`
}

// LoadLockfile reads and parses the lockfile at path.
// A missing file returns [ErrLockUnavailable] bare; malformed content
// returns it wrapped under [errors.ErrCodeInvalidLockfile]. Neither is an
// error condition for the run as a whole.
func LoadLockfile(path string) (*Lockfile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, ErrLockUnavailable
	}

	var lf lockFile
	if err := json.Unmarshal(data, &lf); err == nil {
		switch {
		case lf.Packages != nil:
			return &Lockfile{entries: lf.Packages}, nil
		case lf.Dependencies != nil:
			return &Lockfile{entries: lf.Dependencies}, nil
		}
	}

	var flat map[string]lockEntry
	if err := json.Unmarshal(data, &flat); err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidLockfile, ErrLockUnavailable, "cannot parse lockfile: %s", path)
	}
	return &Lockfile{entries: flat}, nil
}

// Len returns the number of lock entries.
func (l *Lockfile) Len() int { return len(l.entries) }

// Resolve maps each declared dependency name to its locked version.
//
// For each name an exact compound-key match ("name@range") is attempted
// first; failing that, all entries are scanned and matched by name alone.
// The scan iterates in sorted key order so resolution is stable across
// runs; when several entries share a name under different ranges the first
// match wins and logf is told about the ambiguity.
//
// The result is partial: names the lockfile does not cover are simply
// absent. Pass nil for logf to discard warnings.
func (l *Lockfile) Resolve(declared map[string]string, logf func(format string, args ...any)) map[string]string {
	if logf == nil {
		logf = func(string, ...any) {}
	}

	keys := slices.Sorted(maps.Keys(l.entries))
	resolved := make(map[string]string, len(declared))

	for name, rng := range declared {
		if e, ok := l.entries[name+"@"+rng]; ok && e.Version != "" {
			resolved[name] = e.Version
			continue
		}

		var matches []string
		for _, key := range keys {
			if entryName(key) == name && l.entries[key].Version != "" {
				matches = append(matches, key)
			}
		}
		if len(matches) == 0 {
			continue
		}
		if len(matches) > 1 {
			logf("lockfile has %d entries for %s, using %s", len(matches), name, matches[0])
		}
		resolved[name] = l.entries[matches[0]].Version
	}
	return resolved
}

// entryName extracts the package name from a lock entry key.
// Compound keys split on the last "@" so scoped names (@babel/core@^7.0.0)
// keep their scope; path keys keep everything after "node_modules/".
func entryName(key string) string {
	if idx := strings.LastIndex(key, "node_modules/"); idx >= 0 {
		return key[idx+len("node_modules/"):]
	}
	if idx := strings.LastIndex(key, "@"); idx > 0 {
		return key[:idx]
	}
	return key
}
