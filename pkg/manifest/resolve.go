package manifest

// Mode identifies the whole-run version resolution strategy. It is selected
// once, when the lockfile is loaded (or fails to load), never per package.
type Mode string

const (
	// ModeLockfile resolves current versions from the lockfile, falling
	// back to the declared range for names the lock omits.
	ModeLockfile Mode = "lockfile"

	// ModeManifest resolves current versions from declared ranges only.
	ModeManifest Mode = "manifest"
)

// CurrentVersions produces the name -> current version map update detection
// runs on. Pass the result of [LoadLockfile], or nil to force manifest-only
// resolution; the returned Mode records which strategy was applied.
//
// Declared ranges flow through un-normalized; the update detector strips
// range prefixes as part of detection.
func CurrentVersions(m *Manifest, lock *Lockfile, logf func(format string, args ...any)) (map[string]string, Mode) {
	declared := m.Declared()
	if lock == nil {
		return declared, ModeManifest
	}

	locked := lock.Resolve(declared, logf)
	current := make(map[string]string, len(declared))
	for name, rng := range declared {
		if v, ok := locked[name]; ok {
			current[name] = v
		} else {
			current[name] = rng
		}
	}
	return current, ModeLockfile
}
