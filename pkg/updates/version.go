package updates

import (
	"strconv"
	"strings"

	"golang.org/x/mod/semver"
)

// Normalize strips a single leading caret or tilde range indicator from a
// declared version string, turning "^1.2.3" or "~1.2.3" into "1.2.3".
// Any other range syntax (">=", "||", wildcards) passes through unchanged;
// depscout does not implement general semantic-range parsing. Idempotent.
func Normalize(version string) string {
	version = strings.TrimSpace(version)
	if len(version) > 0 && (version[0] == '^' || version[0] == '~') {
		return version[1:]
	}
	return version
}

// Distance measures the magnitude of a version change as a single sortable
// number: major jumps dominate minor jumps dominate patch jumps.
//
//	distance = Δmajor*10000 + Δminor*100 + Δpatch
//
// If either side fails to parse as a three-component version the distance
// is 0, so unparseable records sort as if nothing changed.
func Distance(current, latest string) int {
	cMajor, cMinor, cPatch, ok := versionParts(current)
	if !ok {
		return 0
	}
	lMajor, lMinor, lPatch, ok := versionParts(latest)
	if !ok {
		return 0
	}
	return (lMajor-cMajor)*10000 + (lMinor-cMinor)*100 + (lPatch - cPatch)
}

// versionParts extracts (major, minor, patch) from a version string.
// Canonicalization through the semver package accepts both full and
// truncated forms ("1.2" becomes 1.2.0) and rejects range syntax.
func versionParts(v string) (major, minor, patch int, ok bool) {
	canonical := semver.Canonical("v" + strings.TrimPrefix(strings.TrimSpace(v), "v"))
	if canonical == "" {
		return 0, 0, 0, false
	}

	base := strings.TrimPrefix(canonical, "v")
	if idx := strings.IndexAny(base, "-+"); idx >= 0 {
		base = base[:idx]
	}

	parts := strings.Split(base, ".")
	if len(parts) != 3 {
		return 0, 0, 0, false
	}
	nums := make([]int, 3)
	for i, p := range parts {
		n, err := strconv.Atoi(p)
		if err != nil {
			return 0, 0, 0, false
		}
		nums[i] = n
	}
	return nums[0], nums[1], nums[2], true
}
