package config

import (
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"

	"github.com/mhuels/depscout/pkg/errors"
)

// SettingsName is the optional per-project tool settings file.
const SettingsName = ".depscout.toml"

// Settings holds tool-level configuration: endpoints, credentials, and
// request shaping. All fields are optional; zero values select defaults.
//
// The GitHub token only raises rate limits for the release probe. It is an
// injected value, never an implicit environment lookup, so the probing code
// stays testable with fakes; [LoadSettings] performs the one environment
// fallback at the edge.
type Settings struct {
	RegistryURL  string `toml:"registry_url"`   // npm registry base URL
	GitHubAPIURL string `toml:"github_api_url"` // GitHub API base URL
	GitHubToken  string `toml:"github_token"`   // bearer token for release probes
	Concurrency  int    `toml:"concurrency"`    // max in-flight registry lookups
}

// LoadSettings reads .depscout.toml from dir. A missing file returns zero
// Settings and no error; a malformed file is reported so a typo doesn't
// silently run with defaults. When the file carries no token, GITHUB_TOKEN
// from the environment is used.
func LoadSettings(dir string) (Settings, error) {
	var s Settings

	data, err := os.ReadFile(filepath.Join(dir, SettingsName))
	switch {
	case os.IsNotExist(err):
	case err != nil:
		return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read %s", SettingsName)
	default:
		if err := toml.Unmarshal(data, &s); err != nil {
			return s, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse %s", SettingsName)
		}
	}

	if s.GitHubToken == "" {
		s.GitHubToken = os.Getenv("GITHUB_TOKEN")
	}
	return s, nil
}
