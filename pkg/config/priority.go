package config

import (
	"encoding/json"
	"os"

	"github.com/mhuels/depscout/pkg/errors"
)

// PriorityName is the priority package configuration file.
const PriorityName = "depscout.json"

// DefaultPriorityPackages seeds a freshly bootstrapped configuration.
// Framework and toolchain packages whose updates usually warrant immediate
// attention.
var DefaultPriorityPackages = []string{
	"react",
	"react-dom",
	"typescript",
	"webpack",
	"eslint",
}

// Priority is the priority package configuration: an externally supplied
// set of names used purely to partition update records.
type Priority struct {
	PriorityPackages []string `json:"priorityPackages"`
}

// LoadPriority reads the priority configuration at path. When the file does
// not exist, a default document is written there and returned; created
// reports whether that bootstrap happened. Malformed content is an error
// rather than a silent empty set.
func LoadPriority(path string) (*Priority, bool, error) {
	data, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		p := &Priority{PriorityPackages: DefaultPriorityPackages}
		if err := writePriority(path, p); err != nil {
			return nil, false, err
		}
		return p, true, nil
	}
	if err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot read %s", path)
	}

	var p Priority
	if err := json.Unmarshal(data, &p); err != nil {
		return nil, false, errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot parse %s", path)
	}
	return &p, false, nil
}

func writePriority(path string, p *Priority) error {
	data, err := json.MarshalIndent(p, "", "  ")
	if err != nil {
		return errors.Wrap(errors.ErrCodeInternal, err, "cannot encode %s", path)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidConfig, err, "cannot write %s", path)
	}
	return nil
}
