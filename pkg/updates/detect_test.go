package updates

import (
	"context"
	"errors"
	"testing"

	"github.com/mhuels/depscout/pkg/integrations/npm"
)

// fakeRegistry serves canned package info and fails for names in broken.
type fakeRegistry struct {
	packages map[string]*npm.PackageInfo
	broken   map[string]bool
}

func (f *fakeRegistry) FetchPackage(_ context.Context, pkg string) (*npm.PackageInfo, error) {
	if f.broken[pkg] {
		return nil, errors.New("boom")
	}
	info, ok := f.packages[pkg]
	if !ok {
		return nil, errors.New("not found")
	}
	return info, nil
}

func newTestDetector(reg *fakeRegistry) *Detector {
	return NewDetector(reg, NewDocResolver(&fakeProber{}, nil), nil)
}

func TestDetectEmitsUpdates(t *testing.T) {
	reg := &fakeRegistry{packages: map[string]*npm.PackageInfo{
		"left-pad": {Name: "left-pad", Latest: "1.3.0", HomePage: "https://left-pad.io"},
		"lodash":   {Name: "lodash", Latest: "4.17.21"},
	}}

	records := newTestDetector(reg).Detect(context.Background(), map[string]string{
		"left-pad": "^1.0.0",
		"lodash":   "4.17.21", // already current
	})

	if len(records) != 1 {
		t.Fatalf("Detect() = %d records, want 1", len(records))
	}

	r := records[0]
	if r.Name != "left-pad" {
		t.Errorf("Name = %q, want left-pad", r.Name)
	}
	if r.CurrentVersion != "1.0.0" {
		t.Errorf("CurrentVersion = %q, want 1.0.0 (normalized)", r.CurrentVersion)
	}
	if r.LatestVersion != "1.3.0" {
		t.Errorf("LatestVersion = %q, want 1.3.0", r.LatestVersion)
	}
	if r.DocURL == "" {
		t.Error("DocURL must be populated")
	}
}

func TestDetectDropsInSync(t *testing.T) {
	reg := &fakeRegistry{packages: map[string]*npm.PackageInfo{
		"a": {Name: "a", Latest: "1.0.0"},
		"b": {Name: "b", Latest: "2.3.4"},
	}}

	records := newTestDetector(reg).Detect(context.Background(), map[string]string{
		"a": "^1.0.0",
		"b": "~2.3.4",
	})

	if len(records) != 0 {
		t.Errorf("Detect() = %d records, want 0 when everything is current", len(records))
	}
}

func TestDetectFailureDoesNotAbortBatch(t *testing.T) {
	reg := &fakeRegistry{
		packages: map[string]*npm.PackageInfo{
			"good": {Name: "good", Latest: "2.0.0"},
		},
		broken: map[string]bool{"bad": true},
	}

	var logged []string
	d := NewDetector(reg, NewDocResolver(&fakeProber{}, nil), func(format string, args ...any) {
		logged = append(logged, format)
	})

	records := d.Detect(context.Background(), map[string]string{
		"good": "1.0.0",
		"bad":  "1.0.0",
	})

	if len(records) != 1 || records[0].Name != "good" {
		t.Fatalf("Detect() = %v, want only the good record", records)
	}
	if len(logged) == 0 {
		t.Error("failed lookup should be logged")
	}
}

func TestDetectLargeBatch(t *testing.T) {
	reg := &fakeRegistry{packages: map[string]*npm.PackageInfo{}}
	deps := map[string]string{}
	for _, name := range []string{"a", "b", "c", "d", "e", "f", "g", "h", "i", "j", "k", "l"} {
		reg.packages[name] = &npm.PackageInfo{Name: name, Latest: "9.9.9"}
		deps[name] = "1.0.0"
	}

	d := newTestDetector(reg)
	d.Concurrency = 3
	records := d.Detect(context.Background(), deps)

	if len(records) != len(deps) {
		t.Errorf("Detect() = %d records, want %d", len(records), len(deps))
	}
}

func TestDetectEmptyInput(t *testing.T) {
	records := newTestDetector(&fakeRegistry{}).Detect(context.Background(), nil)
	if len(records) != 0 {
		t.Errorf("Detect(nil) = %d records, want 0", len(records))
	}
}
