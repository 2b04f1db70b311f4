package updates

import (
	"context"
	"errors"
	"testing"

	"github.com/mhuels/depscout/pkg/integrations/npm"
)

// fakeProber records probe calls and returns canned answers per repo path.
type fakeProber struct {
	releases map[string]bool
	err      error
	calls    []string
}

func (f *fakeProber) HasReleases(_ context.Context, owner, repo string) (bool, error) {
	f.calls = append(f.calls, owner+"/"+repo)
	if f.err != nil {
		return false, f.err
	}
	return f.releases[owner+"/"+repo], nil
}

func TestDocResolverReleases(t *testing.T) {
	prober := &fakeProber{releases: map[string]bool{"acme/widget": true}}
	r := NewDocResolver(prober, nil)

	info := &npm.PackageInfo{
		Name:       "widget",
		Repository: "git+ssh://git@github.com/acme/widget.git",
		HomePage:   "https://widget.example.com",
	}

	got := r.Resolve(context.Background(), info)
	want := "https://github.com/acme/widget/releases"
	if got != want {
		t.Errorf("Resolve() = %q, want %q", got, want)
	}
	if len(prober.calls) != 1 || prober.calls[0] != "acme/widget" {
		t.Errorf("probe calls = %v, want [acme/widget]", prober.calls)
	}
}

func TestDocResolverFallsToHomepage(t *testing.T) {
	prober := &fakeProber{} // no repos have releases
	r := NewDocResolver(prober, nil)

	info := &npm.PackageInfo{
		Name:       "widget",
		Repository: "git+ssh://git@github.com/acme/widget.git",
		HomePage:   "https://widget.example.com",
	}

	if got := r.Resolve(context.Background(), info); got != "https://widget.example.com" {
		t.Errorf("Resolve() = %q, want homepage", got)
	}
}

func TestDocResolverProbeFailureIsNoReleases(t *testing.T) {
	prober := &fakeProber{err: errors.New("rate limited")}
	r := NewDocResolver(prober, nil)

	info := &npm.PackageInfo{
		Name:       "widget",
		Repository: "https://github.com/acme/widget",
		HomePage:   "https://widget.example.com",
	}

	if got := r.Resolve(context.Background(), info); got != "https://widget.example.com" {
		t.Errorf("probe failure must fall through to homepage, got %q", got)
	}
}

func TestDocResolverFallsToRegistryPage(t *testing.T) {
	r := NewDocResolver(&fakeProber{}, nil)

	tests := []struct {
		name string
		info *npm.PackageInfo
	}{
		{"no repo, no homepage", &npm.PackageInfo{Name: "widget"}},
		{"non-github repo, no homepage", &npm.PackageInfo{Name: "widget", Repository: "https://gitlab.com/acme/widget"}},
	}

	want := "https://www.npmjs.com/package/widget?activeTab=versions"
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := r.Resolve(context.Background(), tt.info); got != want {
				t.Errorf("Resolve() = %q, want %q", got, want)
			}
		})
	}
}

func TestDocResolverNeverEmpty(t *testing.T) {
	r := NewDocResolver(nil, nil)
	if got := r.Resolve(context.Background(), &npm.PackageInfo{Name: "x"}); got == "" {
		t.Error("Resolve() must never return an empty URL")
	}
}
