package updates

import (
	"context"

	"github.com/mhuels/depscout/pkg/integrations"
	"github.com/mhuels/depscout/pkg/integrations/github"
	"github.com/mhuels/depscout/pkg/integrations/npm"
)

// ReleaseProber reports whether a repository publishes structured releases.
type ReleaseProber interface {
	HasReleases(ctx context.Context, owner, repo string) (bool, error)
}

// DocResolver resolves the documentation URL for an update record.
//
// Release notes are the highest-value link for someone deciding whether to
// upgrade, so the chain starts at the repository's releases listing and
// degrades through three independently-failing sources:
//
//  1. repository URL, normalized and probed for releases -> <repo>/releases
//  2. the package homepage
//  3. the registry's versions page for the package
//
// The final step always succeeds, so Resolve never returns an empty URL.
type DocResolver struct {
	Prober ReleaseProber
	Logf   func(format string, args ...any)
}

// NewDocResolver creates a DocResolver using the given release prober.
// Pass nil for logf to discard probe diagnostics.
func NewDocResolver(prober ReleaseProber, logf func(format string, args ...any)) *DocResolver {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &DocResolver{Prober: prober, Logf: logf}
}

// Resolve returns the documentation URL for info. Probe failures (network
// errors, 404s, rate limits) are treated as "no releases" and logged, never
// propagated.
func (r *DocResolver) Resolve(ctx context.Context, info *npm.PackageInfo) string {
	if repoURL := integrations.NormalizeRepoURL(info.Repository); repoURL != "" {
		if owner, repo, ok := github.ParseRepoURL(repoURL); ok && r.Prober != nil {
			has, err := r.Prober.HasReleases(ctx, owner, repo)
			if err != nil {
				r.Logf("release probe failed: %s/%s: %v", owner, repo, err)
			}
			if has {
				return "https://github.com/" + owner + "/" + repo + "/releases"
			}
		}
	}

	if info.HomePage != "" {
		return info.HomePage
	}
	return npm.PackagePage(info.Name)
}
