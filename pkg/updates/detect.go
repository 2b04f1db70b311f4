package updates

import (
	"context"
	"maps"
	"slices"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/mhuels/depscout/pkg/integrations/npm"
	"github.com/mhuels/depscout/pkg/observability"
)

// defaultConcurrency bounds the number of in-flight registry lookups.
const defaultConcurrency = 8

// Record describes one available update: a dependency whose registry latest
// differs from its current version, plus a documentation URL for reviewing
// the change. Records where both versions match are never produced.
type Record struct {
	Name           string
	CurrentVersion string
	LatestVersion  string
	DocURL         string
}

// RegistryClient fetches package metadata from the npm registry.
type RegistryClient interface {
	FetchPackage(ctx context.Context, pkg string) (*npm.PackageInfo, error)
}

// Detector combines registry lookups and documentation resolution into
// update records.
type Detector struct {
	Registry    RegistryClient
	Docs        *DocResolver
	Concurrency int
	Logf        func(format string, args ...any)
}

// NewDetector creates a Detector. Pass nil for logf to discard per-package
// diagnostics.
func NewDetector(registry RegistryClient, docs *DocResolver, logf func(format string, args ...any)) *Detector {
	if logf == nil {
		logf = func(string, ...any) {}
	}
	return &Detector{Registry: registry, Docs: docs, Logf: logf}
}

// Detect checks every dependency against the registry and returns a record
// for each one with a newer published version.
//
// Lookups for different packages run concurrently; each goroutine writes
// only its own result slot and failures never abort the batch. A package is
// silently dropped (logged, not reported) when its registry lookup fails or
// when it is already current. The output carries no ordering contract
// beyond being deterministic for identical inputs; callers impose order
// with [Rank] and [Partition].
func (d *Detector) Detect(ctx context.Context, deps map[string]string) []Record {
	names := slices.Sorted(maps.Keys(deps))
	results := make([]*Record, len(names))

	start := time.Now()
	observability.Detect().OnBatchStart(ctx, len(names))

	concurrency := d.Concurrency
	if concurrency <= 0 {
		concurrency = defaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, name := range names {
		g.Go(func() error {
			results[i] = d.check(ctx, name, deps[name])
			return nil
		})
	}
	_ = g.Wait()

	records := make([]Record, 0, len(results))
	for _, r := range results {
		if r != nil {
			records = append(records, *r)
		}
	}

	observability.Detect().OnBatchComplete(ctx, len(records), time.Since(start))
	return records
}

// check resolves one dependency. A nil result means the package produced no
// record: its lookup failed or it is already current.
func (d *Detector) check(ctx context.Context, name, version string) *Record {
	current := Normalize(version)

	info, err := d.Registry.FetchPackage(ctx, name)
	if err != nil {
		d.Logf("registry lookup failed: %s: %v", name, err)
		observability.Detect().OnPackageSkipped(ctx, name, err)
		return nil
	}

	if info.Latest == current {
		observability.Detect().OnPackageSkipped(ctx, name, nil)
		return nil
	}

	return &Record{
		Name:           name,
		CurrentVersion: current,
		LatestVersion:  info.Latest,
		DocURL:         d.Docs.Resolve(ctx, info),
	}
}
