// Package pkg provides the core libraries behind the depscout CLI.
//
// # Overview
//
// Depscout reads a JavaScript project's dependency declarations, asks the
// npm registry what the latest published versions are, and reports the
// outdated packages ranked by how far behind they are. The pkg directory is
// organized into five areas:
//
//  1. [manifest] - package.json and package-lock.json parsing, resolution mode
//  2. [updates] - detection engine: versions, distance, doc URLs, ranking
//  3. [integrations] - external API clients (npm registry, GitHub)
//  4. [config] - priority package list and tool settings
//  5. [report] - structured run output for JSON and table rendering
//
// # Architecture
//
// The data flow of one run:
//
//	package.json (+ package-lock.json)
//	         ↓
//	    [manifest] package (declared deps, current versions, mode)
//	         ↓
//	    [updates] package (registry lookups, doc URLs, rank, partition)
//	         ↓
//	    [report] package (structured document)
//	         ↓
//	    table/JSON/interactive output
//
// # Quick Start
//
// Detect and rank updates for a set of current versions:
//
//	import (
//	    "context"
//	    "github.com/mhuels/depscout/pkg/integrations/github"
//	    "github.com/mhuels/depscout/pkg/integrations/npm"
//	    "github.com/mhuels/depscout/pkg/updates"
//	)
//
//	docs := updates.NewDocResolver(github.NewClient("", ""), nil)
//	det := updates.NewDetector(npm.NewClient(""), docs, nil)
//	records := det.Detect(context.Background(), map[string]string{
//	    "left-pad": "^1.0.0",
//	})
//	updates.Rank(records)
//
// Supporting packages: [errors] for coded errors, [httputil] for retry with
// backoff, [observability] for pluggable request/detection hooks, and
// [buildinfo] for version stamping.
//
// [manifest]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/manifest
// [updates]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/updates
// [integrations]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/integrations
// [config]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/config
// [report]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/report
// [errors]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/errors
// [httputil]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/httputil
// [observability]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/observability
// [buildinfo]: https://pkg.go.dev/github.com/mhuels/depscout/pkg/buildinfo
package pkg
