// Package github provides a minimal GitHub API client used to probe
// whether an upstream repository publishes structured releases.
package github
