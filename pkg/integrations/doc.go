// Package integrations provides HTTP clients for the external APIs depscout
// talks to.
//
// Each API has its own subpackage:
//
//   - [npm]: the npm registry, for latest published versions and metadata
//   - [github]: the GitHub API, for probing whether a repository publishes releases
//
// # Client Pattern
//
// Both clients wrap the shared [Client], which handles request headers,
// retry with backoff for transient failures, and the ErrNotFound/ErrNetwork
// error taxonomy. A lookup failure for one package is always local to that
// package; clients return errors, they never panic or abort a batch.
//
// [npm]: github.com/mhuels/depscout/pkg/integrations/npm
// [github]: github.com/mhuels/depscout/pkg/integrations/github
package integrations
