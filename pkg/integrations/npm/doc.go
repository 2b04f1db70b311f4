// Package npm provides a client for the npm registry API.
package npm
