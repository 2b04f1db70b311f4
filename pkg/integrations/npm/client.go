package npm

import (
	"context"
	"errors"
	"fmt"
	"net/url"
	"strings"

	"github.com/mhuels/depscout/pkg/integrations"
)

// DefaultRegistryURL is the public npm registry endpoint.
const DefaultRegistryURL = "https://registry.npmjs.org"

// PackageInfo holds the registry metadata depscout needs for one package:
// the latest published version and the places release notes might live.
type PackageInfo struct {
	Name       string
	Latest     string
	Repository string
	HomePage   string
}

// Client queries the npm registry for package metadata.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates an npm registry client. Pass an empty baseURL to use
// [DefaultRegistryURL].
func NewClient(baseURL string) *Client {
	if baseURL == "" {
		baseURL = DefaultRegistryURL
	}
	return &Client{
		Client:  integrations.NewClient(map[string]string{"Accept": "application/json"}),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// FetchPackage retrieves the latest version and repository/homepage metadata
// for pkg. Scoped names (@scope/name) are escaped as a single path segment,
// as the registry requires.
func (c *Client) FetchPackage(ctx context.Context, pkg string) (*PackageInfo, error) {
	pkg = strings.TrimSpace(pkg)

	var data registryResponse
	if err := c.Get(ctx, c.baseURL+"/"+url.PathEscape(pkg), &data); err != nil {
		if errors.Is(err, integrations.ErrNotFound) {
			return nil, fmt.Errorf("%w: npm package %s", err, pkg)
		}
		return nil, err
	}

	if data.DistTags.Latest == "" {
		return nil, fmt.Errorf("npm package %s has no latest dist-tag", pkg)
	}

	return &PackageInfo{
		Name:       pkg,
		Latest:     data.DistTags.Latest,
		Repository: extractField(data.Repository, "url"),
		HomePage:   data.HomePage,
	}, nil
}

// PackagePage returns the registry's human-facing versions page for pkg.
// This is the terminal fallback of the documentation URL chain: it exists
// for every published package, even ones with no repository or homepage.
func PackagePage(pkg string) string {
	return "https://www.npmjs.com/package/" + pkg + "?activeTab=versions"
}

// extractField tolerates the registry's two shapes for repository-like
// fields: a bare string or an object with named keys.
func extractField(v any, field string) string {
	switch val := v.(type) {
	case string:
		return val
	case map[string]any:
		if s, ok := val[field].(string); ok {
			return s
		}
	}
	return ""
}

type registryResponse struct {
	Name       string   `json:"name"`
	DistTags   distTags `json:"dist-tags"`
	Repository any      `json:"repository"`
	HomePage   string   `json:"homepage"`
}

type distTags struct {
	Latest string `json:"latest"`
}
