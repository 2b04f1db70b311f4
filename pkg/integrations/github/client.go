package github

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/mhuels/depscout/pkg/integrations"
)

// DefaultAPIURL is the public GitHub API endpoint.
const DefaultAPIURL = "https://api.github.com"

var repoURLPattern = regexp.MustCompile(`https?://github\.com/([^/]+)/([^/]+?)(?:\.git)?(?:[/?#]|$)`)

// Client provides access to the GitHub API for release probing.
// It handles HTTP requests with automatic retries and optional authentication.
type Client struct {
	*integrations.Client
	baseURL string
}

// NewClient creates a GitHub API client with optional authentication.
// Pass an empty string for token to use unauthenticated requests (lower rate
// limits). Pass an empty baseURL to use [DefaultAPIURL].
func NewClient(baseURL, token string) *Client {
	if baseURL == "" {
		baseURL = DefaultAPIURL
	}

	headers := map[string]string{"Accept": "application/vnd.github.v3+json"}
	if token != "" {
		headers["Authorization"] = "Bearer " + token
	}

	return &Client{
		Client:  integrations.NewClient(headers),
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}
}

// HasReleases reports whether owner/repo has published at least one release.
// Only the presence of entries is extracted from the listing; callers that
// receive an error should treat the repository as having no releases.
func (c *Client) HasReleases(ctx context.Context, owner, repo string) (bool, error) {
	var releases []releaseResponse
	url := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=1", c.baseURL, owner, repo)
	if err := c.Get(ctx, url, &releases); err != nil {
		return false, err
	}
	return len(releases) > 0, nil
}

// ParseRepoURL extracts the owner and repository name from a canonical
// GitHub web URL. Returns ok=false for non-GitHub URLs.
func ParseRepoURL(url string) (owner, repo string, ok bool) {
	m := repoURLPattern.FindStringSubmatch(url)
	if len(m) < 3 {
		return "", "", false
	}
	return m[1], m[2], true
}

type releaseResponse struct {
	TagName string `json:"tag_name"`
}
