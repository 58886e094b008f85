// SPDX-License-Identifier: MPL-2.0

package update

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	"golang.org/x/mod/semver"
)

const (
	// defaultPerPage is the number of releases fetched from the API. One
	// page is plenty to find the newest stable release.
	defaultPerPage = 30

	// maxJSONResponseBytes caps the API response size (10 MB) so a
	// malformed or hostile response cannot exhaust memory.
	maxJSONResponseBytes = 10 << 20
)

// ErrNoStableRelease is returned when the repository has no published
// stable release.
var ErrNoStableRelease = errors.New("no stable release found")

type (
	// Release is the subset of a GitHub Release the advisory needs.
	Release struct {
		TagName   string // Semantic version tag, e.g. "v2.224.0"
		Name      string // Human-readable release name
		HTMLURL   string // Browser URL for the release page
		CreatedAt string // ISO 8601 timestamp
	}

	// githubRelease is the JSON wire format of a GitHub Release.
	githubRelease struct {
		TagName    string `json:"tag_name"`
		Name       string `json:"name"`
		Prerelease bool   `json:"prerelease"`
		Draft      bool   `json:"draft"`
		HTMLURL    string `json:"html_url"`
		CreatedAt  string `json:"created_at"`
	}

	// GitHubClient queries the GitHub Releases API for version information.
	GitHubClient struct {
		httpClient *http.Client
		owner      string
		repo       string
		baseURL    string // overridable for tests
		token      string // optional GITHUB_TOKEN for authenticated requests
		userAgent  string
	}

	// ClientOption configures a GitHubClient during construction.
	ClientOption func(*GitHubClient)
)

// WithBaseURL overrides the API base URL (tests point it at httptest).
func WithBaseURL(url string) ClientOption {
	return func(c *GitHubClient) { c.baseURL = url }
}

// WithHTTPClient overrides the HTTP client.
func WithHTTPClient(hc *http.Client) ClientOption {
	return func(c *GitHubClient) { c.httpClient = hc }
}

// WithRepo points the client at a different owner/repo pair.
func WithRepo(owner, repo string) ClientOption {
	return func(c *GitHubClient) { c.owner, c.repo = owner, repo }
}

// NewGitHubClient creates a client for the fastlane release repository.
func NewGitHubClient(opts ...ClientOption) *GitHubClient {
	c := &GitHubClient{
		httpClient: &http.Client{Timeout: 5 * time.Second},
		owner:      "fastlane",
		repo:       "fastlane",
		baseURL:    "https://api.github.com",
		token:      os.Getenv("GITHUB_TOKEN"),
		userAgent:  "fastlane-cli",
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// LatestStable returns the newest stable release, skipping drafts and
// prereleases. Returns ErrNoStableRelease when every published release is a
// draft or prerelease.
func (c *GitHubClient) LatestStable(ctx context.Context) (*Release, error) {
	url := fmt.Sprintf("%s/repos/%s/%s/releases?per_page=%d", c.baseURL, c.owner, c.repo, defaultPerPage)

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("building release request: %w", err)
	}
	req.Header.Set("Accept", "application/vnd.github+json")
	req.Header.Set("User-Agent", c.userAgent)
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, fmt.Errorf("fetching releases: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("github api returned status %d", resp.StatusCode)
	}

	var wire []githubRelease
	dec := json.NewDecoder(io.LimitReader(resp.Body, maxJSONResponseBytes))
	if err := dec.Decode(&wire); err != nil {
		return nil, fmt.Errorf("decoding release list: %w", err)
	}

	var best *githubRelease
	for i := range wire {
		r := &wire[i]
		if r.Draft || r.Prerelease || !semver.IsValid(canonicalVersion(r.TagName)) {
			continue
		}
		if best == nil || semver.Compare(canonicalVersion(r.TagName), canonicalVersion(best.TagName)) > 0 {
			best = r
		}
	}
	if best == nil {
		return nil, ErrNoStableRelease
	}

	return &Release{
		TagName:   best.TagName,
		Name:      best.Name,
		HTMLURL:   best.HTMLURL,
		CreatedAt: best.CreatedAt,
	}, nil
}

// canonicalVersion normalizes a tag to the "vMAJOR.MINOR.PATCH" form the
// semver package expects. Tags without the leading "v" are common in older
// releases.
func canonicalVersion(tag string) string {
	if tag == "" {
		return tag
	}
	if tag[0] != 'v' {
		return "v" + tag
	}
	return tag
}
