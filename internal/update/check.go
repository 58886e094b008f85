// SPDX-License-Identifier: MPL-2.0

package update

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"golang.org/x/mod/semver"
)

// checkInterval is how long a persisted check result stays fresh. Within the
// interval the advisory runs entirely off the state file.
const checkInterval = 24 * time.Hour

// ErrInvalidVersion indicates the running version string is not semver.
var ErrInvalidVersion = errors.New("invalid semantic version")

type (
	// Status is the outcome of a version comparison.
	Status struct {
		CurrentVersion string
		LatestVersion  string
		ReleaseURL     string
		// UpdateAvailable is true when LatestVersion is newer than
		// CurrentVersion.
		UpdateAvailable bool
		// FromCache is true when the comparison used the persisted state
		// instead of the network.
		FromCache bool
	}

	// Checker compares the running version against the latest release,
	// backed by the persisted state file.
	Checker struct {
		client    *GitHubClient
		statePath string
		now       func() time.Time
	}

	// CheckerOption configures a Checker during construction.
	CheckerOption func(*Checker)
)

// WithClient overrides the GitHub client.
func WithClient(c *GitHubClient) CheckerOption {
	return func(ch *Checker) { ch.client = c }
}

// WithNow overrides the clock (tests).
func WithNow(now func() time.Time) CheckerOption {
	return func(ch *Checker) { ch.now = now }
}

// NewChecker creates a Checker persisting its state at statePath.
func NewChecker(statePath string, opts ...CheckerOption) *Checker {
	ch := &Checker{
		statePath: statePath,
		now:       time.Now,
	}
	for _, opt := range opts {
		opt(ch)
	}
	if ch.client == nil {
		ch.client = NewGitHubClient()
	}
	return ch
}

// Check compares currentVersion against the latest stable release. Within
// the check interval the persisted state answers without network traffic;
// force bypasses the interval. Development builds ("dev" or empty) always
// report no update.
func (c *Checker) Check(ctx context.Context, currentVersion string, force bool) (*Status, error) {
	if currentVersion == "" || currentVersion == "dev" {
		return &Status{CurrentVersion: currentVersion}, nil
	}

	current := canonicalVersion(currentVersion)
	if !semver.IsValid(current) {
		return nil, fmt.Errorf("%w: %q", ErrInvalidVersion, currentVersion)
	}

	state := LoadState(c.statePath)
	if !force && c.now().Sub(state.LastCheckAt) < checkInterval && state.LatestSeen != "" {
		return c.compare(current, currentVersion, state.LatestSeen, state.ReleaseURL, true), nil
	}

	release, err := c.client.LatestStable(ctx)
	if err != nil {
		return nil, fmt.Errorf("checking latest release: %w", err)
	}

	state = State{
		LastCheckAt: c.now(),
		LatestSeen:  release.TagName,
		ReleaseURL:  release.HTMLURL,
	}
	if err := SaveState(c.statePath, state); err != nil {
		// State persistence is best-effort; the comparison still stands.
		log.Debug("could not persist update state", "path", c.statePath, "error", err)
	}

	return c.compare(current, currentVersion, release.TagName, release.HTMLURL, false), nil
}

func (c *Checker) compare(current, displayCurrent, latestTag, releaseURL string, fromCache bool) *Status {
	latest := canonicalVersion(latestTag)
	return &Status{
		CurrentVersion:  displayCurrent,
		LatestVersion:   latestTag,
		ReleaseURL:      releaseURL,
		UpdateAvailable: semver.IsValid(latest) && semver.Compare(latest, current) > 0,
		FromCache:       fromCache,
	}
}
