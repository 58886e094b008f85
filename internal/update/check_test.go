// SPDX-License-Identifier: MPL-2.0

package update

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"sync/atomic"
	"testing"
	"time"
)

func newCheckerForTest(t *testing.T, latestTag string, hits *atomic.Int32) *Checker {
	t.Helper()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if hits != nil {
			hits.Add(1)
		}
		w.Header().Set("Content-Type", "application/json")
		if _, err := w.Write([]byte(`[{"tag_name":"` + latestTag + `","html_url":"https://example.com/latest"}]`)); err != nil {
			t.Errorf("writing response: %v", err)
		}
	}))
	t.Cleanup(srv.Close)

	return NewChecker(
		filepath.Join(t.TempDir(), StateFileName),
		WithClient(NewGitHubClient(WithBaseURL(srv.URL))),
	)
}

func TestCheck_ReportsAvailableUpdate(t *testing.T) {
	t.Parallel()

	c := newCheckerForTest(t, "2.225.0", nil)
	got, err := c.Check(context.Background(), "2.224.0", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !got.UpdateAvailable {
		t.Error("UpdateAvailable = false, want true")
	}
	if got.LatestVersion != "2.225.0" {
		t.Errorf("LatestVersion = %q, want 2.225.0", got.LatestVersion)
	}
	if got.FromCache {
		t.Error("first check should not be served from cache")
	}
}

func TestCheck_UpToDate(t *testing.T) {
	t.Parallel()

	c := newCheckerForTest(t, "2.224.0", nil)
	got, err := c.Check(context.Background(), "2.224.0", false)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.UpdateAvailable {
		t.Error("UpdateAvailable = true for an up-to-date build")
	}
}

func TestCheck_SecondCheckWithinIntervalUsesState(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c := newCheckerForTest(t, "2.225.0", &hits)

	if _, err := c.Check(context.Background(), "2.224.0", false); err != nil {
		t.Fatalf("first check: %v", err)
	}
	second, err := c.Check(context.Background(), "2.224.0", false)
	if err != nil {
		t.Fatalf("second check: %v", err)
	}

	if hits.Load() != 1 {
		t.Errorf("API hit %d times, want 1 (second check served from state)", hits.Load())
	}
	if !second.FromCache {
		t.Error("second check should report FromCache")
	}
	if !second.UpdateAvailable {
		t.Error("cached comparison lost the available update")
	}
}

func TestCheck_ForceBypassesInterval(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c := newCheckerForTest(t, "2.225.0", &hits)

	if _, err := c.Check(context.Background(), "2.224.0", false); err != nil {
		t.Fatalf("first check: %v", err)
	}
	if _, err := c.Check(context.Background(), "2.224.0", true); err != nil {
		t.Fatalf("forced check: %v", err)
	}
	if hits.Load() != 2 {
		t.Errorf("API hit %d times, want 2 with force", hits.Load())
	}
}

func TestCheck_DevBuildSkipsNetwork(t *testing.T) {
	t.Parallel()

	var hits atomic.Int32
	c := newCheckerForTest(t, "2.225.0", &hits)

	for _, version := range []string{"dev", ""} {
		got, err := c.Check(context.Background(), version, true)
		if err != nil {
			t.Fatalf("Check(%q): %v", version, err)
		}
		if got.UpdateAvailable {
			t.Errorf("Check(%q) reported an update for a dev build", version)
		}
	}
	if hits.Load() != 0 {
		t.Errorf("API hit %d times for dev builds, want 0", hits.Load())
	}
}

func TestCheck_InvalidCurrentVersion(t *testing.T) {
	t.Parallel()

	c := newCheckerForTest(t, "2.225.0", nil)
	if _, err := c.Check(context.Background(), "not.a.version", false); !errors.Is(err, ErrInvalidVersion) {
		t.Errorf("error = %v, want ErrInvalidVersion", err)
	}
}

func TestState_RoundTripAndResilience(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "nested", StateFileName)

	want := State{
		LastCheckAt: time.Date(2026, 8, 30, 12, 0, 0, 0, time.UTC),
		LatestSeen:  "2.225.0",
		ReleaseURL:  "https://example.com/latest",
	}
	if err := SaveState(path, want); err != nil {
		t.Fatalf("SaveState: %v", err)
	}

	got := LoadState(path)
	if !got.LastCheckAt.Equal(want.LastCheckAt) || got.LatestSeen != want.LatestSeen || got.ReleaseURL != want.ReleaseURL {
		t.Errorf("LoadState() = %+v, want %+v", got, want)
	}

	// Missing and corrupt files both degrade to the zero state.
	if got := LoadState(filepath.Join(t.TempDir(), "missing.toml")); !got.LastCheckAt.IsZero() {
		t.Errorf("LoadState(missing) = %+v, want zero state", got)
	}
}
