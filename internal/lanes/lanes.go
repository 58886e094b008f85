// SPDX-License-Identifier: MPL-2.0

// Package lanes discovers the lane names declared in a project's Fastfile.
//
// Extraction is a line-oriented pattern match, not a Ruby parse: the scan
// runs on every dispatch, so it has to stay cheap, and a partially malformed
// Fastfile must still yield whatever lanes can be read. The provider never
// fails — a missing or unreadable Fastfile is simply an empty set.
package lanes

import (
	"bufio"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"regexp"
	"sort"
)

// FastfileName is the lane-definition file name.
const FastfileName = "Fastfile"

// laneDecl matches a lane declaration at the start of a (possibly indented)
// line, e.g. `lane :beta do`. private_lane declarations are intentionally
// excluded: private lanes cannot be invoked from the command line.
var laneDecl = regexp.MustCompile(`^\s*lane\s+:([A-Za-z_][A-Za-z0-9_]*)`)

// maxFastfileBytes caps how much of a Fastfile the scanner will read.
// Anything past it is ignored rather than failing the scan.
const maxFastfileBytes = 1 << 20

// Provider lists the lanes declared in the project rooted at a directory.
// The lane set is recomputed on every call; dispatch runs once per process,
// so there is nothing worth caching.
type Provider struct {
	baseDir string
}

// NewProvider creates a Provider rooted at baseDir. An empty baseDir means
// the current working directory.
func NewProvider(baseDir string) *Provider {
	return &Provider{baseDir: baseDir}
}

// ListLocalLanes returns the lane names declared in the project's Fastfile,
// sorted and de-duplicated. It returns the empty set when no Fastfile exists
// or the file cannot be read.
func (p *Provider) ListLocalLanes() []string {
	path := Locate(p.baseDir)
	if path == "" {
		return nil
	}
	return Names(path)
}

// FastfilePath returns the resolved Fastfile path, or "" when none exists.
func (p *Provider) FastfilePath() string {
	return Locate(p.baseDir)
}

// Locate finds the project Fastfile relative to dir, checking the
// conventional folder locations before the project root:
//
//	fastlane/Fastfile
//	.fastlane/Fastfile
//	Fastfile
//
// It returns "" when no Fastfile exists.
func Locate(dir string) string {
	if dir == "" {
		dir = "."
	}
	for _, rel := range []string{
		filepath.Join("fastlane", FastfileName),
		filepath.Join(".fastlane", FastfileName),
		FastfileName,
	} {
		path := filepath.Join(dir, rel)
		if info, err := os.Stat(path); err == nil && !info.IsDir() {
			return path
		}
	}
	return ""
}

// Names extracts the declared lane names from the Fastfile at path. The scan
// is best-effort: unreadable files yield nil, malformed lines are skipped,
// and duplicates collapse to one entry. The result is sorted.
func Names(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("skipping lane scan", "path", path, "error", err)
		return nil
	}
	defer f.Close()

	seen := make(map[string]struct{})

	scanner := bufio.NewScanner(&io.LimitedReader{R: f, N: maxFastfileBytes})
	for scanner.Scan() {
		m := laneDecl.FindStringSubmatch(scanner.Text())
		if m == nil {
			continue
		}
		seen[m[1]] = struct{}{}
	}
	if err := scanner.Err(); err != nil {
		// Keep whatever was extracted before the failure.
		slog.Debug("lane scan stopped early", "path", path, "error", err)
	}

	if len(seen) == 0 {
		return nil
	}
	lanesFound := make([]string, 0, len(seen))
	for name := range seen {
		lanesFound = append(lanesFound, name)
	}
	sort.Strings(lanesFound)
	return lanesFound
}
