// SPDX-License-Identifier: MPL-2.0

package lanes

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"
)

func writeFastfile(t *testing.T, dir, rel, content string) string {
	t.Helper()

	path := filepath.Join(dir, rel)
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		t.Fatalf("mkdir: %v", err)
	}
	if err := os.WriteFile(path, []byte(content), 0o644); err != nil {
		t.Fatalf("write Fastfile: %v", err)
	}
	return path
}

func TestNames_ExtractsDeclaredLanes(t *testing.T) {
	t.Parallel()

	fastfile := `default_platform(:ios)

platform :ios do
  desc "Submit a new beta build"
  lane :beta do
    build_app(scheme: "App")
  end

  lane :release do |options|
    deliver(force: true)
  end

  private_lane :signing do
    match(type: "appstore")
  end
end

lane :test do
  scan
end
`

	dir := t.TempDir()
	path := writeFastfile(t, dir, filepath.Join("fastlane", "Fastfile"), fastfile)

	got := Names(path)
	want := []string{"beta", "release", "test"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Names() = %v, want %v", got, want)
	}
}

func TestNames_BestEffortOnMalformedContent(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name    string
		content string
		want    []string
	}{
		{
			name:    "garbage lines are skipped",
			content: "}} not ruby at all\nlane :beta do\nlane without symbol\nlane :🚀oops\n",
			want:    []string{"beta"},
		},
		{
			name:    "duplicates collapse",
			content: "lane :beta do\nend\nlane :beta do\nend\n",
			want:    []string{"beta"},
		},
		{
			name:    "string mentions of lane are not declarations",
			content: `puts "lane :fake"` + "\n  # lane :commented\nUI.message('run a lane :beta')\n",
			want:    nil,
		},
		{
			name:    "empty file",
			content: "",
			want:    nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			path := writeFastfile(t, t.TempDir(), "Fastfile", tt.content)
			got := Names(path)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Names() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestNames_UnreadableFileYieldsEmptySet(t *testing.T) {
	t.Parallel()

	if got := Names(filepath.Join(t.TempDir(), "missing", "Fastfile")); got != nil {
		t.Errorf("Names(missing) = %v, want nil", got)
	}
}

func TestLocate_Precedence(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		files []string
		want  string
	}{
		{
			name:  "fastlane folder wins",
			files: []string{"fastlane/Fastfile", ".fastlane/Fastfile", "Fastfile"},
			want:  "fastlane/Fastfile",
		},
		{
			name:  "hidden folder before root",
			files: []string{".fastlane/Fastfile", "Fastfile"},
			want:  ".fastlane/Fastfile",
		},
		{
			name:  "root Fastfile as last resort",
			files: []string{"Fastfile"},
			want:  "Fastfile",
		},
		{
			name: "no Fastfile at all",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			dir := t.TempDir()
			for _, rel := range tt.files {
				writeFastfile(t, dir, filepath.FromSlash(rel), "lane :beta do\nend\n")
			}

			got := Locate(dir)
			want := ""
			if tt.want != "" {
				want = filepath.Join(dir, filepath.FromSlash(tt.want))
			}
			if got != want {
				t.Errorf("Locate() = %q, want %q", got, want)
			}
		})
	}
}

func TestProvider_ListLocalLanes(t *testing.T) {
	t.Parallel()

	dir := t.TempDir()
	writeFastfile(t, dir, filepath.Join("fastlane", "Fastfile"), "lane :beta do\nend\nlane :deploy do\nend\n")

	p := NewProvider(dir)
	got := p.ListLocalLanes()
	want := []string{"beta", "deploy"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("ListLocalLanes() = %v, want %v", got, want)
	}
}

func TestProvider_NoFastfileMeansEmptySet(t *testing.T) {
	t.Parallel()

	p := NewProvider(t.TempDir())
	if got := p.ListLocalLanes(); len(got) != 0 {
		t.Errorf("ListLocalLanes() = %v, want empty", got)
	}
}
