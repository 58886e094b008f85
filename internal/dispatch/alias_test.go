// SPDX-License-Identifier: MPL-2.0

package dispatch

import (
	"reflect"
	"testing"
)

func TestResolveAlias(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		token string
		want  string
	}{
		{name: "rocket maps to the umbrella", token: "🚀", want: "fastlane"},
		{name: "fire maps to gym", token: "🔥", want: "gym"},
		{name: "ordinary token passes through", token: "gym", want: "gym"},
		{name: "empty token passes through", token: "", want: ""},
		{name: "unknown glyph passes through", token: "✨", want: "✨"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			if got := ResolveAlias(tt.token); got != tt.want {
				t.Errorf("ResolveAlias(%q) = %q, want %q", tt.token, got, tt.want)
			}
		})
	}
}

func TestRewriteLegacy(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		argv []string
		want []string
	}{
		{
			name: "old token gets the renamed tool inserted",
			argv: []string{"spaceauth", "-u", "me"},
			want: []string{"spaceship", "spaceauth", "-u", "me"},
		},
		{
			name: "other head tokens are untouched",
			argv: []string{"gym", "spaceauth"},
			want: []string{"gym", "spaceauth"},
		},
		{
			name: "rewrite is exact-match, not case-folded",
			argv: []string{"SpaceAuth"},
			want: []string{"SpaceAuth"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			got := rewriteLegacy(tt.argv)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("rewriteLegacy(%v) = %v, want %v", tt.argv, got, tt.want)
			}
		})
	}
}

func TestRewriteLegacy_DoesNotAliasInput(t *testing.T) {
	t.Parallel()

	argv := []string{"spaceauth"}
	got := rewriteLegacy(argv)
	got[1] = "mutated"

	if argv[0] != "spaceauth" {
		t.Errorf("rewriteLegacy aliased its input: %v", argv)
	}
}
