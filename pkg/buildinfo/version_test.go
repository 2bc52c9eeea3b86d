package buildinfo

import (
	"strings"
	"testing"
)

func TestShort(t *testing.T) {
	tests := []struct {
		version, commit, want string
	}{
		{"dev", "none", "dev"},
		{"dev", "abc123", "dev+abc123"},
		{"v1.2.0", "abc123", "v1.2.0"},
	}
	defer func(v, c string) { Version, Commit = v, c }(Version, Commit)

	for _, tt := range tests {
		Version, Commit = tt.version, tt.commit
		if got := Short(); got != tt.want {
			t.Errorf("Short() with %s/%s = %q, want %q", tt.version, tt.commit, got, tt.want)
		}
	}
}

func TestTemplate(t *testing.T) {
	defer func(v, c, d string) { Version, Commit, Date = v, c, d }(Version, Commit, Date)
	Version, Commit, Date = "v1.0.0", "abc123", "2025-01-02T03:04:05Z"

	got := Template()
	for _, want := range []string{"{{.Name}} v1.0.0", "commit: abc123", "built: 2025-01-02T03:04:05Z"} {
		if !strings.Contains(got, want) {
			t.Errorf("Template() = %q, missing %q", got, want)
		}
	}
}
