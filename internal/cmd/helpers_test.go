package cmd

import (
	"bytes"
	"strings"
	"testing"

	"github.com/renamekit/renamekit/internal/core"
)

func TestSplitName(t *testing.T) {
	tests := []struct {
		path string
		stem string
		ext  string
	}{
		{"photo.jpg", "photo", "jpg"},
		{"/some/dir/photo.jpg", "photo", "jpg"},
		{"archive.tar.gz", "archive.tar", "gz"},
		{"README", "README", ""},
		{".bashrc", ".bashrc", ""},
		{"trailing.", "trailing", ""},
	}
	for _, tc := range tests {
		t.Run(tc.path, func(t *testing.T) {
			stem, ext := splitName(tc.path)
			if stem != tc.stem || ext != tc.ext {
				t.Errorf("splitName(%q) = (%q, %q), want (%q, %q)",
					tc.path, stem, ext, tc.stem, tc.ext)
			}
		})
	}
}

func TestConfirm(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  bool
	}{
		{"yes", "y\n", true},
		{"yes word", "yes\n", true},
		{"uppercase", "Y\n", true},
		{"no", "n\n", false},
		{"empty defaults to no", "\n", false},
		{"garbage", "sure why not\n", false},
		{"eof", "", false},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			var out bytes.Buffer
			got := confirm(strings.NewReader(tc.input), &out, "a.txt", "b.txt")
			if got != tc.want {
				t.Errorf("confirm(%q) = %v, want %v", tc.input, got, tc.want)
			}
			if !strings.Contains(out.String(), "a.txt") {
				t.Errorf("prompt missing old name: %q", out.String())
			}
		})
	}
}

func TestBatchError(t *testing.T) {
	if err := batchError(core.Tally{Renamed: 3}, 3); err != nil {
		t.Errorf("batchError with no failures = %v, want nil", err)
	}
	err := batchError(core.Tally{Renamed: 1, Failed: 2}, 3)
	if err == nil {
		t.Fatal("batchError with failures should be non-nil")
	}
	if got := err.Error(); got != "2 of 3 files failed" {
		t.Errorf("batchError message = %q", got)
	}
}
