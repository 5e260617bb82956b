package naming

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTargetPath(t *testing.T) {
	tests := []struct {
		name   string
		source string
		root   string
		out    string
		ext    string
		want   string
	}{
		{"nested appends ext", "/src/a/b/c.bin", "/src", "/out", ".pdf", "/out/a/b/c.bin.pdf"},
		{"no double suffix", "/src/report.pdf", "/src", "/out", ".pdf", "/out/report.pdf"},
		{"suffix check is exact", "/src/report.PDF", "/src", "/out", ".pdf", "/out/report.PDF.pdf"},
		{"extensionless name", "/src/img", "/src", "/out", ".png", "/out/img.png"},
		{"relative roots", "in/x/notes", "in", "sorted", ".txt", "sorted/x/notes.txt"},
		{"only leading root replaced", "/data/src/data/src/f", "/data/src", "/data/out", ".jpg", "/data/out/data/src/f.jpg"},
		{"filesystem root source", "/etc/motd", "/", "/out", ".txt", "/out/etc/motd.txt"},
		{"ext already present as part of name", "/src/photo.jpg", "/src", "/out", ".jpg", "/out/photo.jpg"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := TargetPath(tt.source, tt.root, tt.out, tt.ext)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestTargetPath_NotUnderRoot(t *testing.T) {
	_, err := TargetPath("/other/file", "/src", "/out", ".txt")
	assert.Error(t, err)

	// "/srcfoo" shares a textual prefix with "/src" but is a sibling.
	_, err = TargetPath("/srcfoo/file", "/src", "/out", ".txt")
	assert.Error(t, err)
}

func TestClaimTracker(t *testing.T) {
	ct := NewClaimTracker()

	prev, ok := ct.Claim("/src/img", "/out/img.png")
	assert.True(t, ok)
	assert.Empty(t, prev)

	// Same source claiming again is not a collision.
	_, ok = ct.Claim("/src/img", "/out/img.png")
	assert.True(t, ok)

	prev, ok = ct.Claim("/src/img.png", "/out/img.png")
	assert.False(t, ok)
	assert.Equal(t, "/src/img", prev)

	_, ok = ct.Claim("/src/other", "/out/other.txt")
	assert.True(t, ok)
}
