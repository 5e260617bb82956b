package classify

import (
	"context"
	"errors"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-git/go-billy/v5/memfs"
	"github.com/go-git/go-billy/v5/util"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/backmassage/typecopy/internal/config"
)

var (
	pdfHead  = []byte("%PDF-1.4\n%\xe2\xe3\xcf\xd3\n1 0 obj\n<< /Type /Catalog >>\nendobj\n")
	pngHead  = []byte("\x89PNG\r\n\x1a\n\x00\x00\x00\rIHDR\x00\x00\x00\x10\x00\x00\x00\x10\x08\x06\x00\x00\x00")
	jpegHead = []byte("\xff\xd8\xff\xe0\x00\x10JFIF\x00\x01\x01\x00\x00\x01\x00\x01\x00\x00")
)

func TestDescribeBytes(t *testing.T) {
	tests := []struct {
		name string
		head []byte
		want string
	}{
		{"pdf", pdfHead, "PDF document"},
		{"png", pngHead, "PNG image data"},
		{"jpeg", jpegHead, "JPEG image data"},
		{"ascii text", []byte("hello world\nsecond line\n"), "ASCII text"},
		{"utf8 text", []byte("héllo wörld\n"), "UTF-8 Unicode text"},
		{"empty", nil, "empty"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, DescribeBytes(tt.head))
		})
	}
}

func TestDescribeBytes_StableAcrossCalls(t *testing.T) {
	gifHead := []byte("GIF89a\x01\x00\x01\x00\x80\x00\x00\xff\xff\xff\x00\x00\x00!\xf9\x04")
	gzipHead := []byte("\x1f\x8b\x08\x00\x00\x00\x00\x00\x00\x03")
	for i := 0; i < 50; i++ {
		require.Equal(t, "GIF image data", DescribeBytes(gifHead))
		require.Equal(t, "gzip compressed data", DescribeBytes(gzipHead))
		require.Equal(t, "PDF document", DescribeBytes(pdfHead))
	}
}

func TestMimeDescriptions_Unique(t *testing.T) {
	seen := make(map[string]bool)
	for _, d := range mimeDescriptions {
		assert.False(t, seen[d.mime], "duplicate entry for %s", d.mime)
		seen[d.mime] = true
	}
}

func TestSniffer_Describe(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/src/doc.bin", pdfHead, 0o644))
	require.NoError(t, util.WriteFile(fs, "/src/img", pngHead, 0o644))

	s := NewSniffer(fs)
	ctx := context.Background()

	got, err := s.Describe(ctx, "/src/doc.bin")
	require.NoError(t, err)
	assert.Equal(t, "PDF document", got)

	got, err = s.Describe(ctx, "/src/img")
	require.NoError(t, err)
	assert.Equal(t, "PNG image data", got)

	_, err = s.Describe(ctx, "/src/missing")
	assert.Error(t, err)
}

func TestSniffer_CancelledContext(t *testing.T) {
	fs := memfs.New()
	require.NoError(t, util.WriteFile(fs, "/a", pdfHead, 0o644))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := NewSniffer(fs).Describe(ctx, "/a")
	assert.ErrorIs(t, err, context.Canceled)
}

func TestCached_ClassifiesOncePerPath(t *testing.T) {
	calls := map[string]int{}
	inner := Func(func(_ context.Context, path string) (string, error) {
		calls[path]++
		return "PDF document", nil
	})
	c, err := NewCached(inner, 16)
	require.NoError(t, err)

	ctx := context.Background()
	for i := 0; i < 3; i++ {
		desc, err := c.Describe(ctx, "/src/a")
		require.NoError(t, err)
		assert.Equal(t, "PDF document", desc)
	}
	_, err = c.Describe(ctx, "/src/b")
	require.NoError(t, err)

	assert.Equal(t, 1, calls["/src/a"])
	assert.Equal(t, 1, calls["/src/b"])
	assert.Equal(t, 2, c.Misses())
}

func TestCached_DoesNotCacheErrors(t *testing.T) {
	fail := true
	inner := Func(func(_ context.Context, path string) (string, error) {
		if fail {
			return "", errors.New("transient")
		}
		return "ASCII text", nil
	})
	c, err := NewCached(inner, 4)
	require.NoError(t, err)

	_, err = c.Describe(context.Background(), "/x")
	require.Error(t, err)

	fail = false
	desc, err := c.Describe(context.Background(), "/x")
	require.NoError(t, err)
	assert.Equal(t, "ASCII text", desc)
}

func TestNewCached_InvalidSize(t *testing.T) {
	_, err := NewCached(NewFileCommand(""), 0)
	assert.Error(t, err)
}

func TestNew_SelectsBackend(t *testing.T) {
	cfg := config.DefaultConfig()
	c, err := New(&cfg, memfs.New())
	require.NoError(t, err)
	assert.IsType(t, &FileCommand{}, c.next)

	cfg.Classifier = config.ClassifierBuiltin
	c, err = New(&cfg, memfs.New())
	require.NoError(t, err)
	assert.IsType(t, &Sniffer{}, c.next)

	cfg.Classifier = "bogus"
	_, err = New(&cfg, memfs.New())
	assert.Error(t, err)
}

func TestFirstLine(t *testing.T) {
	got, err := firstLine([]byte("PDF document, version 1.4\n"))
	require.NoError(t, err)
	assert.Equal(t, "PDF document, version 1.4", got)

	got, err = firstLine([]byte("ASCII text\r\nextra\n"))
	require.NoError(t, err)
	assert.Equal(t, "ASCII text", got)

	_, err = firstLine([]byte("\n"))
	assert.ErrorIs(t, err, ErrEmptyOutput)
}

func TestFileCommand_StubScript(t *testing.T) {
	if _, err := exec.LookPath("sh"); err != nil {
		t.Skip("sh not available")
	}
	dir := t.TempDir()
	stub := filepath.Join(dir, "fakefile")
	script := "#!/bin/sh\n# args: -b -- path\ncase \"$3\" in\n  *.dat) echo 'XYZdata some text' ;;\n  *) echo 'PDF document, version 1.4' ;;\nesac\n"
	require.NoError(t, os.WriteFile(stub, []byte(script), 0o755))

	fc := NewFileCommand(stub)
	ctx := context.Background()

	got, err := fc.Describe(ctx, filepath.Join(dir, "mystery.dat"))
	require.NoError(t, err)
	assert.Equal(t, "XYZdata some text", got)

	got, err = fc.Describe(ctx, filepath.Join(dir, "doc with spaces.bin"))
	require.NoError(t, err)
	assert.Equal(t, "PDF document, version 1.4", got)
}

func TestFileCommand_MissingBinary(t *testing.T) {
	fc := NewFileCommand(filepath.Join(t.TempDir(), "no-such-file-cmd"))
	_, err := fc.Describe(context.Background(), "/etc/hostname")
	assert.Error(t, err)
}

func TestFileCommand_Real(t *testing.T) {
	if _, err := exec.LookPath("file"); err != nil {
		t.Skip("file(1) not available")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "notes.bin")
	require.NoError(t, os.WriteFile(path, []byte("just some ascii\n"), 0o644))

	got, err := NewFileCommand("").Describe(context.Background(), path)
	require.NoError(t, err)
	assert.True(t, strings.HasPrefix(got, "ASCII"), "got %q", got)
}
