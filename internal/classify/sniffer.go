package classify

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/gabriel-vasile/mimetype"
	billy "github.com/go-git/go-billy/v5"
)

// sniffLen is how much of each file is read for detection; it matches
// mimetype's default read limit.
const sniffLen = 3072

// mimeDescriptions maps detected MIME types to the file(1) brief wording
// for the same family, so both backends feed the same extension table.
// Entries are checked in order; the first match wins.
var mimeDescriptions = []struct {
	mime string
	desc string
}{
	{"application/pdf", "PDF document"},
	{"image/png", "PNG image data"},
	{"image/jpeg", "JPEG image data"},
	{"image/gif", "GIF image data"},
	{"image/webp", "RIFF (little-endian) data, Web/P image"},
	{"application/zip", "Zip archive data"},
	{"application/gzip", "gzip compressed data"},
	{"application/x-tar", "POSIX tar archive"},
	{"application/octet-stream", "data"},
}

// Sniffer classifies files from their leading bytes without spawning a
// process.
type Sniffer struct {
	fs billy.Filesystem
}

// NewSniffer returns a Sniffer reading files from fs.
func NewSniffer(fs billy.Filesystem) *Sniffer {
	return &Sniffer{fs: fs}
}

// Describe reads the head of path and describes it with [DescribeBytes].
func (s *Sniffer) Describe(ctx context.Context, path string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	f, err := s.fs.Open(path)
	if err != nil {
		return "", fmt.Errorf("open %s: %w", path, err)
	}
	defer f.Close()

	head := make([]byte, sniffLen)
	n, err := io.ReadFull(f, head)
	if err != nil && !errors.Is(err, io.ErrUnexpectedEOF) && !errors.Is(err, io.EOF) {
		return "", fmt.Errorf("read %s: %w", path, err)
	}
	return DescribeBytes(head[:n]), nil
}

// DescribeBytes returns a file(1)-style description for content whose
// leading bytes are head. Types without a known wording are described by
// their MIME type.
func DescribeBytes(head []byte) string {
	if len(head) == 0 {
		return "empty"
	}
	m := mimetype.Detect(head)
	if m.Is("text/plain") {
		if isASCII(head) {
			return "ASCII text"
		}
		return "UTF-8 Unicode text"
	}
	for _, d := range mimeDescriptions {
		if m.Is(d.mime) {
			return d.desc
		}
	}
	return m.String()
}

func isASCII(b []byte) bool {
	for _, c := range b {
		if c >= 0x80 {
			return false
		}
	}
	return true
}
