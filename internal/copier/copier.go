package copier

import (
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	billy "github.com/go-git/go-billy/v5"
)

// ErrNotRegular is returned when the source is no longer a regular file.
var ErrNotRegular = errors.New("not a regular file")

// Copier copies files within a single billy filesystem.
type Copier struct {
	FS billy.Filesystem

	// Change applies permissions and times when Preserve is set. When nil,
	// FS is used if it implements billy.Change; otherwise metadata is left
	// at the filesystem defaults.
	Change   billy.Change
	Preserve bool
}

// New returns a Copier over fs.
func New(fs billy.Filesystem, preserve bool) *Copier {
	return &Copier{FS: fs, Preserve: preserve}
}

// Copy writes the contents of src to dst, creating dst's parent directories
// as needed and truncating dst if it exists. It returns the number of bytes
// written. The source is only read.
func (c *Copier) Copy(src, dst string) (int64, error) {
	info, err := c.FS.Stat(src)
	if err != nil {
		return 0, fmt.Errorf("stat %s: %w", src, err)
	}
	if !info.Mode().IsRegular() {
		return 0, fmt.Errorf("%w: %s", ErrNotRegular, src)
	}

	if err := c.FS.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return 0, fmt.Errorf("create directory %s: %w", filepath.Dir(dst), err)
	}

	in, err := c.FS.Open(src)
	if err != nil {
		return 0, fmt.Errorf("open %s: %w", src, err)
	}
	defer in.Close()

	out, err := c.create(dst, info.Mode().Perm())
	if err != nil {
		return 0, fmt.Errorf("create %s: %w", dst, err)
	}
	n, err := io.Copy(out, in)
	if err != nil {
		out.Close()
		return n, fmt.Errorf("copy %s -> %s: %w", src, dst, err)
	}
	if err := out.Close(); err != nil {
		return n, fmt.Errorf("close %s: %w", dst, err)
	}

	if c.Preserve {
		if err := c.preserve(dst, info); err != nil {
			return n, err
		}
	}
	return n, nil
}

// create opens dst for writing, truncating it. A target left read-only by
// an earlier preserved copy cannot be opened for writing, so it is removed
// and recreated; the directory, not the file mode, governs replacement.
func (c *Copier) create(dst string, perm os.FileMode) (billy.File, error) {
	const flags = os.O_WRONLY | os.O_CREATE | os.O_TRUNC
	out, err := c.FS.OpenFile(dst, flags, perm)
	if err == nil || !errors.Is(err, os.ErrPermission) {
		return out, err
	}
	if rmErr := c.FS.Remove(dst); rmErr != nil {
		return nil, err
	}
	return c.FS.OpenFile(dst, flags, perm)
}

func (c *Copier) preserve(dst string, info os.FileInfo) error {
	ch := c.Change
	if ch == nil {
		var ok bool
		if ch, ok = c.FS.(billy.Change); !ok {
			return nil
		}
	}
	if err := ch.Chmod(dst, info.Mode().Perm()); err != nil {
		return fmt.Errorf("chmod %s: %w", dst, err)
	}
	if err := ch.Chtimes(dst, info.ModTime(), info.ModTime()); err != nil {
		return fmt.Errorf("chtimes %s: %w", dst, err)
	}
	return nil
}
