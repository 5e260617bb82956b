package copier

import (
	"os"
	"time"
)

// OSChange implements billy.Change on host paths. Pair it with an osfs
// filesystem rooted at "/" so billy paths and host paths coincide.
type OSChange struct{}

func (OSChange) Chmod(name string, mode os.FileMode) error { return os.Chmod(name, mode) }

func (OSChange) Lchown(name string, uid, gid int) error { return os.Lchown(name, uid, gid) }

func (OSChange) Chown(name string, uid, gid int) error { return os.Chown(name, uid, gid) }

func (OSChange) Chtimes(name string, atime, mtime time.Time) error {
	return os.Chtimes(name, atime, mtime)
}
