package pipeline

import (
	"fmt"
	"os"
	"sort"

	billy "github.com/go-git/go-billy/v5"
	"github.com/go-git/go-billy/v5/util"

	"github.com/backmassage/typecopy/internal/config"
)

// Discover walks root recursively and returns the paths of all regular
// files, sorted lexicographically for a deterministic processing order.
// Entries below root are examined with Lstat, so symlinks and special files
// are excluded and symlinked directories are not descended. Root itself may
// be a symlink to a directory.
func Discover(fs billy.Filesystem, root string) ([]string, error) {
	info, err := fs.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("source %s: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("%w: %s", config.ErrSourceNotDir, root)
	}

	entries, err := fs.ReadDir(root)
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", root, err)
	}

	var files []string
	collect := func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.Mode().IsRegular() {
			files = append(files, path)
		}
		return nil
	}
	for _, e := range entries {
		if err := util.Walk(fs, fs.Join(root, e.Name()), collect); err != nil {
			return nil, err
		}
	}
	sort.Strings(files)
	return files, nil
}
