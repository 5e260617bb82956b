package naming

import (
	"fmt"
	"path/filepath"
	"strings"
)

// TargetPath maps a source file to its location under outputRoot: the
// leading sourceRoot prefix of source is replaced with outputRoot, then ext
// (dotted, e.g. ".pdf") is appended unless the result already ends with it.
//
//	<source>/a/b/c.bin  + ".pdf" -> <output>/a/b/c.bin.pdf
//	<source>/report.pdf + ".pdf" -> <output>/report.pdf
func TargetPath(source, sourceRoot, outputRoot, ext string) (string, error) {
	rel, ok := cutRoot(source, sourceRoot)
	if !ok {
		return "", fmt.Errorf("%s is not under %s", source, sourceRoot)
	}
	target := filepath.Join(outputRoot, rel)
	if !strings.HasSuffix(target, ext) {
		target += ext
	}
	return target, nil
}

// cutRoot strips root from the front of path on a path-element boundary.
func cutRoot(path, root string) (string, bool) {
	rest, ok := strings.CutPrefix(path, root)
	if !ok {
		return "", false
	}
	if rest == "" || root == string(filepath.Separator) || strings.HasPrefix(rest, string(filepath.Separator)) {
		return rest, true
	}
	return "", false
}
