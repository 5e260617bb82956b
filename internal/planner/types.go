package planner

import "github.com/backmassage/typecopy/internal/extension"

// FilePlan holds the resolution for a single source file.
type FilePlan struct {
	Source     string
	Resolution extension.Resolution
	ClassErr   error // classifier failure, if any; Resolution is then a miss
}

// Plan is the result of resolving a whole file set.
type Plan struct {
	Files []FilePlan

	// Unresolved lists the distinct descriptions with no table entry,
	// sorted lexically. Empty means every file resolved.
	Unresolved []string
}

// OK reports whether every file resolved to an extension.
func (p *Plan) OK() bool { return len(p.Unresolved) == 0 }

// ByExtension counts resolved files per dotted extension.
func (p *Plan) ByExtension() map[string]int {
	counts := make(map[string]int)
	for _, f := range p.Files {
		if f.Resolution.OK() {
			counts[f.Resolution.Extension()]++
		}
	}
	return counts
}
