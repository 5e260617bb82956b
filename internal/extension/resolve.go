package extension

import "strings"

// Resolution is the outcome of resolving one description. Its string form
// is the dotted extension on success, or the raw description on failure.
type Resolution struct {
	ext  string // without dot; empty on a miss
	desc string
}

// OK reports whether the description resolved to an extension.
func (r Resolution) OK() bool { return r.ext != "" }

// Extension returns the dotted extension, or "" on a miss.
func (r Resolution) Extension() string {
	if r.ext == "" {
		return ""
	}
	return "." + r.ext
}

// Description returns the classifier description the resolution came from.
func (r Resolution) Description() string { return r.desc }

// String returns the dotted extension on success and the unchanged
// description otherwise.
func (r Resolution) String() string {
	if r.OK() {
		return r.Extension()
	}
	return r.desc
}

// Token returns the first whitespace-delimited token of desc, or "" when
// desc is blank.
func Token(desc string) string {
	fields := strings.Fields(desc)
	if len(fields) == 0 {
		return ""
	}
	return fields[0]
}

// Resolve maps a classifier description to an extension via its first
// token. On a miss the full description is kept unchanged for reporting.
func (t *Table) Resolve(desc string) Resolution {
	ext, _ := t.Lookup(Token(desc))
	return Resolution{ext: ext, desc: desc}
}
