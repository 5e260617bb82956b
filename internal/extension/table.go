// Package extension maps content-type descriptors to canonical file
// extensions.
//
// A descriptor is the first whitespace-delimited token of a classifier
// description ("PDF" in "PDF document, version 1.4"). Lookup is exact and
// case-sensitive. Resolving never fails: a miss yields the full description
// so a human can see what to add to the table, and callers tell the two
// cases apart with [Resolution.OK].
package extension

import (
	"fmt"
	"sort"
	"strings"
)

// Table is an immutable descriptor -> extension mapping. Values carry no
// leading dot; the dot is added by Resolve.
type Table struct {
	entries map[string]string
}

// Default returns the built-in table.
func Default() *Table {
	t, _ := NewTable(map[string]string{
		"PDF":   "pdf",
		"ASCII": "txt",
		"PNG":   "png",
		"JPEG":  "jpg",
	})
	return t
}

// NewTable copies entries into a new Table. It rejects empty keys or values
// and values that already start with a dot.
func NewTable(entries map[string]string) (*Table, error) {
	m := make(map[string]string, len(entries))
	for k, v := range entries {
		if k == "" || strings.ContainsAny(k, " \t\r\n") {
			return nil, fmt.Errorf("invalid descriptor %q", k)
		}
		if v == "" || strings.HasPrefix(v, ".") {
			return nil, fmt.Errorf("invalid extension %q for %s (no leading dot)", v, k)
		}
		m[k] = v
	}
	return &Table{entries: m}, nil
}

// Lookup returns the extension (without dot) registered for descriptor.
func (t *Table) Lookup(descriptor string) (string, bool) {
	ext, ok := t.entries[descriptor]
	return ext, ok
}

// Descriptors returns the table keys in sorted order.
func (t *Table) Descriptors() []string {
	keys := make([]string, 0, len(t.entries))
	for k := range t.entries {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// Len returns the number of entries.
func (t *Table) Len() int { return len(t.entries) }
