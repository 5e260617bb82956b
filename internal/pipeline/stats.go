package pipeline

// RunStats tracks aggregate counters across a run.
type RunStats struct {
	Total       int   // Regular files discovered.
	Copied      int   // Files written to the output tree.
	Planned     int   // Files that would be written (dry run).
	BytesCopied int64 // Sum of bytes written.
	Unresolved  int   // Distinct descriptions without an extension.
	Collisions  int   // Targets claimed by more than one source.
}
