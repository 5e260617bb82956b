package naming

import "sync"

// ClaimTracker records which source file claimed each target path during a
// run. Two sources can land on one target ("img" sniffed as PNG and
// "img.png"); the tracker reports the earlier owner so the caller can warn
// before the later copy overwrites it. All methods are goroutine-safe.
type ClaimTracker struct {
	mu     sync.Mutex
	owners map[string]string // target path → source path that claimed it
}

// NewClaimTracker creates a ready-to-use tracker.
func NewClaimTracker() *ClaimTracker {
	return &ClaimTracker{owners: make(map[string]string)}
}

// Claim records source as the owner of target. If a different source
// already claimed target, that source is returned with ok=false.
func (ct *ClaimTracker) Claim(source, target string) (previous string, ok bool) {
	ct.mu.Lock()
	defer ct.mu.Unlock()

	owner, exists := ct.owners[target]
	ct.owners[target] = source
	if exists && owner != source {
		return owner, false
	}
	return "", true
}
