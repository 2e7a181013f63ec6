package scratch

import (
	"os"
	"path/filepath"
	"time"

	"github.com/bmatcuk/doublestar/v4"
)

// staleAfter is the fixed retention window: files last written before
// now-staleAfter are considered stale.
const staleAfter = 5 * time.Hour

// SweepStale deletes stale direct files from every configured scratch
// root. Subdirectories are not recursed into. A failure on one root is
// recorded and the sweep continues with the next.
func (o *Ops) SweepStale() {
	o.metrics.SweepRuns.Inc()
	cutoff := time.Now().Add(-staleAfter)
	for _, root := range o.resolver.Bases() {
		o.sweepRoot(root, func(info os.FileInfo) bool {
			return info.ModTime().Before(cutoff)
		})
	}
}

// SweepPattern deletes direct files whose names match the given
// doublestar glob from every configured scratch root, regardless of age.
// Useful for purging a known artifact family such as "*.part".
func (o *Ops) SweepPattern(pattern string) {
	o.metrics.SweepRuns.Inc()
	for _, root := range o.resolver.Bases() {
		o.sweepRoot(root, func(info os.FileInfo) bool {
			matched, err := doublestar.Match(pattern, info.Name())
			if err != nil {
				o.suppress("sweep_pattern", pattern, err)
				return false
			}
			return matched
		})
	}
}

func (o *Ops) sweepRoot(root string, stale func(os.FileInfo) bool) {
	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			return
		}
		o.suppress("sweep", root, err)
		return
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		path := filepath.Join(root, entry.Name())
		info, err := entry.Info()
		if err != nil {
			o.suppress("sweep", path, err)
			continue
		}
		if !stale(info) {
			continue
		}
		if ok, err := o.DeleteFile(path); err == nil && ok {
			o.metrics.StaleDeleted.Inc()
		}
	}
}
