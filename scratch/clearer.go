package scratch

import (
	"os"
	"path/filepath"
	"runtime"
	"strings"
)

// ClearDir empties a directory, best-effort. Failures are wholly
// absorbed: each file is attempted, retried once, and given up on
// individually, so one locked handle never stops the rest of the tree
// from being cleaned.
//
// Names in except are matched case-insensitively against direct children
// only; files with the same name in subdirectories are deleted anyway.
// When removeSelf is set, path itself is removed at the end, including
// anything that survived the per-entry pass.
func (o *Ops) ClearDir(path string, removeSelf bool, except ...string) {
	if path == "" {
		return
	}
	o.metrics.ClearRuns.Inc()

	o.clearContents(path, except)

	if removeSelf {
		if err := os.RemoveAll(path); err != nil {
			o.suppress("clear_dir", path, err)
		}
	}
}

// clearContents removes the direct children of path: files first, then
// subdirectories depth-first. A listing failure abandons the level.
func (o *Ops) clearContents(path string, except []string) {
	entries, err := os.ReadDir(path)
	if err != nil {
		o.suppress("clear_dir", path, err)
		return
	}

	var skip map[string]struct{}
	if len(except) > 0 {
		skip = make(map[string]struct{}, len(except))
		for _, name := range except {
			skip[strings.ToLower(name)] = struct{}{}
		}
	}

	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if _, keep := skip[strings.ToLower(entry.Name())]; keep {
			continue
		}
		target := filepath.Join(path, entry.Name())
		o.clearReadOnly(target)
		if o.removeWithRetry(target) {
			o.metrics.FilesDeleted.Inc()
		}
	}

	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		target := filepath.Join(path, entry.Name())
		// Exceptions protect top-level files only; they do not propagate
		// into nested levels.
		o.clearContents(target, nil)
		o.removeWithRetry(target)
	}
}

// removeWithRetry attempts a delete, yields the scheduler once to let a
// contending process release its handle, and retries exactly once before
// giving up. Not a timed backoff.
func (o *Ops) removeWithRetry(path string) bool {
	if os.Remove(path) == nil {
		return true
	}
	runtime.Gosched()
	if err := os.Remove(path); err != nil {
		o.suppress("clear_dir", path, err)
		return false
	}
	return true
}

// clearReadOnly restores the owner write bit so a read-only file does not
// survive the clear.
func (o *Ops) clearReadOnly(path string) {
	info, err := os.Stat(path)
	if err != nil {
		return
	}
	if mode := info.Mode(); mode&0o200 == 0 {
		_ = os.Chmod(path, mode|0o200)
	}
}
