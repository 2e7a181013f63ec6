package scratch

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// CopyDir recursively copies a directory tree. Per-entry failures are
// recorded and skipped so that the remaining entries still get copied;
// the return value is true only when every file and subdirectory made it.
//
// Copying a directory into its own subtree is refused up front. The
// guard is a textual prefix check, not a true ancestry check, so paths
// that merely share a prefix are also refused.
func (o *Ops) CopyDir(src, dst string, overwrite bool) bool {
	if strings.HasPrefix(dst, src) {
		o.suppress("copy_dir", dst, fmt.Errorf("target is inside source %s", src))
		return false
	}

	entries, err := os.ReadDir(src)
	if err != nil {
		o.suppress("copy_dir", src, err)
		return false
	}
	if err := os.MkdirAll(dst, 0o755); err != nil {
		o.suppress("copy_dir", dst, err)
		return false
	}

	ok := true
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		if !o.CopyFile(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), overwrite, false) {
			ok = false
		}
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if !o.CopyDir(filepath.Join(src, entry.Name()), filepath.Join(dst, entry.Name()), overwrite) {
			ok = false
		}
	}
	return ok
}
