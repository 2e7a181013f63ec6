package scratch

import (
	"errors"
	"io"
	"os"
)

// ErrIsDirectory is returned by DeleteFile when the path denotes a
// directory. Deleting directories through the single-file entry point is
// disallowed; use ClearDir instead.
var ErrIsDirectory = errors.New("scratch: path is a directory, not a file")

// DeleteFile deletes a single file. It returns true when the path is
// empty, absent, or successfully removed. An I/O failure is recorded and
// reported as false.
//
// Calling it on a directory is an illegal call and fails fast with
// ErrIsDirectory; nothing is deleted in that case.
func (o *Ops) DeleteFile(path string) (bool, error) {
	if path == "" {
		return true, nil
	}

	info, err := os.Stat(path)
	if err != nil {
		if os.IsNotExist(err) {
			return true, nil
		}
		o.suppress("delete_file", path, err)
		return false, nil
	}
	if info.IsDir() {
		return false, ErrIsDirectory
	}

	if err := os.Remove(path); err != nil {
		o.suppress("delete_file", path, err)
		return false, nil
	}
	o.metrics.FilesDeleted.Inc()
	return true, nil
}

// CopyFile copies a single file. With overwrite false an existing
// destination makes the copy fail, reported as false. When deleteSource
// is set the source is deleted after a successful copy; a failed delete
// also yields false. Failures are recorded, never raised.
func (o *Ops) CopyFile(src, dst string, overwrite, deleteSource bool) bool {
	if err := copyFileContents(src, dst, overwrite); err != nil {
		o.suppress("copy_file", src, err)
		return false
	}
	o.metrics.FilesCopied.Inc()

	if deleteSource {
		ok, err := o.DeleteFile(src)
		if err != nil || !ok {
			return false
		}
	}
	return true
}

// Truncate overwrites the file's contents with zero bytes. Best-effort
// and fire-and-forget: failures are recorded and discarded.
func (o *Ops) Truncate(path string) {
	if path == "" {
		return
	}
	if err := os.WriteFile(path, []byte{}, 0o644); err != nil {
		o.suppress("truncate", path, err)
	}
}

// CountFiles returns the number of direct file entries in dir, or 0 if
// the directory cannot be listed.
func (o *Ops) CountFiles(dir string) int {
	entries, err := os.ReadDir(dir)
	if err != nil {
		o.suppress("count_files", dir, err)
		return 0
	}
	count := 0
	for _, entry := range entries {
		if !entry.IsDir() {
			count++
		}
	}
	return count
}

func copyFileContents(src, dst string, overwrite bool) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	flags := os.O_WRONLY | os.O_CREATE
	if overwrite {
		flags |= os.O_TRUNC
	} else {
		flags |= os.O_EXCL
	}
	out, err := os.OpenFile(dst, flags, 0o644)
	if err != nil {
		return err
	}

	if _, err := io.Copy(out, in); err != nil {
		out.Close()
		return err
	}
	return out.Close()
}
