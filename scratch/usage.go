package scratch

import (
	"os"
	"sync"

	"github.com/charlievieth/fastwalk"
)

// Usage describes the recursive contents of a directory.
type Usage struct {
	Files int
	Bytes int64
}

// Usage scans path recursively and returns the total file count and
// byte size. Entries that cannot be read are skipped; if the walk cannot
// start at all the failure is recorded and a zero Usage is returned.
func (o *Ops) Usage(path string) Usage {
	var (
		mu sync.Mutex
		u  Usage
	)

	conf := fastwalk.Config{Follow: false}
	err := fastwalk.Walk(&conf, path, func(_ string, d os.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return nil
		}
		info, err := d.Info()
		if err != nil {
			return nil
		}
		mu.Lock()
		u.Files++
		u.Bytes += info.Size()
		mu.Unlock()
		return nil
	})
	if err != nil {
		o.suppress("usage", path, err)
		return Usage{}
	}
	return u
}
