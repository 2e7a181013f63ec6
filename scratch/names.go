package scratch

import (
	"crypto/rand"
	"io"
	"os"
	"path/filepath"
	"strconv"
	"sync"
	"time"

	"github.com/oklog/ulid/v2"
)

// maxNameProbes bounds the suffix search so pathological directories
// still terminate.
const maxNameProbes = 999999

// tokenGenerator produces ULID tokens from a locked entropy source.
type tokenGenerator struct {
	entropy io.Reader
	mu      sync.Mutex
}

var tokens = &tokenGenerator{entropy: rand.Reader}

func (g *tokenGenerator) next() string {
	g.mu.Lock()
	defer g.mu.Unlock()
	return ulid.MustNew(ulid.Timestamp(time.Now()), g.entropy).String()
}

// UniqueName returns a directory name that does not yet exist under
// parent. With an empty desired name a fresh ULID token is used as the
// base. Starting from the base it probes base, base1, base2, ... and
// returns the first free name. When parent is empty or absent the base
// is returned unchanged; no collision is possible.
//
// If every probe up to the bound exists, the last attempted name is
// returned regardless.
func UniqueName(parent, desired string) string {
	base := desired
	if base == "" {
		base = tokens.next()
	}

	if parent == "" {
		return base
	}
	if _, err := os.Stat(parent); err != nil {
		return base
	}

	name := base
	for i := 1; i <= maxNameProbes; i++ {
		if _, err := os.Stat(filepath.Join(parent, name)); err != nil {
			return name
		}
		name = base + strconv.Itoa(i)
	}
	return name
}
