package scratch

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/GriffinCanCode/scratchfs/config"
)

// RootKind selects one of the configured scratch roots.
type RootKind int

const (
	// RootGlobal is the application-wide scratch root.
	RootGlobal RootKind = iota
	// RootTenant is the tenant-specific scratch root.
	RootTenant
)

// String returns the kind name for logs and errors.
func (k RootKind) String() string {
	switch k {
	case RootGlobal:
		return "global"
	case RootTenant:
		return "tenant"
	default:
		return fmt.Sprintf("RootKind(%d)", int(k))
	}
}

// Resolver maps scratch root kinds to physical directories. Each caller
// holds its own instance with injected configuration; there is no
// process-wide state.
type Resolver struct {
	cfg config.ScratchConfig
}

// NewResolver creates a resolver over the given scratch configuration.
func NewResolver(cfg config.ScratchConfig) *Resolver {
	return &Resolver{cfg: cfg}
}

// Root resolves a scratch root kind to a physical path, creating the base
// directory and the optional subdirectory if absent. The returned path is
// guaranteed to exist on success.
//
// Unlike the rest of this module, a failure here propagates: callers
// cannot safely continue without a valid scratch path.
func (r *Resolver) Root(kind RootKind, subdir string) (string, error) {
	base := r.base(kind)
	if base == "" {
		return "", fmt.Errorf("scratch root %s is not configured", kind)
	}

	if err := os.MkdirAll(base, 0o755); err != nil {
		return "", fmt.Errorf("create scratch root %s: %w", base, err)
	}

	if subdir == "" {
		return base, nil
	}

	path := filepath.Join(base, subdir)
	if err := os.MkdirAll(path, 0o755); err != nil {
		return "", fmt.Errorf("create scratch subdirectory %s: %w", path, err)
	}
	return path, nil
}

// Bases returns the configured base paths, in sweep order. Unconfigured
// roots are omitted; nothing is created.
func (r *Resolver) Bases() []string {
	if r == nil {
		return nil
	}
	var bases []string
	if r.cfg.GlobalRoot != "" {
		bases = append(bases, r.cfg.GlobalRoot)
	}
	if r.cfg.TenantRoot != "" {
		bases = append(bases, r.cfg.TenantRoot)
	}
	return bases
}

func (r *Resolver) base(kind RootKind) string {
	switch kind {
	case RootGlobal:
		return r.cfg.GlobalRoot
	case RootTenant:
		return r.cfg.TenantRoot
	default:
		return ""
	}
}
