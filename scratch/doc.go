// Package scratch provides best-effort scratch-space maintenance.
//
// This package is organized into specialized modules:
//   - paths: scratch root resolution (global and tenant roots)
//   - fileops: single-file primitives (delete, copy, truncate, count)
//   - copier: recursive directory tree copy with partial-success semantics
//   - clearer: recursive directory clearing with lock retry
//   - sweeper: age- and pattern-based stale temp file sweeps
//   - names: collision-avoiding directory name allocation
//   - usage: recursive size and file-count scans
//
// All operations are best-effort: a failure is forwarded to the
// diagnostic sink (logger plus metrics) and converted into a boolean
// or empty result instead of an error, so cleanup never crashes the
// calling workflow. The two exceptions, documented on the functions
// themselves, are Resolver.Root and DeleteFile on a directory.
//
// Example usage:
//
//	resolver := scratch.NewResolver(cfg.Scratch)
//	ops := scratch.New(resolver, logger, metrics)
//	ops.SweepStale()
package scratch
