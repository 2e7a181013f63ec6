// Package config provides environment-based configuration for scratchfs.
//
// Configuration is loaded from SCRATCHFS_* environment variables with
// sensible defaults, so an embedding application can run with zero setup
// and override paths per deployment.
package config
