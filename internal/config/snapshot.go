package config

import (
	"fmt"
	"os"
	"time"
)

const (
	EnvSnapshotURL     = "MANIFEST_SNAPSHOT_URL"
	EnvSnapshotTimeout = "MANIFEST_SNAPSHOT_TIMEOUT"
)

// SnapshotConfig holds parameters for the task-snapshot collaborator the
// orchestrator consults before inference. URL may be empty, in which case
// the snapshot endpoint is derived from the server's own listen address.
type SnapshotConfig struct {
	URL     string `toml:"url"`
	Timeout string `toml:"timeout"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *SnapshotConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *SnapshotConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *SnapshotConfig) Merge(overlay *SnapshotConfig) {
	if overlay.URL != "" {
		c.URL = overlay.URL
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
}

func (c *SnapshotConfig) loadDefaults() {
	if c.Timeout == "" {
		c.Timeout = "5s"
	}
}

func (c *SnapshotConfig) loadEnv() {
	if v := os.Getenv(EnvSnapshotURL); v != "" {
		c.URL = v
	}
	if v := os.Getenv(EnvSnapshotTimeout); v != "" {
		c.Timeout = v
	}
}

func (c *SnapshotConfig) validate() error {
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
