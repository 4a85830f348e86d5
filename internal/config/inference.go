package config

import (
	"fmt"
	"os"
	"strconv"
	"time"
)

const (
	EnvInferenceCommand       = "MANIFEST_INFERENCE_COMMAND"
	EnvInferenceScript        = "MANIFEST_INFERENCE_SCRIPT"
	EnvInferenceTimeout       = "MANIFEST_INFERENCE_TIMEOUT"
	EnvInferenceMaxConcurrent = "MANIFEST_INFERENCE_MAX_CONCURRENT"
)

// InferenceConfig holds parameters for the external inference process:
// the interpreter command, the script it runs, the per-invocation wall-clock
// timeout, and the admission-control bound on concurrent invocations.
type InferenceConfig struct {
	Command       string `toml:"command"`
	Script        string `toml:"script"`
	Timeout       string `toml:"timeout"`
	MaxConcurrent int    `toml:"max_concurrent"`
}

// TimeoutDuration returns Timeout as a time.Duration.
func (c *InferenceConfig) TimeoutDuration() time.Duration {
	d, _ := time.ParseDuration(c.Timeout)
	return d
}

// Finalize applies defaults, environment variable overrides, and validation.
func (c *InferenceConfig) Finalize() error {
	c.loadDefaults()
	c.loadEnv()
	return c.validate()
}

// Merge overwrites non-zero fields from overlay.
func (c *InferenceConfig) Merge(overlay *InferenceConfig) {
	if overlay.Command != "" {
		c.Command = overlay.Command
	}
	if overlay.Script != "" {
		c.Script = overlay.Script
	}
	if overlay.Timeout != "" {
		c.Timeout = overlay.Timeout
	}
	if overlay.MaxConcurrent != 0 {
		c.MaxConcurrent = overlay.MaxConcurrent
	}
}

func (c *InferenceConfig) loadDefaults() {
	if c.Command == "" {
		c.Command = "python3"
	}
	if c.Script == "" {
		c.Script = "ai/chat.py"
	}
	if c.Timeout == "" {
		c.Timeout = "2m"
	}
	if c.MaxConcurrent == 0 {
		c.MaxConcurrent = 4
	}
}

func (c *InferenceConfig) loadEnv() {
	if v := os.Getenv(EnvInferenceCommand); v != "" {
		c.Command = v
	}
	if v := os.Getenv(EnvInferenceScript); v != "" {
		c.Script = v
	}
	if v := os.Getenv(EnvInferenceTimeout); v != "" {
		c.Timeout = v
	}
	if v := os.Getenv(EnvInferenceMaxConcurrent); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.MaxConcurrent = n
		}
	}
}

func (c *InferenceConfig) validate() error {
	if c.Command == "" {
		return fmt.Errorf("command required")
	}
	if c.Script == "" {
		return fmt.Errorf("script required")
	}
	if c.MaxConcurrent < 1 {
		return fmt.Errorf("max_concurrent must be positive")
	}
	if _, err := time.ParseDuration(c.Timeout); err != nil {
		return fmt.Errorf("invalid timeout: %w", err)
	}
	return nil
}
