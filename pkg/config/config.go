package config

import (
	"sync"
	"time"

	"hypr-switch/pkg/logger"
)

// Config holds the application configuration.
//
// Fields are private and read through getters; the daemon's hot reload
// swaps values in place under the mutex, so getters stay valid across
// config file rewrites.
type Config struct {
	mu sync.RWMutex

	// Configurable via JSON file
	caseSensitive bool
	maxResults    int
	cacheTTL      time.Duration
	skipFocused   bool
	ignoreClasses []string
	notifyCommand string

	// Internal fields
	path string
	log  *logger.Logger
}

// GetCaseSensitive reports whether matching honors letter case.
func (c *Config) GetCaseSensitive() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.caseSensitive
}

// GetMaxResults returns the result list bound for one-shot queries.
func (c *Config) GetMaxResults() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.maxResults
}

// GetCacheTTL returns how long a window snapshot stays fresh.
func (c *Config) GetCacheTTL() time.Duration {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.cacheTTL
}

// GetSkipFocused reports whether the focused window is excluded from results.
func (c *Config) GetSkipFocused() bool {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.skipFocused
}

// GetIgnoreClasses returns the window classes excluded from the corpus.
func (c *Config) GetIgnoreClasses() []string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	out := make([]string, len(c.ignoreClasses))
	copy(out, c.ignoreClasses)
	return out
}

// GetNotifyCommand returns the user-configured notification command.
func (c *Config) GetNotifyCommand() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.notifyCommand
}

// Path returns the file this configuration was loaded from, or "" for a
// default configuration that has not been written yet.
func (c *Config) Path() string {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return c.path
}
