package config

import (
	"time"

	"hypr-switch/pkg/logger"
)

// fileConfig is the JSON shape of the config file. Loading starts from the
// default values so absent keys keep their defaults instead of collapsing
// to Go zero values.
type fileConfig struct {
	CaseSensitive bool     `json:"case_sensitive"`
	MaxResults    int      `json:"max_results"`
	CacheTTLMS    int      `json:"cache_ttl_ms"`
	SkipFocused   bool     `json:"skip_focused"`
	IgnoreClasses []string `json:"ignore_classes"`
	NotifyCommand string   `json:"notify_command"`
}

func defaultFileConfig() fileConfig {
	return fileConfig{
		CaseSensitive: false,
		MaxResults:    10,
		CacheTTLMS:    2000,
		SkipFocused:   true,
		IgnoreClasses: []string{},
		NotifyCommand: "",
	}
}

// DefaultConfig creates a default configuration.
func DefaultConfig(log *logger.Logger) *Config {
	log.Debug("Creating default configuration")

	config := &Config{log: log}
	config.apply(defaultFileConfig())

	log.Info("Created default configuration",
		"max_results", config.maxResults,
		"cache_ttl", config.cacheTTL.String())
	return config
}

// apply copies validated file values into the live config. Nonsense values
// are clamped rather than rejected: the switcher has no fatal config states.
func (c *Config) apply(f fileConfig) {
	if f.MaxResults < 0 {
		f.MaxResults = 0
	}
	if f.CacheTTLMS < 0 {
		f.CacheTTLMS = 0
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	c.caseSensitive = f.CaseSensitive
	c.maxResults = f.MaxResults
	c.cacheTTL = time.Duration(f.CacheTTLMS) * time.Millisecond
	c.skipFocused = f.SkipFocused
	c.ignoreClasses = f.IgnoreClasses
	c.notifyCommand = f.NotifyCommand
}

// snapshot returns the current values in file shape, for saving.
func (c *Config) snapshot() fileConfig {
	c.mu.RLock()
	defer c.mu.RUnlock()
	ignore := c.ignoreClasses
	if ignore == nil {
		ignore = []string{}
	}
	return fileConfig{
		CaseSensitive: c.caseSensitive,
		MaxResults:    c.maxResults,
		CacheTTLMS:    int(c.cacheTTL / time.Millisecond),
		SkipFocused:   c.skipFocused,
		IgnoreClasses: ignore,
		NotifyCommand: c.notifyCommand,
	}
}
