package config

import (
	"encoding/json"
	"fmt"
	"os"

	"hypr-switch/pkg/logger"
)

// LoadFromFile loads the configuration from a JSON file.
func (c *Config) LoadFromFile(path string, log *logger.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return err
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	// Start from defaults so keys missing from the file keep them.
	f := defaultFileConfig()
	if err := json.Unmarshal(data, &f); err != nil {
		log.Error("Failed to parse config JSON", err)
		return err
	}
	log.Debug("Config JSON parsed successfully")

	c.apply(f)

	c.mu.Lock()
	c.path = path
	c.mu.Unlock()
	return nil
}

// Reload re-reads the config file this configuration was loaded from.
// Daemon hot reload calls this when the file changes on disk.
func (c *Config) Reload() error {
	path := c.Path()
	if path == "" {
		return fmt.Errorf("config was not loaded from a file")
	}
	return c.LoadFromFile(path, c.log)
}

// Save writes the configuration as indented JSON to the given path.
func (c *Config) Save(path string) error {
	data, err := json.MarshalIndent(c.snapshot(), "", "    ")
	if err != nil {
		return fmt.Errorf("failed to marshal config: %w", err)
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return fmt.Errorf("failed to write config file: %w", err)
	}

	c.mu.Lock()
	c.path = path
	c.mu.Unlock()
	return nil
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log *logger.Logger) (*Config, error) {
	config := &Config{log: log}
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
