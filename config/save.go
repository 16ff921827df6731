package config

import (
	"encoding/json"
	"os"
	"path/filepath"
)

// Save writes the configuration as pretty-printed JSON to path, creating
// the parent directory if needed. This is the "initialize defaults"
// operation behind the init command; nothing else writes the config back.
func (c *Config) Save(path string) error {
	if err := os.MkdirAll(filepath.Dir(path), 0o700); err != nil {
		return err
	}

	data, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return err
	}

	// Config holds webhook secrets, keep it private
	return os.WriteFile(path, data, 0o600)
}
