// Copyright 2026 The PiLock Authors. All rights reserved.
// Use of this source code is governed under the Apache License, Version 2.0
// that can be found in the LICENSE file.

package lock

import (
	"encoding/json"
	"fmt"
	"os"
)

// Defaults used when a config file is absent or leaves a field unset.
const (
	DefaultPassword      = "1234"
	DefaultUnlockSeconds = 5
	DefaultContrast      = 32
)

const (
	envConfigFile     = "CONFIG_FILE"
	defaultConfigFile = "config.json"
	maxContrast       = 0x3f
)

// Config is the persisted application configuration.
type Config struct {
	// Password is the PIN that unlocks the door.
	Password string `json:"password"`
	// UnlockSeconds is how long the door stays unlocked after a correct
	// PIN before relocking.
	UnlockSeconds int `json:"unlock_seconds"`
	// Contrast is the display contrast, 0 to 63.
	Contrast uint8 `json:"contrast"`
	// EasyAccess unlocks on a bare '#' press, without a PIN.
	EasyAccess bool `json:"easy_access"`
}

// DefaultConfig returns the configuration used when no file is present.
func DefaultConfig() Config {
	return Config{
		Password:      DefaultPassword,
		UnlockSeconds: DefaultUnlockSeconds,
		Contrast:      DefaultContrast,
	}
}

// Validate checks field ranges.
func (c *Config) Validate() error {
	if c.Password == "" {
		return fmt.Errorf("lock: password must not be empty")
	}
	if c.UnlockSeconds < 1 {
		return fmt.Errorf("lock: unlock_seconds must be at least 1, got %d", c.UnlockSeconds)
	}
	if c.Contrast > maxContrast {
		return fmt.Errorf("lock: contrast must be at most %d, got %d", maxContrast, c.Contrast)
	}
	return nil
}

// ConfigPath returns the config file path, from $CONFIG_FILE when set.
func ConfigPath() string {
	if p := os.Getenv(envConfigFile); p != "" {
		return p
	}
	return defaultConfigFile
}

// LoadConfig reads the configuration at path. A missing file yields the
// defaults; fields absent from the file keep their default values.
func LoadConfig(path string) (Config, error) {
	c := DefaultConfig()
	raw, err := os.ReadFile(path)
	if os.IsNotExist(err) {
		return c, nil
	}
	if err != nil {
		return c, fmt.Errorf("lock: %w", err)
	}
	if err := json.Unmarshal(raw, &c); err != nil {
		return c, fmt.Errorf("lock: parsing %s: %w", path, err)
	}
	if err := c.Validate(); err != nil {
		return c, err
	}
	return c, nil
}

// Save writes the configuration to path as JSON.
func (c Config) Save(path string) error {
	raw, err := json.MarshalIndent(c, "", "  ")
	if err != nil {
		return fmt.Errorf("lock: %w", err)
	}
	if err := os.WriteFile(path, raw, 0o644); err != nil {
		return fmt.Errorf("lock: %w", err)
	}
	return nil
}
