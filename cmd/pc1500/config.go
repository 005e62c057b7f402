package main

import (
	"os"

	"github.com/BurntSushi/toml"
)

// Config is the host shell's persisted settings: window scale and the
// keyboard-to-matrix key bindings, loadable from the TOML file named by the
// -config flag.
type Config struct {
	Title string `toml:"title"`
	Scale int    `toml:"scale"`

	// Keys maps PC-1500 key names (the names in keyNames) to
	// ebiten key names typed by the user, e.g. {"A" = "A", "Enter" = "Enter"}.
	Keys map[string]string `toml:"keys"`
}

// Defaults fills unset fields with reasonable values, the way
// ui.Config.Defaults does for the teacher's window/audio settings.
func (c *Config) Defaults() {
	if c.Title == "" {
		c.Title = "pc1500"
	}
	if c.Scale <= 0 {
		c.Scale = 4
	}
	if c.Keys == nil {
		c.Keys = defaultKeyMap()
	}
}

// loadConfig reads a TOML config file if present; a missing file is not an
// error, it just means defaults apply.
func loadConfig(path string) Config {
	var cfg Config
	if path == "" {
		cfg.Defaults()
		return cfg
	}
	if _, err := os.Stat(path); err == nil {
		if _, err := toml.DecodeFile(path, &cfg); err != nil {
			// Malformed config: fall back to defaults rather than aborting
			// startup over a settings file.
			cfg = Config{}
		}
	}
	cfg.Defaults()
	return cfg
}
