package cli

import (
	"fmt"
	"os"

	"github.com/BurntSushi/toml"
)

// Config holds the optional TOML configuration file. Every value is a
// default: flags set explicitly on the command line win.
//
//	[generate]
//	rows = 12
//	columns = 24
//	algorithm = "sidewinder"
//	seed = 42
//
//	[render]
//	cell_size = 16
//	format = "png"
type Config struct {
	Generate GenerateConfig `toml:"generate"`
	Render   RenderConfig   `toml:"render"`
}

// GenerateConfig defaults for the generate and explore commands.
type GenerateConfig struct {
	Rows      int    `toml:"rows"`
	Columns   int    `toml:"columns"`
	Algorithm string `toml:"algorithm"`
	Seed      uint64 `toml:"seed"`
}

// RenderConfig defaults for output formats.
type RenderConfig struct {
	CellSize int    `toml:"cell_size"`
	Format   string `toml:"format"`
}

// loadConfig reads and decodes a TOML config file.
func loadConfig(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config: %w", err)
	}
	var cfg Config
	if err := toml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &cfg, nil
}
