package common

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// FileConfig is the optional YAML configuration file. Values set here sit
// between environment defaults and CLI flags: flags win over the file, the
// file wins over env.
type FileConfig struct {
	Output string   `yaml:"output"`
	Format string   `yaml:"format"`
	Dir    string   `yaml:"dir"`
	Exts   []string `yaml:"exts"`
	Watch  bool     `yaml:"watch"`
}

// LoadFileConfig reads and parses the YAML file at path.
func LoadFileConfig(path string) (*FileConfig, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config %s: %w", path, err)
	}
	var fc FileConfig
	if err := yaml.Unmarshal(data, &fc); err != nil {
		return nil, fmt.Errorf("parse config %s: %w", path, err)
	}
	return &fc, nil
}

// Apply overlays non-zero file values onto c.
func (c *Config) Apply(fc *FileConfig) {
	if fc == nil {
		return
	}
	if fc.Output != "" {
		c.Output = fc.Output
	}
	if fc.Format != "" {
		c.Format = fc.Format
	}
	if len(fc.Exts) > 0 {
		c.Exts = fc.Exts
	}
}
