// Package config loads the gotable configuration file and environment
// overrides.
package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/joho/godotenv"
	"gopkg.in/yaml.v3"

	"github.com/Alp4ka/gotable"
	"github.com/Alp4ka/gotable/internal/logging"
)

const (
	EnvLogLevel  = "GOTABLE_LOG_LEVEL"
	EnvLogFormat = "GOTABLE_LOG_FORMAT"
)

// Config is the on-disk configuration:
//
//	view:
//	  searchKeys: [name, email]
//	  sortColumn: name
//	  resultSet: 20
//	logging:
//	  level: debug
//	  format: json
type Config struct {
	View    gotable.RawParameters `yaml:"view"`
	Logging logging.Config        `yaml:"logging"`
}

// Default returns the configuration used when no file is given.
func Default() *Config {
	return &Config{Logging: logging.DefaultConfig()}
}

// Load reads the YAML file at path on top of Default and applies environment
// overrides. An empty path skips the file. Sections absent from the file keep
// their defaults.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("reading config file %s: %w", path, err)
		}
		if err = yaml.Unmarshal(data, cfg); err != nil {
			return nil, fmt.Errorf("parsing config YAML from %s: %w", path, err)
		}
	}

	cfg.ApplyEnv(os.LookupEnv)

	return cfg, nil
}

// ApplyEnv overrides logging settings from GOTABLE_LOG_LEVEL and
// GOTABLE_LOG_FORMAT. Empty values are ignored.
func (c *Config) ApplyEnv(lookup func(string) (string, bool)) {
	if v, ok := lookup(EnvLogLevel); ok && v != "" {
		c.Logging.Level = v
	}
	if v, ok := lookup(EnvLogFormat); ok && v != "" {
		c.Logging.Format = v
	}
}

// LoadDotEnv loads KEY=VALUE pairs from path into the process environment
// without overriding variables that are already set. A missing file is not an
// error.
func LoadDotEnv(path string) error {
	if path == "" {
		path = ".env"
	}

	if err := godotenv.Load(path); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil
		}
		return fmt.Errorf("loading %s: %w", path, err)
	}

	return nil
}
