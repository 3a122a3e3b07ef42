// Package config loads and initializes the devcalc configuration file.
package config

import (
	"bytes"
	"devcalc/common"
	"devcalc/logging"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/pelletier/go-toml"
)

// Config is the effective devcalc configuration.
type Config struct {
	// LogLevel is the name of the log level.
	LogLevel string

	// Format is the name of the output format.
	Format string

	// Prefix indicates whether base prefixes are displayed.
	Prefix bool

	// Color indicates whether output is colored.
	Color bool

	// Workers is the number of goroutines used to evaluate batches.
	Workers int

	// HistorySize is the capacity of the REPL history.
	HistorySize int

	// Path is the file the configuration was loaded from.  It is empty if no
	// file was found and the defaults are in use.
	Path string
}

// tomlConfigFile represents the configuration file as it is encoded in TOML
type tomlConfigFile struct {
	Devcalc *tomlConfig `toml:"devcalc"`
}

// tomlConfig represents the configuration table as it is encoded in TOML
type tomlConfig struct {
	LogLevel    string `toml:"loglevel"`
	Format      string `toml:"format"`
	Prefix      bool   `toml:"prefix"`
	Color       bool   `toml:"color"`
	Workers     int    `toml:"workers"`
	HistorySize int    `toml:"history-size"`
}

// Default returns the default configuration.
func Default() *Config {
	return &Config{
		LogLevel:    common.DefaultLogLevel,
		Format:      common.DefaultFormat,
		Prefix:      true,
		Color:       true,
		Workers:     common.DefaultWorkers,
		HistorySize: common.DefaultHistorySize,
	}
}

// -----------------------------------------------------------------------------

// Locate determines which configuration file should be used.  An explicit path
// always wins, followed by the DEVCALC_CONFIG environment variable and the
// file in the user's configuration directory.  The boolean indicates whether
// the returned path was explicitly requested: explicitly requested files must
// exist.
func Locate(explicit string) (string, bool) {
	if explicit != "" {
		return explicit, true
	}

	if envPath, ok := os.LookupEnv(common.ConfigEnvVar); ok && envPath != "" {
		return envPath, true
	}

	userDir, err := os.UserConfigDir()
	if err != nil {
		return "", false
	}

	return filepath.Join(userDir, common.ConfigDirName, common.ConfigFileName), false
}

// LoadDefault locates and loads the configuration.  If no explicit file was
// requested and the default file does not exist, the defaults are returned.
func LoadDefault(explicit string) (*Config, error) {
	path, required := Locate(explicit)
	if path == "" {
		return Default(), nil
	}

	if !required {
		if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
			return Default(), nil
		}
	}

	return Load(path)
}

// Load loads and validates the configuration file at path.  Keys missing from
// the file keep their default values.
func Load(path string) (*Config, error) {
	buff, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("error reading config file: %w", err)
	}

	tree, err := toml.LoadBytes(buff)
	if err != nil {
		return nil, fmt.Errorf("error parsing config file %s: %w", path, err)
	}

	tcf := &tomlConfigFile{}
	if err := tree.Unmarshal(tcf); err != nil {
		return nil, fmt.Errorf("error decoding config file %s: %w", path, err)
	}

	cfg := Default()
	cfg.Path = path

	// move all the TOML attributes that were actually present over to the
	// configuration
	if tc := tcf.Devcalc; tc != nil {
		if tree.Has("devcalc.loglevel") {
			cfg.LogLevel = tc.LogLevel
		}

		if tree.Has("devcalc.format") {
			cfg.Format = tc.Format
		}

		if tree.Has("devcalc.prefix") {
			cfg.Prefix = tc.Prefix
		}

		if tree.Has("devcalc.color") {
			cfg.Color = tc.Color
		}

		if tree.Has("devcalc.workers") {
			cfg.Workers = tc.Workers
		}

		if tree.Has("devcalc.history-size") {
			cfg.HistorySize = tc.HistorySize
		}
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("invalid config file %s: %w", path, err)
	}

	return cfg, nil
}

// Validate checks that the configuration values are valid.
func (c *Config) Validate() error {
	if !logging.IsLogLevel(c.LogLevel) {
		return fmt.Errorf("unknown log level `%s`", c.LogLevel)
	}

	if !logging.IsFormat(c.Format) {
		return fmt.Errorf("unknown output format `%s`", c.Format)
	}

	if c.Workers < 1 {
		return errors.New("workers must be at least 1")
	}

	if c.HistorySize < 1 {
		return errors.New("history-size must be at least 1")
	}

	return nil
}

// -----------------------------------------------------------------------------

// Init writes a configuration file holding the defaults into the directory dir
// and returns its path.  An existing configuration file is never overwritten.
func Init(dir string) (string, error) {
	path := filepath.Join(dir, common.ConfigFileName)

	// check to see if a config file already exists
	_, err := os.Stat(path)
	if err == nil {
		return "", errors.New("config file already exists")
	}

	if !errors.Is(err, os.ErrNotExist) {
		return "", fmt.Errorf("config file error: %w", err)
	}

	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", fmt.Errorf("error creating config directory: %w", err)
	}

	def := Default()
	tc := &tomlConfig{
		LogLevel:    def.LogLevel,
		Format:      def.Format,
		Prefix:      def.Prefix,
		Color:       def.Color,
		Workers:     def.Workers,
		HistorySize: def.HistorySize,
	}

	// the file is only written once encoding has succeeded so a failure never
	// leaves a partial config file behind
	buff := &bytes.Buffer{}
	if err := encodeConfig(buff, &tomlConfigFile{Devcalc: tc}); err != nil {
		return "", fmt.Errorf("error encoding TOML: %w", err)
	}

	if err := os.WriteFile(path, buff.Bytes(), 0o644); err != nil {
		os.Remove(path)
		return "", fmt.Errorf("error writing config file: %w", err)
	}

	return path, nil
}

// encodeConfig writes the TOML encoding of a config file to w.
var encodeConfig = func(w io.Writer, tcf *tomlConfigFile) error {
	return toml.NewEncoder(w).Encode(tcf)
}
