package config

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"
)

// Global configuration structure.
type Global struct {
	// InputFile is the text file to analyze, relative to the working
	// directory unless absolute.
	InputFile string `mapstructure:"input_file" yaml:"input_file"`
	// MaxLines caps how many leading lines are rendered.
	MaxLines int `mapstructure:"max_lines" yaml:"max_lines"`
	// Color is one of auto, always, never.
	Color string `mapstructure:"color" yaml:"color"`
	// TopWords is the default row count for the freq command.
	TopWords int `mapstructure:"top_words" yaml:"top_words"`
}

// Default returns the built-in configuration used when no file or
// environment overrides are present.
func Default() *Global {
	return &Global{
		InputFile: "declaration.txt",
		MaxLines:  15,
		Color:     "auto",
		TopWords:  20,
	}
}

// ValidColor reports whether s is a recognized color mode.
func ValidColor(s string) bool {
	switch s {
	case "auto", "always", "never":
		return true
	}
	return false
}

// Save writes the given configuration to the cfgFile path. If cfgFile is
// empty, it writes to ~/.wordheat/config.yaml, creating the directory if
// necessary.
func Save(c *Global, cfgFile string) error {
	var path string
	if cfgFile != "" {
		path = cfgFile
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".wordheat")
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("mkdir config dir: %w", err)
		}
		path = filepath.Join(dir, "config.yaml")
	}
	b, err := yaml.Marshal(c)
	if err != nil {
		return fmt.Errorf("marshal yaml: %w", err)
	}
	if err := os.WriteFile(path, b, 0o644); err != nil {
		return fmt.Errorf("write config: %w", err)
	}
	return nil
}

// Load loads configuration from file, env, and defaults.
// Precedence: flags (cfgFile) > env > config file > defaults.
func Load(cfgFile string) (*Global, error) {
	v := viper.New()
	v.SetEnvPrefix("WORDHEAT")
	v.AutomaticEnv()

	// Defaults
	v.SetDefault("input_file", "declaration.txt")
	v.SetDefault("max_lines", 15)
	v.SetDefault("color", "auto")
	v.SetDefault("top_words", 20)

	// Config file
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("resolve home dir: %w", err)
		}
		dir := filepath.Join(home, ".wordheat")
		_ = os.MkdirAll(dir, 0o755)
		v.AddConfigPath(dir)
		v.SetConfigName("config")
		v.SetConfigType("yaml")
	}
	// optional read
	_ = v.ReadInConfig()

	var c Global
	if err := v.Unmarshal(&c); err != nil {
		return nil, fmt.Errorf("unmarshal config: %w", err)
	}
	if !ValidColor(c.Color) {
		return nil, fmt.Errorf("invalid color mode: %s (use auto, always, or never)", c.Color)
	}
	return &c, nil
}
