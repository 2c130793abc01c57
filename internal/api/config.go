package api

import (
	"github.com/pkg/errors"
	"gopkg.in/yaml.v2"

	"github.com/kosmosec/assetguard/internal/obfuscator"
)

const DefaultConfigName = "config.yml"

type (
	Config struct {
		JSFiles    []string   `yaml:"jsFiles,omitempty"`
		CSSFiles   []string   `yaml:"cssFiles,omitempty"`
		InputDir   string     `yaml:"inputDir,omitempty"`
		OutputDir  string     `yaml:"outputDir,omitempty"`
		CSS        CSS        `yaml:"css,omitempty"`
		Obfuscator Obfuscator `yaml:"obfuscator,omitempty"`
	}

	CSS struct {
		Engine Engine `yaml:"engine,omitempty"`
		// Level mirrors the cleancss -O flag.
		Level int `yaml:"level,omitempty"`
	}

	Obfuscator struct {
		Engine  Engine             `yaml:"engine,omitempty"`
		Options obfuscator.Options `yaml:"options,omitempty"`
	}
)

// Decode parses a YAML configuration and fills the directories the run cannot
// do without.
func Decode(raw []byte) (Config, error) {
	var cfg Config
	if err := yaml.Unmarshal(raw, &cfg); err != nil {
		return Config{}, errors.Wrap(err, "decode config")
	}
	if cfg.InputDir == "" {
		cfg.InputDir = "./"
	}
	if cfg.OutputDir == "" {
		return Config{}, errors.New("config: outputDir is required")
	}
	cfg.CSS.Engine = cfg.CSS.Engine.OrDefault()
	cfg.Obfuscator.Engine = cfg.Obfuscator.Engine.OrDefault()
	if cfg.CSS.Level == 0 {
		cfg.CSS.Level = 2
	}
	return cfg, nil
}
