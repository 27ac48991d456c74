package config

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

const (
	// DefaultAlgorithm is used when no algorithm tag is configured.
	DefaultAlgorithm = "SpMx"

	defaultStreamRate   = 10
	defaultStreamFormat = "u64"
)

// Rand is the root configuration of the library and the randtool CLI.
type Rand struct {
	Generator *GeneratorCfg `yaml:"generator"`
	Stream    *StreamCfg    `yaml:"stream"`
}

func (cfg *Rand) AdjustConfig() {
	if cfg.Generator == nil {
		cfg.Generator = &GeneratorCfg{}
	}
	if cfg.Generator.Algorithm == "" {
		cfg.Generator.Algorithm = DefaultAlgorithm
	}
	if cfg.Stream.Enabled() {
		if cfg.Stream.Rate <= 0 {
			cfg.Stream.Rate = defaultStreamRate
		}
		if cfg.Stream.Format == "" {
			cfg.Stream.Format = defaultStreamFormat
		}
	}
}

func LoadConfig(path string) (*Rand, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("stat config path: %w", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read config yaml file %s: %w", path, err)
	}

	var cfg *Rand
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("unmarshal yaml from %s: %w", path, err)
	}
	cfg.AdjustConfig()

	return cfg, nil
}
