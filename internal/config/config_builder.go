package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

type configBuilder struct {
	configs     []*StructuredConfig
	hasDefaults bool
	err         error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		configs: make([]*StructuredConfig, 0, 4),
	}
}

// build merges the collected configs in order; a non-zero field of a later
// config overrides the same field of an earlier one.
func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occured during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, cfg := range b.configs {
		if err := mergo.Merge(config, cfg, mergo.WithOverride); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	return config, config.validate()
}

func (b *configBuilder) withDefaults() *configBuilder {
	b.configs = append([]*StructuredConfig{defaultConfig()}, b.configs...)
	b.hasDefaults = true
	return b
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	if err := parseEnv(envCfg); err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	b.configs = append(b.configs, envCfg)
	return b
}

func (b *configBuilder) withFlags(flags *StructuredConfig) *configBuilder {
	if flags == nil {
		return b
	}

	b.configs = append(b.configs, flags)
	return b
}

// withJSON loads the JSON file named by the last source that set
// JSONFilePath. The file sits right above the defaults, so environment and
// flags still override it.
func (b *configBuilder) withJSON() *configBuilder {
	var jsonPath string
	for _, cfg := range b.configs {
		if cfg.JSONFilePath != "" {
			jsonPath = cfg.JSONFilePath
		}
	}

	if jsonPath == "" {
		return b
	}

	jsonCfg, err := parseJSON(jsonPath)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	at := 0
	if b.hasDefaults {
		at = 1
	}
	b.configs = append(b.configs[:at], append([]*StructuredConfig{jsonCfg}, b.configs[at:]...)...)

	return b
}
