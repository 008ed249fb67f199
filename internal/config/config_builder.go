package config

import (
	"errors"
	"fmt"

	"dario.cat/mergo"
)

// configBuilder merges configuration sources in priority order: the first
// source added wins.
type configBuilder struct {
	sources []source
	err     error
}

func newConfigBuilder() *configBuilder {
	return &configBuilder{
		sources: make([]source, 0, 4),
	}
}

func (b *configBuilder) add(cfg *StructuredConfig, explicit []string) *configBuilder {
	b.sources = append(b.sources, source{cfg: cfg, explicit: explicit})
	return b
}

func (b *configBuilder) build() (*StructuredConfig, error) {
	if b.err != nil {
		return nil, fmt.Errorf("error occurred during building config: %w", b.err)
	}

	config := new(StructuredConfig)
	for _, src := range b.sources {
		if err := mergo.Merge(config, src.cfg); err != nil {
			return nil, fmt.Errorf("error merging configs: %w", err)
		}
	}

	// lowest priority first so that the highest explicit setting is kept
	for i := len(b.sources) - 1; i >= 0; i-- {
		b.sources[i].applyExplicit(config)
	}

	if err := config.validate(); err != nil {
		return nil, err
	}

	return config, nil
}

func (b *configBuilder) withEnv() *configBuilder {
	envCfg := &StructuredConfig{}
	explicit, err := parseEnv(envCfg)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(envCfg, explicit)
}

func (b *configBuilder) withFlags(args []string) *configBuilder {
	flags, explicit, err := parseFlags(args)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(flags, explicit)
}

func (b *configBuilder) withFile() *configBuilder {
	var path string
	for _, src := range b.sources {
		if src.cfg.JSONFilePath != "" {
			path = src.cfg.JSONFilePath
			break
		}
	}

	if path == "" {
		return b
	}

	fileCfg, explicit, err := parseFile(path)
	if err != nil {
		b.err = errors.Join(b.err, err)
		return b
	}

	return b.add(fileCfg, explicit)
}

func (b *configBuilder) withDefaults() *configBuilder {
	return b.add(defaultConfig(), nil)
}
