package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"gopkg.in/yaml.v3"
)

// fileConfig mirrors the nested layout of the configuration file:
//
//	api:
//	  title: ...
//	  swagger:
//	    url: /api/doc
//	    disable_ui: false
type fileConfig struct {
	API struct {
		Title       string `json:"title" yaml:"title"`
		Version     string `json:"version" yaml:"version"`
		Description string `json:"description" yaml:"description"`
		Swagger     struct {
			URL       string `json:"url" yaml:"url"`
			DisableUI *bool  `json:"disable_ui" yaml:"disable_ui"`
		} `json:"swagger" yaml:"swagger"`
	} `json:"api" yaml:"api"`

	Server struct {
		Address         string    `json:"address" yaml:"address"`
		ReadTimeout     *Duration `json:"read_timeout" yaml:"read_timeout"`
		WriteTimeout    *Duration `json:"write_timeout" yaml:"write_timeout"`
		IdleTimeout     *Duration `json:"idle_timeout" yaml:"idle_timeout"`
		ShutdownTimeout *Duration `json:"shutdown_timeout" yaml:"shutdown_timeout"`
	} `json:"server" yaml:"server"`

	Logging struct {
		Format      string `json:"format" yaml:"format"`
		StrictLevel *bool  `json:"strict_level" yaml:"strict_level"`
	} `json:"logging" yaml:"logging"`
}

// parseFile reads a JSON (.json) or YAML (.yaml, .yml) configuration file.
// Explicit keys are reported for every zero-able field present in the file.
func parseFile(path string) (*StructuredConfig, []string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, nil, fmt.Errorf("error reading a config file: %w", err)
	}

	var fc fileConfig
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		if err := json.Unmarshal(data, &fc); err != nil {
			return nil, nil, fmt.Errorf("error decoding json configs: %w", err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &fc); err != nil {
			return nil, nil, fmt.Errorf("error decoding yaml configs: %w", err)
		}
	default:
		return nil, nil, fmt.Errorf("%w: %q", ErrUnsupportedConfigFile, ext)
	}

	cfg := &StructuredConfig{
		API: API{
			Title:       fc.API.Title,
			Version:     fc.API.Version,
			Description: fc.API.Description,
			Swagger:     Swagger{URL: fc.API.Swagger.URL},
		},
		Server:  Server{HTTPAddress: fc.Server.Address},
		Logging: Logging{Format: strings.ToLower(strings.TrimSpace(fc.Logging.Format))},
	}

	var explicit []string
	setBool := func(key string, v *bool, dst *bool) {
		if v != nil {
			*dst = *v
			explicit = append(explicit, key)
		}
	}
	setDuration := func(key string, v *Duration, dst *time.Duration) {
		if v != nil {
			*dst = time.Duration(*v)
			explicit = append(explicit, key)
		}
	}

	setBool(keySwaggerDisableUI, fc.API.Swagger.DisableUI, &cfg.API.Swagger.DisableUI)
	setBool(keyLoggingStrictLevel, fc.Logging.StrictLevel, &cfg.Logging.StrictLevel)
	setDuration(keyServerReadTimeout, fc.Server.ReadTimeout, &cfg.Server.ReadTimeout)
	setDuration(keyServerWriteTimeout, fc.Server.WriteTimeout, &cfg.Server.WriteTimeout)
	setDuration(keyServerIdleTimeout, fc.Server.IdleTimeout, &cfg.Server.IdleTimeout)
	setDuration(keyServerShutdownTimeout, fc.Server.ShutdownTimeout, &cfg.Server.ShutdownTimeout)

	return cfg, explicit, nil
}

// Duration is a wrapper around time.Duration that supports unmarshaling from
// strings like "1h", "30s" in both JSON and YAML. Bare numbers are treated as
// nanoseconds.
type Duration time.Duration

func (d *Duration) UnmarshalJSON(b []byte) error {
	var v any
	if err := json.Unmarshal(b, &v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) UnmarshalYAML(node *yaml.Node) error {
	var v any
	if err := node.Decode(&v); err != nil {
		return err
	}

	return d.set(v)
}

func (d *Duration) set(v any) error {
	switch value := v.(type) {
	case float64:
		*d = Duration(time.Duration(value))
	case int:
		*d = Duration(time.Duration(value))
	case string:
		tmp, err := time.ParseDuration(value)
		if err != nil {
			return err
		}
		*d = Duration(tmp)
	case nil:
		*d = 0
	default:
		return fmt.Errorf("invalid duration %v", v)
	}

	return nil
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(time.Duration(d).String())
}
