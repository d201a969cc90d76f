package process

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/aretw0/wishbone/pkg/domain"
)

// Config points the runner at the external Wishbone pipeline: the command to
// execute (typically the interpreter of the bundled execution environment),
// its fixed leading arguments, and extra environment variables. The working
// directory path is appended as the final argument at invocation time.
type Config struct {
	Command string            `yaml:"command" json:"command"`
	Args    []string          `yaml:"args" json:"args"`
	Env     map[string]string `yaml:"env" json:"env"`

	// Defaults optionally seeds run parameters from the config file, so a
	// deployment can pin e.g. num_waypoints without touching calling code.
	Defaults map[string]any `yaml:"defaults" json:"defaults"`
}

// Load reads a pipeline config file. The extension picks the format: .json is
// parsed as JSON, everything else as YAML.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("read pipeline config: %w", err)
	}

	var cfg Config
	if strings.ToLower(filepath.Ext(path)) == ".json" {
		if err := json.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	} else {
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return Config{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if cfg.Command == "" {
		return Config{}, fmt.Errorf("%s: %w", path, domain.ErrNoCommand)
	}
	return cfg, nil
}

// DecodeDefaults merges the config's defaults block into cfg. Decoding is
// weakly typed so YAML scalars ("250", 250, 250.0) land in the right fields.
func (c Config) DecodeDefaults(cfg *domain.RunConfig) error {
	if len(c.Defaults) == 0 {
		return nil
	}
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		Result:           cfg,
		TagName:          "mapstructure",
		WeaklyTypedInput: true,
	})
	if err != nil {
		return fmt.Errorf("decode pipeline defaults: %w", err)
	}
	if err := dec.Decode(c.Defaults); err != nil {
		return fmt.Errorf("decode pipeline defaults: %w", err)
	}
	return nil
}
