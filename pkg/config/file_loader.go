package config

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/tidwall/jsonc"
	"gopkg.in/yaml.v3"

	"hypr-grid/pkg/core"
)

// LoadFromFile decodes the file at path on top of c. The format is picked
// from the extension: .yaml/.yml, .json/.jsonc (comments allowed), anything
// else is TOML.
func (c *Config) LoadFromFile(path string, log core.Logger) error {
	log.Debug("Loading configuration from file", "path", path)

	data, err := os.ReadFile(path)
	if err != nil {
		log.Error("Failed to read config file", err, "path", path)
		return fmt.Errorf("failed to read config file: %w", err)
	}
	log.Debug("Config file read successfully", "size_bytes", len(data))

	if err := c.decode(path, data); err != nil {
		log.Error("Failed to parse config file", err, "path", path)
		return fmt.Errorf("failed to parse config file %s: %w", path, err)
	}

	return c.Validate()
}

func (c *Config) decode(path string, data []byte) error {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".yaml", ".yml":
		dec := yaml.NewDecoder(bytes.NewReader(data))
		dec.KnownFields(true)
		if err := dec.Decode(c); err != nil && !errors.Is(err, io.EOF) {
			return err
		}
		return nil
	case ".json", ".jsonc":
		dec := json.NewDecoder(bytes.NewReader(jsonc.ToJSON(data)))
		dec.DisallowUnknownFields()
		return dec.Decode(c)
	default:
		md, err := toml.Decode(string(data), c)
		if err != nil {
			return err
		}
		if undecoded := md.Undecoded(); len(undecoded) > 0 {
			return fmt.Errorf("unknown keys: %v", undecoded)
		}
		return nil
	}
}

// loadConfigFromPath loads the configuration from a file.
func loadConfigFromPath(path string, log core.Logger) (*Config, error) {
	config := Default()
	if err := config.LoadFromFile(path, log); err != nil {
		return nil, err
	}
	return config, nil
}
