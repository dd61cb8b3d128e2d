package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	json "github.com/bytedance/sonic"
	toml "github.com/pelletier/go-toml/v2"
	"github.com/spance/ollama-models-go/chatmodels/definitions"
	"gopkg.in/yaml.v3"
)

// File is a registry file: the backend plus the models to register.
type File struct {
	BaseURL string                   `json:"base_url" yaml:"base_url" toml:"base_url"`
	APIKey  string                   `json:"api_key" yaml:"api_key" toml:"api_key"`
	Models  []definitions.NamedModel `json:"models" yaml:"models" toml:"models"`
}

// Load reads a registry file based on its extension.
// Supports: .yaml/.yml, .json, .toml
func Load(path string) (File, error) {
	var f File
	if path == "" {
		return f, fmt.Errorf("empty config path")
	}
	b, err := os.ReadFile(path)
	if err != nil {
		return f, err
	}
	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".yaml", ".yml":
		err = yaml.Unmarshal(b, &f)
	case ".json":
		err = json.Unmarshal(b, &f)
	case ".toml":
		err = toml.Unmarshal(b, &f)
	default:
		return f, fmt.Errorf("unsupported config extension: %s", ext)
	}
	if err != nil {
		return f, fmt.Errorf("parse %s: %w", path, err)
	}
	return f, nil
}

// Backend returns the file's backend, taking blank fields from defaults.
func (f File) Backend(defaults definitions.BackendConfig) definitions.BackendConfig {
	out := defaults
	if f.BaseURL != "" {
		out.BaseURL = f.BaseURL
	}
	if f.APIKey != "" {
		out.APIKey = f.APIKey
	}
	return out
}
