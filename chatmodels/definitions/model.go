package definitions

import (
	"fmt"
	"strings"
	"unicode"
)

// ModelConfig enumerates the options a chat client is built from.
type ModelConfig struct {
	ModelIdentifier string   `json:"model" yaml:"model" toml:"model"`
	StopSequences   []string `json:"stop,omitempty" yaml:"stop,omitempty" toml:"stop,omitempty"`
}

// NamedModel is a ModelConfig registered under a logical name.
type NamedModel struct {
	Name        string `json:"name" yaml:"name" toml:"name"`
	ModelConfig `yaml:",inline"`
}

// BackendConfig locates the inference server. It is handed to the client
// constructor and never inspected by the registry.
type BackendConfig struct {
	BaseURL string `json:"base_url" yaml:"base_url" toml:"base_url"`
	APIKey  string `json:"api_key" yaml:"api_key" toml:"api_key"`
}

// Validate reports the first problem with the config, or nil. Stop sequences
// are passed to the backend as given and are not checked.
func (c ModelConfig) Validate() error {
	if strings.TrimSpace(c.ModelIdentifier) == "" {
		return fmt.Errorf("model identifier is required")
	}
	if strings.IndexFunc(c.ModelIdentifier, unicode.IsSpace) >= 0 {
		return fmt.Errorf("model identifier %q contains whitespace", c.ModelIdentifier)
	}
	return nil
}

// Clone returns a copy that shares no memory with c.
func (c ModelConfig) Clone() ModelConfig {
	out := ModelConfig{ModelIdentifier: c.ModelIdentifier}
	if len(c.StopSequences) > 0 {
		out.StopSequences = append([]string(nil), c.StopSequences...)
	}
	return out
}
