package main

import (
	"bytes"
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/spance/ollama-models-go/chatmodels"
	"github.com/spance/ollama-models-go/constants"
)

func TestBuildRegistryDefaults(t *testing.T) {
	_, reg, err := buildRegistry(&Config{BaseURL: "http://localhost:11434/v1"})
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	if reg.Len() != 4 {
		t.Fatalf("expected 4 models, got %d", reg.Len())
	}
	h, err := reg.Get(constants.ModelDUChatbot5ep)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if h.ModelIdentifier() != "DUCChatbot5ep:latest" {
		t.Errorf("model = %q", h.ModelIdentifier())
	}
}

func TestBuildRegistryFromFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "models.yaml")
	content := `base_url: http://gpu-box:11434/v1
models:
  - name: base
    model: llama3.2:latest
    stop: ["</s>"]
`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	backend, reg, err := buildRegistry(&Config{BaseURL: "http://localhost:11434/v1", APIKey: "ollama", ConfigPath: p})
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	if backend.BaseURL != "http://gpu-box:11434/v1" || backend.APIKey != "ollama" {
		t.Errorf("backend = %+v", backend)
	}
	if names := reg.Names(); len(names) != 1 || names[0] != "base" {
		t.Errorf("names = %v", names)
	}
}

func TestBuildRegistryRejectsBadFile(t *testing.T) {
	p := filepath.Join(t.TempDir(), "models.json")
	content := `{"models":[{"name":"x","model":""}]}`
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	_, _, err := buildRegistry(&Config{ConfigPath: p})
	if !errors.Is(err, chatmodels.ErrInvalidConfiguration) {
		t.Fatalf("expected ErrInvalidConfiguration, got %v", err)
	}
}

func TestListModels(t *testing.T) {
	_, reg, err := buildRegistry(&Config{})
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	var out bytes.Buffer
	listModels(reg, `{{name}}={{model}}`, &out)
	lines := strings.Split(strings.TrimSpace(out.String()), "\n")
	want := []string{
		"duchatbot-10ep=DUChatbot10ep:latest",
		"duchatbot-15ep=DUchatbot:latest",
		"duchatbot-5ep=DUCChatbot5ep:latest",
		"llama=llama3.2:latest",
	}
	if strings.Join(lines, "|") != strings.Join(want, "|") {
		t.Errorf("list = %q, want %q", lines, want)
	}

	out.Reset()
	listModels(reg, "", &out)
	if !strings.Contains(out.String(), "llama\tllama3.2:latest\t[") {
		t.Errorf("default format output = %q", out.String())
	}
}

func TestShowModel(t *testing.T) {
	_, reg, err := buildRegistry(&Config{})
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	var out bytes.Buffer
	if err := showModel(reg, constants.ModelLlama, &out); err != nil {
		t.Fatalf("showModel: %v", err)
	}
	if !strings.Contains(out.String(), `"model": "llama3.2:latest"`) {
		t.Errorf("output = %s", out.String())
	}
	if err := showModel(reg, "missing", &out); !errors.Is(err, chatmodels.ErrNotFound) {
		t.Errorf("expected ErrNotFound, got %v", err)
	}
}

func TestCheckModels(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"object":"list","data":[{"id":"llama3.2:latest"},{"id":"DUchatbot:latest"},{"id":"DUChatbot10ep:latest"}]}`))
	}))
	defer srv.Close()

	backend, reg, err := buildRegistry(&Config{BaseURL: srv.URL + "/v1"})
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	err = checkModels(context.Background(), backend, reg)
	if err == nil || !strings.Contains(err.Error(), constants.ModelDUChatbot5ep) {
		t.Fatalf("expected %s reported missing, got %v", constants.ModelDUChatbot5ep, err)
	}

	_, only, err := buildRegistry(&Config{BaseURL: srv.URL + "/v1", ConfigPath: writeRegistryFile(t)})
	if err != nil {
		t.Fatalf("buildRegistry: %v", err)
	}
	if err := checkModels(context.Background(), backend, only); err != nil {
		t.Errorf("checkModels: %v", err)
	}
}

func writeRegistryFile(t *testing.T) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), "models.toml")
	content := "[[models]]\nname = \"base\"\nmodel = \"llama3.2:latest\"\nstop = [\"</s>\"]\n"
	if err := os.WriteFile(p, []byte(content), 0o644); err != nil {
		t.Fatalf("write: %v", err)
	}
	return p
}
