package constants

import (
	"testing"
)

func TestDefaultModels(t *testing.T) {
	models := DefaultModels()
	if len(models) != 4 {
		t.Fatalf("expected 4 models, got %d", len(models))
	}
	seen := map[string]bool{}
	for _, m := range models {
		if seen[m.Name] {
			t.Errorf("duplicate name %s", m.Name)
		}
		seen[m.Name] = true
		if err := m.Validate(); err != nil {
			t.Errorf("%s: %v", m.Name, err)
		}
		if len(m.StopSequences) != 1 || m.StopSequences[0] != StopEOS {
			t.Errorf("%s: stop = %v", m.Name, m.StopSequences)
		}
	}

	// each call returns fresh slices
	models[0].StopSequences[0] = "changed"
	if DefaultModels()[0].StopSequences[0] != StopEOS {
		t.Errorf("DefaultModels shares state between calls")
	}
}

func TestDefaultModelIdentifiers(t *testing.T) {
	want := map[string]string{
		ModelLlama:         "llama3.2:latest",
		ModelDUChatbot15ep: "DUchatbot:latest",
		ModelDUChatbot10ep: "DUChatbot10ep:latest",
		ModelDUChatbot5ep:  "DUCChatbot5ep:latest",
	}
	models := DefaultModels()
	if len(models) != len(want) {
		t.Fatalf("expected %d models, got %d", len(want), len(models))
	}
	for _, m := range models {
		id, ok := want[m.Name]
		if !ok {
			t.Errorf("unexpected model %s", m.Name)
			continue
		}
		if m.ModelIdentifier != id {
			t.Errorf("%s: model = %q, want %q", m.Name, m.ModelIdentifier, id)
		}
	}
}
