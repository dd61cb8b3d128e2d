package chatmodels

import (
	"slices"

	"github.com/spance/ollama-models-go/chatmodels/definitions"
)

// ChatClientHandle is a configured, immutable descriptor of a model on the
// backend. It is created by Registry.Register and owned by the registry.
type ChatClientHandle struct {
	name   string
	config definitions.ModelConfig
	client Client
}

func (h *ChatClientHandle) Name() string { return h.name }

func (h *ChatClientHandle) ModelIdentifier() string { return h.config.ModelIdentifier }

// StopSequences returns a copy of the stop sequences in registration order.
func (h *ChatClientHandle) StopSequences() []string {
	return slices.Clone(h.config.StopSequences)
}

// Config returns a copy of the config the handle was built from.
func (h *ChatClientHandle) Config() definitions.ModelConfig { return h.config.Clone() }

// Client returns the chat client built for this model.
func (h *ChatClientHandle) Client() Client { return h.client }

// Equal reports whether both handles describe the same name, model and stop
// sequences. The underlying clients are not compared.
func (h *ChatClientHandle) Equal(other *ChatClientHandle) bool {
	if h == nil || other == nil {
		return h == other
	}
	return h.name == other.name &&
		h.config.ModelIdentifier == other.config.ModelIdentifier &&
		slices.Equal(h.config.StopSequences, other.config.StopSequences)
}

// HandleView is the JSON shape of a handle.
type HandleView struct {
	Name  string   `json:"name"`
	Model string   `json:"model"`
	Stop  []string `json:"stop"`
}

// View returns a serializable snapshot of the handle.
func (h *ChatClientHandle) View() HandleView {
	stop := h.StopSequences()
	if stop == nil {
		stop = []string{}
	}
	return HandleView{Name: h.name, Model: h.config.ModelIdentifier, Stop: stop}
}
