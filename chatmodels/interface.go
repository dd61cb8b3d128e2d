package chatmodels

import (
	"github.com/spance/ollama-models-go/chatmodels/definitions"
)

// Client is the opaque chat client a Constructor builds. The registry only
// reads its model name for logging.
type Client interface {
	ModelName() string
}

// Constructor builds a chat client for one model. It must not contact the
// backend: an identifier the backend does not serve is only discovered when a
// generation request is made.
type Constructor func(cfg definitions.ModelConfig) (Client, error)
