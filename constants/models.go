package constants

import "github.com/spance/ollama-models-go/chatmodels/definitions"

const (
	EnvBaseURL    = "OLLAMA_BASE_URL"
	EnvAPIKey     = "OLLAMA_API_KEY"
	EnvConfigPath = "OLLAMA_MODELS_CONFIG"

	StopEOS = "</s>"
)

// Logical names of the built-in models.
const (
	ModelLlama         = "llama"
	ModelDUChatbot15ep = "duchatbot-15ep"
	ModelDUChatbot10ep = "duchatbot-10ep"
	ModelDUChatbot5ep  = "duchatbot-5ep"
)

// DefaultModels returns the base model and the three fine-tuned variants.
// The identifiers match the tags the models were pushed to Ollama with.
func DefaultModels() []definitions.NamedModel {
	return []definitions.NamedModel{
		{Name: ModelLlama, ModelConfig: definitions.ModelConfig{ModelIdentifier: "llama3.2:latest", StopSequences: []string{StopEOS}}},
		{Name: ModelDUChatbot15ep, ModelConfig: definitions.ModelConfig{ModelIdentifier: "DUchatbot:latest", StopSequences: []string{StopEOS}}},
		{Name: ModelDUChatbot10ep, ModelConfig: definitions.ModelConfig{ModelIdentifier: "DUChatbot10ep:latest", StopSequences: []string{StopEOS}}},
		{Name: ModelDUChatbot5ep, ModelConfig: definitions.ModelConfig{ModelIdentifier: "DUCChatbot5ep:latest", StopSequences: []string{StopEOS}}},
	}
}
