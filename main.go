package main

import (
	"context"
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spance/ollama-models-go/chatmodels"
	"github.com/spance/ollama-models-go/chatmodels/config"
	"github.com/spance/ollama-models-go/chatmodels/definitions"
	"github.com/spance/ollama-models-go/chatmodels/llm"
	"github.com/spance/ollama-models-go/constants"
	"github.com/spance/ollama-models-go/utils"
	"github.com/spf13/cobra"
)

// Config holds all the configuration values from command line arguments
type Config struct {
	BaseURL    string `json:"base_url"`
	APIKey     string `json:"api_key"`
	ConfigPath string `json:"config_path"`
	Model      string `json:"model"`
	Format     string `json:"format"`
	Check      bool   `json:"check"`
	Quiet      bool   `json:"quiet"`
	Debug      bool   `json:"debug"`
}

var opts = &Config{}

var rootCmd = &cobra.Command{
	Use:   "ollama-models",
	Short: "Named chat-model clients for an Ollama backend",
	Long: `ollama-models builds a registry of chat-model clients, one per logical name,
each bound to a model identifier and stop sequences on an Ollama (OpenAI-compatible) server.
Without a registry file the built-in llama and DUChatbot models are registered.`,
	Example: `  # List the built-in models
  ollama-models

  # Use a registry file
  ollama-models --config models.yaml

  # Show one model as JSON
  ollama-models --model duchatbot-15ep

  # Custom list format
  ollama-models --format '{{name}}\t{{model}}'

  # Check every registered model is served by the backend
  ollama-models --check --base-url http://localhost:11434/v1`,
	Args:          cobra.NoArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		setupLogging(opts)
		return nil
	},
	RunE: func(cmd *cobra.Command, args []string) error {
		return run(cmd.Context(), opts, cmd.OutOrStdout())
	},
}

// Helper function to get environment variable with default value
func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func init() {
	rootCmd.PersistentFlags().StringVar(&opts.BaseURL, "base-url",
		getEnv(constants.EnvBaseURL, llm.DefaultBaseURL),
		"Model API base URL")

	rootCmd.PersistentFlags().StringVar(&opts.APIKey, "apikey",
		getEnv(constants.EnvAPIKey, llm.DefaultAPIKey),
		"API key for model authentication")

	rootCmd.PersistentFlags().StringVar(&opts.ConfigPath, "config",
		getEnv(constants.EnvConfigPath, ""),
		"Registry file (.yaml, .yml, .json or .toml); built-in models are used when empty")

	rootCmd.PersistentFlags().StringVarP(&opts.Model, "model", "m", "",
		"Print a single registered model as JSON and exit")

	rootCmd.PersistentFlags().StringVar(&opts.Format, "format", "",
		"List format using {{name}}, {{model}} and {{stop}} placeholders")

	rootCmd.PersistentFlags().BoolVar(&opts.Check, "check", false,
		"Check that the backend serves every registered model")

	rootCmd.PersistentFlags().BoolVarP(&opts.Quiet, "quiet", "q", false,
		"Only log warnings and errors")

	rootCmd.PersistentFlags().BoolVar(&opts.Debug, "debug", false,
		"Enable debug mode (default: false)")
}

func main() {
	cobra.CheckErr(rootCmd.Execute())
}

func setupLogging(cfg *Config) {
	zerolog.SetGlobalLevel(zerolog.InfoLevel)
	if cfg.Quiet {
		zerolog.SetGlobalLevel(zerolog.WarnLevel)
	}
	if cfg.Debug {
		zerolog.SetGlobalLevel(zerolog.DebugLevel)
	}
}

func run(ctx context.Context, cfg *Config, out io.Writer) error {
	if ctx == nil {
		ctx = context.Background()
	}
	log.Debug().Str("config", utils.JsonString(cfg)).Msg("Configuration")

	backend, registry, err := buildRegistry(cfg)
	if err != nil {
		log.Error().Err(err).Msg("building model registry failed")
		return err
	}

	switch {
	case cfg.Model != "":
		return showModel(registry, cfg.Model, out)
	case cfg.Check:
		return checkModels(ctx, backend, registry)
	default:
		listModels(registry, cfg.Format, out)
		return nil
	}
}

// buildRegistry populates a fresh registry from the registry file, or from
// the built-in models when no file is configured.
func buildRegistry(cfg *Config) (definitions.BackendConfig, *chatmodels.Registry, error) {
	backend := definitions.BackendConfig{BaseURL: cfg.BaseURL, APIKey: cfg.APIKey}
	models := constants.DefaultModels()

	if cfg.ConfigPath != "" {
		file, err := config.Load(cfg.ConfigPath)
		if err != nil {
			return backend, nil, err
		}
		backend = file.Backend(backend)
		models = file.Models
		log.Debug().Str("path", cfg.ConfigPath).Int("models", len(models)).Msg("loaded registry file")
	}

	registry := chatmodels.NewRegistry(llm.NewConstructor(backend))
	if err := registry.RegisterAll(models); err != nil {
		return backend, nil, err
	}
	log.Debug().Str("registry", registry.ID()).Int("models", registry.Len()).Str("base_url", backend.BaseURL).Msg("registry ready")
	return backend, registry, nil
}

func showModel(registry *chatmodels.Registry, name string, out io.Writer) error {
	handle, err := registry.Get(name)
	if err != nil {
		log.Error().Err(err).Strs("available", registry.Names()).Msg("unknown model")
		return err
	}
	fmt.Fprintln(out, utils.JsonIndent(handle.View()))
	return nil
}

func listModels(registry *chatmodels.Registry, format string, out io.Writer) {
	if format == "" {
		format = `{{name}}\t{{model}}\t{{stop}}`
	}
	format = utils.Unescape(format)
	for _, h := range registry.Handles() {
		fmt.Fprintln(out, utils.Render(format, map[string]string{
			"name":  h.Name(),
			"model": h.ModelIdentifier(),
			"stop":  utils.JsonString(h.View().Stop),
		}))
	}
}

// checkModels reports registered models the backend does not serve. A
// missing model would otherwise only surface on the first generation request.
func checkModels(ctx context.Context, backend definitions.BackendConfig, registry *chatmodels.Registry) error {
	log.Info().Msgf("Checking models at %s...", backend.BaseURL)
	log.Info().Msg(strings.Repeat("-", 50))

	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	available, err := llm.ListModelIDs(ctx, backend)
	if err != nil {
		log.Error().Err(err).Msg("❌ listing backend models failed")
		return err
	}

	missing := registry.Missing(available)
	for _, h := range registry.Handles() {
		status := "✅"
		if lo.Contains(missing, h.Name()) {
			status = "❌"
		}
		log.Info().Str("name", h.Name()).Str("model", h.ModelIdentifier()).Msg(status)
	}
	log.Info().Msg(strings.Repeat("-", 50))

	if len(missing) > 0 {
		err := fmt.Errorf("%d model(s) not served by backend: %s", len(missing), strings.Join(missing, ", "))
		log.Error().Err(err).Msg("❌ model check failed")
		return err
	}
	log.Info().Msg("✅ All models available!")
	return nil
}
