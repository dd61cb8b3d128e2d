package chatmodels

import (
	"fmt"
	"sort"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"
	"github.com/spance/ollama-models-go/chatmodels/definitions"
)

// Registry maps logical model names to chat client handles.
//
// Registration is not safe for concurrent use and must finish before any
// reader starts. Once populated, Get and the other read methods may be called
// from any number of goroutines.
type Registry struct {
	id        string
	construct Constructor
	handles   map[string]*ChatClientHandle
}

// NewRegistry returns an empty registry whose clients are built by construct.
func NewRegistry(construct Constructor) *Registry {
	return &Registry{
		id:        uuid.New().String(),
		construct: construct,
		handles:   map[string]*ChatClientHandle{},
	}
}

// Register builds a client for cfg and stores its handle under name.
// On error the registry is left unchanged.
func (r *Registry) Register(name string, cfg definitions.ModelConfig) (*ChatClientHandle, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: name is required", ErrInvalidConfiguration)
	}
	if _, ok := r.handles[name]; ok {
		return nil, fmt.Errorf("%w: %s", ErrDuplicateName, name)
	}
	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, name, err)
	}
	if r.construct == nil {
		return nil, fmt.Errorf("%w: %s: no client constructor", ErrInvalidConfiguration, name)
	}

	cfg = cfg.Clone()
	client, err := r.construct(cfg.Clone())
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrInvalidConfiguration, name, err)
	}

	handle := &ChatClientHandle{name: name, config: cfg, client: client}
	r.handles[name] = handle

	log.Debug().
		Str("registry", r.id).
		Str("name", name).
		Str("model", cfg.ModelIdentifier).
		Strs("stop", cfg.StopSequences).
		Msg("registered chat model")
	return handle, nil
}

// RegisterAll registers models in order. If any entry fails, the entries
// added by this call are removed again and the error names the failed entry.
func (r *Registry) RegisterAll(models []definitions.NamedModel) error {
	added := make([]string, 0, len(models))
	for i, m := range models {
		if _, err := r.Register(m.Name, m.ModelConfig); err != nil {
			for _, name := range added {
				delete(r.handles, name)
			}
			return fmt.Errorf("model #%d: %w", i, err)
		}
		added = append(added, m.Name)
	}
	return nil
}

// ID identifies the registry in log lines.
func (r *Registry) ID() string { return r.id }

// Get returns the handle registered under name, or ErrNotFound.
func (r *Registry) Get(name string) (*ChatClientHandle, error) {
	handle, ok := r.handles[name]
	if !ok {
		return nil, fmt.Errorf("%w: %s", ErrNotFound, name)
	}
	return handle, nil
}

// Len returns the number of registered models.
func (r *Registry) Len() int { return len(r.handles) }

// Names returns the registered names in sorted order.
func (r *Registry) Names() []string {
	names := lo.Keys(r.handles)
	sort.Strings(names)
	return names
}

// Handles returns every handle sorted by name.
func (r *Registry) Handles() []*ChatClientHandle {
	return lo.Map(r.Names(), func(name string, _ int) *ChatClientHandle {
		return r.handles[name]
	})
}

// Missing returns the sorted names whose model identifier is not in available.
func (r *Registry) Missing(available []string) []string {
	return lo.Filter(r.Names(), func(name string, _ int) bool {
		return !lo.Contains(available, r.handles[name].ModelIdentifier())
	})
}
