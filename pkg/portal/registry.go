package portal

import (
	"path/filepath"
	"slices"
	"strings"
	"sync"

	"github.com/matzehuels/dataportal/pkg/errors"
)

// Factory describes a registered data manager.
type Factory struct {
	Format      string                       // Format identifier, also the file extension (e.g., "dat")
	Description string                       // Human-readable description
	New         func(cfg Config) DataManager // Constructor, called once per load or store
}

// Registry maps format identifiers to data manager factories.
// It is safe for concurrent use.
type Registry struct {
	mu        sync.RWMutex
	factories map[string]Factory
}

// NewRegistry creates an empty Registry.
func NewRegistry() *Registry {
	return &Registry{factories: make(map[string]Factory)}
}

// Default is the process-wide registry populated by format packages.
var Default = NewRegistry()

// Register adds f to the registry.
// It fails if the format is invalid or already registered.
func (r *Registry) Register(f Factory) error {
	if err := errors.ValidateFormat(f.Format); err != nil {
		return err
	}
	if f.New == nil {
		return errors.New(errors.ErrCodeInvalidInput, "format %q has no constructor", f.Format)
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, ok := r.factories[f.Format]; ok {
		return errors.New(errors.ErrCodeDuplicate, "format %q already registered", f.Format)
	}
	r.factories[f.Format] = f
	return nil
}

// MustRegister is like [Registry.Register] but panics on error.
// It is intended for package init functions.
func (r *Registry) MustRegister(f Factory) {
	if err := r.Register(f); err != nil {
		panic(err)
	}
}

// Lookup returns the factory registered for format.
func (r *Registry) Lookup(format string) (Factory, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	f, ok := r.factories[format]
	return f, ok
}

// New constructs a fresh manager for format.
func (r *Registry) New(format string, cfg Config) (DataManager, error) {
	f, ok := r.Lookup(format)
	if !ok {
		return nil, errors.New(errors.ErrCodeUnknownFormat, "no data manager for format %q (available: %s)",
			format, strings.Join(r.names(), ", "))
	}
	return f.New(cfg), nil
}

// ForFile constructs a manager for path based on its extension.
func (r *Registry) ForFile(path string, cfg Config) (DataManager, error) {
	format := FormatOf(path)
	if format == "" {
		return nil, errors.New(errors.ErrCodeUnknownFormat, "cannot determine format of %q", path)
	}
	return r.New(format, cfg)
}

// Formats returns all registered factories sorted by format.
func (r *Registry) Formats() []Factory {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Factory, 0, len(r.factories))
	for _, f := range r.factories {
		out = append(out, f)
	}
	slices.SortFunc(out, func(a, b Factory) int { return strings.Compare(a.Format, b.Format) })
	return out
}

func (r *Registry) names() []string {
	fs := r.Formats()
	names := make([]string, len(fs))
	for i, f := range fs {
		names[i] = f.Format
	}
	return names
}

// FormatOf returns the lower-cased extension of path without the dot.
func FormatOf(path string) string {
	return strings.ToLower(strings.TrimPrefix(filepath.Ext(path), "."))
}
