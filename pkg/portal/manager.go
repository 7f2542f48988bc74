package portal

import (
	"context"

	"github.com/charmbracelet/log"
)

// DataManager reads model data from, and writes it to, one data source.
// A manager is used for exactly one read or write cycle.
type DataManager interface {
	// Available reports whether the manager's dependencies are present.
	Available() bool
	// Initialize consumes the filename option and stores the rest.
	Initialize(opts Options) error
	// AddOptions merges opts into the manager's options. Later keys win.
	AddOptions(opts Options)
	// Open prepares the data source for reading.
	Open() error
	// Read loads raw data from the source.
	Read() error
	// Write serializes data for model to the source.
	Write(model Model, data *Data) error
	// Process applies the source's data to model and data.
	Process(ctx context.Context, model Model, data *Data, defaults Defaults) error
	// Close releases the data source.
	Close() error
	// Clear resets per-operation state.
	Clear()
}

// IncludeProcessor executes an include directive: it parses the named data
// file and populates data for model. cmd is the directive, e.g.
// []string{"include", "model.dat"}.
type IncludeProcessor interface {
	ProcessInclude(ctx context.Context, cmd []string, model Model, data *Data, defaults Defaults, opts Options) error
}

// IncludeProcessorFunc adapts a function to [IncludeProcessor].
type IncludeProcessorFunc func(ctx context.Context, cmd []string, model Model, data *Data, defaults Defaults, opts Options) error

// ProcessInclude implements [IncludeProcessor].
func (f IncludeProcessorFunc) ProcessInclude(ctx context.Context, cmd []string, model Model, data *Data, defaults Defaults, opts Options) error {
	return f(ctx, cmd, model, data, defaults, opts)
}

// Config carries collaborators handed to a manager at construction.
type Config struct {
	Processor IncludeProcessor // Include processor for Process (optional)
	Logger    *log.Logger      // Debug logging (optional)
}
