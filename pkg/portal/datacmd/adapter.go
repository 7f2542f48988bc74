package datacmd

import (
	"context"
	"io"
	"os"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/dataportal/pkg/errors"
	"github.com/matzehuels/dataportal/pkg/portal"
)

const (
	// Format is the format identifier and file extension handled by this package.
	Format = "dat"

	// Description is shown in format listings.
	Description = "Pyomo data command file interface"
)

func init() {
	portal.Default.MustRegister(portal.Factory{
		Format:      Format,
		Description: Description,
		New:         func(cfg portal.Config) portal.DataManager { return New(cfg) },
	})
}

// Adapter is the data manager for data command files.
// Each Adapter serves a single read or write cycle.
type Adapter struct {
	filename  string
	options   portal.Options
	info      []string
	processor portal.IncludeProcessor
	logger    *log.Logger
}

var _ portal.DataManager = (*Adapter)(nil)

// New creates an Adapter. A nil cfg.Logger disables logging; a nil
// cfg.Processor makes [Adapter.Process] fail.
func New(cfg portal.Config) *Adapter {
	logger := cfg.Logger
	if logger == nil {
		logger = log.New(io.Discard)
	}
	return &Adapter{
		options:   portal.Options{},
		processor: cfg.Processor,
		logger:    logger,
	}
}

// Available always reports true: the adapter has no external dependency.
func (a *Adapter) Available() bool { return true }

// Filename returns the configured data file path.
func (a *Adapter) Filename() string { return a.filename }

// Options returns a copy of the accumulated options.
func (a *Adapter) Options() portal.Options { return a.options.Clone() }

// Initialize consumes the mandatory filename option and merges the remaining
// options. The file is not checked for existence.
func (a *Adapter) Initialize(opts portal.Options) error {
	raw, ok := opts[portal.OptionFilename]
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "missing %q option", portal.OptionFilename)
	}
	filename, ok := raw.(string)
	if !ok {
		return errors.New(errors.ErrCodeInvalidInput, "%q option must be a string, got %T", portal.OptionFilename, raw)
	}
	a.filename = filename

	rest := opts.Clone()
	delete(rest, portal.OptionFilename)
	a.AddOptions(rest)

	a.logger.Debug("initialized data command adapter", "file", filename, "options", len(rest))
	return nil
}

// AddOptions merges opts into the adapter's options. Later keys win.
func (a *Adapter) AddOptions(opts portal.Options) {
	a.options.Merge(opts)
}

// Open fails if no filename was configured. It holds no resource.
func (a *Adapter) Open() error {
	if a.filename == "" {
		return errors.New(errors.ErrCodeIO, "no filename specified")
	}
	return nil
}

// Read checks that the data file exists. Data commands are read and applied
// in one pass by [Adapter.Process], so Read loads nothing.
func (a *Adapter) Read() error {
	if a.filename == "" {
		return errors.New(errors.ErrCodeIO, "no filename specified")
	}
	if _, err := os.Stat(a.filename); err != nil {
		if os.IsNotExist(err) {
			return errors.New(errors.ErrCodeFileNotFound, "cannot find file %q", a.filename)
		}
		return errors.Wrap(errors.ErrCodeIO, err, "stat %s", a.filename)
	}
	return nil
}

// Process executes the data file as an include directive against model and
// data. Errors from the include processor are returned unchanged.
func (a *Adapter) Process(ctx context.Context, model portal.Model, data *portal.Data, defaults portal.Defaults) error {
	if a.processor == nil {
		return errors.New(errors.ErrCodeUnsupported, "no include processor configured for %q", a.filename)
	}
	a.logger.Debug("processing data commands", "file", a.filename)
	return a.processor.ProcessInclude(ctx, []string{"include", a.filename}, model, data, defaults, a.options)
}

// Write truncates the data file and writes the sets of data in data command
// syntax. It fails with a not-implemented error if model declares any param;
// the file then keeps whatever was written before the failure. A nil model or
// data is rejected before the file is touched.
func (a *Adapter) Write(model portal.Model, data *portal.Data) (err error) {
	if a.filename == "" {
		return errors.New(errors.ErrCodeIO, "no filename specified")
	}
	if model == nil || data == nil {
		return errors.New(errors.ErrCodeInvalidInput, "nil model or data")
	}
	f, err := os.Create(a.filename)
	if err != nil {
		return errors.Wrap(errors.ErrCodeIO, err, "create %s", a.filename)
	}
	defer func() {
		if cerr := f.Close(); cerr != nil && err == nil {
			err = errors.Wrap(errors.ErrCodeIO, cerr, "close %s", a.filename)
		}
	}()

	a.logger.Debug("writing data commands", "file", a.filename, "namespaces", data.Len())
	return WriteSets(f, model, data)
}

// Close is a no-op: the adapter keeps no source open.
func (a *Adapter) Close() error { return nil }

// Clear resets the adapter's info accumulator.
func (a *Adapter) Clear() { a.info = nil }
