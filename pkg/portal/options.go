package portal

import (
	"maps"
	"slices"
)

// Option keys understood by data managers and include processors.
// Keys not listed here are passed through unchanged.
const (
	OptionFilename  = "filename"  // Data source path, consumed by Initialize
	OptionNamespace = "namespace" // Namespaces to load, forwarded to the processor
	OptionSelect    = "select"    // Columns to select, forwarded to the processor
	OptionParam     = "param"     // Params to load, forwarded to the processor
	OptionIndex     = "index"     // Index set to populate, forwarded to the processor
	OptionSet       = "set"       // Set to populate, forwarded to the processor
	OptionFormat    = "format"    // Data layout hint, forwarded to the processor
)

// Options is an open-ended set of manager options.
type Options map[string]any

// Merge copies every entry of other into o. Later keys win.
func (o Options) Merge(other Options) {
	maps.Copy(o, other)
}

// Clone returns a shallow copy of o. A nil Options clones to an empty one.
func (o Options) Clone() Options {
	out := make(Options, len(o))
	maps.Copy(out, o)
	return out
}

// String returns the value of key if it is a string.
func (o Options) String(key string) (string, bool) {
	s, ok := o[key].(string)
	return s, ok
}

// Keys returns the option keys in sorted order.
func (o Options) Keys() []string {
	return slices.Sorted(maps.Keys(o))
}

// Defaults holds default values applied by an include processor to
// components the data file leaves unset, keyed by component name.
type Defaults map[string]any
