// Package portal defines the data manager contract used to load and store
// model data.
//
// # Overview
//
// A data manager bridges one file format to a host modeling framework. Every
// manager exposes the same capability set ([DataManager]):
//
//   - Available: capability probe
//   - Initialize / AddOptions: configuration
//   - Open / Read / Close: source lifecycle
//   - Process: read and apply data to a [Model] in one pass
//   - Write: serialize [Data] back to the format
//   - Clear: reset per-operation state
//
// # Registry
//
// Managers are registered under a format identifier, which doubles as the
// file extension they handle. The [Default] registry is populated by the
// format packages' init functions, so importing a format package makes it
// available:
//
//	import _ "github.com/matzehuels/dataportal/pkg/portal/datacmd"
//
//	m, err := portal.Default.ForFile("model.dat", portal.Config{})
//	if err != nil {
//	    return err
//	}
//	if err := m.Initialize(portal.Options{portal.OptionFilename: "model.dat"}); err != nil {
//	    return err
//	}
//
// # Data Model
//
// [Data] is a two-level, insertion-ordered mapping: namespace to component
// name to component values. The [Global] namespace stands for "no namespace"
// and [NoIndex] marks the values of a non-indexed set. Iteration order is the
// order entries were added, which is also the order they are written.
package portal
