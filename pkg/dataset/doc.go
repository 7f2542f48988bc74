// Package dataset decodes dataset description files into a model and the
// data to write for it.
//
// A description lists the model's components and the set entries to write,
// in the order they should appear in the output:
//
//	[model]
//	sets = ["S", "T"]
//
//	[[data]]
//	set = "S"
//	members = [1, 2, 3]
//
//	[[data]]
//	namespace = "NS1"
//	set = "T"
//	index = "a"
//	members = ["x"]
//
// The same structure is accepted as YAML and JSON. The format is chosen by
// file extension, see [Load] and [Decode].
package dataset
