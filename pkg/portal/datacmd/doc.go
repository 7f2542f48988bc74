// Package datacmd implements the data manager for data command files (.dat).
//
// Data command files hold set and param statements, optionally grouped in
// namespace blocks:
//
//	set S := 1
//	2
//	;
//
//	namespace NS1{set T[a] := x
//	;
//
//	}
//
// The writer follows every member with a single space before the newline.
//
// Reading is a single combined pass: [Adapter.Process] hands the file to the
// configured [portal.IncludeProcessor], which parses the statements and
// populates the model data. [Adapter.Read] only checks that the file exists.
//
// Writing supports sets only. [WriteSets] emits one statement per set index
// and fails with a not-implemented error as soon as the model declares a
// param.
//
// Importing this package registers the manager under the "dat" format in
// [portal.Default].
package datacmd
