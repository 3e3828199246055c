// Package ark implements the byte-level property system, the versioned ASE
// binary decoder, the object container and relationship builder that sit at
// the core of the save-format decoder (spec §4, C2/C4/C5/C6/C8).
package ark

import "fmt"

// UnknownPropertyError is raised when a property's type tag names a kind
// the decoder has no parser for (spec §7, kind Unexpected/UnknownProperty).
type UnknownPropertyError struct {
	PropertyName string
	Tag          string
}

func (e *UnknownPropertyError) Error() string {
	return fmt.Sprintf("property %q: unsupported type tag %q", e.PropertyName, e.Tag)
}

// UnknownStructError is raised when a StructProperty names a struct class
// outside the registered-struct table and the body cannot be parsed as an
// anonymous nested property list either (spec §4.3).
type UnknownStructError struct {
	StructName string
}

func (e *UnknownStructError) Error() string {
	return fmt.Sprintf("unregistered struct type %q", e.StructName)
}

// UnexpectedError signals a value outside its expected range — a non-"None"
// terminator, an enum prelude that doesn't match any known shape, and
// similar "this shouldn't happen but isn't fatal" conditions (spec §7).
type UnexpectedError struct {
	Context string
	Detail  string
}

func (e *UnexpectedError) Error() string {
	return fmt.Sprintf("%s: unexpected value: %s", e.Context, e.Detail)
}

// CorruptError signals structurally impossible data at a level above the
// byte cursor (header fields, SQLite schema) — always fatal (spec §7).
type CorruptError struct {
	Context string
	Detail  string
}

func (e *CorruptError) Error() string {
	return fmt.Sprintf("%s: corrupt: %s", e.Context, e.Detail)
}

// ParseError is a single recovered per-property decode failure, retained on
// the decode result so callers can gate downstream use on ParseErrorCount
// (spec §7).
type ParseError struct {
	ObjectIndex  int
	PropertyName string
	Offset       int64
	Err          error
}

func (e ParseError) Error() string {
	return fmt.Sprintf("object %d, property %q at offset %d: %v", e.ObjectIndex, e.PropertyName, e.Offset, e.Err)
}
