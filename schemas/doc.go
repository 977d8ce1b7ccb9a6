// Package schemas turns the "Definitions" part of a Keycloak REST API reference
// into schema definitions.
//
// The work is split in two. The section extractor ([Sections]) walks the parsed
// HTML and yields one [Section] per definition, with the raw (name, type text)
// pair of every table row. The type resolver ([Resolve]) maps one raw type text
// onto a [Type]. [Extract] composes both and returns a [Map] keyed by schema
// name in document order.
//
// # Type resolution
//
// Rules are tried in order and the first match wins:
//
//  1. "enum (A, B, C)" becomes a string with an enumeration, split on ", "
//  2. a fixed table: integer(int32), integer(int64), number(float), boolean,
//     "< string > array", Map and Object
//  3. anything else becomes a plain string
//
// The last rule means references to other schemas and arrays of anything but
// strings are approximated as strings.
//
// # Layout errors
//
// The extractor only understands the table layout produced by the Keycloak
// documentation generator. When a heading, name cell or type cell is missing it
// panics with an *oaserrors.StructureError; there is no partial result.
package schemas
