// Package oaserrors provides structured error types for kcoas.
//
// Import path: github.com/erraggy/kcoas/oaserrors
//
// These types let callers tell apart the few ways a transform can fail using
// [errors.Is] and [errors.As].
//
// # Error Types
//
//   - [ParseError]: the input could not be read, decoded, or parsed
//   - [StructureError]: the document does not have the layout of a Keycloak
//     REST API reference (missing heading, name cell, or type cell)
//   - [ConfigError]: invalid options or input selection
//
// # Sentinel Errors
//
//   - [ErrParse]: Matches any [ParseError]
//   - [ErrStructure]: Matches any [StructureError]
//   - [ErrConfig]: Matches any [ConfigError]
//
// # Structural failures
//
// The schemas package panics with a *StructureError when the document layout
// does not match; nothing partial is ever returned. The transformer package
// turns that panic into a returned error at its boundary:
//
//	result, err := transformer.TransformWithOptions(transformer.WithFilePath("index.html"))
//	var structErr *oaserrors.StructureError
//	if errors.As(err, &structErr) {
//	    fmt.Printf("unsupported layout near %q (%s)\n", structErr.Section, structErr.Selector)
//	}
package oaserrors
