// Package kcoas converts the Keycloak Admin REST API reference, as published in
// HTML by the Keycloak documentation build, into OpenAPI schema definitions.
//
// The reference page lists every request and response type under a
// "Definitions" heading, one section per type, each with a two-column table of
// property names and free-text types such as "integer(int32)",
// "enum (POSITIVE, NEGATIVE)" or "< string > array". kcoas reads those tables
// and produces components/schemas entries for an OpenAPI 3.0 document.
//
// # Packages
//
//   - schemas: section extraction and type resolution (the core)
//   - transformer: loading (file, URL, reader), charset decoding, and document assembly
//   - parser: the OpenAPI document model and a loader for reference documents
//   - differ: schema-level comparison of two OpenAPI documents
//   - oaserrors: structured error types
//
// # Quick Start
//
//	result, err := transformer.TransformWithOptions(
//		transformer.WithFilePath("https://www.keycloak.org/docs-api/6.0/rest-api/index.html"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	data, _ := result.Marshal(transformer.FormatJSON)
//	fmt.Println(string(data))
//
// The kcoas command wraps the same pipeline:
//
//	kcoas transform -o keycloak.json index.html
//	kcoas schemas index.html
//	kcoas resolve "enum (POSITIVE, NEGATIVE)"
//	kcoas diff index.html keycloak-6.0.json
//	kcoas mcp
//
// # Limitations
//
// Only the table layout of the Keycloak reference is understood. Property types
// that refer to other definitions, and arrays of anything but strings, are
// emitted as plain strings.
package kcoas
