// Package transformer runs the whole HTML to OpenAPI pipeline: it loads a
// Keycloak REST API reference page, decodes its character set, parses it,
// extracts the schema definitions with the schemas package and assembles an
// OpenAPI 3.0 document around them.
//
// # Quick Start
//
//	result, err := transformer.TransformWithOptions(
//		transformer.WithFilePath("index.html"),
//		transformer.WithAPIVersion("6.0"),
//	)
//	if err != nil {
//		log.Fatal(err)
//	}
//	fmt.Printf("%d schemas\n", result.Stats.SchemaCount)
//
// Or with a reusable Transformer:
//
//	t := transformer.New()
//	t.Encoding = "iso-8859-1"
//	result, err := t.Transform("index.html")
//
// # Inputs
//
// Exactly one of a file path, an http(s) URL, an io.Reader or a byte slice is
// read. Character sets are taken from WithEncoding when given, otherwise sniffed
// from the byte order mark, the HTTP Content-Type and <meta> tags.
//
// # Errors
//
// Load and parse failures are *oaserrors.ParseError; invalid options are
// *oaserrors.ConfigError. When the page does not have the expected layout the
// extractor's *oaserrors.StructureError is returned and no result is produced.
package transformer
