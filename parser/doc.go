// Package parser holds the OpenAPI 3.x document model that kcoas emits, and a
// small loader for reading OpenAPI documents back in.
//
// The model is deliberately narrow: it covers the document envelope (openapi,
// info, servers, paths, components) and the JSON Schema keywords that schema
// definitions extracted from a Keycloak REST API reference can carry. Unknown
// fields are captured in each type's Extra map when decoding.
//
// # Loading a reference document
//
//	result, err := parser.New().Parse("testdata/keycloak-sample.json")
//	if err != nil {
//		log.Fatal(err)
//	}
//	pet := result.Document.Components.Schemas["PolicyRepresentation"]
//
// JSON and YAML are both accepted; decoding goes through go.yaml.in/yaml/v4,
// which reads JSON as a YAML subset.
//
// # Logging
//
// Types that log accept a [Logger]. [NopLogger] discards everything and is the
// default; [NewSlogAdapter] wraps a *slog.Logger.
package parser
