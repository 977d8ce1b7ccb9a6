// Package testutil provides test utilities and fixtures for unit tests.
package testutil

import (
	"encoding/json"
	"html"
	"os"
	"path/filepath"
	"runtime"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	xhtml "golang.org/x/net/html"

	"github.com/erraggy/kcoas/parser"
)

// Fixture file names under the repository testdata directory.
const (
	SampleHTML   = "keycloak-sample.html"
	SampleGolden = "keycloak-sample.json"
)

// TestdataPath returns the absolute path of a file in the repository testdata directory.
func TestdataPath(name string) string {
	_, file, _, _ := runtime.Caller(0)
	return filepath.Join(filepath.Dir(file), "..", "..", "testdata", name)
}

// ReadTestdata returns the content of a testdata file.
func ReadTestdata(t *testing.T, name string) []byte {
	t.Helper()
	data, err := os.ReadFile(TestdataPath(name))
	require.NoError(t, err)
	return data
}

// ParseHTML parses an HTML string.
func ParseHTML(t *testing.T, s string) *xhtml.Node {
	t.Helper()
	doc, err := xhtml.Parse(strings.NewReader(s))
	require.NoError(t, err)
	return doc
}

// LoadSampleHTML parses the Keycloak sample reference page.
func LoadSampleHTML(t *testing.T) *xhtml.Node {
	t.Helper()
	return ParseHTML(t, string(ReadTestdata(t, SampleHTML)))
}

// LoadGolden loads the hand-checked OpenAPI document matching the sample page.
func LoadGolden(t *testing.T) *parser.OAS3Document {
	t.Helper()
	result, err := parser.New().Parse(TestdataPath(SampleGolden))
	require.NoError(t, err)
	return result.Document
}

// SchemaJSON marshals a schema for order-insensitive comparison with assert.JSONEq.
func SchemaJSON(t *testing.T, s *parser.Schema) string {
	t.Helper()
	data, err := json.Marshal(s)
	require.NoError(t, err)
	return string(data)
}

// Section renders one definition section in the generator's layout.
// Each row is a (property name, type cell HTML) pair; the name is escaped,
// the type cell is inserted as-is.
func Section(name string, rows ...[2]string) string {
	var sb strings.Builder
	sb.WriteString("<div class=\"sect2\">\n<h3 id=\"_" + strings.ToLower(html.EscapeString(name)) + "\">" +
		html.EscapeString(name) + "</h3>\n")
	if len(rows) > 0 {
		sb.WriteString("<table class=\"tableblock frame-all grid-all spread\">\n" +
			"<thead>\n<tr>\n<th class=\"tableblock halign-left valign-middle\">Name</th>\n" +
			"<th class=\"tableblock halign-left valign-middle\">Schema</th>\n</tr>\n</thead>\n<tbody>\n")
		for _, row := range rows {
			sb.WriteString("<tr>\n<td class=\"tableblock halign-left valign-middle\"><p class=\"tableblock\"><strong>" +
				html.EscapeString(row[0]) + "</strong><br>\n<em>optional</em></p></td>\n" +
				"<td class=\"tableblock halign-left valign-middle\"><p class=\"tableblock\">" + row[1] + "</p></td>\n</tr>\n")
		}
		sb.WriteString("</tbody>\n</table>\n")
	}
	sb.WriteString("</div>\n")
	return sb.String()
}

// DefinitionsPage wraps rendered sections in a minimal reference page.
func DefinitionsPage(sections ...string) string {
	return "<!DOCTYPE html>\n<html><head><title>Keycloak Admin REST API</title></head><body>\n" +
		"<div id=\"header\">\n<h1>Keycloak Admin REST API</h1>\n</div>\n" +
		"<div id=\"content\">\n<div class=\"sect1\">\n<h2 id=\"_definitions\">Definitions</h2>\n" +
		"<div class=\"sectionbody\">\n" + strings.Join(sections, "") + "</div>\n</div>\n</div>\n</body></html>\n"
}

// WriteTempFile writes content to a file in a fresh temp directory and returns its path.
func WriteTempFile(t *testing.T, name string, content []byte) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, content, 0o600))
	return path
}
