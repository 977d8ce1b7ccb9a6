package testutil

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTestdataPathExists(t *testing.T) {
	assert.FileExists(t, TestdataPath(SampleHTML))
	assert.FileExists(t, TestdataPath(SampleGolden))
}

func TestLoadGolden(t *testing.T) {
	doc := LoadGolden(t)
	require.NotNil(t, doc.Info)
	assert.Equal(t, "Keycloak Admin REST API", doc.Info.Title)
	assert.Equal(t, "6.0", doc.Info.Version)

	s, ok := doc.Schema("PolicyRepresentation")
	require.True(t, ok)
	assert.Equal(t, "object", s.TypeName())
}

func TestSection(t *testing.T) {
	got := Section("A&B", [2]string{"x<y", "string"})
	assert.Contains(t, got, "<h3 id=\"_a&amp;b\">A&amp;B</h3>")
	assert.Contains(t, got, "<strong>x&lt;y</strong>")
	assert.Contains(t, got, "<p class=\"tableblock\">string</p>")
}

func TestSectionWithoutRows(t *testing.T) {
	got := Section("Empty")
	assert.NotContains(t, got, "<table")
}

func TestDefinitionsPage(t *testing.T) {
	doc := ParseHTML(t, DefinitionsPage(Section("A", [2]string{"id", "string"})))
	require.NotNil(t, doc)
}

func TestWriteTempFile(t *testing.T) {
	path := WriteTempFile(t, "a.html", []byte("<p>hi</p>"))
	assert.FileExists(t, path)
}
