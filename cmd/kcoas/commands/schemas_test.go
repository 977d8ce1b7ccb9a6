package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/internal/testutil"
	"github.com/erraggy/kcoas/schemas"
)

func TestSetupSchemasFlags(t *testing.T) {
	fs, flags := SetupSchemasFlags()
	assert.Equal(t, FormatText, flags.Format)
	assert.False(t, flags.Properties)

	require.NoError(t, fs.Parse([]string{"--format", "json", "--properties", "page.html"}))
	assert.Equal(t, FormatJSON, flags.Format)
	assert.True(t, flags.Properties)
}

func TestHandleSchemas(t *testing.T) {
	sample := testutil.TestdataPath(testutil.SampleHTML)

	assert.Error(t, HandleSchemas([]string{}))
	assert.NoError(t, HandleSchemas([]string{"--help"}))
	assert.NoError(t, HandleSchemas([]string{sample}))
	assert.NoError(t, HandleSchemas([]string{"--properties", sample}))
	assert.NoError(t, HandleSchemas([]string{"--format", "yaml", sample}))
	assert.Error(t, HandleSchemas([]string{"--format", "xml", sample}))
}

func TestSummarize(t *testing.T) {
	m := schemas.NewMap()
	s := schemas.NewSchema("Policy")
	s.Set("logic", schemas.String("POSITIVE", "NEGATIVE"))
	s.Set("scopes", schemas.ArrayOf(schemas.String()))
	m.Set(s)
	m.Set(schemas.NewSchema("Empty"))

	got := summarize(m)
	assert.Equal(t, []SchemaSummary{
		{Name: "Policy", Properties: []PropertySummary{
			{Name: "logic", Type: "string[POSITIVE|NEGATIVE]"},
			{Name: "scopes", Type: "array<string>"},
		}},
		{Name: "Empty", Properties: []PropertySummary{}},
	}, got)
}
