package schemas_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/internal/testutil"
	"github.com/erraggy/kcoas/schemas"
)

// Each schema extracted from the sample page must match the hand-checked
// reference document.
func TestExtractMatchesGolden(t *testing.T) {
	golden := testutil.LoadGolden(t)
	extracted := schemas.Extract(testutil.LoadSampleHTML(t))

	tests := []struct {
		name   string
		schema string
	}{
		{"string only", "AccessToken-CertConf"},
		{"int32 only", "ClientInitialAccessCreatePresentation"},
		{"with bool", "SynchronizationResult"},
		{"with float", "MultivaluedHashMap"},
		{"with int64", "MemoryInfoRepresentation"},
		{"only map", "SpiInfoRepresentation"},
		{"with enum", "PolicyRepresentation"},
		{"with object", "ConfigPropertyRepresentation"},
		{"with reference arrays", "UserRepresentation"},
		{"with reference", "ComponentExportRepresentation"},
		{"without properties", "ServerInfoRepresentation"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			want, ok := golden.Schema(tt.schema)
			require.True(t, ok, "golden has no %s", tt.schema)
			got, ok := extracted.Get(tt.schema)
			require.True(t, ok, "extracted has no %s", tt.schema)

			assert.JSONEq(t, testutil.SchemaJSON(t, want), testutil.SchemaJSON(t, got.OpenAPI()))
		})
	}
}

func TestExtractCoversGolden(t *testing.T) {
	golden := testutil.LoadGolden(t)
	extracted := schemas.Extract(testutil.LoadSampleHTML(t))

	require.Equal(t, golden.SchemaCount(), extracted.Len())
	for name, got := range extracted.All() {
		want, ok := golden.Schema(name)
		if assert.True(t, ok, name) {
			assert.JSONEq(t, testutil.SchemaJSON(t, want), testutil.SchemaJSON(t, got.OpenAPI()), name)
		}
	}
}

func TestExtractSampleOrder(t *testing.T) {
	names := schemas.Extract(testutil.LoadSampleHTML(t)).Names()
	require.NotEmpty(t, names)
	assert.Equal(t, "AccessToken-CertConf", names[0])
	assert.Equal(t, "ServerInfoRepresentation", names[len(names)-1])
}
