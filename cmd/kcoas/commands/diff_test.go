package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/internal/testutil"
)

func TestHandleDiff_Args(t *testing.T) {
	assert.Error(t, HandleDiff([]string{}))
	assert.Error(t, HandleDiff([]string{"only-one.html"}))
	assert.NoError(t, HandleDiff([]string{"--help"}))
}

func TestHandleDiff_MatchesGolden(t *testing.T) {
	err := HandleDiff([]string{"-q",
		testutil.TestdataPath(testutil.SampleHTML),
		testutil.TestdataPath(testutil.SampleGolden),
	})
	assert.NoError(t, err)
}

func TestHandleDiff_ReportsDifferences(t *testing.T) {
	page := testutil.WriteTempFile(t, "page.html", []byte(testutil.DefinitionsPage(
		testutil.Section("AccessToken-CertConf", [2]string{"x5t#S256", "integer(int64)"}),
	)))

	err := HandleDiff([]string{"--ignore-added", page, testutil.TestdataPath(testutil.SampleGolden)})
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrSchemasDiffer)
}

func TestHandleDiff_StructuredOutput(t *testing.T) {
	err := HandleDiff([]string{"--format", "json",
		testutil.TestdataPath(testutil.SampleHTML),
		testutil.TestdataPath(testutil.SampleGolden),
	})
	assert.NoError(t, err)
}

func TestHandleDiff_MissingReference(t *testing.T) {
	err := HandleDiff([]string{testutil.TestdataPath(testutil.SampleHTML), "missing.json"})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "loading reference document")
}
