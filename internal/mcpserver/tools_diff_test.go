package mcpserver

import (
	"context"
	"testing"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/erraggy/kcoas/internal/testutil"
)

func TestDiffTool_AgainstGolden(t *testing.T) {
	pageCache.reset()
	input := diffInput{
		Page:      pageInput{File: testutil.TestdataPath(testutil.SampleHTML)},
		Reference: referenceInput{File: testutil.TestdataPath(testutil.SampleGolden)},
	}
	result, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.True(t, output.Identical)
	assert.Equal(t, 19, output.PageSchemas)
	assert.Equal(t, 19, output.RefSchemas)
	assert.Empty(t, output.Changes)
}

func TestDiffTool_Changes(t *testing.T) {
	pageCache.reset()
	page := testutil.DefinitionsPage(testutil.Section("Client",
		[2]string{"id", "string"},
		[2]string{"enabled", "boolean"},
	))
	reference := `{"openapi":"3.0.3","info":{"title":"t","version":"1"},"paths":{},
"components":{"schemas":{"Client":{"type":"object","properties":{
"id":{"type":"string"},"enabled":{"type":"string"},"secret":{"type":"string"}}}}}}`

	input := diffInput{
		Page:      pageInput{Content: page},
		Reference: referenceInput{Content: reference},
	}
	result, output, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	assert.Nil(t, result)
	assert.False(t, output.Identical)
	assert.Equal(t, 1, output.ModifiedCount)
	assert.Equal(t, 1, output.RemovedCount)
	require.Len(t, output.Changes, 2)
	assert.Equal(t, "components.schemas.Client.properties.enabled", output.Changes[0].Path)
	assert.Equal(t, "modified", output.Changes[0].Type)
	assert.Equal(t, "components.schemas.Client.properties.secret", output.Changes[1].Path)
}

func TestDiffTool_BadReference(t *testing.T) {
	input := diffInput{
		Page:      pageInput{Content: testutil.DefinitionsPage()},
		Reference: referenceInput{},
	}
	result, _, err := handleDiff(context.Background(), &mcp.CallToolRequest{}, input)
	require.NoError(t, err)
	require.NotNil(t, result)
	assert.True(t, result.IsError)
}
