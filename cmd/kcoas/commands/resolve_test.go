package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/erraggy/kcoas/schemas"
)

func TestHandleResolve(t *testing.T) {
	assert.Error(t, HandleResolve([]string{}))
	assert.NoError(t, HandleResolve([]string{"--help"}))
	assert.NoError(t, HandleResolve([]string{"integer(int32)", "enum (A, B)", "List"}))
	assert.NoError(t, HandleResolve([]string{"--format", "json", "Map"}))
	assert.Error(t, HandleResolve([]string{"--format", "csv", "Map"}))
}

func TestResolve(t *testing.T) {
	r := Resolve("enum (SKIP, OVERWRITE, FAIL)")
	assert.Equal(t, schemas.RuleEnum, r.Rule)
	assert.Equal(t, "string", r.Schema.Type)
	assert.Equal(t, []any{"SKIP", "OVERWRITE", "FAIL"}, r.Schema.Enum)

	r = Resolve("number(float)")
	assert.Equal(t, schemas.RuleKnown, r.Rule)
	assert.Equal(t, "float", r.Schema.Format)

	r = Resolve("< GroupRepresentation > array")
	assert.Equal(t, schemas.RuleFallback, r.Rule)
	assert.Equal(t, "string", r.Schema.Type)
}
